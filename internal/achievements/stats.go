package achievements

import (
	"encoding/json"
	"time"
)

// LastAction discriminates the most recent task action
type LastAction string

const (
	ActionNone     LastAction = "none"
	ActionComplete LastAction = "complete"
	ActionStop     LastAction = "stop"
	ActionShrink   LastAction = "shrink"
)

// RollingCounters are the counters kept per day and per week. They are only
// zeroed by the explicit reset operations, never by the engine itself.
type RollingCounters struct {
	TasksCompleted int `json:"tasksCompleted"`
	TimerSessions  int `json:"timerSessions"`
	FocusMinutes   int `json:"focusMinutes"`
	BreaksTaken    int `json:"breaksTaken"`
}

// CategorySet is an ordered set of task category names. It remembers
// insertion order and serializes to a plain JSON string array.
type CategorySet struct {
	items []string
	seen  map[string]struct{}
}

// Add inserts a category, keeping the first-insertion order. Duplicates are
// ignored.
func (s *CategorySet) Add(category string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[category]; ok {
		return
	}
	s.seen[category] = struct{}{}
	s.items = append(s.items, category)
}

// Contains reports whether the category is in the set
func (s *CategorySet) Contains(category string) bool {
	_, ok := s.seen[category]
	return ok
}

// Len returns the number of distinct categories
func (s *CategorySet) Len() int {
	return len(s.items)
}

// Values returns the categories in insertion order as a copy
func (s *CategorySet) Values() []string {
	return append([]string(nil), s.items...)
}

// Clone returns an independent copy of the set
func (s *CategorySet) Clone() CategorySet {
	var out CategorySet
	for _, item := range s.items {
		out.Add(item)
	}
	return out
}

// MarshalJSON serializes the set as a JSON string array
func (s CategorySet) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

// UnmarshalJSON rebuilds the set from a JSON string array
func (s *CategorySet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	s.items = nil
	s.seen = nil
	for _, item := range items {
		s.Add(item)
	}
	return nil
}

// StatsSnapshot holds the per-user counters the evaluator reads. One instance
// per engine; cumulative counters only grow between resets.
type StatsSnapshot struct {
	TasksCompleted      int             `json:"tasksCompleted"`
	TasksShrunk         int             `json:"tasksShrunk"`
	TasksStopped        int             `json:"tasksStopped"`
	TimerSessions       int             `json:"timerSessions"`
	FocusMinutes        int             `json:"focusMinutes"`
	BreaksTaken         int             `json:"breaksTaken"`
	AppOpens            int             `json:"appOpens"`
	NotesAdded          int             `json:"notesAdded"`
	Donations           int             `json:"donations"`
	QuietHoursDays      int             `json:"quietHoursDays"`
	StreakDays          int             `json:"streakDays"`
	LongestStreak       int             `json:"longestStreak"`
	ConsecutiveShrinks  int             `json:"consecutiveShrinks"`
	CategoriesUsed      CategorySet     `json:"categoriesUsed"`
	LastAction          LastAction      `json:"lastAction"`
	LastActive          time.Time       `json:"lastActive"`
	DaysSinceLastActive int             `json:"daysSinceLastActive"`
	Day                 RollingCounters `json:"day"`
	Week                RollingCounters `json:"week"`
}

// defaultStats returns the snapshot a brand-new user starts from
func defaultStats() StatsSnapshot {
	return StatsSnapshot{LastAction: ActionNone}
}

// Clone returns an independent copy of the snapshot
func (s StatsSnapshot) Clone() StatsSnapshot {
	out := s
	out.CategoriesUsed = s.CategoriesUsed.Clone()
	return out
}

// daysBetween counts calendar days from one timestamp to another by walking
// midnight boundaries, so DST transitions cannot skew the count.
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())

	days := 0
	for d := fromDay; d.Before(toDay); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
