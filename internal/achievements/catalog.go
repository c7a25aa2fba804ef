package achievements

import (
	"github.com/samber/lo"
)

// Rarity represents how rare an achievement is
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Category represents the category of an achievement
type Category string

const (
	CategoryGettingStarted Category = "getting-started"
	CategoryTaskMastery    Category = "task-mastery"
	CategoryFocus          Category = "focus"
	CategorySelfCare       Category = "self-care"
	CategoryConsistency    Category = "consistency"
	CategoryExploration    Category = "exploration"
	CategorySocial         Category = "social"
	CategoryHidden         Category = "hidden"
)

// AllCategories lists every achievement category in display order
var AllCategories = []Category{
	CategoryGettingStarted,
	CategoryTaskMastery,
	CategoryFocus,
	CategorySelfCare,
	CategoryConsistency,
	CategoryExploration,
	CategorySocial,
	CategoryHidden,
}

// CounterKind identifies which stat a threshold criterion is measured against
type CounterKind string

const (
	CounterTasksCompleted     CounterKind = "tasks_completed"
	CounterTasksShrunk        CounterKind = "tasks_shrunk"
	CounterTasksStopped       CounterKind = "tasks_stopped"
	CounterTimerSessions      CounterKind = "timer_sessions"
	CounterFocusMinutes       CounterKind = "focus_minutes"
	CounterStreakDays         CounterKind = "streak_days"
	CounterLongestStreak      CounterKind = "longest_streak"
	CounterBreaksTaken        CounterKind = "breaks_taken"
	CounterAppOpens           CounterKind = "app_opens"
	CounterNotesAdded         CounterKind = "notes_added"
	CounterConsecutiveShrinks CounterKind = "consecutive_shrinks"
	CounterCategoriesUsed     CounterKind = "categories_used"
	CounterQuietHoursDays     CounterKind = "quiet_hours_days"
	CounterDonations          CounterKind = "donations"

	// These two route to condition dispatch instead of a numeric compare
	CounterCustom    CounterKind = "custom"
	CounterTimeOfDay CounterKind = "time_of_day"
)

// Timeframe is the counting window a threshold criterion is evaluated against.
// The zero value means all-time.
type Timeframe string

const (
	TimeframeAllTime Timeframe = ""
	TimeframeDay     Timeframe = "day"
	TimeframeWeek    Timeframe = "week"
	TimeframeMonth   Timeframe = "month"
)

// ConditionTag names a custom unlock condition
type ConditionTag string

const (
	ConditionConsecutiveShrinks  ConditionTag = "consecutive_shrinks"
	ConditionCompleteAfterStop   ConditionTag = "complete_after_stop"
	ConditionDaysAwayReturn      ConditionTag = "days_away_return"
	ConditionDonated             ConditionTag = "donated"
	ConditionQuietHoursRespected ConditionTag = "quiet_hours_respected"
	ConditionBefore              ConditionTag = "before"
	ConditionAfterMidnight       ConditionTag = "after_midnight"
	ConditionWeekendRest         ConditionTag = "weekend_rest"
	ConditionConsecutive         ConditionTag = "consecutive"
)

// Criteria describes when an achievement unlocks. When Counter is
// CounterCustom or CounterTimeOfDay the Condition tag decides; otherwise the
// counter named by Counter is compared against Target within Timeframe.
type Criteria struct {
	Counter   CounterKind
	Target    int
	Timeframe Timeframe
	Condition ConditionTag
}

// AchievementDefinition defines a single achievement
type AchievementDefinition struct {
	ID                  string
	Name                string
	Description         string
	Icon                string
	Category            Category
	Rarity              Rarity
	Criteria            Criteria
	Reward              string
	HiddenUntilUnlocked bool
}

// Catalog is an immutable, declaration-ordered registry of achievement
// definitions with O(1) lookup by id. Safe for concurrent reads.
type Catalog struct {
	defs []AchievementDefinition
	byID map[string]int
}

// NewCatalog builds a catalog from definitions. Ids are assumed unique;
// duplicates are not detected here.
func NewCatalog(defs []AchievementDefinition) *Catalog {
	byID := make(map[string]int, len(defs))
	for i, def := range defs {
		byID[def.ID] = i
	}
	return &Catalog{defs: defs, byID: byID}
}

// Lookup returns the definition with the given id, or nil if unknown
func (c *Catalog) Lookup(id string) *AchievementDefinition {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	def := c.defs[i]
	return &def
}

// All returns every definition in declaration order
func (c *Catalog) All() []AchievementDefinition {
	return append([]AchievementDefinition(nil), c.defs...)
}

// Len returns the number of definitions in the catalog
func (c *Catalog) Len() int {
	return len(c.defs)
}

// ByCategory returns all definitions in a category, in declaration order
func (c *Catalog) ByCategory(category Category) []AchievementDefinition {
	return lo.Filter(c.defs, func(def AchievementDefinition, _ int) bool {
		return def.Category == category
	})
}

// ByRarity returns all definitions of a rarity, in declaration order
func (c *Catalog) ByRarity(rarity Rarity) []AchievementDefinition {
	return lo.Filter(c.defs, func(def AchievementDefinition, _ int) bool {
		return def.Rarity == rarity
	})
}

// Partition splits the catalog into always-visible definitions and those
// hidden until unlocked, each in declaration order
func (c *Catalog) Partition() (visible, hidden []AchievementDefinition) {
	return lo.FilterReject(c.defs, func(def AchievementDefinition, _ int) bool {
		return !def.HiddenUntilUnlocked
	})
}
