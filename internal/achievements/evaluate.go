package achievements

import "time"

// evaluate scans the catalog in declaration order and returns the definitions
// whose criteria hold but are not yet in the ledger. It has no side effects;
// recording unlocks and publishing events belong to the engine.
func evaluate(catalog *Catalog, stats StatsSnapshot, ledger *Ledger, now time.Time) []AchievementDefinition {
	var newlyUnlocked []AchievementDefinition
	for _, def := range catalog.defs {
		if ledger.IsUnlocked(def.ID) {
			continue
		}
		if criteriaSatisfied(def.Criteria, stats, now) {
			newlyUnlocked = append(newlyUnlocked, def)
		}
	}
	return newlyUnlocked
}

// criteriaSatisfied decides one criterion against the current stats
func criteriaSatisfied(criteria Criteria, stats StatsSnapshot, now time.Time) bool {
	if criteria.Counter == CounterCustom || criteria.Counter == CounterTimeOfDay {
		return conditionMet(criteria, stats, now)
	}
	return counterValue(criteria.Counter, criteria.Timeframe, stats) >= criteria.Target
}

// conditionMet dispatches a custom condition tag
func conditionMet(criteria Criteria, stats StatsSnapshot, now time.Time) bool {
	switch criteria.Condition {
	case ConditionConsecutiveShrinks:
		return stats.ConsecutiveShrinks >= criteria.Target
	case ConditionCompleteAfterStop:
		return stats.LastAction == ActionComplete && stats.TasksStopped > 0
	case ConditionDaysAwayReturn:
		return stats.DaysSinceLastActive >= criteria.Target
	case ConditionDonated:
		return stats.Donations > 0
	case ConditionQuietHoursRespected:
		return stats.QuietHoursDays >= criteria.Target
	case ConditionBefore:
		return now.Hour() < criteria.Target
	case ConditionAfterMidnight:
		return now.Hour() < 4
	case ConditionWeekendRest:
		// Weekend detection is not implemented; never satisfied.
		return false
	case ConditionConsecutive:
		// Consecutive-day detection is not implemented; always satisfied.
		return true
	default:
		return false
	}
}

// counterValue resolves a counter kind within a timeframe. Day and week read
// the rolling counters where one exists; month has no rolling window and
// reads the lifetime totals, as does all-time.
func counterValue(kind CounterKind, timeframe Timeframe, stats StatsSnapshot) int {
	switch timeframe {
	case TimeframeDay:
		if v, ok := rollingValue(kind, stats.Day); ok {
			return v
		}
	case TimeframeWeek:
		if v, ok := rollingValue(kind, stats.Week); ok {
			return v
		}
	}

	switch kind {
	case CounterTasksCompleted:
		return stats.TasksCompleted
	case CounterTasksShrunk:
		return stats.TasksShrunk
	case CounterTasksStopped:
		return stats.TasksStopped
	case CounterTimerSessions:
		return stats.TimerSessions
	case CounterFocusMinutes:
		return stats.FocusMinutes
	case CounterStreakDays:
		return stats.StreakDays
	case CounterLongestStreak:
		return stats.LongestStreak
	case CounterBreaksTaken:
		return stats.BreaksTaken
	case CounterAppOpens:
		return stats.AppOpens
	case CounterNotesAdded:
		return stats.NotesAdded
	case CounterConsecutiveShrinks:
		return stats.ConsecutiveShrinks
	case CounterCategoriesUsed:
		return stats.CategoriesUsed.Len()
	case CounterQuietHoursDays:
		return stats.QuietHoursDays
	case CounterDonations:
		return stats.Donations
	default:
		return 0
	}
}

// rollingValue reads a counter from a rolling window. Only the four counters
// tracked per window resolve; everything else falls back to lifetime totals.
func rollingValue(kind CounterKind, counters RollingCounters) (int, bool) {
	switch kind {
	case CounterTasksCompleted:
		return counters.TasksCompleted, true
	case CounterTimerSessions:
		return counters.TimerSessions, true
	case CounterFocusMinutes:
		return counters.FocusMinutes, true
	case CounterBreaksTaken:
		return counters.BreaksTaken, true
	default:
		return 0, false
	}
}
