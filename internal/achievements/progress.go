package achievements

import "time"

// Progress reports how far along a single achievement is
type Progress struct {
	CurrentValue    int
	TargetValue     int
	PercentComplete float64
}

// CategoryProgress summarizes unlock progress across one category
type CategoryProgress struct {
	Unlocked   int
	Total      int
	Percentage float64
}

// progressFor computes the progress of one definition against the stats
func progressFor(def AchievementDefinition, stats StatsSnapshot, now time.Time) Progress {
	current := progressValue(def.Criteria, stats, now)
	return Progress{
		CurrentValue:    current,
		TargetValue:     def.Criteria.Target,
		PercentComplete: percentComplete(current, def.Criteria.Target),
	}
}

// progressValue resolves the displayable current value for a criterion.
// Conditions backed by a counter report that counter; all-or-nothing
// conditions report 0 or the full target.
func progressValue(criteria Criteria, stats StatsSnapshot, now time.Time) int {
	if criteria.Counter == CounterCustom || criteria.Counter == CounterTimeOfDay {
		switch criteria.Condition {
		case ConditionConsecutiveShrinks:
			return stats.ConsecutiveShrinks
		case ConditionDaysAwayReturn:
			return stats.DaysSinceLastActive
		case ConditionQuietHoursRespected:
			return stats.QuietHoursDays
		case ConditionDonated:
			return stats.Donations
		default:
			if conditionMet(criteria, stats, now) {
				return criteria.Target
			}
			return 0
		}
	}
	return counterValue(criteria.Counter, criteria.Timeframe, stats)
}

// percentComplete clamps progress to [0, 100]. A target of zero or less
// counts as already complete.
func percentComplete(current, target int) float64 {
	if target <= 0 {
		return 100
	}
	percent := float64(current) / float64(target) * 100
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}
