package achievements

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warmlittlelight/bloom/internal/storage"
)

// A quiet mid-afternoon moment, away from every time-of-day unlock window.
var afternoon = time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newTestEngine() (*Engine, *storage.MemoryGateway) {
	gateway := storage.NewMemoryGateway()
	engine := New(DefaultCatalog(), gateway, WithClock(fixedClock(afternoon)))
	return engine, gateway
}

func defIDs(defs []AchievementDefinition) []string {
	ids := make([]string, 0, len(defs))
	for _, def := range defs {
		ids = append(ids, def.ID)
	}
	return ids
}

func recordIDs(records []UnlockedRecord) []string {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.AchievementID)
	}
	return ids
}

func TestFirstCompletionUnlocksOnce(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	unlockEvents := 0
	engine.Subscribe(func(event Event) {
		if event.Type == EventUnlocked && event.Achievement.ID == "first_bloom" {
			unlockEvents++
		}
	})

	newly := engine.TrackTaskCompleted(ctx, "")
	assert.Contains(t, defIDs(newly), "first_bloom")

	newly = engine.TrackTaskCompleted(ctx, "")
	assert.NotContains(t, defIDs(newly), "first_bloom", "an unlocked achievement never unlocks again")

	assert.Equal(t, 1, unlockEvents)
	assert.Equal(t, 2, engine.Stats().TasksCompleted)
}

func TestConsecutiveShrinksUnlock(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	assert.NotContains(t, defIDs(engine.TrackTaskShrunk(ctx)), "right_sizing")
	assert.NotContains(t, defIDs(engine.TrackTaskShrunk(ctx)), "right_sizing")

	newly := engine.TrackTaskShrunk(ctx)
	assert.Contains(t, defIDs(newly), "right_sizing")
}

func TestCompletionBreaksShrinkChain(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	engine.TrackTaskShrunk(ctx)
	engine.TrackTaskShrunk(ctx)
	engine.TrackTaskCompleted(ctx, "")
	newly := engine.TrackTaskShrunk(ctx)

	assert.NotContains(t, defIDs(newly), "right_sizing", "three shrinks split by a completion are not consecutive")
	assert.NotContains(t, recordIDs(engine.UnlockedRecords()), "right_sizing")

	stats := engine.Stats()
	assert.Equal(t, 3, stats.TasksShrunk, "the lifetime counter keeps counting")
	assert.Equal(t, 1, stats.ConsecutiveShrinks)

	engine.TrackTaskShrunk(ctx)
	newly = engine.TrackTaskShrunk(ctx)
	assert.Contains(t, defIDs(newly), "right_sizing")
}

func TestStoppingBreaksShrinkChain(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	engine.TrackTaskShrunk(ctx)
	engine.TrackTaskShrunk(ctx)
	engine.TrackTaskStopped(ctx)

	assert.Equal(t, 0, engine.Stats().ConsecutiveShrinks)
}

func TestStreakDropDoesNotRelock(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	newly := engine.TrackStreakUpdate(ctx, 3)
	assert.Contains(t, defIDs(newly), "three_in_bloom")

	engine.TrackStreakUpdate(ctx, 2)

	stats := engine.Stats()
	assert.Equal(t, 2, stats.StreakDays)
	assert.Equal(t, 3, stats.LongestStreak, "the longest streak never decreases")
	assert.Contains(t, recordIDs(engine.UnlockedRecords()), "three_in_bloom", "a broken streak keeps past unlocks")
}

func TestCompleteAfterStopUnlocks(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	assert.NotContains(t, defIDs(engine.TrackTaskStopped(ctx)), "fresh_start")
	newly := engine.TrackTaskCompleted(ctx, "")
	assert.Contains(t, defIDs(newly), "fresh_start")
}

func TestCategoriesAccumulateAcrossCompletions(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	engine.TrackTaskCompleted(ctx, "work")
	engine.TrackTaskCompleted(ctx, "work")
	engine.TrackTaskCompleted(ctx, "")
	newly := engine.TrackTaskCompleted(ctx, "rest")
	assert.NotContains(t, defIDs(newly), "branching_out")

	newly = engine.TrackTaskCompleted(ctx, "play")
	assert.Contains(t, defIDs(newly), "branching_out")
	assert.Equal(t, []string{"work", "rest", "play"}, engine.Stats().CategoriesUsed.Values())
}

func TestRepeatedOperationUnlocksExactlyOnce(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	unlockEvents := 0
	engine.Subscribe(func(event Event) {
		if event.Type == EventUnlocked && event.Achievement.ID == "ten_candles" {
			unlockEvents++
		}
	})

	returned := 0
	for i := 0; i < 15; i++ {
		for _, def := range engine.TrackTimerSession(ctx, 5) {
			if def.ID == "ten_candles" {
				returned++
			}
		}
	}

	assert.Equal(t, 1, returned)
	assert.Equal(t, 1, unlockEvents)
	assert.Equal(t, 15, engine.Stats().TimerSessions)
}

func TestLedgerOnlyGrows(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	operations := []func(){
		func() { engine.TrackTaskCompleted(ctx, "work") },
		func() { engine.TrackTaskShrunk(ctx) },
		func() { engine.TrackTaskStopped(ctx) },
		func() { engine.TrackTimerSession(ctx, 25) },
		func() { engine.TrackFocusMinutes(ctx, 10) },
		func() { engine.TrackBreakTaken(ctx) },
		func() { engine.TrackAppOpened(ctx) },
		func() { engine.TrackNoteAdded(ctx) },
		func() { engine.TrackStreakUpdate(ctx, 3) },
		func() { engine.TrackStreakUpdate(ctx, 0) },
		func() { engine.TrackDonation(ctx) },
		func() { engine.TrackQuietHoursRespected(ctx) },
		func() { engine.ResetDailyCounters(ctx) },
		func() { engine.TrackTaskCompleted(ctx, "rest") },
	}

	previous := 0
	for _, operation := range operations {
		operation()
		size := len(engine.UnlockedRecords())
		assert.GreaterOrEqual(t, size, previous)
		previous = size
	}
}

func TestSamePassUnlocksFollowCatalogOrder(t *testing.T) {
	catalog := NewCatalog([]AchievementDefinition{
		{ID: "zeta", Name: "Zeta", Criteria: Criteria{Counter: CounterNotesAdded, Target: 1}},
		{ID: "alpha", Name: "Alpha", Criteria: Criteria{Counter: CounterNotesAdded, Target: 1}},
	})
	engine := New(catalog, storage.NewMemoryGateway(), WithClock(fixedClock(afternoon)))

	var published []string
	engine.Subscribe(func(event Event) {
		if event.Type == EventUnlocked {
			published = append(published, event.Achievement.ID)
		}
	})

	newly := engine.TrackNoteAdded(context.Background())

	assert.Equal(t, []string{"zeta", "alpha"}, defIDs(newly))
	assert.Equal(t, []string{"zeta", "alpha"}, published, "events fire in catalog order")
	assert.Equal(t, []string{"zeta", "alpha"}, recordIDs(engine.UnlockedRecords()))
}

func TestUnlockedEventPayload(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	var events []Event
	engine.Subscribe(func(event Event) {
		if event.Type == EventUnlocked {
			events = append(events, event)
		}
	})

	engine.TrackDonation(ctx)

	assert.Len(t, events, 1)
	event := events[0]
	assert.Equal(t, "helping_hand", event.Achievement.ID)
	assert.Nil(t, event.Progress)
	if assert.NotNil(t, event.Record) {
		assert.Equal(t, "helping_hand", event.Record.AchievementID)
		assert.Equal(t, afternoon, event.Record.UnlockedAt)
		assert.False(t, event.Record.SeenByUser)
	}
}

func TestProgressEventOnThresholdCrossing(t *testing.T) {
	catalog := NewCatalog([]AchievementDefinition{
		{ID: "ten_notes", Name: "Ten Notes", Criteria: Criteria{Counter: CounterNotesAdded, Target: 10}},
		{ID: "quiet_goal", Name: "Quiet Goal", Criteria: Criteria{Counter: CounterQuietHoursDays, Target: 10}, HiddenUntilUnlocked: true},
	})
	engine := New(catalog, storage.NewMemoryGateway(), WithClock(fixedClock(afternoon)))
	ctx := context.Background()

	var progressEvents []string
	engine.Subscribe(func(event Event) {
		if event.Type == EventProgress {
			progressEvents = append(progressEvents, event.Achievement.ID)
			if assert.NotNil(t, event.Progress) {
				assert.GreaterOrEqual(t, event.Progress.PercentComplete, 80.0)
			}
		}
	})

	for i := 0; i < 7; i++ {
		engine.TrackNoteAdded(ctx)
	}
	assert.Empty(t, progressEvents, "seventy percent is below the threshold")

	engine.TrackNoteAdded(ctx)
	assert.Equal(t, []string{"ten_notes"}, progressEvents)

	engine.TrackNoteAdded(ctx)
	assert.Equal(t, []string{"ten_notes"}, progressEvents, "the crossing only fires once")

	for i := 0; i < 12; i++ {
		engine.TrackQuietHoursRespected(ctx)
	}
	assert.Equal(t, []string{"ten_notes"}, progressEvents, "hidden achievements never emit progress")
}

func TestTimeOfDayUnlocks(t *testing.T) {
	twoAM := time.Date(2025, 6, 2, 2, 0, 0, 0, time.UTC)
	engine := New(DefaultCatalog(), storage.NewMemoryGateway(), WithClock(fixedClock(twoAM)))

	ids := defIDs(engine.TrackNoteAdded(context.Background()))

	assert.Contains(t, ids, "dear_diary")
	assert.Contains(t, ids, "morning_dew")
	assert.Contains(t, ids, "moonlit_moth")
}

func TestReturnAfterDaysAway(t *testing.T) {
	current := afternoon
	engine := New(DefaultCatalog(), storage.NewMemoryGateway(), WithClock(func() time.Time { return current }))
	ctx := context.Background()

	engine.TrackTaskCompleted(ctx, "")
	current = current.AddDate(0, 0, 8)

	newly := engine.TrackAppOpened(ctx)
	assert.Contains(t, defIDs(newly), "welcome_back")
	assert.Equal(t, 8, engine.Stats().DaysSinceLastActive)

	engine.TrackBreakTaken(ctx)
	assert.Equal(t, 0, engine.Stats().DaysSinceLastActive, "any other action resets the away counter")
}

func TestFirstAppOpenIsNotAReturn(t *testing.T) {
	engine, _ := newTestEngine()

	newly := engine.TrackAppOpened(context.Background())

	assert.NotContains(t, defIDs(newly), "welcome_back")
	assert.Equal(t, 0, engine.Stats().DaysSinceLastActive)
	assert.Equal(t, 1, engine.Stats().AppOpens)
}

func TestResetsZeroRollingCountersWithoutEvaluating(t *testing.T) {
	engine, gateway := newTestEngine()
	ctx := context.Background()

	engine.TrackTimerSession(ctx, 30)
	engine.TrackBreakTaken(ctx)
	assert.Equal(t, 1, engine.Stats().Day.TimerSessions)

	events := 0
	engine.Subscribe(func(Event) { events++ })

	engine.ResetDailyCounters(ctx)

	stats := engine.Stats()
	assert.Equal(t, RollingCounters{}, stats.Day)
	assert.Equal(t, 1, stats.Week.TimerSessions, "the weekly window is untouched")
	assert.Equal(t, 1, stats.TimerSessions, "lifetime counters are untouched")
	assert.Zero(t, events)

	engine.ResetWeeklyCounters(ctx)
	assert.Equal(t, RollingCounters{}, engine.Stats().Week)
	assert.Zero(t, events)

	raw, ok, err := gateway.Get(ctx, statsKey)
	assert.NoError(t, err)
	assert.True(t, ok, "resets are persisted")
	decoded, err := decodeStats(raw)
	assert.NoError(t, err)
	assert.Equal(t, RollingCounters{}, decoded.Day)
}

func TestPersistenceRoundTrip(t *testing.T) {
	gateway := storage.NewMemoryGateway()
	ctx := context.Background()

	first := New(DefaultCatalog(), gateway, WithClock(fixedClock(afternoon)))
	first.TrackTaskCompleted(ctx, "work")
	first.TrackTimerSession(ctx, 30)
	first.TrackStreakUpdate(ctx, 3)
	first.MarkAsSeen(ctx, "first_bloom")

	second := New(DefaultCatalog(), gateway, WithClock(fixedClock(afternoon)))
	second.Initialize(ctx)

	assert.Equal(t, first.Stats(), second.Stats())
	assert.Equal(t, first.UnlockedRecords(), second.UnlockedRecords())
}

func TestInitializeDropsUnknownLedgerIds(t *testing.T) {
	gateway := storage.NewMemoryGateway()
	ctx := context.Background()

	raw, err := encodeLedger([]UnlockedRecord{
		{AchievementID: "first_bloom", UnlockedAt: afternoon},
		{AchievementID: "retired_achievement", UnlockedAt: afternoon},
	})
	assert.NoError(t, err)
	assert.NoError(t, gateway.Set(ctx, ledgerKey, raw))

	engine := New(DefaultCatalog(), gateway, WithClock(fixedClock(afternoon)))
	engine.Initialize(ctx)

	assert.Equal(t, []string{"first_bloom"}, recordIDs(engine.UnlockedRecords()))
}

func TestInitializeWithCorruptDataFallsBackToDefaults(t *testing.T) {
	gateway := storage.NewMemoryGateway()
	ctx := context.Background()
	assert.NoError(t, gateway.Set(ctx, statsKey, "{{{"))
	assert.NoError(t, gateway.Set(ctx, ledgerKey, "also not json"))

	engine := New(DefaultCatalog(), gateway, WithClock(fixedClock(afternoon)))
	engine.Initialize(ctx)

	assert.Equal(t, defaultStats(), engine.Stats())
	assert.Empty(t, engine.UnlockedRecords())
}

type failingGateway struct{}

func (failingGateway) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("unavailable")
}

func (failingGateway) Set(ctx context.Context, key, value string) error {
	return errors.New("unavailable")
}

func TestInitializeSurvivesGatewayErrors(t *testing.T) {
	engine := New(DefaultCatalog(), failingGateway{}, WithClock(fixedClock(afternoon)))
	engine.Initialize(context.Background())

	assert.Equal(t, defaultStats(), engine.Stats())
	assert.Empty(t, engine.UnlockedRecords())
}

func TestWriteFailuresAreSwallowed(t *testing.T) {
	gateway := storage.NewMemoryGateway()
	gateway.FailWrites(errors.New("disk full"))
	engine := New(DefaultCatalog(), gateway, WithClock(fixedClock(afternoon)))
	ctx := context.Background()

	newly := engine.TrackTaskCompleted(ctx, "")
	assert.Contains(t, defIDs(newly), "first_bloom", "unlocks still happen when persistence is down")
	assert.Equal(t, 1, engine.Stats().TasksCompleted)

	_, ok, err := gateway.Get(ctx, statsKey)
	assert.NoError(t, err)
	assert.False(t, ok, "nothing reached the gateway")

	gateway.FailWrites(nil)
	engine.TrackBreakTaken(ctx)
	_, ok, _ = gateway.Get(ctx, statsKey)
	assert.True(t, ok)
}

func TestGetProgress(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	assert.Nil(t, engine.GetProgress("nope"))

	for i := 0; i < 4; i++ {
		engine.TrackTaskCompleted(ctx, "")
	}

	progress := engine.GetProgress("ten_tended")
	assert.Equal(t, 4, progress.CurrentValue)
	assert.Equal(t, 10, progress.TargetValue)
	assert.InDelta(t, 40.0, progress.PercentComplete, 0.001)

	overshoot := engine.GetProgress("first_bloom")
	assert.Equal(t, 4, overshoot.CurrentValue)
	assert.InDelta(t, 100.0, overshoot.PercentComplete, 0.001, "completion percent is clamped")
}

func TestGetProgressByCategory(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	assert.Equal(t, CategoryProgress{}, engine.GetProgressByCategory(Category("imagined")))

	engine.TrackTaskCompleted(ctx, "")

	progress := engine.GetProgressByCategory(CategoryGettingStarted)
	assert.Equal(t, 1, progress.Unlocked)
	assert.Equal(t, len(engine.Catalog().ByCategory(CategoryGettingStarted)), progress.Total)
	assert.Greater(t, progress.Percentage, 0.0)
}

func TestUnseenFlow(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	engine.TrackTaskCompleted(ctx, "")
	engine.TrackNoteAdded(ctx)

	assert.Equal(t, []string{"first_bloom", "dear_diary"}, defIDs(engine.GetUnseenAchievements()))

	engine.MarkAsSeen(ctx, "first_bloom")
	assert.Equal(t, []string{"dear_diary"}, defIDs(engine.GetUnseenAchievements()))

	engine.MarkAsSeen(ctx, "nope")
	engine.MarkAsShared(ctx, "nope")

	engine.MarkAsShared(ctx, "dear_diary")
	var shared *UnlockedRecord
	for _, record := range engine.UnlockedRecords() {
		if record.AchievementID == "dear_diary" {
			r := record
			shared = &r
		}
	}
	if assert.NotNil(t, shared) {
		assert.True(t, shared.Shared)
		assert.False(t, shared.SeenByUser, "sharing does not mark as seen")
	}
}

func TestMarkAsSeenPersists(t *testing.T) {
	gateway := storage.NewMemoryGateway()
	ctx := context.Background()

	first := New(DefaultCatalog(), gateway, WithClock(fixedClock(afternoon)))
	first.TrackTaskCompleted(ctx, "")
	first.MarkAsSeen(ctx, "first_bloom")

	second := New(DefaultCatalog(), gateway, WithClock(fixedClock(afternoon)))
	second.Initialize(ctx)

	assert.Empty(t, second.GetUnseenAchievements())
}
