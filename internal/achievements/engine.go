package achievements

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/warmlittlelight/bloom/internal/storage"
	"go.uber.org/zap"
)

// progressEventThreshold is the percent a locked achievement must reach
// within one mutation for a progress event to fire.
const progressEventThreshold = 80.0

// Engine converts user-action events into persisted counters, evaluates the
// achievement catalog against them, and records each unlock exactly once.
//
// An engine owns its stats and unlock ledger. There is no internal locking:
// callers must let each call return before issuing the next one on the same
// instance. Separate instances share nothing and may run concurrently with
// each other.
type Engine struct {
	catalog *Catalog
	gateway storage.Gateway
	logger  *zap.Logger
	now     func() time.Time

	stats  StatsSnapshot
	ledger *Ledger
	bus    *EventBus
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger routes engine logging to the given logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock overrides the engine's time source
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an engine over the given catalog and persistence gateway. Call
// Initialize to load previously persisted state.
func New(catalog *Catalog, gateway storage.Gateway, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		gateway: gateway,
		logger:  zap.NewNop(),
		now:     time.Now,
		stats:   defaultStats(),
		ledger:  NewLedger(),
		bus:     NewEventBus(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize loads persisted stats and ledger through the gateway. Loading
// is best-effort: a missing key, an unreadable value, or a gateway error
// leaves the corresponding defaults in place and is only logged.
func (e *Engine) Initialize(ctx context.Context) {
	e.loadStats(ctx)
	e.loadLedger(ctx)
}

func (e *Engine) loadStats(ctx context.Context) {
	raw, ok, err := e.gateway.Get(ctx, statsKey)
	if err != nil {
		e.logger.Warn("reading stored stats", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	stats, err := decodeStats(raw)
	if err != nil {
		e.logger.Warn("parsing stored stats", zap.Error(err))
	}
	e.stats = stats
}

func (e *Engine) loadLedger(ctx context.Context) {
	raw, ok, err := e.gateway.Get(ctx, ledgerKey)
	if err != nil {
		e.logger.Warn("reading stored unlock ledger", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	records, err := decodeLedger(raw)
	if err != nil {
		e.logger.Warn("parsing stored unlock ledger", zap.Error(err))
		return
	}

	ledger := NewLedger()
	for _, record := range records {
		// Every ledger id must resolve in the catalog
		if e.catalog.Lookup(record.AchievementID) == nil {
			e.logger.Warn("dropping unlock for unknown achievement", zap.String("id", record.AchievementID))
			continue
		}
		if ledger.IsUnlocked(record.AchievementID) {
			continue
		}
		ledger.restore(record)
	}
	e.ledger = ledger
}

// TrackTaskCompleted records a completed task and the category it belonged
// to, if any. Completing a task breaks a shrink chain.
func (e *Engine) TrackTaskCompleted(ctx context.Context, category string) []AchievementDefinition {
	now := e.now()
	before := e.stats.Clone()

	e.stats.TasksCompleted++
	e.stats.Day.TasksCompleted++
	e.stats.Week.TasksCompleted++
	if category != "" {
		e.stats.CategoriesUsed.Add(category)
	}
	e.stats.ConsecutiveShrinks = 0
	e.stats.LastAction = ActionComplete
	e.touch(now)

	return e.finishMutation(ctx, now, before)
}

// TrackTaskShrunk records a task being shrunk into something smaller
func (e *Engine) TrackTaskShrunk(ctx context.Context) []AchievementDefinition {
	now := e.now()
	before := e.stats.Clone()

	e.stats.TasksShrunk++
	e.stats.ConsecutiveShrinks++
	e.stats.LastAction = ActionShrink
	e.touch(now)

	return e.finishMutation(ctx, now, before)
}

// TrackTaskStopped records a task being stopped. Stopping breaks a shrink
// chain.
func (e *Engine) TrackTaskStopped(ctx context.Context) []AchievementDefinition {
	now := e.now()
	before := e.stats.Clone()

	e.stats.TasksStopped++
	e.stats.ConsecutiveShrinks = 0
	e.stats.LastAction = ActionStop
	e.touch(now)

	return e.finishMutation(ctx, now, before)
}

// TrackTimerSession records a finished focus timer session and its length
func (e *Engine) TrackTimerSession(ctx context.Context, durationMinutes int) []AchievementDefinition {
	now := e.now()
	before := e.stats.Clone()

	e.stats.TimerSessions++
	e.stats.Day.TimerSessions++
	e.stats.Week.TimerSessions++
	e.stats.FocusMinutes += durationMinutes
	e.stats.Day.FocusMinutes += durationMinutes
	e.stats.Week.FocusMinutes += durationMinutes
	e.touch(now)

	return e.finishMutation(ctx, now, before)
}

// TrackFocusMinutes records manually logged focus time, outside any timer
// session
func (e *Engine) TrackFocusMinutes(ctx context.Context, minutes int) []AchievementDefinition {
	now := e.now()
	before := e.stats.Clone()

	e.stats.FocusMinutes += minutes
	e.stats.Day.FocusMinutes += minutes
	e.stats.Week.FocusMinutes += minutes
	e.touch(now)

	return e.finishMutation(ctx, now, before)
}

// TrackBreakTaken records a break
func (e *Engine) TrackBreakTaken(ctx context.Context) []AchievementDefinition {
	now := e.now()
	before := e.stats.Clone()

	e.stats.BreaksTaken++
	e.stats.Day.BreaksTaken++
	e.stats.Week.BreaksTaken++
	e.touch(now)

	return e.finishMutation(ctx, now, before)
}

// TrackAppOpened records the app being opened. DaysSinceLastActive is
// computed from the previous LastActive before it is overwritten, which is
// what makes returning after N days detectable.
func (e *Engine) TrackAppOpened(ctx context.Context) []AchievementDefinition {
	now := e.now()
	before := e.stats.Clone()

	if !e.stats.LastActive.IsZero() {
		e.stats.DaysSinceLastActive = daysBetween(e.stats.LastActive, now)
	}
	e.stats.AppOpens++
	e.stats.LastActive = now

	return e.finishMutation(ctx, now, before)
}

// TrackNoteAdded records a note being written
func (e *Engine) TrackNoteAdded(ctx context.Context) []AchievementDefinition {
	now := e.now()
	before := e.stats.Clone()

	e.stats.NotesAdded++
	e.touch(now)

	return e.finishMutation(ctx, now, before)
}

// TrackStreakUpdate records the current daily streak as computed by the
// caller. LongestStreak never decreases.
func (e *Engine) TrackStreakUpdate(ctx context.Context, currentStreak int) []AchievementDefinition {
	now := e.now()
	before := e.stats.Clone()

	e.stats.StreakDays = currentStreak
	if currentStreak > e.stats.LongestStreak {
		e.stats.LongestStreak = currentStreak
	}
	e.touch(now)

	return e.finishMutation(ctx, now, before)
}

// TrackDonation records a donation
func (e *Engine) TrackDonation(ctx context.Context) []AchievementDefinition {
	now := e.now()
	before := e.stats.Clone()

	e.stats.Donations++
	e.touch(now)

	return e.finishMutation(ctx, now, before)
}

// TrackQuietHoursRespected records a day on which quiet hours were respected
func (e *Engine) TrackQuietHoursRespected(ctx context.Context) []AchievementDefinition {
	now := e.now()
	before := e.stats.Clone()

	e.stats.QuietHoursDays++
	e.touch(now)

	return e.finishMutation(ctx, now, before)
}

// ResetDailyCounters zeroes the per-day rolling counters. Resets never
// trigger an evaluation pass.
func (e *Engine) ResetDailyCounters(ctx context.Context) {
	e.stats.Day = RollingCounters{}
	e.persistStats(ctx)
}

// ResetWeeklyCounters zeroes the per-week rolling counters. Resets never
// trigger an evaluation pass.
func (e *Engine) ResetWeeklyCounters(ctx context.Context) {
	e.stats.Week = RollingCounters{}
	e.persistStats(ctx)
}

// touch stamps the mutation time on the snapshot
func (e *Engine) touch(now time.Time) {
	e.stats.LastActive = now
	e.stats.DaysSinceLastActive = 0
}

// finishMutation persists the stats, runs an evaluation pass, records and
// publishes each unlock in catalog order, then publishes progress crossings.
func (e *Engine) finishMutation(ctx context.Context, now time.Time, before StatsSnapshot) []AchievementDefinition {
	e.persistStats(ctx)

	newlyUnlocked := evaluate(e.catalog, e.stats, e.ledger, now)
	for _, def := range newlyUnlocked {
		e.ledger.Add(def.ID, now)
		e.persistLedger(ctx)
		record, _ := e.ledger.Record(def.ID)
		e.logger.Info("achievement unlocked", zap.String("id", def.ID), zap.String("name", def.Name))
		e.bus.Publish(Event{Type: EventUnlocked, Achievement: def, Record: &record})
	}

	e.publishProgressCrossings(before, now)
	return newlyUnlocked
}

// publishProgressCrossings emits a progress event for every visible, still
// locked definition whose completion crossed the threshold during this
// mutation.
func (e *Engine) publishProgressCrossings(before StatsSnapshot, now time.Time) {
	for _, def := range e.catalog.defs {
		if def.HiddenUntilUnlocked || e.ledger.IsUnlocked(def.ID) {
			continue
		}
		previous := progressFor(def, before, now)
		current := progressFor(def, e.stats, now)
		if previous.PercentComplete < progressEventThreshold && current.PercentComplete >= progressEventThreshold {
			progress := current
			e.bus.Publish(Event{Type: EventProgress, Achievement: def, Progress: &progress})
		}
	}
}

// persistStats writes the stats snapshot through the gateway. Failures are
// logged and dropped; the in-memory snapshot stays authoritative.
func (e *Engine) persistStats(ctx context.Context) {
	raw, err := encodeStats(e.stats)
	if err != nil {
		e.logger.Warn("encoding stats", zap.Error(err))
		return
	}
	if err := e.gateway.Set(ctx, statsKey, raw); err != nil {
		e.logger.Warn("persisting stats", zap.Error(err))
	}
}

// persistLedger writes the unlock ledger through the gateway. Failures are
// logged and dropped; the in-memory ledger stays authoritative.
func (e *Engine) persistLedger(ctx context.Context) {
	raw, err := encodeLedger(e.ledger.records)
	if err != nil {
		e.logger.Warn("encoding unlock ledger", zap.Error(err))
		return
	}
	if err := e.gateway.Set(ctx, ledgerKey, raw); err != nil {
		e.logger.Warn("persisting unlock ledger", zap.Error(err))
	}
}

// GetProgress reports progress toward the achievement with the given id, or
// nil if the id is unknown
func (e *Engine) GetProgress(id string) *Progress {
	def := e.catalog.Lookup(id)
	if def == nil {
		return nil
	}
	progress := progressFor(*def, e.stats, e.now())
	return &progress
}

// GetProgressByCategory summarizes how many achievements in a category have
// unlocked
func (e *Engine) GetProgressByCategory(category Category) CategoryProgress {
	defs := e.catalog.ByCategory(category)
	unlocked := lo.CountBy(defs, func(def AchievementDefinition) bool {
		return e.ledger.IsUnlocked(def.ID)
	})

	progress := CategoryProgress{Unlocked: unlocked, Total: len(defs)}
	if progress.Total > 0 {
		progress.Percentage = float64(unlocked) / float64(progress.Total) * 100
	}
	return progress
}

// GetUnseenAchievements returns unlocked achievements the user has not seen
// yet, in unlock order
func (e *Engine) GetUnseenAchievements() []AchievementDefinition {
	return lo.FilterMap(e.ledger.Records(), func(record UnlockedRecord, _ int) (AchievementDefinition, bool) {
		if record.SeenByUser {
			return AchievementDefinition{}, false
		}
		def := e.catalog.Lookup(record.AchievementID)
		if def == nil {
			return AchievementDefinition{}, false
		}
		return *def, true
	})
}

// MarkAsSeen flags an unlocked achievement as seen. Unknown ids are a no-op.
func (e *Engine) MarkAsSeen(ctx context.Context, id string) {
	if e.ledger.MarkSeen(id) {
		e.persistLedger(ctx)
	}
}

// MarkAsShared flags an unlocked achievement as shared. Unknown ids are a
// no-op.
func (e *Engine) MarkAsShared(ctx context.Context, id string) {
	if e.ledger.MarkShared(id) {
		e.persistLedger(ctx)
	}
}

// Subscribe registers a listener for unlock and progress events. The
// returned function removes it. Listeners must not call back into the engine
// synchronously.
func (e *Engine) Subscribe(listener Listener) func() {
	return e.bus.Subscribe(listener)
}

// Stats returns a copy of the current stats snapshot
func (e *Engine) Stats() StatsSnapshot {
	return e.stats.Clone()
}

// UnlockedRecords returns a copy of the unlock ledger in unlock order
func (e *Engine) UnlockedRecords() []UnlockedRecord {
	return e.ledger.Records()
}

// Catalog returns the catalog this engine evaluates
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}
