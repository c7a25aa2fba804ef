package achievements

import "time"

// UnlockedRecord marks one unlocked achievement. UnlockedAt never changes
// after creation; only the two flags may.
type UnlockedRecord struct {
	AchievementID string
	UnlockedAt    time.Time
	SeenByUser    bool
	Shared        bool
}

// Ledger is the append-only record of unlocked achievements, kept in unlock
// order. Ids never leave the ledger once added.
type Ledger struct {
	records []UnlockedRecord
	index   map[string]int
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// Add appends an unlock record for id. Callers must check IsUnlocked first;
// Add does not guard against duplicate ids.
func (l *Ledger) Add(id string, at time.Time) {
	l.restore(UnlockedRecord{AchievementID: id, UnlockedAt: at})
}

// restore appends a record as-is, flags included. Used when loading
// persisted state.
func (l *Ledger) restore(record UnlockedRecord) {
	l.index[record.AchievementID] = len(l.records)
	l.records = append(l.records, record)
}

// IsUnlocked reports whether id has been unlocked
func (l *Ledger) IsUnlocked(id string) bool {
	_, ok := l.index[id]
	return ok
}

// Record returns the unlock record for id, if any
func (l *Ledger) Record(id string) (UnlockedRecord, bool) {
	i, ok := l.index[id]
	if !ok {
		return UnlockedRecord{}, false
	}
	return l.records[i], true
}

// MarkSeen flags the record for id as seen and reports whether a record
// existed. Unknown ids are a no-op.
func (l *Ledger) MarkSeen(id string) bool {
	i, ok := l.index[id]
	if !ok {
		return false
	}
	l.records[i].SeenByUser = true
	return true
}

// MarkShared flags the record for id as shared and reports whether a record
// existed. Unknown ids are a no-op.
func (l *Ledger) MarkShared(id string) bool {
	i, ok := l.index[id]
	if !ok {
		return false
	}
	l.records[i].Shared = true
	return true
}

// Records returns a snapshot copy of all records in unlock order
func (l *Ledger) Records() []UnlockedRecord {
	return append([]UnlockedRecord(nil), l.records...)
}

// Len returns the number of unlocked achievements
func (l *Ledger) Len() int {
	return len(l.records)
}
