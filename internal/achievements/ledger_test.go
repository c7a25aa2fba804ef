package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLedgerAddAndLookup(t *testing.T) {
	ledger := NewLedger()
	at := time.Date(2025, 3, 9, 21, 30, 0, 0, time.UTC)

	assert.False(t, ledger.IsUnlocked("first_bloom"))

	ledger.Add("first_bloom", at)

	assert.True(t, ledger.IsUnlocked("first_bloom"))
	assert.Equal(t, 1, ledger.Len())

	record, ok := ledger.Record("first_bloom")
	assert.True(t, ok)
	assert.Equal(t, "first_bloom", record.AchievementID)
	assert.Equal(t, at, record.UnlockedAt)
	assert.False(t, record.SeenByUser)
	assert.False(t, record.Shared)

	_, ok = ledger.Record("nope")
	assert.False(t, ok)
}

func TestLedgerRecordsPreserveUnlockOrder(t *testing.T) {
	ledger := NewLedger()
	at := time.Now()
	ledger.Add("c", at)
	ledger.Add("a", at)
	ledger.Add("b", at)

	var ids []string
	for _, record := range ledger.Records() {
		ids = append(ids, record.AchievementID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestLedgerRecordsReturnsCopy(t *testing.T) {
	ledger := NewLedger()
	ledger.Add("a", time.Now())

	records := ledger.Records()
	records[0].SeenByUser = true

	fresh, _ := ledger.Record("a")
	assert.False(t, fresh.SeenByUser)
}

func TestLedgerMarkSeen(t *testing.T) {
	ledger := NewLedger()
	at := time.Date(2025, 3, 9, 21, 30, 0, 0, time.UTC)
	ledger.Add("a", at)

	assert.True(t, ledger.MarkSeen("a"))
	record, _ := ledger.Record("a")
	assert.True(t, record.SeenByUser)
	assert.Equal(t, at, record.UnlockedAt, "marking seen must not touch the unlock time")

	assert.False(t, ledger.MarkSeen("nope"), "unknown ids are a no-op")
	assert.Equal(t, 1, ledger.Len())
}

func TestLedgerMarkShared(t *testing.T) {
	ledger := NewLedger()
	ledger.Add("a", time.Now())

	assert.True(t, ledger.MarkShared("a"))
	record, _ := ledger.Record("a")
	assert.True(t, record.Shared)
	assert.False(t, record.SeenByUser, "sharing does not imply seen")

	assert.False(t, ledger.MarkShared("nope"))
}
