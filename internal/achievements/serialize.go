package achievements

import (
	"encoding/json"
	"time"
)

// Keys the engine persists under. Both values are JSON text.
const (
	statsKey  = "achievements.stats"
	ledgerKey = "achievements.ledger"
)

// storedRecord is the persisted shape of one ledger entry's record half
type storedRecord struct {
	UnlockedAt time.Time `json:"unlockedAt"`
	SeenByUser bool      `json:"seenByUser"`
	Shared     bool      `json:"shared"`
}

// encodeStats serializes the snapshot. Timestamps become RFC 3339 strings and
// the category set becomes a string array.
func encodeStats(stats StatsSnapshot) (string, error) {
	data, err := json.Marshal(stats)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeStats parses a stored snapshot. Fields absent from the stored JSON
// keep their default values (shallow merge). On a parse error the returned
// snapshot is the untouched default.
func decodeStats(raw string) (StatsSnapshot, error) {
	stats := defaultStats()
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return defaultStats(), err
	}
	return stats, nil
}

// encodeLedger serializes records as an array of [id, record] pairs, in
// unlock order.
func encodeLedger(records []UnlockedRecord) (string, error) {
	pairs := make([][2]any, 0, len(records))
	for _, record := range records {
		pairs = append(pairs, [2]any{
			record.AchievementID,
			storedRecord{
				UnlockedAt: record.UnlockedAt,
				SeenByUser: record.SeenByUser,
				Shared:     record.Shared,
			},
		})
	}
	data, err := json.Marshal(pairs)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeLedger parses stored [id, record] pairs back into records, keeping
// stored order. Entries that are not two-element pairs or whose halves do not
// parse are skipped.
func decodeLedger(raw string) ([]UnlockedRecord, error) {
	var pairs [][]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return nil, err
	}

	records := make([]UnlockedRecord, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			continue
		}
		var id string
		if err := json.Unmarshal(pair[0], &id); err != nil {
			continue
		}
		var stored storedRecord
		if err := json.Unmarshal(pair[1], &stored); err != nil {
			continue
		}
		records = append(records, UnlockedRecord{
			AchievementID: id,
			UnlockedAt:    stored.UnlockedAt,
			SeenByUser:    stored.SeenByUser,
			Shared:        stored.Shared,
		})
	}
	return records, nil
}
