package snapshot

import (
	"context"
	"encoding/json"

	"timetable-sync/feature/schedule/models"

	"go.uber.org/zap"
)

// Config holds configuration for the snapshot cache.
type Config struct {
	// Backend selects the storage backend (file, database, s3).
	Backend string `mapstructure:"backend" default:"file"`
	// Dir is the snapshot directory (file backend).
	Dir string `mapstructure:"dir" default:".cache/schedules"`
	// Prefix is the object key prefix (s3 backend).
	Prefix string `mapstructure:"prefix" default:"snapshots"`
}

// Store persists one schedule snapshot per cache identity.
//
// Load returns the last persisted snapshot, or ok=false when none exists or
// the stored document is unreadable. Corruption is deliberately treated as a
// cache miss and never surfaced as an error; the cache is a diff baseline,
// not a source of truth.
//
// Save overwrites any prior snapshot for the identity. A concurrent reader
// must never observe a partially written snapshot.
type Store interface {
	Load(ctx context.Context, identity string) (*models.Schedule, bool)
	Save(ctx context.Context, identity string, schedule *models.Schedule) error
}

// decode unmarshals a stored snapshot document. A loaded snapshot always
// starts out tagged as cache content with no change records; the reconciler
// re-tags it after comparing against a live fetch.
func decode(data []byte, logger *zap.Logger, identity string) (*models.Schedule, bool) {
	var schedule models.Schedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		logger.Warn("discarding corrupt snapshot",
			zap.String("identity", identity),
			zap.Error(err),
		)
		return nil, false
	}

	schedule.Origin = models.OriginCache
	schedule.Changes = nil
	return &schedule, true
}
