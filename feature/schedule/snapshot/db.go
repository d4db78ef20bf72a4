package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"timetable-sync/feature/schedule/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBStore keeps one row per cache identity in the schedule_snapshots table.
type DBStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDBStore creates a database-backed snapshot store and migrates the
// backing table on first use.
func NewDBStore(db *gorm.DB, logger *zap.Logger) (*DBStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := db.AutoMigrate(&models.SnapshotRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return &DBStore{db: db, logger: logger}, nil
}

// Load reads the snapshot row for identity. A missing row or an unreadable
// document is a miss.
func (s *DBStore) Load(ctx context.Context, identity string) (*models.Schedule, bool) {
	var record models.SnapshotRecord
	err := s.db.WithContext(ctx).First(&record, "identity = ?", identity).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("failed to query snapshot row",
				zap.String("identity", identity),
				zap.Error(err),
			)
		}
		return nil, false
	}

	return decode(record.Document, s.logger, identity)
}

// Save upserts the snapshot row. The single-statement upsert keeps the
// overwrite atomic from a reader's point of view.
func (s *DBStore) Save(ctx context.Context, identity string, schedule *models.Schedule) error {
	data, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot %s: %w", identity, err)
	}

	record := models.SnapshotRecord{
		Identity:    identity,
		Kind:        string(schedule.Kind),
		Document:    data,
		RetrievedAt: schedule.RetrievedAt,
	}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record).Error; err != nil {
		return fmt.Errorf("failed to store snapshot %s: %w", identity, err)
	}

	return nil
}
