package schedule

import (
	"context"

	"timetable-sync/core/fetch"
	"timetable-sync/feature/schedule/models"
	"timetable-sync/feature/schedule/reconcile"
	"timetable-sync/feature/schedule/snapshot"

	"go.uber.org/zap"
)

// Service handles schedule retrieval and snapshot reconciliation.
type Service struct {
	engine *reconcile.Engine
	logger *zap.Logger
}

// NewService creates a new schedule service.
func NewService(client *fetch.Client, store snapshot.Store, logger *zap.Logger) *Service {
	return &Service{
		engine: reconcile.NewEngine(store, NewSource(client), logger),
		logger: logger,
	}
}

// GetSchedule returns the current schedule for one entity, reconciled
// against the stored snapshot when useCache is set.
func (s *Service) GetSchedule(ctx context.Context, kind models.Kind, id int, useCache bool) (*models.Schedule, error) {
	return s.engine.Sync(ctx, models.EntityRef{Kind: kind, ID: id}, useCache)
}
