package reconcile

import (
	"context"
	"fmt"
	"time"

	"timetable-sync/feature/schedule/models"
	"timetable-sync/feature/schedule/snapshot"

	"go.uber.org/zap"
)

// Source fetches and parses the live schedule for one entity. Implementations
// wrap the HTTP client and the page parser; tests inject stubs.
type Source interface {
	Fetch(ctx context.Context, ref models.EntityRef) (*models.Schedule, error)
}

// Engine decides whether to trust a cached snapshot, fetches a fresh one,
// computes the structural diff, and tags the result.
type Engine struct {
	store  snapshot.Store
	source Source
	logger *zap.Logger
}

// NewEngine creates a reconciliation engine.
func NewEngine(store snapshot.Store, source Source, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: store, source: source, logger: logger}
}

// Sync fetches the entity's live schedule and reconciles it against the
// cached snapshot.
//
// With useCache=false it returns the fresh schedule untagged and unpersisted.
// Otherwise the cached snapshot, when present, serves as the diff baseline:
// an identical fetch is tagged OriginCache, a differing one OriginChanged
// with the change records attached. The live fetch always happens; the cache
// is never trusted in its place, and a failed fetch fails the call even when
// a snapshot exists.
func (e *Engine) Sync(ctx context.Context, ref models.EntityRef, useCache bool) (*models.Schedule, error) {
	fresh, err := e.source.Fetch(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh %s: %w", ref.Identity(), err)
	}

	fresh.Origin = models.OriginFresh
	fresh.Changes = nil
	fresh.RetrievedAt = time.Now()

	if !useCache {
		return fresh, nil
	}

	identity := ref.Identity()

	if cached, ok := e.store.Load(ctx, identity); ok {
		changes := Diff(cached, fresh)
		if len(changes) == 0 {
			// Content identical to the snapshot; only retrieved_at moves.
			fresh.Origin = models.OriginCache
		} else {
			fresh.Origin = models.OriginChanged
			fresh.Changes = changes
			e.logger.Info("schedule changed since last sync",
				zap.String("identity", identity),
				zap.Int("changes", len(changes)),
			)
		}
	}

	// The new result always overwrites the snapshot, regardless of branch,
	// so the next sync diffs against what this one saw.
	if err := e.store.Save(ctx, identity, fresh); err != nil {
		return nil, fmt.Errorf("failed to persist snapshot %s: %w", identity, err)
	}

	return fresh, nil
}
