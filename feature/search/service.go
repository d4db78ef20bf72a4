package search

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Service handles fuzzy entity search.
//
// The index lives in memory and is swapped wholesale on rebuild, so lookups
// stay lock-cheap and never observe a half-built index.
type Service struct {
	builder *Builder
	cache   *Cache
	logger  *zap.Logger

	mu       sync.RWMutex
	entities []Entity
}

// NewService creates a new search service.
func NewService(builder *Builder, cache *Cache, logger *zap.Logger) *Service {
	return &Service{builder: builder, cache: cache, logger: logger}
}

// Warm makes the index ready: the persisted cache is used when present,
// otherwise the index is built by probing the site.
func (s *Service) Warm(ctx context.Context) error {
	if entities, ok := s.cache.Load(); ok {
		s.logger.Info("search index loaded from cache", zap.Int("entities", len(entities)))
		s.mu.Lock()
		s.entities = entities
		s.mu.Unlock()
		return nil
	}
	return s.Rebuild(ctx)
}

// Rebuild probes the configured id ranges and replaces the in-memory index.
// A partially failed build is accepted as long as anything resolved; a build
// that yields nothing is an error and leaves the previous index in place.
func (s *Service) Rebuild(ctx context.Context) error {
	entities, errs := s.builder.Build(ctx)

	if len(entities) == 0 {
		return fmt.Errorf("search index build yielded no entities (%d failures)", len(errs))
	}

	if err := s.cache.Save(entities); err != nil {
		// A stale disk cache is tolerable; the in-memory index still updates.
		s.logger.Warn("failed to persist search index", zap.Error(err))
	}

	s.mu.Lock()
	s.entities = entities
	s.mu.Unlock()
	return nil
}

// Search resolves a free-text query to the best matching entity.
func (s *Service) Search(query string) (*Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match := Resolve(s.entities, query)
	if match == nil {
		return nil, false
	}
	// Copy so callers never hold a pointer into the live index.
	found := *match
	return &found, true
}

// Entities returns a snapshot of the current index contents.
func (s *Service) Entities() []Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}
