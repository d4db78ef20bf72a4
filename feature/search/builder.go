package search

import (
	"context"
	"fmt"
	"sort"

	"timetable-sync/core/concurrent"
	"timetable-sync/feature/schedule/models"
	"timetable-sync/feature/schedule/reconcile"

	"go.uber.org/zap"
)

// Builder probes the timetable site's id ranges and collects every entity
// that answers with a parseable schedule page.
type Builder struct {
	source  reconcile.Source
	baseURL string
	config  Config
	logger  *zap.Logger
}

// NewBuilder creates a new index builder.
func NewBuilder(source reconcile.Source, baseURL string, config Config, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{source: source, baseURL: baseURL, config: config, logger: logger}
}

// Build fetches every candidate page concurrently and returns the entities
// that resolved. Ids that fail to fetch or parse are skipped; their errors
// come back alongside the partial result so the caller decides whether a
// degraded index is acceptable.
func (b *Builder) Build(ctx context.Context) ([]Entity, []error) {
	var refs []models.EntityRef
	for id := b.config.GroupIDStart; id <= b.config.GroupIDEnd; id++ {
		refs = append(refs, models.EntityRef{Kind: models.KindGroup, ID: id})
	}
	for id := b.config.ProfessorIDStart; id <= b.config.ProfessorIDEnd; id++ {
		refs = append(refs, models.EntityRef{Kind: models.KindProfessor, ID: id})
	}

	runner := concurrent.NewRunner[models.EntityRef, Entity](concurrent.RunnerConfig{
		MaxConcurrency: b.config.MaxConcurrency,
		Name:           "search-index",
	}, b.logger)

	result := runner.Run(ctx, refs, func(ctx context.Context, ref models.EntityRef) (Entity, error) {
		schedule, err := b.source.Fetch(ctx, ref)
		if err != nil {
			return Entity{}, fmt.Errorf("probe %s: %w", ref.Identity(), err)
		}
		return Entity{
			Name: schedule.Name,
			Kind: ref.Kind,
			ID:   ref.ID,
			URL:  ref.URL(b.baseURL),
		}, nil
	})

	// Workers finish in arbitrary order; a stable order keeps tie-breaking
	// during resolution deterministic across rebuilds.
	entities := result.Results
	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Kind != entities[j].Kind {
			return entities[i].Kind < entities[j].Kind
		}
		return entities[i].ID < entities[j].ID
	})

	b.logger.Info("search index built",
		zap.Int("entities", len(entities)),
		zap.Int("failures", len(result.Errors)),
	)

	return entities, result.Errors
}
