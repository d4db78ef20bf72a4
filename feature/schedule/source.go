package schedule

import (
	"context"
	"fmt"

	"timetable-sync/core/fetch"
	"timetable-sync/feature/schedule/models"
	"timetable-sync/feature/schedule/parser"
	"timetable-sync/feature/schedule/reconcile"
)

// pageSource retrieves an entity's timetable page and parses it into a
// structured schedule.
type pageSource struct {
	client *fetch.Client
}

// NewSource creates a live schedule source backed by the HTTP client.
func NewSource(client *fetch.Client) reconcile.Source {
	return &pageSource{client: client}
}

func (s *pageSource) Fetch(ctx context.Context, ref models.EntityRef) (*models.Schedule, error) {
	document, err := s.client.Get(ctx, ref.URL(s.client.BaseURL()))
	if err != nil {
		return nil, err
	}

	switch ref.Kind {
	case models.KindGroup:
		return parser.ParseGroup(document)
	case models.KindProfessor:
		return parser.ParseProfessor(document)
	default:
		return nil, fmt.Errorf("unsupported entity kind %q", ref.Kind)
	}
}
