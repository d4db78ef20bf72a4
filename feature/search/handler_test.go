package search_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"timetable-sync/feature/schedule/models"
	"timetable-sync/feature/search"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	names map[string]string
}

func (s *stubSource) Fetch(ctx context.Context, ref models.EntityRef) (*models.Schedule, error) {
	name, ok := s.names[ref.Identity()]
	if !ok {
		return nil, errors.New("page not published")
	}
	return &models.Schedule{Kind: ref.Kind, Name: name}, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := search.Config{
		CacheFile:        filepath.Join(t.TempDir(), "index.json"),
		GroupIDStart:     3099,
		GroupIDEnd:       3099,
		ProfessorIDStart: 13500,
		ProfessorIDEnd:   13500,
		MaxConcurrency:   2,
	}
	source := &stubSource{names: map[string]string{
		"group_3099":      "БПИ23-01",
		"professor_13500": "Иванов И.И.",
	}}

	feature := search.NewFeature(source, "https://example.test", cfg, zap.NewNop())
	require.NoError(t, feature.Service().Warm(context.Background()))

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandleSearch(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/search/?q=ivanov", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result search.Entity
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "Иванов И.И.", result.Name)
	assert.Equal(t, models.KindProfessor, result.Kind)
	assert.Equal(t, 13500, result.ID)
	assert.Equal(t, "https://example.test/timetable/professor/13500", result.URL)
}

func TestHandleSearch_MissingQuery(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/search/", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleSearch_NoMatch(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/search/?q=zzzzzzzzzzzzzzzzzzzz", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleRebuild(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/search/rebuild", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
