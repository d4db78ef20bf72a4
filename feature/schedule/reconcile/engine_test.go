package reconcile

import (
	"context"
	"errors"
	"testing"

	"timetable-sync/feature/schedule/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory snapshot store mirroring the backend contract:
// loads re-tag the snapshot as cache content.
type memStore struct {
	snapshots map[string]*models.Schedule
	saveErr   error
}

func newMemStore() *memStore {
	return &memStore{snapshots: make(map[string]*models.Schedule)}
}

func (m *memStore) Load(ctx context.Context, identity string) (*models.Schedule, bool) {
	stored, ok := m.snapshots[identity]
	if !ok {
		return nil, false
	}
	copied := *stored
	copied.Origin = models.OriginCache
	copied.Changes = nil
	return &copied, true
}

func (m *memStore) Save(ctx context.Context, identity string, schedule *models.Schedule) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *schedule
	m.snapshots[identity] = &copied
	return nil
}

// stubSource returns a fresh copy of a fixed schedule, or an error.
type stubSource struct {
	schedule func() *models.Schedule
	err      error
	calls    int
}

func (s *stubSource) Fetch(ctx context.Context, ref models.EntityRef) (*models.Schedule, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.schedule(), nil
}

func TestEngine_Sync(t *testing.T) {
	ctx := context.Background()
	ref := models.EntityRef{Kind: models.KindGroup, ID: 3100}

	t.Run("Cache Miss Yields Fresh And Persists", func(t *testing.T) {
		store := newMemStore()
		engine := NewEngine(store, &stubSource{schedule: groupSchedule}, nil)

		result, err := engine.Sync(ctx, ref, true)
		require.NoError(t, err)
		assert.Equal(t, models.OriginFresh, result.Origin)
		assert.Empty(t, result.Changes)
		assert.False(t, result.RetrievedAt.IsZero())

		stored, ok := store.snapshots[ref.Identity()]
		require.True(t, ok)
		assert.Equal(t, result.Name, stored.Name)
	})

	t.Run("Unchanged Upstream Yields Cache", func(t *testing.T) {
		store := newMemStore()
		source := &stubSource{schedule: groupSchedule}
		engine := NewEngine(store, source, nil)

		first, err := engine.Sync(ctx, ref, true)
		require.NoError(t, err)
		require.Equal(t, models.OriginFresh, first.Origin)

		second, err := engine.Sync(ctx, ref, true)
		require.NoError(t, err)
		assert.Equal(t, models.OriginCache, second.Origin)
		assert.Empty(t, second.Changes)

		// The cache never replaces a live fetch.
		assert.Equal(t, 2, source.calls)

		// retrieved_at still moves on the cache branch.
		assert.True(t, second.RetrievedAt.After(first.RetrievedAt) || second.RetrievedAt.Equal(first.RetrievedAt))
	})

	t.Run("Changed Upstream Yields Diff", func(t *testing.T) {
		store := newMemStore()
		require.NoError(t, store.Save(ctx, ref.Identity(), groupSchedule()))

		renamed := func() *models.Schedule {
			s := groupSchedule()
			s.Weeks[0].Days[0].Lessons[0].Name = "Algebra"
			return s
		}
		engine := NewEngine(store, &stubSource{schedule: renamed}, nil)

		result, err := engine.Sync(ctx, ref, true)
		require.NoError(t, err)
		assert.Equal(t, models.OriginChanged, result.Origin)
		require.Len(t, result.Changes, 1)
		assert.Equal(t, models.Change{
			Field: FieldName, Old: "Math", New: "Algebra",
			Week: 1, Day: "Monday", Time: "09:00",
		}, result.Changes[0])

		// Re-based: the next sync against the same upstream is quiet.
		followup, err := engine.Sync(ctx, ref, true)
		require.NoError(t, err)
		assert.Equal(t, models.OriginCache, followup.Origin)
		assert.Empty(t, followup.Changes)
	})

	t.Run("No Cache Identity Skips Persistence", func(t *testing.T) {
		store := newMemStore()
		engine := NewEngine(store, &stubSource{schedule: groupSchedule}, nil)

		result, err := engine.Sync(ctx, ref, false)
		require.NoError(t, err)
		assert.Equal(t, models.OriginFresh, result.Origin)
		assert.Empty(t, store.snapshots)
	})

	t.Run("Fetch Failure Fails The Call Despite Warm Cache", func(t *testing.T) {
		store := newMemStore()
		require.NoError(t, store.Save(ctx, ref.Identity(), groupSchedule()))

		engine := NewEngine(store, &stubSource{err: errors.New("connection refused")}, nil)

		result, err := engine.Sync(ctx, ref, true)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Persistence Failure Surfaces", func(t *testing.T) {
		store := newMemStore()
		store.saveErr = errors.New("disk full")
		engine := NewEngine(store, &stubSource{schedule: groupSchedule}, nil)

		_, err := engine.Sync(ctx, ref, true)
		assert.Error(t, err)
	})
}
