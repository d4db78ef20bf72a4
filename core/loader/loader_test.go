package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("Skips Disabled", func(t *testing.T) {
		m := NewManager()
		on := &stubFeature{name: "on", enabled: true}
		off := &stubFeature{name: "off", enabled: false}
		m.Register(on)
		m.Register(off)

		assert.NoError(t, m.LoadAll(app))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
	})

	t.Run("Propagates Load Error", func(t *testing.T) {
		m := NewManager()
		m.Register(&stubFeature{name: "broken", enabled: true, loadErr: errors.New("boom")})

		err := m.LoadAll(app)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})
}
