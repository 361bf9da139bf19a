package loader_test

import (
	"errors"
	"testing"

	"media-library/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestLoadAll(t *testing.T) {
	t.Run("LoadsEnabledSkipsDisabled", func(t *testing.T) {
		on := &stubFeature{name: "on", enabled: true}
		off := &stubFeature{name: "off", enabled: false}

		mgr := loader.NewManager(zap.NewNop())
		mgr.Register(on)
		mgr.Register(off)

		err := mgr.LoadAll(fiber.New())
		require.NoError(t, err)
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
	})

	t.Run("PropagatesLoadError", func(t *testing.T) {
		broken := &stubFeature{name: "broken", enabled: true, loadErr: errors.New("boom")}

		mgr := loader.NewManager(zap.NewNop())
		mgr.Register(broken)

		err := mgr.LoadAll(fiber.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})
}
