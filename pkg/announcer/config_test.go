package announcer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/a11ykit/pkg/announcer"
	"github.com/dmitrymomot/a11ykit/pkg/config"
)

func TestNewFromConfig(t *testing.T) {
	t.Run("defaults create the standard region pair", func(t *testing.T) {
		var cfg announcer.Config
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 100*time.Millisecond, cfg.DebounceWindow)
		assert.True(t, cfg.DefaultRegions)

		engine, err := announcer.NewFromConfig(cfg, announcer.WithLogger(discardLogger()))
		require.NoError(t, err)
		defer engine.Destroy()

		regions := engine.Regions()
		require.Len(t, regions, 2)
		assert.Equal(t, announcer.DefaultPoliteRegionID, regions[0].ID)
		assert.Equal(t, announcer.DefaultAssertiveRegionID, regions[1].ID)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("ANNOUNCER_DEBOUNCE_WINDOW", "25ms")
		t.Setenv("ANNOUNCER_DEFAULT_REGIONS", "false")

		var cfg announcer.Config
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 25*time.Millisecond, cfg.DebounceWindow)
		assert.False(t, cfg.DefaultRegions)

		engine, err := announcer.NewFromConfig(cfg, announcer.WithLogger(discardLogger()))
		require.NoError(t, err)
		defer engine.Destroy()

		assert.Empty(t, engine.Regions())
	})

	t.Run("explicit options win over config", func(t *testing.T) {
		engine, err := announcer.NewFromConfig(
			announcer.Config{DebounceWindow: time.Second},
			announcer.WithLogger(discardLogger()),
			announcer.WithDebounceWindow(10*time.Millisecond),
		)
		require.NoError(t, err)
		defer engine.Destroy()

		id, err := engine.CreateRegion(announcer.Polite)
		require.NoError(t, err)

		receipt, err := engine.Announce("fast", announcer.WithRegion(id), announcer.WithAnnouncementID("k"))
		require.NoError(t, err)
		require.NoError(t, waitSettled(t, receipt))
	})
}
