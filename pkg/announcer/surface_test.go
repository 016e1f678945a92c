package announcer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/a11ykit/pkg/announcer"
)

func TestMemoryProvider(t *testing.T) {
	t.Parallel()

	t.Run("creates inspectable surfaces", func(t *testing.T) {
		t.Parallel()

		provider := announcer.NewMemoryProvider()
		surface, err := provider.Create(announcer.RegionConfig{ID: "s1", Priority: announcer.Polite})
		require.NoError(t, err)
		assert.Equal(t, "s1", surface.ID())

		got, ok := provider.Surface("s1")
		require.True(t, ok)
		assert.Same(t, surface.(*announcer.MemorySurface), got)
	})

	t.Run("rejects a live duplicate id", func(t *testing.T) {
		t.Parallel()

		provider := announcer.NewMemoryProvider()
		_, err := provider.Create(announcer.RegionConfig{ID: "dup"})
		require.NoError(t, err)

		_, err = provider.Create(announcer.RegionConfig{ID: "dup"})
		var dupErr announcer.DuplicateSurfaceError
		assert.ErrorAs(t, err, &dupErr)
	})

	t.Run("allows recreating a destroyed id", func(t *testing.T) {
		t.Parallel()

		provider := announcer.NewMemoryProvider()
		surface, err := provider.Create(announcer.RegionConfig{ID: "gone"})
		require.NoError(t, err)
		require.NoError(t, surface.Destroy(context.Background()))

		_, err = provider.Create(announcer.RegionConfig{ID: "gone"})
		assert.NoError(t, err)
	})
}

func TestMemorySurface(t *testing.T) {
	t.Parallel()

	t.Run("tracks content and update count", func(t *testing.T) {
		t.Parallel()

		provider := announcer.NewMemoryProvider()
		s, err := provider.Create(announcer.RegionConfig{ID: "s"})
		require.NoError(t, err)
		surface := s.(*announcer.MemorySurface)

		ctx := context.Background()
		require.NoError(t, surface.Update(ctx, "one"))
		require.NoError(t, surface.Update(ctx, "one"))
		assert.Equal(t, "one", surface.Content())
		assert.Equal(t, 2, surface.Updates())

		require.NoError(t, surface.Clear(ctx))
		assert.Empty(t, surface.Content())
	})

	t.Run("operations on a destroyed surface degrade silently", func(t *testing.T) {
		t.Parallel()

		provider := announcer.NewMemoryProvider()
		s, err := provider.Create(announcer.RegionConfig{ID: "s"})
		require.NoError(t, err)
		surface := s.(*announcer.MemorySurface)

		ctx := context.Background()
		require.NoError(t, surface.Destroy(ctx))
		assert.True(t, surface.Destroyed())

		// The container is gone; mirroring calls are silent no-ops.
		assert.NoError(t, surface.Update(ctx, "late"))
		assert.NoError(t, surface.Clear(ctx))
		assert.NoError(t, surface.Apply(ctx, announcer.RegionConfig{Label: "late"}))
		assert.Empty(t, surface.Content())

		// Destroy is idempotent.
		assert.NoError(t, surface.Destroy(ctx))
	})

	t.Run("apply replaces the config", func(t *testing.T) {
		t.Parallel()

		provider := announcer.NewMemoryProvider()
		s, err := provider.Create(announcer.RegionConfig{ID: "s", Label: "before"})
		require.NoError(t, err)
		surface := s.(*announcer.MemorySurface)

		require.NoError(t, surface.Apply(context.Background(), announcer.RegionConfig{ID: "s", Label: "after"}))
		assert.Equal(t, "after", surface.Config().Label)
	})
}
