package a11ykit_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/a11ykit"
	"github.com/dmitrymomot/a11ykit/pkg/announcer"
)

func TestHTMXRequestHelpers(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest("GET", "/", nil)
	assert.False(t, a11ykit.IsHTMX(plain))
	assert.False(t, a11ykit.IsHTMXBoosted(plain))

	htmx := httptest.NewRequest("GET", "/", nil)
	htmx.Header.Set(a11ykit.HXRequest, "true")
	htmx.Header.Set(a11ykit.HXBoosted, "true")
	htmx.Header.Set(a11ykit.HXTarget, "content")
	htmx.Header.Set(a11ykit.HXCurrentURL, "https://example.com/settings")

	assert.True(t, a11ykit.IsHTMX(htmx))
	assert.True(t, a11ykit.IsHTMXBoosted(htmx))
	assert.Equal(t, "content", a11ykit.GetHTMXTarget(htmx))
	assert.Equal(t, "https://example.com/settings", a11ykit.GetHTMXCurrentURL(htmx))
}

func TestHTMXResponseHeaderNames(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rec.Header().Set(a11ykit.HXRetarget, "#live-regions")
	rec.Header().Set(a11ykit.HXTriggerAfterSettle, "announced")

	assert.Equal(t, "#live-regions", rec.Header().Get("HX-Retarget"))
	assert.Equal(t, "announced", rec.Header().Get("HX-Trigger-After-Settle"))
}

func TestOOBLiveRegion(t *testing.T) {
	t.Parallel()

	fragment, err := a11ykit.OOBLiveRegion(announcer.Region{
		ID:       "status",
		Priority: announcer.Polite,
		Role:     announcer.RoleStatus,
		Atomic:   true,
		Hidden:   true,
		Content:  "Saved",
	})
	require.NoError(t, err)

	assert.Contains(t, fragment, `id="live-region-status"`)
	assert.Contains(t, fragment, `hx-swap-oob="outerHTML"`)
	assert.Contains(t, fragment, `aria-live="polite"`)
	assert.Contains(t, fragment, `>Saved</div>`)
}

func TestOOBAnnouncement(t *testing.T) {
	t.Parallel()

	fragment, err := a11ykit.OOBAnnouncement("status", "3 results found")
	require.NoError(t, err)
	assert.Equal(t, `<div id="live-region-status" hx-swap-oob="innerHTML">3 results found</div>`, fragment)

	_, err = a11ykit.OOBAnnouncement("", "orphan")
	assert.Error(t, err)
}
