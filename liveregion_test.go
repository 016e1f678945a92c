package a11ykit_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/a11ykit"
	"github.com/dmitrymomot/a11ykit/pkg/announcer"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestLiveRegion(t *testing.T) {
	t.Parallel()

	t.Run("polite attribute contract", func(t *testing.T) {
		t.Parallel()

		html := render(t, a11ykit.LiveRegion(announcer.Region{
			ID:       "main",
			Priority: announcer.Polite,
			Role:     announcer.RoleStatus,
			Atomic:   true,
			Hidden:   true,
			Content:  "Form saved successfully",
		}))

		assert.Contains(t, html, `id="live-region-main"`)
		assert.Contains(t, html, `role="status"`)
		assert.Contains(t, html, `aria-live="polite"`)
		assert.Contains(t, html, `aria-atomic="true"`)
		assert.Contains(t, html, `style="`+a11ykit.VisuallyHiddenStyle+`"`)
		assert.Contains(t, html, `>Form saved successfully</div>`)
	})

	t.Run("assertive attribute contract", func(t *testing.T) {
		t.Parallel()

		html := render(t, a11ykit.LiveRegion(announcer.Region{
			ID:       "errors",
			Priority: announcer.Assertive,
			Role:     announcer.RoleAlert,
			Atomic:   true,
			Content:  "Error: Invalid input",
		}))

		assert.Contains(t, html, `role="alert"`)
		assert.Contains(t, html, `aria-live="assertive"`)
		assert.NotContains(t, html, `style=`, "visible region carries no off-screen style")
	})

	t.Run("optional attributes", func(t *testing.T) {
		t.Parallel()

		html := render(t, a11ykit.LiveRegion(announcer.Region{
			ID:       "rich",
			Priority: announcer.Polite,
			Role:     announcer.RoleStatus,
			Label:    "Status updates",
			Relevant: "additions text",
			Lang:     "en-GB",
			Atomic:   false,
		}))

		assert.Contains(t, html, `aria-label="Status updates"`)
		assert.Contains(t, html, `aria-relevant="additions text"`)
		assert.Contains(t, html, `lang="en-GB"`)
		assert.Contains(t, html, `aria-atomic="false"`)
	})

	t.Run("content is escaped", func(t *testing.T) {
		t.Parallel()

		html := render(t, a11ykit.LiveRegion(announcer.Region{
			ID:      "x",
			Role:    announcer.RoleStatus,
			Content: `<script>alert("x")</script>`,
		}))

		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})

	t.Run("invalid lang is dropped", func(t *testing.T) {
		t.Parallel()

		html := render(t, a11ykit.LiveRegion(announcer.Region{
			ID:   "x",
			Role: announcer.RoleStatus,
			Lang: "not a lang tag!!",
		}))

		assert.NotContains(t, html, `lang=`)
	})
}

func TestLiveRegionContainer(t *testing.T) {
	t.Parallel()

	html := render(t, a11ykit.LiveRegionContainer([]announcer.Region{
		{ID: "a", Priority: announcer.Polite, Role: announcer.RoleStatus},
		{ID: "b", Priority: announcer.Assertive, Role: announcer.RoleAlert},
	}))

	assert.Contains(t, html, `<div id="live-regions">`)
	assert.Contains(t, html, `id="live-region-a"`)
	assert.Contains(t, html, `id="live-region-b"`)
	assert.True(t, strings.HasSuffix(html, "</div>"))
}

func TestNormalizeLang(t *testing.T) {
	t.Parallel()

	lang, err := a11ykit.NormalizeLang("en-gb")
	require.NoError(t, err)
	assert.Equal(t, "en-GB", lang)

	_, err = a11ykit.NormalizeLang("not a lang tag!!")
	assert.Error(t, err)
}
