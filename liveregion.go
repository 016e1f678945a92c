package a11ykit

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/a11ykit/pkg/announcer"
)

// LiveRegionContainerID is the DOM id of the wrapper element rendered by
// LiveRegionContainer.
const LiveRegionContainerID = "live-regions"

// VisuallyHiddenStyle is the off-screen convention applied to hidden live
// regions: the element stays in the accessibility tree but never affects
// layout or paints a pixel.
const VisuallyHiddenStyle = "position:absolute;width:1px;height:1px;padding:0;margin:-1px;overflow:hidden;clip:rect(0,0,0,0);white-space:nowrap;border:0"

// RegionElementID returns the DOM id used for the region's element.
func RegionElementID(regionID string) string {
	return "live-region-" + regionID
}

// LiveRegion renders one live region as a templ component, reproducing the
// ARIA attribute contract exactly: role "status" with aria-live "polite" for
// polite regions, role "alert" with aria-live "assertive" for assertive
// ones, aria-atomic mirroring the atomic config, and the off-screen style
// when the region is hidden.
func LiveRegion(region announcer.Region) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeRegionElement(w, region, "")
	})
}

// LiveRegionContainer renders every region inside a single wrapper element,
// suitable as the initial page markup that SSE patches later morph.
func LiveRegionContainer(regions []announcer.Region) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s">`, LiveRegionContainerID); err != nil {
			return err
		}
		for _, region := range regions {
			if err := writeRegionElement(w, region, ""); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// NormalizeLang parses a BCP 47 language tag and returns its canonical form.
func NormalizeLang(tag string) (string, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("invalid language tag %q: %w", tag, err)
	}
	return parsed.String(), nil
}

// writeRegionElement writes the region's element. extraAttrs is injected
// verbatim after the ARIA attributes; callers own its escaping.
func writeRegionElement(w io.Writer, region announcer.Region, extraAttrs string) error {
	ariaLive := "polite"
	if region.Priority == announcer.Assertive {
		ariaLive = "assertive"
	}

	if _, err := fmt.Fprintf(w, `<div id="%s" role="%s" aria-live="%s" aria-atomic="%t"`,
		templ.EscapeString(RegionElementID(region.ID)),
		templ.EscapeString(region.Role),
		ariaLive,
		region.Atomic,
	); err != nil {
		return err
	}

	if region.Relevant != "" {
		if _, err := fmt.Fprintf(w, ` aria-relevant="%s"`, templ.EscapeString(region.Relevant)); err != nil {
			return err
		}
	}
	if region.Label != "" {
		if _, err := fmt.Fprintf(w, ` aria-label="%s"`, templ.EscapeString(region.Label)); err != nil {
			return err
		}
	}
	if region.Lang != "" {
		// Invalid tags are dropped rather than rendered: a malformed lang
		// attribute makes screen readers mispronounce the whole region.
		if lang, err := NormalizeLang(region.Lang); err == nil {
			if _, err := fmt.Fprintf(w, ` lang="%s"`, templ.EscapeString(lang)); err != nil {
				return err
			}
		}
	}
	if region.Hidden {
		if _, err := fmt.Fprintf(w, ` style="%s"`, VisuallyHiddenStyle); err != nil {
			return err
		}
	}
	if extraAttrs != "" {
		if _, err := fmt.Fprintf(w, ` %s`, extraAttrs); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, `>%s</div>`, templ.EscapeString(region.Content))
	return err
}
