package a11ykit

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/a11ykit/pkg/announcer"
)

// HTMX header constants
const (
	// Request headers
	HXRequest        = "HX-Request"
	HXBoosted        = "HX-Boosted"
	HXHistoryRestore = "HX-History-Restore-Request"
	HXTarget         = "HX-Target"
	HXTrigger        = "HX-Trigger"
	HXCurrentURL     = "HX-Current-URL"

	// Response headers
	HXRedirect           = "HX-Redirect"
	HXRefresh            = "HX-Refresh"
	HXPushURL            = "HX-Push-Url"
	HXReswap             = "HX-Reswap"
	HXRetarget           = "HX-Retarget"
	HXTriggerAfterSettle = "HX-Trigger-After-Settle"
)

// IsHTMX checks if the request is an HTMX request
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}

// IsHTMXBoosted checks if the request is an HTMX boosted request
func IsHTMXBoosted(r *http.Request) bool {
	return r.Header.Get(HXBoosted) == "true"
}

// GetHTMXTarget returns the id of the target element if it exists
func GetHTMXTarget(r *http.Request) string {
	return r.Header.Get(HXTarget)
}

// GetHTMXCurrentURL returns the current URL of the browser
func GetHTMXCurrentURL(r *http.Request) string {
	return r.Header.Get(HXCurrentURL)
}

// OOBLiveRegion renders a region as an htmx out-of-band fragment that swaps
// the whole element in place. Include it in any htmx response to refresh the
// region alongside the main swap target:
//
//	fragment, _ := a11ykit.OOBLiveRegion(region)
//	fmt.Fprint(w, mainContent, fragment)
func OOBLiveRegion(region announcer.Region) (string, error) {
	var sb strings.Builder
	if err := writeRegionElement(&sb, region, `hx-swap-oob="outerHTML"`); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// OOBAnnouncement renders a minimal out-of-band fragment replacing only the
// text of the identified region, leaving its attributes alone.
func OOBAnnouncement(regionID, message string) (string, error) {
	if regionID == "" {
		return "", fmt.Errorf("oob announcement: region id is required")
	}
	return fmt.Sprintf(`<div id="%s" hx-swap-oob="innerHTML">%s</div>`,
		templ.EscapeString(RegionElementID(regionID)),
		templ.EscapeString(message),
	), nil
}
