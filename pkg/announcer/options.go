package announcer

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring an Engine.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	provider       SurfaceProvider
	debounceWindow time.Duration
	deliveryHold   time.Duration
	defaultRegions bool
}

// WithLogger sets the logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSurfaceProvider sets the provider used to create surfaces for new
// regions. The default is an in-memory provider.
func WithSurfaceProvider(provider SurfaceProvider) Option {
	return func(o *options) {
		if provider != nil {
			o.provider = provider
		}
	}
}

// WithDebounceWindow sets the quiet period applied to announcements that
// share an explicit ID before the most recent one is enqueued.
func WithDebounceWindow(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounceWindow = d
		}
	}
}

// WithDeliveryHold sets a pause after each delivery during which the region's
// queue does not advance, giving assistive technology time to finish speaking
// before the next message replaces the content.
func WithDeliveryHold(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.deliveryHold = d
		}
	}
}

// WithDefaultRegions creates the customary region pair at construction: a
// polite region with ID "status" and an assertive one with ID "alert".
func WithDefaultRegions() Option {
	return func(o *options) {
		o.defaultRegions = true
	}
}

// RegionOption customizes a region created via CreateRegion.
type RegionOption func(*RegionConfig)

// WithRegionID sets a custom region ID instead of a generated one.
// Creating a second region with the same ID fails.
func WithRegionID(id string) RegionOption {
	return func(c *RegionConfig) {
		c.ID = id
	}
}

// WithRole overrides the ARIA role derived from the region's priority.
func WithRole(role string) RegionOption {
	return func(c *RegionConfig) {
		c.Role = role
	}
}

// WithLabel sets the region's accessible label.
func WithLabel(label string) RegionOption {
	return func(c *RegionConfig) {
		c.Label = label
	}
}

// WithAtomic controls whether assistive technology announces the whole
// region content on change (true, the default) or only the delta.
func WithAtomic(atomic bool) RegionOption {
	return func(c *RegionConfig) {
		c.Atomic = Bool(atomic)
	}
}

// WithRelevant sets the aria-relevant token list (e.g. "additions text").
func WithRelevant(relevant string) RegionOption {
	return func(c *RegionConfig) {
		c.Relevant = relevant
	}
}

// WithHidden controls visual suppression. Regions are hidden off-screen by
// default; pass false for a region that should stay visible.
func WithHidden(hidden bool) RegionOption {
	return func(c *RegionConfig) {
		c.Hidden = Bool(hidden)
	}
}

// WithLang sets the BCP 47 language tag of the region's content.
func WithLang(lang string) RegionOption {
	return func(c *RegionConfig) {
		c.Lang = lang
	}
}

// AnnounceOption customizes a single announcement.
type AnnounceOption func(*announceOptions)

type announceOptions struct {
	id         string
	region     string
	priority   Priority
	delay      time.Duration
	clearAfter time.Duration
	persist    bool
}

// WithAnnouncementID sets an explicit announcement ID, which doubles as the
// debounce key: while a debounce timer for the key is pending on the target
// region, newer announcements sharing it replace the pending one and all
// their receipts settle together with the single delivered outcome.
func WithAnnouncementID(id string) AnnounceOption {
	return func(o *announceOptions) {
		o.id = id
	}
}

// WithRegion targets an explicit region instead of priority-based resolution.
func WithRegion(id string) AnnounceOption {
	return func(o *announceOptions) {
		o.region = id
	}
}

// WithPriority sets the announcement priority and steers target resolution
// toward the first region with a matching priority.
func WithPriority(p Priority) AnnounceOption {
	return func(o *announceOptions) {
		o.priority = p
	}
}

// WithDelay postpones delivery. For debounced announcements the delay doubles
// as the debounce window.
func WithDelay(d time.Duration) AnnounceOption {
	return func(o *announceOptions) {
		if d > 0 {
			o.delay = d
		}
	}
}

// WithClearAfter wipes the delivered content after d, unless WithPersist is
// also supplied.
func WithClearAfter(d time.Duration) AnnounceOption {
	return func(o *announceOptions) {
		if d > 0 {
			o.clearAfter = d
		}
	}
}

// WithPersist keeps the delivered content until the next announcement or an
// explicit clear, suppressing any WithClearAfter wipe.
func WithPersist() AnnounceOption {
	return func(o *announceOptions) {
		o.persist = true
	}
}
