package announcer

import (
	"time"
)

// Priority selects how assistive technology schedules an announcement.
type Priority string

const (
	// Polite announcements wait for the user's current activity to pause.
	Polite Priority = "polite"
	// Assertive announcements interrupt the user immediately.
	Assertive Priority = "assertive"
)

// Valid checks if the priority is one of the two recognized values.
func (p Priority) Valid() bool {
	return p == Polite || p == Assertive
}

// State represents the delivery state of a live region.
type State string

const (
	StateIdle       State = "idle"
	StateDelivering State = "delivering"
	StatePaused     State = "paused"
)

// Default ARIA roles applied per priority when none is configured.
const (
	RoleStatus = "status"
	RoleAlert  = "alert"
)

// Announcement is an immutable delivery request. It is created by Announce,
// owned by its region's queue until dequeued, and discarded once its receipt
// settles.
type Announcement struct {
	// ID is caller-supplied via WithAnnouncementID or generated. An explicit
	// ID doubles as the debounce key: rapid announcements sharing it coalesce.
	ID string

	// Message is the text exposed to assistive technology. Never empty.
	Message string

	// Priority the announcement was resolved to.
	Priority Priority

	// Delay to wait before delivery.
	Delay time.Duration

	// ClearAfter wipes the delivered content after this duration, unless
	// Persist is set. Zero disables the wipe.
	ClearAfter time.Duration

	// Persist suppresses auto-clearing entirely.
	Persist bool

	// CreatedAt orders announcements within a coalescing burst.
	CreatedAt time.Time
}

// RegionConfig describes a live region to create. Zero values fall back to
// the ARIA defaults: polite priority, role derived from priority ("status"
// for polite, "alert" for assertive), atomic and hidden both true.
//
// Atomic and Hidden are pointers so template catalogs can distinguish an
// explicit false from an omitted value. Use Bool for literals.
type RegionConfig struct {
	ID       string   `yaml:"id,omitempty"`
	Priority Priority `yaml:"priority,omitempty"`
	Role     string   `yaml:"role,omitempty"`
	Label    string   `yaml:"label,omitempty"`
	Atomic   *bool    `yaml:"atomic,omitempty"`
	Relevant string   `yaml:"relevant,omitempty"`
	Hidden   *bool    `yaml:"hidden,omitempty"`
	Lang     string   `yaml:"lang,omitempty"`
}

// Bool returns a pointer to b, for RegionConfig literals.
func Bool(b bool) *bool {
	return &b
}

// withDefaults resolves zero values to the documented ARIA defaults.
func (c RegionConfig) withDefaults() RegionConfig {
	if c.Priority == "" {
		c.Priority = Polite
	}
	if c.Role == "" {
		if c.Priority == Assertive {
			c.Role = RoleAlert
		} else {
			c.Role = RoleStatus
		}
	}
	if c.Atomic == nil {
		c.Atomic = Bool(true)
	}
	if c.Hidden == nil {
		c.Hidden = Bool(true)
	}
	return c
}

// Region is a read-only snapshot of a live region.
type Region struct {
	ID        string
	Priority  Priority
	Role      string
	Label     string
	Atomic    bool
	Relevant  string
	Hidden    bool
	Lang      string
	State     State
	Content   string
	CreatedAt time.Time
}
