package announcer

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrEmptyMessage is returned when an announcement carries no text
	ErrEmptyMessage = errors.New("announcement message cannot be empty")

	// ErrInvalidPriority is returned when priority is neither polite nor assertive
	ErrInvalidPriority = errors.New("priority must be polite or assertive")

	// ErrEngineDestroyed is returned by every mutating call after Destroy
	ErrEngineDestroyed = errors.New("AnnouncementEngine has been destroyed")

	// ErrEmptyTemplateName is returned when registering a template without a name
	ErrEmptyTemplateName = errors.New("template name cannot be empty")

	// ErrTemplateCatalogParse is returned when a YAML template catalog cannot be parsed
	ErrTemplateCatalogParse = errors.New("failed to parse template catalog")

	// ErrTemplateCatalogEmpty is returned when a template catalog contains no templates
	ErrTemplateCatalogEmpty = errors.New("no templates found in catalog")
)

// DuplicateSurfaceError is returned when a custom region ID is already taken.
// The registry is left untouched.
type DuplicateSurfaceError struct {
	ID string
}

func (e DuplicateSurfaceError) Error() string {
	return fmt.Sprintf("Live region with ID %s already exists", e.ID)
}

// SurfaceNotFoundError is returned when an operation targets a region that
// does not exist. A zero ID means no region could be resolved at all.
type SurfaceNotFoundError struct {
	ID string
}

func (e SurfaceNotFoundError) Error() string {
	if e.ID == "" {
		return "no live region available"
	}
	return fmt.Sprintf("live region %s not found", e.ID)
}

// TemplateNotFoundError is returned when a named region template is missing.
type TemplateNotFoundError struct {
	Name string
}

func (e TemplateNotFoundError) Error() string {
	return fmt.Sprintf("live region template %q not found", e.Name)
}

// QueueClearedError rejects receipts that were pending when their region's
// queue was cleared. It is an expected cancellation outcome, not a failure.
type QueueClearedError struct {
	SurfaceID string
}

func (e QueueClearedError) Error() string {
	return fmt.Sprintf("Queue cleared for region %s", e.SurfaceID)
}

// SurfaceRemovedError rejects receipts that were queued or delivering on a
// region at the moment it was removed.
type SurfaceRemovedError struct {
	SurfaceID string
}

func (e SurfaceRemovedError) Error() string {
	return fmt.Sprintf("Region was removed: %s", e.SurfaceID)
}

// IsCancellation reports whether err is a cancellation outcome (queue clear,
// region removal, engine destroy) rather than a validation or delivery
// failure. Callers use it to ignore rejections caused by their own cleanup.
func IsCancellation(err error) bool {
	var cleared QueueClearedError
	var removed SurfaceRemovedError
	return errors.As(err, &cleared) || errors.As(err, &removed) || errors.Is(err, ErrEngineDestroyed)
}
