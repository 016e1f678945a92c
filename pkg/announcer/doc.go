// Package announcer queues, prioritizes, debounces, delays, and retires
// messages delivered to assistive-technology users through ARIA live regions.
//
// The package is deliberately headless: the Engine owns all queueing and
// timing decisions, while a small Surface adapter interface mirrors state
// into whatever medium actually exposes it (an in-memory fake for tests, a
// server-rendered fragment, an SSE-patched DOM element). No rendering
// environment is required to exercise any of the delivery semantics.
//
// # Architecture
//
// An Engine holds a registry of live regions. Each region owns a FIFO queue
// of pending announcements, a debounce map coalescing rapid duplicates, and
// at most one in-flight delivery. Delivery per region walks a fixed
// sequence: optional debounce wait, optional delay, surface update, receipt
// resolution, optional auto-clear, optional post-delivery hold. Across
// regions no ordering is implied.
//
// Every Announce call returns a Receipt, a completion handle that settles
// exactly once: resolved after the message reached the surface, rejected on
// cancellation. Cancellation is explicit and total — ClearRegion, Clear,
// RemoveRegion, and Destroy each stop the relevant timers and settle every
// affected receipt, so a pending receipt never hangs.
//
// # Usage
//
//	engine, err := announcer.New(announcer.WithDefaultRegions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer engine.Destroy()
//
//	receipt, err := engine.Announce("Form saved successfully")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := receipt.Wait(ctx); err != nil {
//		// cancelled or failed
//	}
//
// Rapid duplicate announcements coalesce when they share an explicit ID:
//
//	for _, p := range progress {
//		engine.Announce(p, announcer.WithAnnouncementID("upload-progress"))
//	}
//	// one delivery, carrying the last message; all receipts settle together
//
// # Error Handling
//
// Validation failures (ErrEmptyMessage, ErrInvalidPriority,
// DuplicateSurfaceError, TemplateNotFoundError, SurfaceNotFoundError) are
// returned synchronously and never retried. Cancellation outcomes
// (QueueClearedError, SurfaceRemovedError, ErrEngineDestroyed) reject
// pending receipts and are distinguishable from failures via IsCancellation.
package announcer
