// Package a11ykit is a headless accessibility toolkit for server-driven Go
// web applications, centered on ARIA live-region announcements.
//
// The core subsystem lives in pkg/announcer: an Engine that queues,
// prioritizes, debounces, delays, and retires announcements across a registry
// of live regions, fully testable against an in-memory surface. This root
// package supplies the delivery glue around it:
//
//   - LiveRegion and LiveRegionContainer render regions as templ components
//     with the exact ARIA attribute contract assistive technology expects
//     (role, aria-live, aria-atomic, aria-relevant, off-screen styling).
//   - StreamHub, NewStreamProvider, and Router push live-region updates to
//     connected browsers over DataStar server-sent events.
//   - OOBLiveRegion and OOBAnnouncement produce htmx out-of-band fragments
//     for apps on that stack, next to the usual htmx header helpers.
//   - FormAnnouncer, NavigationAnnouncer, and TableAnnouncer are ready-made
//     consumer patterns over the public engine API.
//
// A minimal server-driven setup:
//
//	hub := a11ykit.NewStreamHub()
//	defer hub.Close()
//	engine, _ := announcer.New(announcer.WithDefaultRegions(),
//	    announcer.WithSurfaceProvider(a11ykit.NewStreamProvider(hub)))
//	defer engine.Destroy()
//
//	r := chi.NewRouter()
//	r.Mount("/announcements", a11ykit.Router(engine, hub))
//
//	engine.Announce("Form saved successfully")
package a11ykit
