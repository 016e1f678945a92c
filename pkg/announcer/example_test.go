package announcer_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/a11ykit/pkg/announcer"
)

// Example_basic demonstrates creating an engine with the default region pair
// and delivering a polite announcement.
func Example_basic() {
	provider := announcer.NewMemoryProvider()
	engine, err := announcer.New(
		announcer.WithDefaultRegions(),
		announcer.WithSurfaceProvider(provider),
		announcer.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		panic(err)
	}
	defer engine.Destroy()

	receipt, err := engine.Announce("Form saved successfully")
	if err != nil {
		panic(err)
	}
	if err := receipt.Wait(context.Background()); err != nil {
		panic(err)
	}

	surface, _ := provider.Surface(announcer.DefaultPoliteRegionID)
	fmt.Println(surface.Content())
	// Output: Form saved successfully
}

// Example_debounce demonstrates how rapid announcements sharing an ID
// coalesce into a single delivery carrying the last message.
func Example_debounce() {
	provider := announcer.NewMemoryProvider()
	engine, err := announcer.New(
		announcer.WithDefaultRegions(),
		announcer.WithSurfaceProvider(provider),
		announcer.WithDebounceWindow(20*time.Millisecond),
		announcer.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		panic(err)
	}
	defer engine.Destroy()

	var last *announcer.Receipt
	for i := 1; i <= 5; i++ {
		last, err = engine.Announce(
			fmt.Sprintf("Uploading %d0%%", i*2),
			announcer.WithAnnouncementID("upload-progress"),
		)
		if err != nil {
			panic(err)
		}
	}
	if err := last.Wait(context.Background()); err != nil {
		panic(err)
	}

	surface, _ := provider.Surface(announcer.DefaultPoliteRegionID)
	fmt.Println(surface.Updates(), surface.Content())
	// Output: 1 Uploading 100%
}

// Example_events demonstrates subscribing to engine lifecycle notifications.
func Example_events() {
	engine, err := announcer.New(
		announcer.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		panic(err)
	}
	defer engine.Destroy()

	sub := engine.On(announcer.EventAnnounced, func(ev announcer.Event) {
		fmt.Printf("announced %q on %s\n", ev.Message, ev.SurfaceID)
	})
	defer engine.Off(sub)

	if _, err := engine.CreateRegion(announcer.Polite, announcer.WithRegionID("status")); err != nil {
		panic(err)
	}
	receipt, err := engine.Announce("3 results found")
	if err != nil {
		panic(err)
	}
	if err := receipt.Wait(context.Background()); err != nil {
		panic(err)
	}
	// Output: announced "3 results found" on status
}
