package announcer

import (
	"context"
	"sync"
)

// Surface is the delivery adapter behind a live region. The engine owns all
// queueing and timing; a Surface only mirrors state into whatever medium
// exposes it to assistive technology (an in-memory fake, a server-rendered
// DOM fragment, an SSE-patched element).
//
// Implementations must tolerate an already-detached container: operations on
// a surface whose environment is gone degrade silently instead of returning
// an error. They must not call back into the engine.
type Surface interface {
	// ID returns the region ID the surface was created for.
	ID() string

	// Update replaces the exposed content. Implementations clear before
	// writing so that delivering the same string twice still registers as a
	// change with assistive technology.
	Update(ctx context.Context, content string) error

	// Clear wipes the exposed content.
	Clear(ctx context.Context) error

	// Apply re-applies presentation configuration to the surface.
	Apply(ctx context.Context, cfg RegionConfig) error

	// Destroy detaches the surface. Destroy is idempotent.
	Destroy(ctx context.Context) error
}

// SurfaceProvider creates surfaces for newly registered regions.
type SurfaceProvider interface {
	Create(cfg RegionConfig) (Surface, error)
}

// MemoryProvider creates in-memory surfaces. It is the default provider and
// the one to use for headless tests: surfaces record their content, config,
// and update count for inspection.
type MemoryProvider struct {
	mu       sync.RWMutex
	surfaces map[string]*MemorySurface
}

// NewMemoryProvider creates an empty in-memory surface provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{surfaces: make(map[string]*MemorySurface)}
}

// Create implements SurfaceProvider. Recreating an ID whose previous surface
// was destroyed is allowed; an ID with a live surface is an error.
func (p *MemoryProvider) Create(cfg RegionConfig) (Surface, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.surfaces[cfg.ID]; ok && !existing.Destroyed() {
		return nil, DuplicateSurfaceError{ID: cfg.ID}
	}

	s := &MemorySurface{id: cfg.ID, cfg: cfg}
	p.surfaces[cfg.ID] = s
	return s, nil
}

// Surface returns the surface created for id, if any.
func (p *MemoryProvider) Surface(id string) (*MemorySurface, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s, ok := p.surfaces[id]
	return s, ok
}

// MemorySurface is a headless Surface implementation backed by plain fields.
// All methods are safe for concurrent use.
type MemorySurface struct {
	mu        sync.RWMutex
	id        string
	cfg       RegionConfig
	content   string
	updates   int
	destroyed bool
}

func (s *MemorySurface) ID() string {
	return s.id
}

// Update implements the clear-before-write contract; for an in-memory
// surface the re-exposure is observable through the update counter.
func (s *MemorySurface) Update(ctx context.Context, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return nil
	}
	s.content = content
	s.updates++
	return nil
}

func (s *MemorySurface) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return nil
	}
	s.content = ""
	return nil
}

func (s *MemorySurface) Apply(ctx context.Context, cfg RegionConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return nil
	}
	s.cfg = cfg
	return nil
}

func (s *MemorySurface) Destroy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.destroyed = true
	s.content = ""
	return nil
}

// Content returns the currently exposed text.
func (s *MemorySurface) Content() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Updates returns how many times Update has been invoked. Debounce tests use
// it to prove a coalescing burst produced a single delivery.
func (s *MemorySurface) Updates() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updates
}

// Destroyed reports whether the surface has been detached.
func (s *MemorySurface) Destroyed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destroyed
}

// Config returns the most recently applied configuration.
func (s *MemorySurface) Config() RegionConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}
