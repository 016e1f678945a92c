package a11ykit

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/a11ykit/pkg/announcer"
)

// DataStar detection constants
const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// Patch mode aliases for convenience
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // Morphs element (default)
	PatchInner   = datastar.ElementPatchModeInner   // Replace inner HTML
	PatchReplace = datastar.ElementPatchModeReplace // Replace entire element
	PatchRemove  = datastar.ElementPatchModeRemove  // Remove element
)

// IsDataStar checks if the request is a DataStar request.
// DataStar requests typically accept Server-Sent Events (SSE) and may include
// signals in the query parameter or request body.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// streamPatch is one DOM patch fanned out to every connected stream.
type streamPatch struct {
	component templ.Component
	opts      []datastar.PatchElementOption
}

// StreamHub fans live-region patches out to connected SSE streams. A hub
// with zero connected streams silently drops patches, which is exactly the
// degradation the engine expects when no browser is attached.
type StreamHub struct {
	mu      sync.RWMutex
	streams map[string]chan streamPatch
	buffer  int
	closed  bool
}

// NewStreamHub creates an empty hub. Each connected stream buffers up to 64
// pending patches; a stream that falls further behind loses the oldest
// update first, never blocking announcement delivery.
func NewStreamHub() *StreamHub {
	return &StreamHub{
		streams: make(map[string]chan streamPatch),
		buffer:  64,
	}
}

// Streams reports the number of connected SSE streams.
func (h *StreamHub) Streams() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.streams)
}

// Close disconnects every stream and rejects future subscriptions. Safe to
// call multiple times.
func (h *StreamHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.streams {
		close(ch)
		delete(h.streams, id)
	}
}

// subscribe registers a new stream. A closed hub returns an empty id and a
// nil channel.
func (h *StreamHub) subscribe() (string, <-chan streamPatch) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return "", nil
	}
	id := uuid.NewString()
	ch := make(chan streamPatch, h.buffer)
	h.streams[id] = ch
	return id, ch
}

func (h *StreamHub) unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.streams[id]; ok {
		close(ch)
		delete(h.streams, id)
	}
}

// broadcast fans a patch out without blocking: a stream whose buffer is full
// drops its oldest patch, since only the newest region state matters.
func (h *StreamHub) broadcast(p streamPatch) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}
	for _, ch := range h.streams {
		select {
		case ch <- p:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- p:
			default:
			}
		}
	}
}

// streamProvider creates StreamSurfaces bound to one hub.
type streamProvider struct {
	hub *StreamHub
}

// NewStreamProvider returns a SurfaceProvider whose surfaces patch their
// region element on every stream connected to hub. Wire it into the engine:
//
//	engine, err := announcer.New(
//		announcer.WithSurfaceProvider(a11ykit.NewStreamProvider(hub)),
//	)
func NewStreamProvider(hub *StreamHub) announcer.SurfaceProvider {
	return &streamProvider{hub: hub}
}

func (p *streamProvider) Create(cfg announcer.RegionConfig) (announcer.Surface, error) {
	s := &StreamSurface{hub: p.hub, cfg: cfg}
	s.hub.broadcast(streamPatch{
		component: LiveRegion(s.view()),
		opts:      appendToContainer(),
	})
	return s, nil
}

// StreamSurface mirrors one live region into every SSE stream of its hub.
// It keeps a local copy of the region's config and content so each patch
// carries the full element.
type StreamSurface struct {
	hub *StreamHub

	mu        sync.Mutex
	cfg       announcer.RegionConfig
	content   string
	destroyed bool
}

// appendToContainer targets the wrapper so a freshly created region's
// element lands inside it; later patches morph by element id.
func appendToContainer() []datastar.PatchElementOption {
	return []datastar.PatchElementOption{
		datastar.WithSelector("#" + LiveRegionContainerID),
		datastar.WithMode(datastar.ElementPatchModeAppend),
	}
}

func (s *StreamSurface) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.ID
}

// view builds the region snapshot a patch renders. Caller holds s.mu.
func (s *StreamSurface) view() announcer.Region {
	return announcer.Region{
		ID:       s.cfg.ID,
		Priority: s.cfg.Priority,
		Role:     s.cfg.Role,
		Label:    s.cfg.Label,
		Atomic:   s.cfg.Atomic != nil && *s.cfg.Atomic,
		Relevant: s.cfg.Relevant,
		Hidden:   s.cfg.Hidden != nil && *s.cfg.Hidden,
		Lang:     s.cfg.Lang,
		Content:  s.content,
	}
}

// Update clears the element before writing the new content. Without the
// clearing patch, delivering the same message twice produces byte-identical
// patches and the DOM never mutates, so assistive technology stays silent on
// the repeat.
func (s *StreamSurface) Update(ctx context.Context, content string) error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}
	s.content = ""
	clearing := streamPatch{component: LiveRegion(s.view())}
	s.content = content
	patch := streamPatch{component: LiveRegion(s.view())}
	s.mu.Unlock()

	if content != "" {
		s.hub.broadcast(clearing)
	}
	s.hub.broadcast(patch)
	return nil
}

func (s *StreamSurface) Clear(ctx context.Context) error {
	return s.Update(ctx, "")
}

func (s *StreamSurface) Apply(ctx context.Context, cfg announcer.RegionConfig) error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}
	s.cfg = cfg
	patch := streamPatch{component: LiveRegion(s.view())}
	s.mu.Unlock()

	s.hub.broadcast(patch)
	return nil
}

func (s *StreamSurface) Destroy(ctx context.Context) error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}
	s.destroyed = true
	s.content = ""
	patch := streamPatch{
		component: LiveRegion(s.view()),
		opts:      []datastar.PatchElementOption{datastar.WithMode(PatchRemove)},
	}
	s.mu.Unlock()

	s.hub.broadcast(patch)
	return nil
}

// Router mounts the live-region delivery endpoints:
//
//	GET /      initial render of every region (the container element)
//	GET /live  SSE stream patching region elements as announcements land
func Router(engine *announcer.Engine, hub *StreamHub) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = LiveRegionContainer(engine.Regions()).Render(req.Context(), w)
	})

	r.Get("/live", func(w http.ResponseWriter, req *http.Request) {
		sse := datastar.NewSSE(w, req)

		id, patches := hub.subscribe()
		if id == "" {
			return
		}
		defer hub.unsubscribe(id)

		// Replay current state so a late-joining stream starts in sync.
		// Elements already exist from the initial render, so a plain morph
		// by element id is enough.
		for _, region := range engine.Regions() {
			if err := sse.PatchElementTempl(LiveRegion(region)); err != nil {
				return
			}
		}

		for {
			select {
			case <-req.Context().Done():
				return
			case p, ok := <-patches:
				if !ok {
					return
				}
				if err := sse.PatchElementTempl(p.component, p.opts...); err != nil {
					return
				}
			}
		}
	})

	return r
}
