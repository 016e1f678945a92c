package announcer

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/a11ykit/pkg/emitter"
	"github.com/dmitrymomot/a11ykit/pkg/logger"
)

// DefaultDebounceWindow is the quiet period applied to announcements sharing
// an explicit ID when no per-announcement delay is given.
const DefaultDebounceWindow = 100 * time.Millisecond

// IDs of the regions created by WithDefaultRegions.
const (
	DefaultPoliteRegionID    = "status"
	DefaultAssertiveRegionID = "alert"
)

// Engine queues, debounces, delivers, and retires announcements across a
// registry of live regions. Construct instances explicitly with New — there
// is no package-level singleton, so independent engines (one per test, one
// per tenant) never share state.
//
// All methods are safe for concurrent use. Per region, announcements deliver
// strictly in FIFO order with at most one delivering at a time; across
// regions no ordering is implied.
type Engine struct {
	mu sync.Mutex

	logger   *slog.Logger
	provider SurfaceProvider

	regions   map[string]*region
	order     []string // region IDs in creation order
	templates map[string]RegionConfig

	emitters      map[EventType]*emitter.Emitter[Event]
	pendingEvents []Event

	debounceWindow time.Duration
	deliveryHold   time.Duration

	paused    bool
	destroyed bool
}

// region is the engine-side state of one live region.
type region struct {
	id        string
	cfg       RegionConfig
	surface   Surface
	createdAt time.Time

	queue      []*item          // FIFO of announcements waiting to deliver
	debouncing map[string]*item // debounce key -> pending coalescing entry
	delivering *item            // at most one per region

	clearTimer *time.Timer // pending auto-clear wipe
	wipeSeq    uint64      // invalidates stale wipe callbacks

	content string
	paused  bool
}

type itemPhase int

const (
	phaseDebouncing itemPhase = iota
	phaseQueued
	phaseDelivering
	phaseSettled
)

// item is one pending announcement. Its timer field holds whichever timer is
// active for the current phase: the debounce timer, the delivery delay, or
// the post-delivery hold. seq invalidates callbacks of timers that were
// stopped while already firing.
type item struct {
	ann         Announcement
	receipt     *Receipt
	key         string // debounce key; empty when the announcement never coalesces
	phase       itemPhase
	timer       *time.Timer
	seq         uint64
	viaDebounce bool // delay was consumed by the debounce wait
}

// New creates an announcement engine. With no options it logs through
// slog.Default, creates in-memory surfaces, and starts with an empty
// registry.
func New(opts ...Option) (*Engine, error) {
	o := &options{
		logger:         slog.Default(),
		provider:       NewMemoryProvider(),
		debounceWindow: DefaultDebounceWindow,
	}
	for _, opt := range opts {
		opt(o)
	}

	e := &Engine{
		logger:         o.logger,
		provider:       o.provider,
		regions:        make(map[string]*region),
		templates:      make(map[string]RegionConfig),
		debounceWindow: o.debounceWindow,
		deliveryHold:   o.deliveryHold,
		emitters: map[EventType]*emitter.Emitter[Event]{
			EventAnnounced:     emitter.New[Event](),
			EventCleared:       emitter.New[Event](),
			EventRegionCreated: emitter.New[Event](),
			EventRegionRemoved: emitter.New[Event](),
		},
	}

	if o.defaultRegions {
		if _, err := e.CreateRegion(Polite, WithRegionID(DefaultPoliteRegionID), WithLabel("Status messages")); err != nil {
			return nil, err
		}
		if _, err := e.CreateRegion(Assertive, WithRegionID(DefaultAssertiveRegionID), WithLabel("Alerts")); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// CreateRegion registers a new live region with the given default delivery
// priority and returns its ID. The ID is generated unless WithRegionID is
// supplied; a custom ID that is already taken fails with
// DuplicateSurfaceError and leaves the registry untouched.
func (e *Engine) CreateRegion(priority Priority, opts ...RegionOption) (string, error) {
	if !priority.Valid() {
		return "", ErrInvalidPriority
	}

	cfg := RegionConfig{Priority: priority}
	for _, opt := range opts {
		opt(&cfg)
	}
	return e.createRegion(cfg)
}

// CreateRegionWithConfig registers a new live region from an inline config.
func (e *Engine) CreateRegionWithConfig(cfg RegionConfig) (string, error) {
	return e.createRegion(cfg)
}

func (e *Engine) createRegion(cfg RegionConfig) (string, error) {
	defer e.flushEvents()
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return "", ErrEngineDestroyed
	}

	cfg = cfg.withDefaults()
	if !cfg.Priority.Valid() {
		return "", ErrInvalidPriority
	}

	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	} else if _, exists := e.regions[cfg.ID]; exists {
		return "", DuplicateSurfaceError{ID: cfg.ID}
	}

	surface, err := e.provider.Create(cfg)
	if err != nil {
		return "", fmt.Errorf("create surface for region %s: %w", cfg.ID, err)
	}

	r := &region{
		id:         cfg.ID,
		cfg:        cfg,
		surface:    surface,
		createdAt:  time.Now(),
		debouncing: make(map[string]*item),
	}
	e.regions[cfg.ID] = r
	e.order = append(e.order, cfg.ID)

	e.logger.Debug("live region created",
		logger.SurfaceID(cfg.ID),
		logger.Priority(cfg.Priority))
	e.queueEvent(Event{Type: EventRegionCreated, SurfaceID: cfg.ID, Priority: cfg.Priority, Timestamp: time.Now()})

	return cfg.ID, nil
}

// RegisterTemplate stores a named region config for later instantiation via
// CreateRegionFromTemplate.
func (e *Engine) RegisterTemplate(name string, cfg RegionConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrEngineDestroyed
	}
	if name == "" {
		return ErrEmptyTemplateName
	}
	if cfg.Priority != "" && !cfg.Priority.Valid() {
		return ErrInvalidPriority
	}

	e.templates[name] = cfg
	return nil
}

// CreateRegionFromTemplate instantiates a previously registered template. An
// unknown name fails with TemplateNotFoundError; otherwise it behaves exactly
// like CreateRegion with the template's config.
func (e *Engine) CreateRegionFromTemplate(name string) (string, error) {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return "", ErrEngineDestroyed
	}
	cfg, ok := e.templates[name]
	e.mu.Unlock()

	if !ok {
		return "", TemplateNotFoundError{Name: name}
	}
	return e.createRegion(cfg)
}

// Announce queues message for delivery and returns its completion receipt.
//
// The target region is resolved in order: the explicit WithRegion ID if
// given (unknown IDs fail with SurfaceNotFoundError); else the first-created
// region whose priority matches WithPriority; else the first-created polite
// region; else the first-created region of any priority. With no regions at
// all, Announce fails with SurfaceNotFoundError.
//
// Validation happens before any state changes: an empty message fails with
// ErrEmptyMessage and an unrecognized priority with ErrInvalidPriority.
// While the engine or the target region is paused the announcement is queued
// but not delivered until the corresponding resume.
func (e *Engine) Announce(message string, opts ...AnnounceOption) (*Receipt, error) {
	defer e.flushEvents()
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return nil, ErrEngineDestroyed
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}

	var o announceOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.priority != "" && !o.priority.Valid() {
		return nil, ErrInvalidPriority
	}

	r, err := e.resolveTarget(o)
	if err != nil {
		return nil, err
	}

	priority := o.priority
	if priority == "" {
		priority = r.cfg.Priority
	}

	ann := Announcement{
		ID:         o.id,
		Message:    message,
		Priority:   priority,
		Delay:      o.delay,
		ClearAfter: o.clearAfter,
		Persist:    o.persist,
		CreatedAt:  time.Now(),
	}
	if ann.ID == "" {
		ann.ID = uuid.NewString()
	}

	// An explicit ID coalesces: the latest request replaces the pending one
	// and every caller in the burst shares the winner's receipt.
	if o.id != "" {
		if prev, ok := r.debouncing[o.id]; ok {
			prev.timer.Stop()
			prev.ann = ann
			e.armDebounce(r, prev)
			e.logger.Debug("announcement coalesced",
				logger.SurfaceID(r.id),
				logger.AnnouncementID(o.id))
			return prev.receipt, nil
		}

		it := &item{ann: ann, receipt: newReceipt(), key: o.id, phase: phaseDebouncing}
		r.debouncing[o.id] = it
		e.armDebounce(r, it)
		e.logger.Debug("announcement debouncing",
			logger.SurfaceID(r.id),
			logger.AnnouncementID(o.id))
		return it.receipt, nil
	}

	it := &item{ann: ann, receipt: newReceipt(), phase: phaseQueued}
	r.queue = append(r.queue, it)
	e.logger.Debug("announcement queued",
		logger.SurfaceID(r.id),
		logger.AnnouncementID(ann.ID))
	e.kick(r)

	return it.receipt, nil
}

// resolveTarget picks the region an announcement is delivered to.
// Caller holds e.mu.
func (e *Engine) resolveTarget(o announceOptions) (*region, error) {
	if o.region != "" {
		r, ok := e.regions[o.region]
		if !ok {
			return nil, SurfaceNotFoundError{ID: o.region}
		}
		return r, nil
	}

	if o.priority != "" {
		for _, id := range e.order {
			if r := e.regions[id]; r.cfg.Priority == o.priority {
				return r, nil
			}
		}
	}

	// The first-created polite region is the default target; fall back to
	// the oldest region when no polite one exists.
	for _, id := range e.order {
		if r := e.regions[id]; r.cfg.Priority == Polite {
			return r, nil
		}
	}
	if len(e.order) > 0 {
		return e.regions[e.order[0]], nil
	}
	return nil, SurfaceNotFoundError{}
}

// armDebounce (re)schedules the debounce timer for it. The announcement's
// delay doubles as the debounce window when set, so debounced items skip the
// delay phase at delivery time. Caller holds e.mu.
func (e *Engine) armDebounce(r *region, it *item) {
	wait := e.debounceWindow
	if it.ann.Delay > 0 {
		wait = it.ann.Delay
	}

	regionID := r.id
	it.seq++
	seq := it.seq
	it.timer = time.AfterFunc(wait, func() {
		e.debounceElapsed(regionID, it, seq)
	})
}

// debounceElapsed moves a coalesced announcement from the debounce map to
// the FIFO once its quiet period passes without a newer request.
func (e *Engine) debounceElapsed(regionID string, it *item, seq uint64) {
	defer e.flushEvents()
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.regions[regionID]
	if !ok || it.phase != phaseDebouncing || it.seq != seq {
		return
	}

	delete(r.debouncing, it.key)
	it.phase = phaseQueued
	it.viaDebounce = true
	r.queue = append(r.queue, it)
	e.kick(r)
}

// kick advances the region's delivery loop: if nothing blocks it, the head
// of the FIFO enters the delivering slot. Caller holds e.mu.
func (e *Engine) kick(r *region) {
	if e.destroyed || e.paused || r.paused || r.delivering != nil || len(r.queue) == 0 {
		return
	}

	it := r.queue[0]
	r.queue = r.queue[1:]
	r.delivering = it
	it.phase = phaseDelivering

	if it.ann.Delay > 0 && !it.viaDebounce {
		regionID := r.id
		it.seq++
		seq := it.seq
		it.timer = time.AfterFunc(it.ann.Delay, func() {
			e.delayElapsed(regionID, it, seq)
		})
		return
	}

	e.deliver(r, it)
}

func (e *Engine) delayElapsed(regionID string, it *item, seq uint64) {
	defer e.flushEvents()
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.regions[regionID]
	if !ok || it.phase != phaseDelivering || it.seq != seq || r.delivering != it {
		return
	}
	e.deliver(r, it)
}

// deliver pushes the announcement to the surface, settles its receipt, and
// schedules the auto-clear wipe and post-delivery hold. Caller holds e.mu.
func (e *Engine) deliver(r *region, it *item) {
	e.cancelWipe(r)

	if err := r.surface.Update(context.Background(), it.ann.Message); err != nil {
		e.logger.Warn("surface update failed",
			logger.SurfaceID(r.id),
			logger.AnnouncementID(it.ann.ID),
			logger.Error(err))
		it.phase = phaseSettled
		r.delivering = nil
		it.receipt.settle(fmt.Errorf("update region %s: %w", r.id, err))
		e.kick(r)
		return
	}

	r.content = it.ann.Message
	it.phase = phaseSettled
	it.receipt.settle(nil)
	e.queueEvent(Event{Type: EventAnnounced, SurfaceID: r.id, Message: it.ann.Message, Timestamp: time.Now()})
	e.logger.Debug("announcement delivered",
		logger.SurfaceID(r.id),
		logger.AnnouncementID(it.ann.ID),
		logger.Priority(it.ann.Priority))

	if it.ann.ClearAfter > 0 && !it.ann.Persist {
		e.scheduleWipe(r, it.ann.ClearAfter)
	}

	// The hold keeps the delivering slot occupied so the next message does
	// not replace this one before assistive technology finished with it.
	if e.deliveryHold > 0 {
		regionID := r.id
		it.seq++
		seq := it.seq
		it.timer = time.AfterFunc(e.deliveryHold, func() {
			e.holdElapsed(regionID, it, seq)
		})
		return
	}

	r.delivering = nil
	e.kick(r)
}

func (e *Engine) holdElapsed(regionID string, it *item, seq uint64) {
	defer e.flushEvents()
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.regions[regionID]
	if !ok || it.seq != seq || r.delivering != it {
		return
	}
	r.delivering = nil
	e.kick(r)
}

// scheduleWipe arms the auto-clear timer for the content just delivered.
// A newer delivery cancels it, so a wipe never erases a later message.
// Caller holds e.mu.
func (e *Engine) scheduleWipe(r *region, after time.Duration) {
	regionID := r.id
	r.wipeSeq++
	seq := r.wipeSeq
	r.clearTimer = time.AfterFunc(after, func() {
		e.wipeElapsed(regionID, seq)
	})
}

func (e *Engine) wipeElapsed(regionID string, seq uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.regions[regionID]
	if !ok || r.wipeSeq != seq {
		return
	}
	r.clearTimer = nil
	if err := r.surface.Clear(context.Background()); err != nil {
		e.logger.Warn("surface clear failed", logger.SurfaceID(regionID), logger.Error(err))
		return
	}
	r.content = ""
	e.logger.Debug("region content auto-cleared", logger.SurfaceID(regionID))
}

// cancelWipe stops a pending auto-clear and invalidates any wipe callback
// already firing. Caller holds e.mu.
func (e *Engine) cancelWipe(r *region) {
	if r.clearTimer != nil {
		r.clearTimer.Stop()
		r.clearTimer = nil
	}
	r.wipeSeq++
}

// cancelAll settles every pending announcement on r with cause and stops all
// of its timers. Receipts that already resolved are unaffected. Caller holds
// e.mu.
func (e *Engine) cancelAll(r *region, cause error) {
	for key, it := range r.debouncing {
		it.seq++
		if it.timer != nil {
			it.timer.Stop()
		}
		it.phase = phaseSettled
		it.receipt.settle(cause)
		delete(r.debouncing, key)
	}

	for _, it := range r.queue {
		it.phase = phaseSettled
		it.receipt.settle(cause)
	}
	r.queue = nil

	if it := r.delivering; it != nil {
		it.seq++
		if it.timer != nil {
			it.timer.Stop()
		}
		it.phase = phaseSettled
		it.receipt.settle(cause)
		r.delivering = nil
	}

	e.cancelWipe(r)
}

// Pause freezes delivery on every region. Announcements keep queueing while
// paused; an announcement already mid-delivery completes, but no further
// queued item starts until Resume.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrEngineDestroyed
	}
	if !e.paused {
		e.paused = true
		e.logger.Info("announcement engine paused")
	}
	return nil
}

// Resume restarts every region's delivery loop, processing each queue in its
// original FIFO order.
func (e *Engine) Resume() error {
	defer e.flushEvents()
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrEngineDestroyed
	}
	if !e.paused {
		return nil
	}
	e.paused = false
	e.logger.Info("announcement engine resumed")
	for _, id := range e.order {
		e.kick(e.regions[id])
	}
	return nil
}

// PauseRegion freezes delivery for one region only.
func (e *Engine) PauseRegion(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrEngineDestroyed
	}
	r, ok := e.regions[id]
	if !ok {
		return SurfaceNotFoundError{ID: id}
	}
	r.paused = true
	return nil
}

// ResumeRegion restarts delivery for one region.
func (e *Engine) ResumeRegion(id string) error {
	defer e.flushEvents()
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrEngineDestroyed
	}
	r, ok := e.regions[id]
	if !ok {
		return SurfaceNotFoundError{ID: id}
	}
	if r.paused {
		r.paused = false
		e.kick(r)
	}
	return nil
}

// ClearRegion empties the region's queue, rejects every pending receipt with
// QueueClearedError, cancels its timers, and wipes the exposed content.
func (e *Engine) ClearRegion(id string) error {
	defer e.flushEvents()
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrEngineDestroyed
	}
	r, ok := e.regions[id]
	if !ok {
		return SurfaceNotFoundError{ID: id}
	}

	e.clearRegionLocked(r)
	return nil
}

// Clear applies ClearRegion semantics to every region.
func (e *Engine) Clear() error {
	defer e.flushEvents()
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrEngineDestroyed
	}
	for _, id := range e.order {
		e.clearRegionLocked(e.regions[id])
	}
	return nil
}

func (e *Engine) clearRegionLocked(r *region) {
	e.cancelAll(r, QueueClearedError{SurfaceID: r.id})
	if err := r.surface.Clear(context.Background()); err != nil {
		e.logger.Warn("surface clear failed", logger.SurfaceID(r.id), logger.Error(err))
	}
	r.content = ""
	e.queueEvent(Event{Type: EventCleared, SurfaceID: r.id, Timestamp: time.Now()})
	e.logger.Debug("region cleared", logger.SurfaceID(r.id))
}

// RemoveRegion destroys the region's surface, rejects its queued and
// in-flight receipts with SurfaceRemovedError, and drops it from the
// registry. Removing an unknown ID is a no-op.
func (e *Engine) RemoveRegion(id string) error {
	defer e.flushEvents()
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrEngineDestroyed
	}
	r, ok := e.regions[id]
	if !ok {
		return nil
	}

	e.cancelAll(r, SurfaceRemovedError{SurfaceID: id})
	if err := r.surface.Destroy(context.Background()); err != nil {
		e.logger.Warn("surface destroy failed", logger.SurfaceID(id), logger.Error(err))
	}
	delete(e.regions, id)
	e.order = slices.DeleteFunc(e.order, func(s string) bool { return s == id })

	e.queueEvent(Event{Type: EventRegionRemoved, SurfaceID: id, Timestamp: time.Now()})
	e.logger.Info("live region removed", logger.SurfaceID(id))
	return nil
}

// UpdateRegion mutates the region's presentation config (label, atomic,
// relevant, hidden, lang) and re-applies it to the surface. Identity and
// delivery semantics are fixed at creation: ID, priority, and role changes
// are ignored.
func (e *Engine) UpdateRegion(id string, opts ...RegionOption) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return ErrEngineDestroyed
	}
	r, ok := e.regions[id]
	if !ok {
		return SurfaceNotFoundError{ID: id}
	}

	cfg := r.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.ID = r.cfg.ID
	cfg.Priority = r.cfg.Priority
	cfg.Role = r.cfg.Role
	cfg = cfg.withDefaults()

	if err := r.surface.Apply(context.Background(), cfg); err != nil {
		return fmt.Errorf("apply config to region %s: %w", id, err)
	}
	r.cfg = cfg
	return nil
}

// GetRegion returns a snapshot of the region with the given ID.
func (e *Engine) GetRegion(id string) (Region, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.regions[id]
	if !ok {
		return Region{}, false
	}
	return e.snapshot(r), true
}

// Regions returns snapshots of all registered regions in creation order.
func (e *Engine) Regions() []Region {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Region, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.snapshot(e.regions[id]))
	}
	return out
}

// snapshot builds the public view of r. Caller holds e.mu.
func (e *Engine) snapshot(r *region) Region {
	state := StateIdle
	switch {
	case r.delivering != nil:
		state = StateDelivering
	case e.paused || r.paused:
		state = StatePaused
	}

	return Region{
		ID:        r.id,
		Priority:  r.cfg.Priority,
		Role:      r.cfg.Role,
		Label:     r.cfg.Label,
		Atomic:    r.cfg.Atomic != nil && *r.cfg.Atomic,
		Relevant:  r.cfg.Relevant,
		Hidden:    r.cfg.Hidden != nil && *r.cfg.Hidden,
		Lang:      r.cfg.Lang,
		State:     state,
		Content:   r.content,
		CreatedAt: r.createdAt,
	}
}

// Destroy rejects every outstanding receipt, destroys every surface, empties
// the registry, and flips the engine into a terminal state in which every
// subsequent mutating call fails with ErrEngineDestroyed. Destroy is
// idempotent.
func (e *Engine) Destroy() error {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return nil
	}
	e.destroyed = true

	for _, id := range e.order {
		r := e.regions[id]
		e.cancelAll(r, ErrEngineDestroyed)
		if err := r.surface.Destroy(context.Background()); err != nil {
			e.logger.Warn("surface destroy failed", logger.SurfaceID(id), logger.Error(err))
		}
	}
	e.regions = make(map[string]*region)
	e.order = nil
	e.templates = make(map[string]RegionConfig)
	e.pendingEvents = nil
	e.mu.Unlock()

	for _, em := range e.emitters {
		em.Close()
	}
	e.logger.Info("announcement engine destroyed")
	return nil
}
