package menubox

import (
	"log/slog"
	"time"

	"go.uber.org/atomic"
)

// Scheduler abstracts the deferred call behind submenu hover-opens. The
// coordinator keeps at most one scheduled open pending; making that a
// capability keeps the invariant explicit and lets tests drive time by hand.
type Scheduler interface {
	// After runs fn once after d and returns a cancel function.
	// Cancelling after fn has run is a no-op.
	After(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler is the production Scheduler, backed by time.AfterFunc.
// The callback fires on the timer goroutine; hosts that keep strict
// single-threaded event flow should hand it back to their input loop.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Coordinator owns the registry of live menuboxes, the global dismissal
// behavior, and the single pending submenu-open timer. Every menubox is
// registered with exactly one coordinator; independent coordinators never
// affect each other's menus.
//
// Hosts feed document-level input to HandleDocumentClick and HandleKey:
// any click outside all menuboxes closes all of them, as does Escape.
type Coordinator struct {
	doc   Document
	sched Scheduler
	log   *slog.Logger

	boxes map[string]*Menubox

	// At most one submenu open is pending at any time. Arming a new one
	// supersedes the previous (last-hover-wins); the generation counter
	// voids callbacks from timers that fired after being superseded.
	pendingCancel func()
	pendingGen    *atomic.Int64
}

// NewCoordinator creates a coordination context over the given document.
// A nil scheduler falls back to TimerScheduler.
func NewCoordinator(doc Document, sched Scheduler, log *slog.Logger) *Coordinator {
	if sched == nil {
		sched = TimerScheduler{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{
		doc:        doc,
		sched:      sched,
		log:        log,
		boxes:      make(map[string]*Menubox),
		pendingGen: atomic.NewInt64(0),
	}
}

// Document returns the host document this coordinator renders into.
func (c *Coordinator) Document() Document {
	return c.doc
}

// Lookup returns the live menubox registered under id, or nil.
func (c *Coordinator) Lookup(id string) *Menubox {
	return c.boxes[id]
}

// IDs returns the ids of all live menuboxes.
func (c *Coordinator) IDs() []string {
	ids := make([]string, 0, len(c.boxes))
	for id := range c.boxes {
		ids = append(ids, id)
	}
	return ids
}

// CloseAll closes every visible root menubox (and with it, transitively,
// every open submenu), and cancels any pending submenu open.
func (c *Coordinator) CloseAll() {
	c.cancelPending()
	for _, b := range c.boxes {
		if b.parent == nil && b.Visible() {
			b.Close(true)
		}
	}
}

// closeAllExcept closes every visible root except the one m belongs to.
func (c *Coordinator) closeAllExcept(m *Menubox) {
	keep := m.root()
	for _, b := range c.boxes {
		if b.parent == nil && b != keep && b.Visible() {
			b.Close(true)
		}
	}
}

// HandleDocumentClick implements outside-click dismissal. Events whose
// propagation was stopped (a Toggle already consumed them) and clicks that
// land inside any menubox are ignored; everything else closes all menus.
func (c *Coordinator) HandleDocumentClick(ev *PointerEvent) {
	if ev == nil || ev.Stopped() {
		return
	}
	for _, b := range c.boxes {
		if b.Visible() && b.contains(ev.Target) {
			return
		}
	}
	c.CloseAll()
}

// BoxAt returns the visible menubox whose subtree contains node, or nil.
// Backends use it to route pointer input to the right box.
func (c *Coordinator) BoxAt(node Element) *Menubox {
	if node == nil {
		return nil
	}
	for _, b := range c.boxes {
		if b.Visible() && b.contains(node) {
			return b
		}
	}
	return nil
}

// DispatchClick routes a click to the menubox under it, falling back to
// outside-click dismissal when none contains the target. Stopped events are
// ignored.
func (c *Coordinator) DispatchClick(ev *PointerEvent) {
	if ev == nil || ev.Stopped() {
		return
	}
	if b := c.BoxAt(ev.Target); b != nil {
		b.HandleClick(ev)
		return
	}
	c.CloseAll()
}

// HandleKey implements keyboard dismissal: Escape closes all menus.
func (c *Coordinator) HandleKey(ev KeyEvent) {
	if ev.Key == KeyEscape {
		c.CloseAll()
	}
}

// armSubmenu schedules open to run after d, superseding any pending open.
func (c *Coordinator) armSubmenu(d time.Duration, open func()) {
	c.cancelPending()
	gen := c.pendingGen.Inc()
	c.pendingCancel = c.sched.After(d, func() {
		if c.pendingGen.Load() != gen {
			return
		}
		c.pendingCancel = nil
		open()
	})
}

// cancelPending voids any pending submenu open.
func (c *Coordinator) cancelPending() {
	c.pendingGen.Inc()
	if c.pendingCancel != nil {
		c.pendingCancel()
		c.pendingCancel = nil
	}
}

// register adds m under its id. Re-registering an id replaces the prior
// instance: its node is removed and its subtree unregistered. Replacement
// is informational, not an error.
func (c *Coordinator) register(m *Menubox) {
	if old, exists := c.boxes[m.id]; exists {
		c.log.Info("replacing menubox", "id", m.id)
		old.destroy()
	}
	c.boxes[m.id] = m
}

func (c *Coordinator) unregister(m *Menubox) {
	if c.boxes[m.id] == m {
		delete(c.boxes, m.id)
	}
}
