package menubox_test

import (
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/BrandonKowalski/menubox/pkg/menubox"
	"github.com/BrandonKowalski/menubox/pkg/menubox/platform/memdoc"
)

// manualScheduler records the latest scheduled call so tests drive the
// submenu delay by hand.
type manualScheduler struct {
	seq   int
	delay time.Duration
	fn    func()
}

func (s *manualScheduler) After(d time.Duration, fn func()) func() {
	s.seq++
	seq := s.seq
	s.delay = d
	s.fn = fn
	return func() {
		if s.seq == seq {
			s.fn = nil
		}
	}
}

// fire runs the pending call, if any, as if the delay elapsed.
func (s *manualScheduler) fire() {
	if s.fn == nil {
		return
	}
	fn := s.fn
	s.fn = nil
	fn()
}

func (s *manualScheduler) pending() bool {
	return s.fn != nil
}

func newTestCoordinator(w, h int32) (*menubox.Coordinator, *memdoc.Document, *manualScheduler) {
	doc := memdoc.New(w, h)
	sched := &manualScheduler{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return menubox.NewCoordinator(doc, sched, log), doc, sched
}

// clickOn delivers a click targeting the item's node through the box handler.
func clickOn(m *menubox.Menubox, key string) {
	item := m.Item(key)
	m.HandleClick(&menubox.PointerEvent{Target: item.Node()})
}

// hoverOn delivers a hover targeting the item's node.
func hoverOn(m *menubox.Menubox, key string) {
	item := m.Item(key)
	m.HandleHover(&menubox.PointerEvent{Target: item.Node()})
}

// anchorAt creates an explicitly positioned element in the document body.
func anchorAt(doc *memdoc.Document, x, y, w, h int32) menubox.Element {
	a := doc.CreateElement("anchor")
	a.SetStyle("left", pxs(x))
	a.SetStyle("top", pxs(y))
	a.SetStyle("width", pxs(w))
	a.SetStyle("height", pxs(h))
	doc.Body().AppendChild(a)
	return a
}

func pxs(v int32) string {
	return strconv.FormatInt(int64(v), 10) + "px"
}
