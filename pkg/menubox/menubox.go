package menubox

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// idDelimiter joins a parent menubox id and an item key to form the
// registry id of the item's submenu.
const idDelimiter = "."

// Menubox is a pop-up container holding an ordered collection of menu
// items. It computes and applies its own position, manages its open/close
// lifecycle, enforces select-mode semantics, and coordinates submenu timing
// through the Coordinator it is registered with.
//
// A Menubox with a parent is a submenu. Root menuboxes are mutually
// exclusive: opening or constructing one closes every other visible box in
// the same coordinator.
type Menubox struct {
	id    string
	coord *Coordinator
	doc   Document

	node Element // box container
	list Element // scrollable item list inside the container

	items     []*MenuItem
	byKey     map[string]*MenuItem
	nodeIndex map[Element]*MenuItem

	mode        SelectMode
	position    PositionMode
	adjust      Adjustment
	delay       time.Duration
	transitions map[string]Transition
	callback    func(item *MenuItem)

	context any

	parent     *Menubox  // non-owning; nil for roots
	parentItem *MenuItem // item in parent that owns this submenu

	visible      *atomic.Bool
	lastX, lastY int32 // last computed viewport position
}

// New constructs a menubox from a declarative definition and registers it
// with coord. Nested submenu menuboxes are constructed recursively for
// items carrying a Submenu definition; their id is the parent id and the
// item key joined by ".".
//
// If the id is already registered, the prior instance's node is removed and
// the instance replaced; this is logged, not an error. An empty id gets a
// generated one. The new box starts hidden, and every other visible menubox
// is closed.
func New(coord *Coordinator, id string, opts Options) (*Menubox, error) {
	if coord == nil || coord.doc == nil {
		return nil, NewContractError("new", ErrNoDocument)
	}
	if id == "" {
		id = uuid.NewString()
	}

	m, err := build(coord, id, opts, nil, nil)
	if err != nil {
		return nil, err
	}

	coord.closeAllExcept(m)
	return m, nil
}

// Must is a convenience wrapper around New that panics on definition
// errors. Intended for static definitions known good at compile time.
func Must(coord *Coordinator, id string, opts Options) *Menubox {
	m, err := New(coord, id, opts)
	if err != nil {
		panic(err)
	}
	return m
}

func build(coord *Coordinator, id string, opts Options, parent *Menubox, parentItem *MenuItem) (*Menubox, error) {
	doc := coord.doc

	adjust := opts.Adjustment
	callback := opts.Callback
	if parent != nil {
		// Submenus always open rightward of the parent item with item
		// tops aligned; the definition's adjustment is ignored.
		adjust = submenuAdjustment()
	}

	m := &Menubox{
		id:          id,
		coord:       coord,
		doc:         doc,
		byKey:       make(map[string]*MenuItem),
		nodeIndex:   make(map[Element]*MenuItem),
		mode:        opts.SelectMode,
		position:    opts.Position,
		adjust:      adjust,
		delay:       opts.submenuDelay(),
		transitions: opts.transitionTable(),
		callback:    callback,
		parent:      parent,
		parentItem:  parentItem,
		visible:     atomic.NewBool(false),
	}

	m.node = doc.CreateElement("menubox")
	m.node.SetAttr("id", id)
	m.node.AddClass("menubox")
	for _, class := range strings.Fields(opts.CSS) {
		m.node.AddClass(class)
	}
	m.node.SetStyle("position", m.position.String())
	applyTransitions(m.node, m.transitions, false)

	m.list = doc.CreateElement("list")
	m.node.AppendChild(m.list)

	renderer := opts.itemRenderer()
	for _, def := range opts.Items {
		if err := m.addItem(renderer, def); err != nil {
			m.destroy()
			return nil, err
		}
	}

	doc.Body().AppendChild(m.node)
	coord.register(m)
	return m, nil
}

func (m *Menubox) addItem(renderer ItemRenderer, def ItemDefinition) error {
	if def.Separator {
		m.list.AppendChild(m.doc.CreateElement("separator"))
		return nil
	}
	if def.Submenu != nil && def.Key == "" {
		return NewContractError("new", ErrSubmenuWithoutKey)
	}
	if def.Key != "" {
		if _, exists := m.byKey[def.Key]; exists {
			return NewContractError("new", ErrDuplicateItemKey)
		}
	}

	node := renderer.Create(m.doc, ItemProperties{
		Key:        def.Key,
		Label:      def.Label,
		Checked:    def.Checked,
		Enabled:    !def.Disabled,
		HasSubmenu: def.Submenu != nil,
		CSSClasses: def.CSSClasses,
		Icon:       def.Icon,
	})
	m.list.AppendChild(node)

	mi := &MenuItem{
		key:      def.Key,
		label:    def.Label,
		checked:  def.Checked,
		enabled:  !def.Disabled,
		node:     node,
		box:      m,
		callback: def.Callback,
	}

	if def.Submenu != nil {
		sub, err := build(m.coord, m.id+idDelimiter+def.Key, *def.Submenu, m, mi)
		if err != nil {
			return err
		}
		mi.submenu = sub
	}

	m.items = append(m.items, mi)
	if def.Key != "" {
		m.byKey[def.Key] = mi
	}
	m.nodeIndex[node] = mi
	return nil
}

// destroy removes the box node and unregisters this box and every submenu
// below it. Used on construction failure and on replacement by id.
func (m *Menubox) destroy() {
	for _, mi := range m.items {
		if mi.submenu != nil {
			mi.submenu.destroy()
		}
	}
	m.node.Remove()
	m.coord.unregister(m)
}

// ID returns the registry id.
func (m *Menubox) ID() string {
	return m.id
}

// Node returns the box's container node.
func (m *Menubox) Node() Element {
	return m.node
}

// Parent returns the menubox this submenu hangs off, or nil for roots.
func (m *Menubox) Parent() *Menubox {
	return m.parent
}

// Visible reports whether the box is currently shown.
func (m *Menubox) Visible() bool {
	return m.visible.Load()
}

// Context returns the caller payload stored by the most recent Popup.
func (m *Menubox) Context() any {
	return m.context
}

// Items returns the menu items in definition order.
func (m *Menubox) Items() []*MenuItem {
	return m.items
}

// Item returns the item with the given key, or nil.
func (m *Menubox) Item(key string) *MenuItem {
	return m.byKey[key]
}

// CheckedItems returns every item currently checked, in definition order.
func (m *Menubox) CheckedItems() []*MenuItem {
	var checked []*MenuItem
	for _, mi := range m.items {
		if mi.checked {
			checked = append(checked, mi)
		}
	}
	return checked
}

func (m *Menubox) root() *Menubox {
	r := m
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Popup positions the box and makes it visible.
//
// With an anchor element, placement follows the adjustment directive
// against the anchor's bounds. With only a pointer event, the box opens at
// the cursor. With neither, the last computed position is reused; callers
// relying on click-triggered opening must pass the event.
//
// Opening a root closes every other menubox first. Submenus are exempt so
// chained hover-opens keep their ancestry visible.
func (m *Menubox) Popup(ev *PointerEvent, ctx any, anchor Element) {
	if m.parent == nil {
		m.coord.closeAllExcept(m)
	}

	m.list.SetScrollTop(0)
	m.list.SetStyle("height", "")
	m.list.SetStyle("overflow-y", "")

	w, h := m.node.NaturalSize()

	vx, vy := m.lastX, m.lastY
	switch {
	case anchor != nil:
		r := anchor.Bounds()
		switch m.adjust.Horizontal {
		case AlignBefore:
			vx = r.X - w
		case AlignRight:
			vx = r.Right() - w
		case AlignAfter:
			vx = r.Right()
		default:
			vx = r.X
		}
		switch m.adjust.Vertical {
		case alignSubmenuTop:
			met := m.node.Metrics()
			vy = r.Y - met.PaddingTop - met.BorderTop
		case AlignAbove:
			vy = r.Y - h
		case AlignTop:
			vy = r.Y
		case AlignBottom:
			vy = r.Bottom() - h
		default:
			vy = r.Bottom()
		}
	case ev != nil:
		vx, vy = ev.X, ev.Y
	}

	vx, vy = m.clampToViewport(vx, vy, w, h)
	m.lastX, m.lastY = vx, vy

	x, y := vx, vy
	if m.position == PositionAbsolute {
		sx, sy := m.doc.ScrollOffset()
		x += sx
		y += sy
	}
	m.node.SetStyle("left", px(x))
	m.node.SetStyle("top", px(y))

	m.context = ctx
	applyTransitions(m.node, m.transitions, true)
	m.visible.Store(true)
}

// clampToViewport pulls the box inside the visible viewport. If the box is
// taller than the viewport even at the top edge, the item list is shrunk to
// fit and given vertical scrolling.
func (m *Menubox) clampToViewport(vx, vy, w, h int32) (int32, int32) {
	vw, vh := m.doc.ViewportSize()

	if vx+w > vw {
		vx = vw - w
	}
	if vx < 0 {
		vx = 0
	}

	if vy+h > vh {
		vy = vh - h
	}
	if vy < 0 {
		vy = 0
	}
	if h > vh {
		// Chrome is whatever the box adds around the list (padding,
		// borders, header elements); only the list itself shrinks.
		_, lh := m.list.NaturalSize()
		chrome := h - lh
		m.list.SetStyle("height", px(vh-chrome))
		m.list.SetStyle("overflow-y", "scroll")
	}
	return vx, vy
}

// Close hides the box. With closeSubmenus true the entire submenu subtree
// below it is hidden as well. With false, closure propagates upward instead:
// closing a submenu closes the whole chain up to the root.
func (m *Menubox) Close(closeSubmenus bool) {
	if closeSubmenus {
		m.CloseSubmenus()
	}
	if m.visible.Swap(false) {
		applyTransitions(m.node, m.transitions, false)
	}
	if !closeSubmenus && m.parent != nil {
		m.parent.Close(false)
	}
}

// CloseSubmenus recursively hides every descendant submenu without hiding
// the box itself, and cancels any pending hover-open.
func (m *Menubox) CloseSubmenus() {
	m.coord.cancelPending()
	for _, mi := range m.items {
		if mi.submenu != nil {
			mi.submenu.Close(true)
		}
	}
}

// Toggle flips the box between shown and hidden and reports whether it is
// now visible. The triggering pointer event is required: its propagation is
// stopped so the same click does not immediately re-trigger outside-click
// dismissal.
func (m *Menubox) Toggle(ev *PointerEvent, ctx any, anchor Element) bool {
	if ev != nil {
		ev.StopPropagation()
	}
	if m.visible.Load() {
		m.Close(true)
		return false
	}
	m.Popup(ev, ctx, anchor)
	return true
}

// HandleClick dispatches a click delivered to the box. The target node is
// resolved to its MenuItem through the reverse index; clicks that resolve
// to nothing or to a disabled item are ignored.
func (m *Menubox) HandleClick(ev *PointerEvent) {
	if ev == nil {
		return
	}
	ev.StopPropagation()
	mi := m.resolveItem(ev.Target)
	if mi == nil || !mi.enabled {
		return
	}
	mi.click()
}

// HandleHover reacts to the pointer entering an item. Hovering an item with
// a submenu closes any open sibling submenus immediately and arms the
// coordinator's single delay timer to open that submenu anchored to the
// item. A later hover supersedes the pending open.
func (m *Menubox) HandleHover(ev *PointerEvent) {
	if ev == nil {
		return
	}
	mi := m.resolveItem(ev.Target)
	if mi == nil || !mi.enabled || mi.submenu == nil {
		return
	}

	m.CloseSubmenus()

	sub := mi.submenu
	anchor := mi.node
	m.coord.armSubmenu(m.delay, func() {
		sub.Popup(nil, m.root().context, anchor)
	})
}

// HandlePointerLeave cancels a pending submenu open when the pointer leaves
// the whole box before the delay elapses.
func (m *Menubox) HandlePointerLeave() {
	m.coord.cancelPending()
}

func (m *Menubox) resolveItem(node Element) *MenuItem {
	for n := node; n != nil; n = n.Parent() {
		if mi, ok := m.nodeIndex[n]; ok {
			return mi
		}
	}
	return nil
}

// contains reports whether node lies inside this box's subtree. Used by the
// coordinator for outside-click detection.
func (m *Menubox) contains(node Element) bool {
	for n := node; n != nil; n = n.Parent() {
		if n == m.node {
			return true
		}
	}
	return false
}
