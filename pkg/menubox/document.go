package menubox

// Rect is an axis-aligned rectangle in pixel coordinates. Bounds returned by
// a Document are viewport-relative; callers add the scroll offset themselves
// when they need document-relative coordinates.
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() int32 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() int32 {
	return r.Y + r.H
}

// BoxMetrics reports the spacing the host applies inside an element's border
// box. Submenu alignment subtracts these so item interiors line up visually.
type BoxMetrics struct {
	PaddingTop int32
	BorderTop  int32
}

// Element is one renderable node in the host document. Menubox builds its
// visual representation entirely through this interface; it never assumes a
// concrete node type, so any retained-mode host (SDL scene, terminal cell
// grid, real DOM bridge) can back it.
//
// Implementations must be comparable (pointer receivers), since Menubox keys
// its reverse item index on Element identity.
type Element interface {
	// Tag returns the element kind it was created with ("menubox", "list",
	// "item", "separator", "label", ...). Hosts are free to interpret tags
	// loosely; the core only creates, never inspects, foreign tags.
	Tag() string

	Parent() Element
	AppendChild(child Element)

	// Remove detaches the element (and its subtree) from its parent.
	Remove()

	SetText(text string)
	Text() string

	// SetStyle sets a single style dimension ("left", "height",
	// "visibility", ...). Values are plain strings; sizes carry a "px"
	// suffix. An empty value clears the dimension.
	SetStyle(name, value string)
	Style(name string) string

	SetAttr(name, value string)
	Attr(name string) string

	AddClass(name string)
	RemoveClass(name string)

	// Bounds returns the element's border box in viewport coordinates.
	Bounds() Rect

	// NaturalSize returns the size the element wants when unconstrained,
	// ignoring any height clamp currently applied. Used to resolve "auto"
	// transition values and for pre-show placement.
	NaturalSize() (w, h int32)

	Metrics() BoxMetrics

	SetScrollTop(px int32)
}

// Document is the capability interface the core uses to reach the host's
// rendering and layout primitives. It deliberately mirrors only what a
// pop-up menu needs: element creation, a root to attach to, and viewport
// plus scroll geometry.
type Document interface {
	CreateElement(tag string) Element
	Body() Element
	ViewportSize() (w, h int32)
	ScrollOffset() (x, y int32)
}

// PointerEvent carries the viewport position and target of a pointer input.
// Hosts construct one per click/hover and feed it to the Coordinator or to a
// Menubox handler.
type PointerEvent struct {
	X      int32
	Y      int32
	Target Element

	stopped bool
}

// StopPropagation marks the event as consumed so the document-level
// outside-click dismissal ignores it. Toggle calls this itself, otherwise
// the same click that opened a menu would immediately close it again.
func (e *PointerEvent) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (e *PointerEvent) Stopped() bool {
	return e.stopped
}

// Key identifies the few keyboard inputs the coordination layer reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
)

// KeyEvent is a key-down input delivered to the Coordinator.
type KeyEvent struct {
	Key Key
}
