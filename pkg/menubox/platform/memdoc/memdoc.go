// Package memdoc provides a plain in-memory Document implementation: an
// element tree with a deterministic vertical-stack layout and no painting.
// It backs the library's tests and serves as the retained tree the sdlkit
// and termkit backends paint from.
package memdoc

import (
	"strconv"
	"strings"

	"github.com/BrandonKowalski/menubox/pkg/menubox"
	"github.com/BrandonKowalski/menubox/pkg/menubox/internal"
)

// Measurer turns text into pixel dimensions. The zero Document uses a fixed
// cell measurer; painting backends install their font metrics instead.
type Measurer interface {
	TextSize(text string) (w, h int32)
}

type cellMeasurer struct{}

func (cellMeasurer) TextSize(text string) (int32, int32) {
	return int32(len([]rune(text))) * 8, 16
}

// Document is an in-memory element tree with viewport and scroll state.
type Document struct {
	body      *Element
	viewportW int32
	viewportH int32
	scrollX   int32
	scrollY   int32
	measurer  Measurer
}

// New creates a document with the given viewport size.
func New(viewportW, viewportH int32) *Document {
	d := &Document{
		viewportW: viewportW,
		viewportH: viewportH,
		measurer:  cellMeasurer{},
	}
	d.body = &Element{doc: d, tag: "body"}
	return d
}

// SetMeasurer installs the text measurer used for natural sizing.
func (d *Document) SetMeasurer(m Measurer) {
	if m != nil {
		d.measurer = m
	}
}

// SetViewportSize updates the visible viewport dimensions.
func (d *Document) SetViewportSize(w, h int32) {
	d.viewportW, d.viewportH = w, h
}

// SetScrollOffset updates the document scroll position.
func (d *Document) SetScrollOffset(x, y int32) {
	d.scrollX, d.scrollY = x, y
}

func (d *Document) CreateElement(tag string) menubox.Element {
	return &Element{doc: d, tag: tag}
}

func (d *Document) Body() menubox.Element {
	return d.body
}

func (d *Document) ViewportSize() (int32, int32) {
	return d.viewportW, d.viewportH
}

func (d *Document) ScrollOffset() (int32, int32) {
	return d.scrollX, d.scrollY
}

// Element is one node of the in-memory tree. Layout is a vertical stack:
// children occupy full parent width and stack top to bottom, unless a node
// is positioned explicitly through "left"/"top" styles.
type Element struct {
	doc       *Document
	tag       string
	parent    *Element
	children  []*Element
	text      string
	styles    map[string]string
	attrs     map[string]string
	classes   []string
	scrollTop int32
}

func (e *Element) Tag() string {
	return e.tag
}

func (e *Element) Parent() menubox.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *Element) AppendChild(child menubox.Element) {
	c, ok := child.(*Element)
	if !ok {
		return
	}
	c.Remove()
	c.parent = e
	e.children = append(e.children, c)
}

func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	siblings := e.parent.children
	for i, c := range siblings {
		if c == e {
			e.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	e.parent = nil
}

func (e *Element) SetText(text string) {
	e.text = text
}

func (e *Element) Text() string {
	return e.text
}

func (e *Element) SetStyle(name, value string) {
	if e.styles == nil {
		e.styles = make(map[string]string)
	}
	if value == "" {
		delete(e.styles, name)
		return
	}
	e.styles[name] = value
}

func (e *Element) Style(name string) string {
	return e.styles[name]
}

func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

func (e *Element) Attr(name string) string {
	return e.attrs[name]
}

func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

func (e *Element) RemoveClass(name string) {
	for i, c := range e.classes {
		if c == name {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the element carries the class. Not part of the
// menubox Element contract; backends and tests use it directly.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Children returns the element's children in order.
func (e *Element) Children() []*Element {
	return e.children
}

func (e *Element) SetScrollTop(px int32) {
	e.scrollTop = px
}

// ScrollTop returns the element's internal scroll position.
func (e *Element) ScrollTop() int32 {
	return e.scrollTop
}

func (e *Element) Metrics() menubox.BoxMetrics {
	return menubox.BoxMetrics{
		PaddingTop: e.stylePx("padding-top"),
		BorderTop:  e.stylePx("border-top-width"),
	}
}

// NaturalSize reports the unconstrained content size: the maximum child
// width and the sum of child heights, plus vertical chrome. Explicit
// "width"/"height" styles on THIS element are ignored here, per the
// Element contract (a height clamp must not feed back into sizing).
func (e *Element) NaturalSize() (int32, int32) {
	chrome := 2 * (e.stylePx("padding-top") + e.stylePx("border-top-width"))
	if len(e.children) == 0 {
		w, h := e.doc.measurer.TextSize(e.text)
		return w + chrome, h + chrome
	}

	var w, h int32
	for _, c := range e.children {
		cw, ch := c.outerSize()
		w = internal.Max32(w, cw)
		h += ch
	}
	return w + chrome, h + chrome
}

// outerSize is the size the element occupies in its parent's stack:
// explicit styles win, otherwise the natural size.
func (e *Element) outerSize() (int32, int32) {
	w, h := e.NaturalSize()
	if v := e.stylePx("width"); v > 0 {
		w = v
	}
	if v := e.stylePx("height"); v > 0 {
		h = v
	}
	return w, h
}

// Bounds returns the border box in viewport coordinates. Explicitly
// positioned elements (with "left"/"top" styles) place themselves; stacked
// elements derive their position from the parent and preceding siblings.
func (e *Element) Bounds() menubox.Rect {
	w, h := e.outerSize()

	if _, positioned := e.styles["left"]; positioned {
		x, y := e.stylePx("left"), e.stylePx("top")
		if e.Style("position") != "fixed" {
			x -= e.doc.scrollX
			y -= e.doc.scrollY
		}
		return menubox.Rect{X: x, Y: y, W: w, H: h}
	}

	if e.parent == nil {
		return menubox.Rect{X: 0, Y: 0, W: w, H: h}
	}

	pb := e.parent.Bounds()
	chrome := e.parent.stylePx("padding-top") + e.parent.stylePx("border-top-width")
	y := pb.Y + chrome - e.parent.scrollTop
	for _, sib := range e.parent.children {
		if sib == e {
			break
		}
		_, sh := sib.outerSize()
		y += sh
	}
	return menubox.Rect{X: pb.X + chrome, Y: y, W: w, H: h}
}

func (e *Element) stylePx(name string) int32 {
	v, ok := e.styles[name]
	if !ok {
		return 0
	}
	v = strings.TrimSuffix(v, "px")
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}
