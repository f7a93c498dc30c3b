package memdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/menubox/pkg/menubox"
)

func TestTreeOperations(t *testing.T) {
	doc := New(100, 100)

	parent := doc.CreateElement("menubox")
	child := doc.CreateElement("list")
	parent.AppendChild(child)
	doc.Body().AppendChild(parent)

	assert.Same(t, parent, child.Parent())
	assert.Equal(t, doc.Body(), parent.Parent())

	child.Remove()
	assert.Nil(t, child.Parent())
	child.Remove() // idempotent

	// Re-appending moves the node.
	doc.Body().AppendChild(child)
	parent.AppendChild(child)
	assert.Same(t, parent, child.Parent())
	body := doc.Body().(*Element)
	assert.Len(t, body.Children(), 1)
}

func TestClassesAndAttrs(t *testing.T) {
	doc := New(100, 100)
	e := doc.CreateElement("item").(*Element)

	e.AddClass("checked")
	e.AddClass("checked")
	assert.True(t, e.HasClass("checked"))
	e.RemoveClass("checked")
	assert.False(t, e.HasClass("checked"))

	e.SetAttr("key", "a")
	assert.Equal(t, "a", e.Attr("key"))

	e.SetStyle("height", "40px")
	assert.Equal(t, "40px", e.Style("height"))
	e.SetStyle("height", "")
	assert.Empty(t, e.Style("height"))
}

func TestNaturalSizeStacksChildren(t *testing.T) {
	doc := New(200, 200)

	box := doc.CreateElement("menubox")
	list := doc.CreateElement("list")
	box.AppendChild(list)
	for _, label := range []string{"aa", "bbbb"} {
		item := doc.CreateElement("item")
		l := doc.CreateElement("label")
		l.SetText(label)
		item.AppendChild(l)
		list.AppendChild(item)
	}

	w, h := box.NaturalSize()
	assert.Equal(t, int32(32), w, "widest label wins")
	assert.Equal(t, int32(32), h, "16px per row")
}

func TestNaturalSizeIgnoresHeightClamp(t *testing.T) {
	doc := New(200, 200)
	e := doc.CreateElement("list")
	row := doc.CreateElement("item")
	row.SetText("abc")
	e.AppendChild(row)

	e.SetStyle("height", "5px")
	_, h := e.NaturalSize()
	assert.Equal(t, int32(16), h)

	b := e.Bounds()
	assert.Equal(t, int32(5), b.H, "bounds honor the clamp")
}

func TestPositionedBoundsSubtractScroll(t *testing.T) {
	doc := New(200, 200)
	doc.SetScrollOffset(30, 20)

	abs := doc.CreateElement("menubox")
	abs.SetStyle("left", "100px")
	abs.SetStyle("top", "50px")
	abs.SetStyle("position", "absolute")
	doc.Body().AppendChild(abs)

	b := abs.Bounds()
	assert.Equal(t, int32(70), b.X)
	assert.Equal(t, int32(30), b.Y)

	fixed := doc.CreateElement("menubox")
	fixed.SetStyle("left", "100px")
	fixed.SetStyle("top", "50px")
	fixed.SetStyle("position", "fixed")
	doc.Body().AppendChild(fixed)

	fb := fixed.Bounds()
	assert.Equal(t, int32(100), fb.X)
	assert.Equal(t, int32(50), fb.Y)
}

func TestStackedBoundsFollowSiblings(t *testing.T) {
	doc := New(200, 200)

	box := doc.CreateElement("menubox")
	box.SetStyle("left", "10px")
	box.SetStyle("top", "40px")
	doc.Body().AppendChild(box)

	list := doc.CreateElement("list")
	box.AppendChild(list)
	var rows []menubox.Element
	for _, label := range []string{"a", "b", "c"} {
		item := doc.CreateElement("item")
		item.SetText(label)
		list.AppendChild(item)
		rows = append(rows, item)
	}

	require.Len(t, rows, 3)
	assert.Equal(t, int32(40), rows[0].Bounds().Y)
	assert.Equal(t, int32(56), rows[1].Bounds().Y)
	assert.Equal(t, int32(72), rows[2].Bounds().Y)

	// Scrolling the list shifts rows up.
	list.SetScrollTop(16)
	assert.Equal(t, int32(40), rows[1].Bounds().Y)
}

func TestMetricsFromStyles(t *testing.T) {
	doc := New(200, 200)
	e := doc.CreateElement("menubox")
	e.SetStyle("padding-top", "4px")
	e.SetStyle("border-top-width", "1px")

	m := e.Metrics()
	assert.Equal(t, menubox.BoxMetrics{PaddingTop: 4, BorderTop: 1}, m)
}
