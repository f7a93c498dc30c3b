// Package termkit hosts menuboxes on a terminal cell grid. The element tree
// and layout come from memdoc with a one-cell-per-rune measurer; Snapshot
// renders each visible menubox into a lipgloss-styled block the host
// composites into its own frame at the reported cell position.
package termkit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/menubox/pkg/menubox"
	"github.com/BrandonKowalski/menubox/pkg/menubox/platform/memdoc"
)

const cellHeight = 1

type cellMeasurer struct{}

func (cellMeasurer) TextSize(text string) (int32, int32) {
	return int32(lipgloss.Width(text)), cellHeight
}

// Document is a terminal-backed menubox host. Coordinates are cell counts,
// not pixels; the "px" suffix the core writes is parsed off by memdoc.
type Document struct {
	*memdoc.Document
}

// New creates a terminal document with the given size in cells.
func New(cols, rows int32) *Document {
	d := &Document{Document: memdoc.New(cols, rows)}
	d.SetMeasurer(cellMeasurer{})
	return d
}

// BoxView is one rendered menubox: a bordered block and the cell where its
// top-left corner goes.
type BoxView struct {
	ID      string
	Col     int
	Row     int
	Content string
}

var (
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	itemStyle     = lipgloss.NewStyle()
	disabledStyle = lipgloss.NewStyle().Faint(true)
	checkedStyle  = lipgloss.NewStyle().Bold(true)
)

// Snapshot renders every visible menubox, in tree order.
func (d *Document) Snapshot() []BoxView {
	body, _ := d.Body().(*memdoc.Element)
	var views []BoxView
	for _, child := range body.Children() {
		if child.Tag() != "menubox" || child.Style("visibility") == "hidden" {
			continue
		}
		b := child.Bounds()
		views = append(views, BoxView{
			ID:      child.Attr("id"),
			Col:     int(b.X),
			Row:     int(b.Y),
			Content: renderBox(child),
		})
	}
	return views
}

func renderBox(box *memdoc.Element) string {
	var rows []string
	for _, child := range box.Children() {
		if child.Tag() != "list" {
			continue
		}
		for _, row := range child.Children() {
			rows = append(rows, renderRow(row))
		}
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func renderRow(row *memdoc.Element) string {
	if row.Tag() == "separator" {
		return strings.Repeat("-", 8)
	}

	text := rowLabel(row)
	switch {
	case row.HasClass("checked"):
		text = checkedStyle.Render("[x] " + text)
	case row.HasClass("disabled"):
		text = disabledStyle.Render(text)
	default:
		text = itemStyle.Render(text)
	}
	if row.HasClass("has-submenu") {
		text += " >"
	}
	return text
}

func rowLabel(row *memdoc.Element) string {
	for _, c := range row.Children() {
		if c.Tag() == "label" {
			return c.Text()
		}
	}
	return row.Text()
}

// Click builds a pointer event for the given cell and routes it through the
// coordinator.
func (d *Document) Click(coord *menubox.Coordinator, col, row int32) {
	coord.DispatchClick(&menubox.PointerEvent{X: col, Y: row, Target: d.hitTest(col, row)})
}

func (d *Document) hitTest(x, y int32) menubox.Element {
	body, _ := d.Body().(*memdoc.Element)
	if hit := hitTest(body, x, y); hit != nil {
		return hit
	}
	return nil
}

func hitTest(e *memdoc.Element, x, y int32) *memdoc.Element {
	if e == nil || e.Style("visibility") == "hidden" {
		return nil
	}
	children := e.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := hitTest(children[i], x, y); hit != nil {
			return hit
		}
	}
	b := e.Bounds()
	if x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom() {
		return e
	}
	return nil
}
