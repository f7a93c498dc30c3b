package menubox

import "fmt"

// HorizontalAlign controls how a menubox aligns to its anchor horizontally.
type HorizontalAlign int

const (
	AlignLeft   HorizontalAlign = iota // own left edge on anchor's left edge (default)
	AlignBefore                        // own right edge on anchor's left edge
	AlignRight                         // own right edge on anchor's right edge
	AlignAfter                         // own left edge on anchor's right edge
)

// VerticalAlign controls how a menubox aligns to its anchor vertically.
type VerticalAlign int

const (
	AlignBelow  VerticalAlign = iota // own top edge on anchor's bottom edge (default)
	AlignAbove                       // own bottom edge on anchor's top edge
	AlignTop                         // own top edge on anchor's top edge
	AlignBottom                      // own bottom edge on anchor's bottom edge

	// alignSubmenuTop aligns the box top to the anchor top minus the box's
	// own top padding and border, so the first item's interior lines up
	// with the parent item. Reserved for submenus; construction forces it
	// and no public value maps to it.
	alignSubmenuTop
)

// Adjustment pairs the horizontal and vertical alignment directives.
type Adjustment struct {
	Horizontal HorizontalAlign `toml:"horizontal"`
	Vertical   VerticalAlign   `toml:"vertical"`
}

// submenuAdjustment is the forced alignment for nested menuboxes: open to
// the right of the parent item, item tops aligned.
func submenuAdjustment() Adjustment {
	return Adjustment{Horizontal: AlignAfter, Vertical: alignSubmenuTop}
}

func (a HorizontalAlign) String() string {
	switch a {
	case AlignBefore:
		return "before"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignAfter:
		return "after"
	}
	return fmt.Sprintf("HorizontalAlign(%d)", int(a))
}

// UnmarshalText allows horizontal alignment values in TOML definitions.
func (a *HorizontalAlign) UnmarshalText(text []byte) error {
	switch string(text) {
	case "before":
		*a = AlignBefore
	case "left", "":
		*a = AlignLeft
	case "right":
		*a = AlignRight
	case "after":
		*a = AlignAfter
	default:
		return fmt.Errorf("unknown horizontal alignment %q", text)
	}
	return nil
}

func (a VerticalAlign) String() string {
	switch a {
	case AlignAbove:
		return "above"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignBelow:
		return "below"
	case alignSubmenuTop:
		return "submenu-top"
	}
	return fmt.Sprintf("VerticalAlign(%d)", int(a))
}

// UnmarshalText allows vertical alignment values in TOML definitions.
// "submenu-top" is reserved and rejected here; only construction of a nested
// menubox produces it.
func (a *VerticalAlign) UnmarshalText(text []byte) error {
	switch string(text) {
	case "above":
		*a = AlignAbove
	case "top":
		*a = AlignTop
	case "bottom":
		*a = AlignBottom
	case "below", "":
		*a = AlignBelow
	default:
		return fmt.Errorf("unknown vertical alignment %q", text)
	}
	return nil
}
