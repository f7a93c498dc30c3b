package menubox

import "fmt"

// SelectMode controls whether clicking an item fires the callback and
// whether the menubox closes afterwards.
type SelectMode int

const (
	// SelectNormal fires the callback and closes the menubox (and its open
	// ancestry) after a click.
	SelectNormal SelectMode = iota

	// SelectPersistent fires nothing and stays open; items are inert
	// targets the caller inspects later.
	SelectPersistent

	// SelectMulti toggles the clicked item's checked flag and stays open
	// without firing the callback.
	SelectMulti

	// SelectMultiInteractive toggles the checked flag, fires the callback,
	// and stays open.
	SelectMultiInteractive
)

func (m SelectMode) String() string {
	switch m {
	case SelectNormal:
		return "normal"
	case SelectPersistent:
		return "persistent"
	case SelectMulti:
		return "multiselect"
	case SelectMultiInteractive:
		return "multiselect_interactive"
	}
	return fmt.Sprintf("SelectMode(%d)", int(m))
}

// UnmarshalText allows select modes in TOML definitions.
func (m *SelectMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal", "":
		*m = SelectNormal
	case "persistent":
		*m = SelectPersistent
	case "multiselect":
		*m = SelectMulti
	case "multiselect_interactive":
		*m = SelectMultiInteractive
	default:
		return fmt.Errorf("unknown select mode %q", text)
	}
	return nil
}

// PositionMode selects whether the box is positioned in document coordinates
// (tracking scroll) or pinned to the viewport.
type PositionMode int

const (
	PositionAbsolute PositionMode = iota
	PositionFixed
)

func (p PositionMode) String() string {
	if p == PositionFixed {
		return "fixed"
	}
	return "absolute"
}

// UnmarshalText allows position modes in TOML definitions.
func (p *PositionMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "absolute", "":
		*p = PositionAbsolute
	case "fixed":
		*p = PositionFixed
	default:
		return fmt.Errorf("unknown position mode %q", text)
	}
	return nil
}
