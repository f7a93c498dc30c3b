package menubox

// MenuItem is one entry in a menubox. It wraps the renderable node the
// ItemRenderer produced, tracks checked/enabled state, and optionally owns a
// nested submenu menubox. Items belong to exactly one menubox and live and
// die with it.
type MenuItem struct {
	key      string
	label    string
	checked  bool
	enabled  bool
	node     Element
	box      *Menubox
	submenu  *Menubox
	callback func(item *MenuItem)
}

// Key returns the item's interactive identity. Empty for passive labels.
func (mi *MenuItem) Key() string {
	return mi.key
}

// Label returns the item's display text as defined, before any renderer
// localization.
func (mi *MenuItem) Label() string {
	return mi.label
}

// Node returns the rendered node backing this item.
func (mi *MenuItem) Node() Element {
	return mi.node
}

// Menubox returns the menubox owning this item.
func (mi *MenuItem) Menubox() *Menubox {
	return mi.box
}

// Submenu returns the nested menubox this item opens on hover, or nil.
func (mi *MenuItem) Submenu() *Menubox {
	return mi.submenu
}

// Checked reports the item's checked state.
func (mi *MenuItem) Checked() bool {
	return mi.checked
}

// SetChecked updates the checked state and the node's "checked" class.
func (mi *MenuItem) SetChecked(checked bool) {
	mi.checked = checked
	if checked {
		mi.node.AddClass("checked")
	} else {
		mi.node.RemoveClass("checked")
	}
}

// Enabled reports whether the item reacts to clicks.
func (mi *MenuItem) Enabled() bool {
	return mi.enabled
}

// SetEnabled updates the enabled state and the node's "disabled" class.
func (mi *MenuItem) SetEnabled(enabled bool) {
	mi.enabled = enabled
	if enabled {
		mi.node.RemoveClass("disabled")
	} else {
		mi.node.AddClass("disabled")
	}
}

// click runs the select-mode dispatch for this item. The menubox has already
// filtered out disabled items and unresolved targets.
func (mi *MenuItem) click() {
	if mi.key == "" {
		return
	}

	// An item-specific callback replaces the shared handler outright: no
	// checked toggle, no box callback, no close-on-normal.
	if mi.callback != nil {
		mi.callback(mi)
		return
	}

	box := mi.box
	mode := box.mode

	if mode == SelectMulti || mode == SelectMultiInteractive {
		mi.SetChecked(!mi.checked)
	}

	if mi.submenu == nil && (mode == SelectNormal || mode == SelectMultiInteractive) {
		if cb := box.root().callback; cb != nil {
			cb(mi)
		}
	}

	// A submenu item opens its submenu instead of toggling or closing.
	if mi.submenu != nil {
		mi.submenu.Popup(nil, box.root().context, mi.node)
		return
	}

	if mode == SelectNormal {
		box.Close(false)
	}
}
