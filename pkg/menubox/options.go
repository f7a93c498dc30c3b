package menubox

import (
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultSubmenuDelay is the hover delay before a submenu opens when the
// definition does not set one.
const DefaultSubmenuDelay = 300 * time.Millisecond

// Options is the declarative definition a menubox is constructed from.
// The zero value is a usable definition: an empty normal-mode menu,
// absolutely positioned, left/below adjusted, visibility-toggled.
//
// Definitions without callbacks and renderers round-trip through TOML; see
// LoadOptions.
type Options struct {
	// CSS holds space-separated class names added to the box node.
	CSS string `toml:"css"`

	Position   PositionMode `toml:"position"`
	Adjustment Adjustment   `toml:"adjustment"`

	// Transitions maps a style dimension to its [closed, open] value pair.
	// Empty means the default visibility toggle.
	Transitions map[string]Transition `toml:"transitions"`

	SelectMode SelectMode `toml:"select_mode"`

	// SubmenuDelayMS is the hover delay in milliseconds before a nested
	// menubox opens. Zero means the default (300); negative values are
	// clamped to zero, opening immediately.
	SubmenuDelayMS int `toml:"submenu_delay_ms"`

	Items []ItemDefinition `toml:"items"`

	// Callback is invoked with the clicked item, per select-mode rules.
	Callback func(item *MenuItem) `toml:"-"`

	// Renderer overrides how item nodes are built. Nil means DefaultRenderer.
	Renderer ItemRenderer `toml:"-"`
}

// ItemDefinition describes one entry in a menubox definition.
//
// An entry without a key is a passive label: it never fires callbacks and
// never closes anything. Separator entries are pure dividers, rendered but
// never tracked as items. A Submenu requires a Key; New rejects the
// definition otherwise.
type ItemDefinition struct {
	Key       string `toml:"key"`
	Label     string `toml:"label"`
	Separator bool   `toml:"separator"`
	Checked   bool   `toml:"checked"`

	// Disabled inverts the default-enabled state of the item.
	Disabled bool `toml:"disabled"`

	CSSClasses []string `toml:"css_classes"`

	// Icon is a file path or http(s) URL of an SVG icon for the item.
	Icon string `toml:"icon"`

	Submenu *Options `toml:"submenu"`

	// Callback, when set, short-circuits the shared click handler for this
	// item entirely: no checked toggle, no box callback, no close-on-normal.
	Callback func(item *MenuItem) `toml:"-"`
}

// LoadOptions reads a declarative menubox definition from a TOML file.
// Callbacks and renderer overrides are code-level concerns and are assigned
// by the caller afterwards.
func LoadOptions(path string) (Options, error) {
	var opts Options
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, NewContractError("load_options", err)
	}
	return opts, nil
}

func (o Options) submenuDelay() time.Duration {
	switch {
	case o.SubmenuDelayMS < 0:
		return 0
	case o.SubmenuDelayMS == 0:
		return DefaultSubmenuDelay
	}
	return time.Duration(o.SubmenuDelayMS) * time.Millisecond
}

func (o Options) transitionTable() map[string]Transition {
	if len(o.Transitions) == 0 {
		return defaultTransitions()
	}
	table := make(map[string]Transition, len(o.Transitions))
	for dim, tr := range o.Transitions {
		table[dim] = tr
	}
	return table
}

func (o Options) itemRenderer() ItemRenderer {
	if o.Renderer != nil {
		return o.Renderer
	}
	return DefaultRenderer{}
}
