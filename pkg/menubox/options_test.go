package menubox_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/menubox/pkg/menubox"
)

const definitionTOML = `
css = "context-menu dark"
position = "fixed"
select_mode = "multiselect"
submenu_delay_ms = 150

[adjustment]
horizontal = "after"
vertical = "top"

[transitions]
visibility = ["hidden", "visible"]
height = ["0px", "auto"]

[[items]]
key = "open"
label = "Open"
icon = "icons/open.svg"

[[items]]
separator = true

[[items]]
key = "recent"
label = "Recent"

[items.submenu]
[[items.submenu.items]]
key = "one"
label = "First"
checked = true

[[items]]
key = "quit"
label = "Quit"
disabled = true
`

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOptions(t *testing.T) {
	opts, err := menubox.LoadOptions(writeDefinition(t, definitionTOML))
	require.NoError(t, err)

	assert.Equal(t, "context-menu dark", opts.CSS)
	assert.Equal(t, menubox.PositionFixed, opts.Position)
	assert.Equal(t, menubox.SelectMulti, opts.SelectMode)
	assert.Equal(t, 150, opts.SubmenuDelayMS)
	assert.Equal(t, menubox.AlignAfter, opts.Adjustment.Horizontal)
	assert.Equal(t, menubox.AlignTop, opts.Adjustment.Vertical)
	assert.Equal(t, menubox.Transition{Closed: "0px", Open: "auto"}, opts.Transitions["height"])

	require.Len(t, opts.Items, 4)
	assert.Equal(t, "icons/open.svg", opts.Items[0].Icon)
	assert.True(t, opts.Items[1].Separator)
	require.NotNil(t, opts.Items[2].Submenu)
	assert.True(t, opts.Items[2].Submenu.Items[0].Checked)
	assert.True(t, opts.Items[3].Disabled)
}

func TestLoadOptionsBuildsWorkingMenu(t *testing.T) {
	opts, err := menubox.LoadOptions(writeDefinition(t, definitionTOML))
	require.NoError(t, err)

	coord, _, _ := newTestCoordinator(800, 600)
	m, err := menubox.New(coord, "ctx", opts)
	require.NoError(t, err)

	assert.Len(t, m.Items(), 3, "separator is not an item")
	assert.NotNil(t, coord.Lookup("ctx.recent"))
	assert.False(t, m.Item("quit").Enabled())
}

func TestLoadOptionsRejectsReservedAdjustment(t *testing.T) {
	_, err := menubox.LoadOptions(writeDefinition(t, `
[adjustment]
vertical = "submenu-top"
`))
	require.Error(t, err)
	assert.True(t, menubox.IsContractError(err))
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := menubox.LoadOptions(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, menubox.IsContractError(err))
}

func TestTransitionAutoResolvesToNaturalSize(t *testing.T) {
	coord, _, _ := newTestCoordinator(800, 600)

	m, err := menubox.New(coord, "m1", menubox.Options{
		Transitions: map[string]menubox.Transition{
			"visibility": {Closed: "hidden", Open: "visible"},
			"height":     {Closed: "0px", Open: "auto"},
		},
		Items: []menubox.ItemDefinition{{Key: "a", Label: "A"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "0px", m.Node().Style("height"))

	m.Popup(&menubox.PointerEvent{X: 5, Y: 5}, nil, nil)
	// One 16px item: "auto" resolves to the natural content height.
	assert.Equal(t, "16px", m.Node().Style("height"))
	assert.Equal(t, "visible", m.Node().Style("visibility"))

	m.Close(true)
	assert.Equal(t, "0px", m.Node().Style("height"))
}
