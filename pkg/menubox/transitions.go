package menubox

import (
	"fmt"
	"strconv"
)

// Transition is a [closed, open] style value pair for one style dimension.
// Applying a transition sets the dimension to whichever value matches the
// target state. The open value "auto" on "height" or "width" resolves at
// apply time to the box's current natural content size, which makes
// expand/collapse pairs possible without hard-coded sizes.
type Transition struct {
	Closed string
	Open   string
}

// UnmarshalTOML accepts the two-element array form used in definition
// files: visibility = ["hidden", "visible"].
func (t *Transition) UnmarshalTOML(v any) error {
	arr, ok := v.([]any)
	if !ok || len(arr) != 2 {
		return fmt.Errorf("transition must be a [closed, open] pair, got %v", v)
	}
	closed, ok1 := arr[0].(string)
	open, ok2 := arr[1].(string)
	if !ok1 || !ok2 {
		return fmt.Errorf("transition values must be strings, got %v", arr)
	}
	t.Closed = closed
	t.Open = open
	return nil
}

// defaultTransitions is the minimal show/hide toggle used when a definition
// supplies none.
func defaultTransitions() map[string]Transition {
	return map[string]Transition{
		"visibility": {Closed: "hidden", Open: "visible"},
	}
}

// applyTransitions moves node into the open or closed state by writing every
// mapped style dimension.
func applyTransitions(node Element, table map[string]Transition, open bool) {
	for dim, tr := range table {
		value := tr.Closed
		if open {
			value = tr.Open
		}
		if value == "auto" && (dim == "height" || dim == "width") {
			w, h := node.NaturalSize()
			if dim == "height" {
				value = px(h)
			} else {
				value = px(w)
			}
		}
		node.SetStyle(dim, value)
	}
}

// px renders a pixel count as a style value.
func px(v int32) string {
	return strconv.FormatInt(int64(v), 10) + "px"
}
