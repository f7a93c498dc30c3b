// Package evkey reads a Linux evdev input device and turns Escape presses
// into menubox key events, for hosts without a windowing system delivering
// keyboard input (kiosks, handhelds reading /dev/input directly).
//
// Events arrive on a channel so the host's event loop stays the single
// place menu state is mutated from.
package evkey

import (
	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/menubox/pkg/menubox"
)

// Watcher reads key events from one evdev device.
type Watcher struct {
	dev    *evdev.InputDevice
	events chan menubox.KeyEvent
	done   chan struct{}
}

// Open starts watching the device at path (e.g. /dev/input/event1).
func Open(path string) (*Watcher, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		dev:    dev,
		events: make(chan menubox.KeyEvent, 4),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events returns the channel dismissal key events arrive on. The host
// forwards them to Coordinator.HandleKey from its own loop.
func (w *Watcher) Events() <-chan menubox.KeyEvent {
	return w.events
}

func (w *Watcher) run() {
	defer close(w.events)
	for {
		ev, err := w.dev.ReadOne()
		if err != nil {
			return
		}
		if ev.Type != evdev.EV_KEY || ev.Value != 1 {
			continue
		}
		if ev.Code != evdev.KEY_ESC {
			continue
		}
		select {
		case w.events <- menubox.KeyEvent{Key: menubox.KeyEscape}:
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and releases the device.
func (w *Watcher) Close() error {
	close(w.done)
	return w.dev.Close()
}
