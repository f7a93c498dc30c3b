// Package menubox renders hierarchical pop-up menus anchored to a pointer
// position or a document element, with nested submenus, single/multi-select
// modes, checked/enabled item states, and viewport-aware repositioning.
//
// The package is host-agnostic: all rendering and layout goes through the
// Document capability interface, and item visuals are built by a replaceable
// ItemRenderer. Backends for SDL2 windows, terminal cell grids, and a plain
// in-memory tree live under platform/.
//
// Menus are coordinated through a Coordinator, which owns the registry of
// live menuboxes, global dismissal (outside click, Escape), and the single
// pending submenu-open timer. Init wires a process-wide default coordinator
// for hosts that only ever have one document.
package menubox

import (
	"github.com/BrandonKowalski/menubox/pkg/menubox/internal"
)

// InitOptions configures package initialization.
type InitOptions struct {
	Document  Document  // Host document the default coordinator renders into
	Scheduler Scheduler // Timer capability; nil means TimerScheduler
	LogPath   string    // Full path for the log file, including filename (creates parent directories)
	LogLevel  string    // "debug", "info", "warn", "error"; empty means info
}

var defaultCoordinator *Coordinator

// Init sets up logging and the default coordinator. Must be called before
// the package-level Create/Lookup/CloseAll helpers; hosts juggling multiple
// documents should skip it and construct Coordinators directly.
func Init(options InitOptions) *Coordinator {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	defaultCoordinator = NewCoordinator(options.Document, options.Scheduler, internal.GetLogger())
	return defaultCoordinator
}

// Default returns the coordinator set up by Init, or nil before Init.
func Default() *Coordinator {
	return defaultCoordinator
}

// Create constructs a menubox on the default coordinator.
func Create(id string, opts Options) (*Menubox, error) {
	if defaultCoordinator == nil {
		return nil, NewContractError("create", ErrNoDocument)
	}
	return New(defaultCoordinator, id, opts)
}

// Lookup returns the live menubox with the given id on the default
// coordinator, or nil.
func Lookup(id string) *Menubox {
	if defaultCoordinator == nil {
		return nil
	}
	return defaultCoordinator.Lookup(id)
}

// CloseAll closes every menubox on the default coordinator.
func CloseAll() {
	if defaultCoordinator != nil {
		defaultCoordinator.CloseAll()
	}
}
