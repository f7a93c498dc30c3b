package menubox

import (
	"errors"
	"fmt"
)

// Sentinel errors for definition contract violations.
var (
	// ErrSubmenuWithoutKey indicates an item definition carried a submenu
	// but no key. A key is the interactive identity a submenu hangs off.
	ErrSubmenuWithoutKey = errors.New("submenu requires an item key")

	// ErrDuplicateItemKey indicates two item definitions in one menubox
	// shared a key.
	ErrDuplicateItemKey = errors.New("duplicate item key")

	// ErrNoDocument indicates a coordinator was constructed without a host
	// document capability.
	ErrNoDocument = errors.New("coordinator requires a document")
)

// ContractError represents a violation of the construction contract
// (malformed definition, missing capability). These surface synchronously
// from New; a menubox is never half-registered after one.
//
// Id collisions are NOT contract errors: re-registering an id replaces the
// prior instance with an informational log line.
type ContractError struct {
	Op  string // Operation that failed (e.g., "new", "load_options")
	Err error  // Underlying error
}

func (e *ContractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("menubox: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("menubox: %s", e.Op)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// NewContractError creates a new contract error.
func NewContractError(op string, err error) *ContractError {
	return &ContractError{Op: op, Err: err}
}

// IsContractError checks if an error is a contract error.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}
