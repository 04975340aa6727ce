package store

import (
	"errors"
	"fmt"
)

// ErrNoActiveUser is returned by per-user operations when no current user
// is set. Call Progress.Init before using the ledger.
var ErrNoActiveUser = errors.New("no active user")

// ErrUnknownUser is returned when an operation names a user id that does
// not exist.
var ErrUnknownUser = errors.New("unknown user")

// ErrInvalidSetting is returned when a setting value is out of range.
var ErrInvalidSetting = errors.New("invalid setting")

// ErrCorruptState indicates the persisted blob could not be decoded or
// failed schema validation.
type ErrCorruptState struct {
	Err error
}

func (e *ErrCorruptState) Error() string {
	return fmt.Sprintf("corrupt persisted state: %v", e.Err)
}

func (e *ErrCorruptState) Unwrap() error { return e.Err }
