package handle

import "errors"

var (
	// ErrInvalidArgument reports a creation attempt with no capability
	// table.
	ErrInvalidArgument = errors.New("handle: nil capability table")

	// ErrBadHandle reports use of a handle that is out of range or not
	// bound to a live resource. Seeing it usually means the caller kept
	// a handle value past its Close.
	ErrBadHandle = errors.New("handle: bad handle")

	// ErrOutOfMemory reports that growing the slot array would exceed
	// the table's configured slot limit.
	ErrOutOfMemory = errors.New("handle: slot limit reached")

	// ErrCancelled reports a creation attempt after orderly shutdown has
	// begun.
	ErrCancelled = errors.New("handle: runtime is shutting down")

	// ErrNotSupported reports that a resource does not implement the
	// requested capability. It is a routine negative result, not a
	// failure; callers probing for optional capabilities branch on it.
	ErrNotSupported = errors.New("handle: capability not supported")
)
