package domain

import "errors"

var (
	// ErrNotFound marks a remote response saying the entity does not exist.
	// Resolution treats it as a routine miss, never as a fault.
	ErrNotFound = errors.New("entity not found")

	// ErrForbidden marks a remote response denying access to the entity.
	// Resolution treats it the same way as ErrNotFound.
	ErrForbidden = errors.New("access forbidden")
)

// IsMiss reports whether err is one of the remote response classes that
// resolution swallows as a routine miss. Anything else is a transport fault
// worth surfacing to the caller.
func IsMiss(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrForbidden)
}
