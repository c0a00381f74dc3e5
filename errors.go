package tripod

import "errors"

var (
	// ErrInvalidConfig signals an invalid arena configuration.
	ErrInvalidConfig = errors.New("tripod: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index or range.
	ErrIndexOutOfBounds = errors.New("tripod: index out of bounds")
	// ErrForeignArena signals that two trees of different arenas have been
	// combined.
	ErrForeignArena = errors.New("tripod: trees belong to different arenas")
	// ErrSelfSplice signals an attempt to splice a tree into itself.
	ErrSelfSplice = errors.New("tripod: cannot splice a tree into itself")
	// ErrPermitBusy signals that an access permit could not be granted because
	// of a conflicting permit still held.
	ErrPermitBusy = errors.New("tripod: access permit not available")
	// ErrInvariant signals a corrupted tree, reported by Check.
	ErrInvariant = errors.New("tripod: tree invariant violated")
)

// PermitError is the panic value raised when an operation is presented with
// a permit it may not use: a permit of another arena, a released permit, or
// a shared permit for a mutating operation. This is a programming error on
// the client side and therefore not reported as an error return.
type PermitError string

func (e PermitError) Error() string {
	return string(e)
}
