package holder

import "errors"

var (
	// ErrTypeMismatch is returned when a value does not have the type its
	// key was declared with.
	ErrTypeMismatch = errors.New("holder: value type does not match key type")

	// ErrUnknownKey is returned by [Holder.Set] for a name no typed key has
	// declared.
	ErrUnknownKey = errors.New("holder: unknown key")
)
