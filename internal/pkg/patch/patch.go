// Package patch merges optional fields from partial-update requests.
package patch

import "slices"

// Or returns *field when the request set it, else current.
func Or[T any](field *T, current T) T {
	if field != nil {
		return *field
	}
	return current
}

// SliceOr is Or for slices. The result never aliases the request or the
// current value, and an explicit empty list clears the field.
func SliceOr[S ~[]E, E any](field *S, current S) S {
	src := current
	if field != nil {
		src = *field
	}
	if src == nil {
		return S{}
	}
	return slices.Clone(src)
}
