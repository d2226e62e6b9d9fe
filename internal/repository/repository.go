package repository

import "errors"

// ErrNotFound marks a lookup that matched no row. Callers translate it
// into their own domain error.
var ErrNotFound = errors.New("record not found")
