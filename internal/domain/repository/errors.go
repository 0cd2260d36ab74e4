package repository

import "errors"

// ErrNotFound is returned when an id has no matching document.
var ErrNotFound = errors.New("document not found")
