package repository

import "errors"

// ErrNotFound is returned when no record exists for the given identifier.
// A delete that affects no rows reports it as well, so re-deleting an
// already removed record is safe.
var ErrNotFound = errors.New("record not found")
