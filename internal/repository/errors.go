package repository

import "errors"

// ErrNotFound is wrapped by Get-style lookups that match no row.
var ErrNotFound = errors.New("not found")
