package repository

import "errors"

// ErrNotFound is returned (wrapped) when a row does not exist.
var ErrNotFound = errors.New("not found")
