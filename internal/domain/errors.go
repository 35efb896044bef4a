// Package domain holds errors shared by every domain package.
package domain

import "errors"

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned by repositories when a unique constraint would be violated.
var ErrConflict = errors.New("record already exists")
