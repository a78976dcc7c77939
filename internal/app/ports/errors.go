package ports

import "errors"

var (
	// ErrNotFound: no pet (or inventory) persisted under that id.
	ErrNotFound = errors.New("not found")
	// ErrConflict: optimistic version check failed, the snapshot was
	// settled concurrently.
	ErrConflict = errors.New("conflict")
)
