package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable means the data directory or file could not be accessed.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrSerialization means the log could not be encoded.
	ErrSerialization = errors.New("serialization failed")
)

// PersistenceError is returned once every write attempt has failed.
// Err is the cause of the last attempt.
type PersistenceError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s after %d attempts: %v", e.Op, e.Attempts, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
