package service

import (
	"errors"
	"fmt"
)

var (
	// ErrStore identifies any failed store operation: connectivity loss,
	// constraint violation or input the store could not accept.
	ErrStore = errors.New("store operation failed")

	// ErrNotFound is returned when an update that must return the row
	// matched nothing.
	ErrNotFound = errors.New("requested resource not found")
)

// StoreError wraps an error surfaced by the repository together with the
// operation that produced it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("error %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrStore) hold for every StoreError.
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
