package errors

import (
	"errors"
	"fmt"
)

// ErrNotFound is the root of every "referenced record does not exist" error.
var ErrNotFound = errors.New("not found")

// StoreError reports a failed key-value call or a record that could not be
// decoded after it was read.
type StoreError struct {
	Op  string `json:"op"`
	Key string `json:"key"`
	Err error  `json:"-"`
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op, key string, err error) *StoreError {
	return &StoreError{Op: op, Key: key, Err: err}
}

// IsStoreError reports whether err carries a StoreError anywhere in its chain.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
