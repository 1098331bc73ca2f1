package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no contact matches the requested id.
var ErrNotFound = errors.New("contact not found")

// DriverError means the database driver could not be located. Nothing can be done about it at
// runtime; the entry points treat it as fatal.
type DriverError struct {
	Driver string
	Err    error
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("load driver %s: %v", e.Driver, e.Err)
}

func (e *DriverError) Unwrap() error { return e.Err }

// ConnectionError means the database file could not be opened.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// WriteError means a DDL or DML statement failed.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadError means a query failed or a row could not be extracted from its result set.
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
