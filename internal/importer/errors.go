package importer

import (
	"fmt"
	"strings"
)

// HeaderValidationError reports required canonical fields missing from an
// input unit's header row. It aborts the whole unit before any row is read.
type HeaderValidationError struct {
	Missing []string
	Found   []string
}

func (e *HeaderValidationError) Error() string {
	return fmt.Sprintf("missing required columns [%s], found headers [%s]",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// RowValidationError reports a single row failing minimal field requirements.
// Only that row is skipped.
type RowValidationError struct {
	Line   int
	Reason string
}

func (e *RowValidationError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}

// EncodingError reports an input unit that could not be decoded as UTF-8.
type EncodingError struct {
	Unit string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unit %q is not valid UTF-8", e.Unit)
}

// PersistenceError reports a catalog store write failure. Scope tells the
// coordinator whether only the current row or the whole unit must be rolled
// back.
type PersistenceError struct {
	Scope ErrorScope
	Err   error
}

// ErrorScope distinguishes row-scoped from unit-scoped persistence failures.
type ErrorScope int

const (
	ScopeRow ErrorScope = iota
	ScopeUnit
)

func (e *PersistenceError) Error() string {
	if e.Scope == ScopeUnit {
		return fmt.Sprintf("unit-fatal store error: %v", e.Err)
	}
	return fmt.Sprintf("store error: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
