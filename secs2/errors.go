package secs2

import (
	"errors"
	"fmt"
)

// FormatError indicates malformed SECS-II wire bytes: a truncated buffer, an
// unrecognized format code, a zero length-byte count, or a payload length
// that is not a multiple of the element width.
type FormatError struct {
	reason string
}

// NewFormatError creates a FormatError with a formatted reason.
func NewFormatError(format string, args ...any) *FormatError {
	return &FormatError{reason: fmt.Sprintf(format, args...)}
}

func (e *FormatError) Error() string {
	return e.reason
}

// ValueRangeError indicates an application value outside the representable
// range of the declared item type.
type ValueRangeError struct {
	ItemType string // item type name, e.g. "u1"
	Value    any    // the offending value
}

func newRangeError(itemType string, value any) *ValueRangeError {
	return &ValueRangeError{ItemType: itemType, Value: value}
}

func (e *ValueRangeError) Error() string {
	return fmt.Sprintf("value %v out of range for %s item", e.Value, e.ItemType)
}

// An ItemError records a failed item creation or manipulation.
type ItemError struct {
	err error
}

// NewItemError wraps err into an ItemError. If err already is an ItemError
// the inner error is reused instead of nesting.
func NewItemError(err error) *ItemError {
	itemErr := &ItemError{}
	if errors.As(err, &itemErr) {
		return &ItemError{err: errors.Unwrap(err)}
	}

	return &ItemError{err: err}
}

func newItemErrorWithMsg(errMsg string) *ItemError {
	return &ItemError{err: errors.New(errMsg)}
}

func (e *ItemError) Error() string {
	return e.err.Error()
}

func (e *ItemError) Unwrap() error {
	return e.err
}
