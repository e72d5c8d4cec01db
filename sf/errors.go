package sf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMessage indicates a stream/function pair with no catalog entry.
	ErrUnknownMessage = errors.New("unknown message type")
	// ErrDuplicateRegistration indicates a second registration for a
	// stream/function pair already present in the catalog.
	ErrDuplicateRegistration = errors.New("message type already registered")
	// ErrInvalidStreamCode indicates a stream code outside [0, 127].
	ErrInvalidStreamCode = errors.New("stream code out of range [0, 127]")
	// ErrInvalidDirection indicates a message type that flows neither to the
	// host nor to the equipment.
	ErrInvalidDirection = errors.New("message type must flow to host, to equipment, or both")
	// ErrInvalidReplyFlags indicates a reply-required flag on a message type
	// that has no reply.
	ErrInvalidReplyFlags = errors.New("reply required but message type has no reply")
	// ErrUnexpectedReplyRequest indicates a reply request on a secondary
	// (even function code) message.
	ErrUnexpectedReplyRequest = errors.New("reply cannot be requested for a secondary message")
)

// StructureError indicates a value or decoded item whose shape does not
// match the schema: wrong arity, wrong item type, a missing named field, or
// an element count outside the declared size constraint.
type StructureError struct {
	// Path locates the failing position inside a nested value, e.g.
	// "DATA[2].RPTID". Empty for a failure at the root.
	Path   string
	Reason string
}

func (e *StructureError) Error() string {
	if e.Path == "" {
		return e.Reason
	}

	return e.Path + ": " + e.Reason
}

func newStructureError(format string, args ...any) *StructureError {
	return &StructureError{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedTypeError indicates an item type rejected by a dynamic schema's
// whitelist.
type UnsupportedTypeError struct {
	// Path locates the failing position inside a nested value.
	Path string
	// Got is the rejected item type name, e.g. "f8".
	Got string
	// Allowed lists the permitted item type names.
	Allowed []string
}

func (e *UnsupportedTypeError) Error() string {
	msg := fmt.Sprintf("item type %s not permitted, allowed types: [%s]", e.Got, strings.Join(e.Allowed, " "))
	if e.Path == "" {
		return msg
	}

	return e.Path + ": " + msg
}

// prefixPath prepends a path segment to an error produced by a nested
// schema, so a failure deep in a value names the field or index it came
// from.
func prefixPath(segment string, err error) error {
	var structErr *StructureError
	if errors.As(err, &structErr) {
		return &StructureError{Path: joinPath(segment, structErr.Path), Reason: structErr.Reason}
	}

	var typeErr *UnsupportedTypeError
	if errors.As(err, &typeErr) {
		return &UnsupportedTypeError{Path: joinPath(segment, typeErr.Path), Got: typeErr.Got, Allowed: typeErr.Allowed}
	}

	return fmt.Errorf("%s: %w", segment, err)
}

func joinPath(segment, rest string) string {
	if rest == "" {
		return segment
	}
	if strings.HasPrefix(rest, "[") {
		return segment + rest
	}

	return segment + "." + rest
}
