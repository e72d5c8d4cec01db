package sf

import (
	"github.com/semifab/secsmsg/secs2"
)

// Schema describes the wire structure of one data item position inside a
// message body. Implementations cover scalar items, fixed-arity lists,
// homogeneous arrays, and dynamic type unions.
//
// Schemas are immutable once constructed and safe for concurrent use.
type Schema interface {
	// Build validates value against the schema and assembles a data item
	// tree from it. A secs2.Item value bypasses assembly and is validated
	// as-is.
	Build(value any) (secs2.Item, error)
	// Validate checks a decoded item tree against the schema.
	Validate(item secs2.Item) error
	// maxBytes returns the maximum encoded size in bytes of an item
	// conforming to this schema, or -1 when unbounded.
	maxBytes() int
}

const (
	anySizeKind = iota
	exactSizeKind
	maxSizeKind
)

// SizeConstraint bounds the element count of a scalar item: the number of
// characters of an ASCII item or the number of elements of any other
// non-list item.
type SizeConstraint struct {
	kind  int
	count int
}

// AnySize places no bound on the element count.
var AnySize = SizeConstraint{}

// Exact requires exactly count elements.
func Exact(count int) SizeConstraint {
	return SizeConstraint{kind: exactSizeKind, count: count}
}

// Max allows at most count elements.
func Max(count int) SizeConstraint {
	return SizeConstraint{kind: maxSizeKind, count: count}
}

func (c SizeConstraint) check(itemType string, count int) error {
	switch c.kind {
	case exactSizeKind:
		if count != c.count {
			return newStructureError("%s item requires exactly %d elements, got %d", itemType, c.count, count)
		}
	case maxSizeKind:
		if count > c.count {
			return newStructureError("%s item allows at most %d elements, got %d", itemType, c.count, count)
		}
	}

	return nil
}

// bound returns the maximum permitted element count, or -1 when unbounded.
func (c SizeConstraint) bound() int {
	if c.kind == anySizeKind {
		return -1
	}

	return c.count
}
