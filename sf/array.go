package sf

import (
	"fmt"

	"github.com/semifab/secsmsg/secs2"
)

// ArraySchema constrains a list item position to any number of children
// that all conform to one element schema. It covers the repeated groups of
// the standard message set, such as the report definitions of S2F33 or the
// status values of S1F4.
type ArraySchema struct {
	elem Schema
}

// Array creates a variable-length homogeneous list schema.
func Array(elem Schema) *ArraySchema {
	return &ArraySchema{elem: elem}
}

// Elem returns the element schema.
func (s *ArraySchema) Elem() Schema {
	return s.elem
}

// Build assembles a list item with one child per element of value. A nil
// value builds an empty list. A secs2.Item value is validated as-is.
func (s *ArraySchema) Build(value any) (secs2.Item, error) {
	if item, ok := value.(secs2.Item); ok {
		if err := s.Validate(item); err != nil {
			return nil, err
		}

		return item, nil
	}

	if value == nil {
		return secs2.NewListItem(), nil
	}

	elems, ok := toAnySlice(value)
	if !ok {
		return nil, newStructureError("expected slice value for array, got %T", value)
	}

	children := make([]secs2.Item, len(elems))
	for i, elem := range elems {
		child, err := s.elem.Build(elem)
		if err != nil {
			return nil, prefixPath(fmt.Sprintf("[%d]", i), err)
		}
		children[i] = child
	}

	return secs2.NewListItem(children...), nil
}

// Validate checks that item is a list whose children all conform to the
// element schema.
func (s *ArraySchema) Validate(item secs2.Item) error {
	if itemErr := item.Error(); itemErr != nil {
		return itemErr
	}
	if !item.IsList() {
		return newStructureError("expected list item, got %s", item.Type())
	}

	children, err := item.ToList()
	if err != nil {
		return err
	}

	for i, child := range children {
		if err := s.elem.Validate(child); err != nil {
			return prefixPath(fmt.Sprintf("[%d]", i), err)
		}
	}

	return nil
}

func (s *ArraySchema) maxBytes() int {
	return -1
}

// toAnySlice widens the common concrete slice types callers pass for array
// values. Element types beyond these can always be passed as []any.
func toAnySlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		return widenSlice(v), true
	case []bool:
		return widenSlice(v), true
	case []int:
		return widenSlice(v), true
	case []int64:
		return widenSlice(v), true
	case []uint:
		return widenSlice(v), true
	case []uint64:
		return widenSlice(v), true
	case []float64:
		return widenSlice(v), true
	case [][]byte:
		return widenSlice(v), true
	case []map[string]any:
		return widenSlice(v), true
	case []secs2.Item:
		return widenSlice(v), true
	default:
		return nil, false
	}
}

func widenSlice[T any](values []T) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}

	return result
}
