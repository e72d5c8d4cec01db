package sf

import (
	"errors"
	"fmt"

	"github.com/semifab/secsmsg/secs2"
)

// ScalarSchema constrains one non-list item position to a single item type
// and an element count bound.
type ScalarSchema struct {
	itemType string
	size     SizeConstraint
}

// NewScalarSchema creates a schema for the given item type name ("a", "b",
// "boolean", "i1".."i8", "u1".."u8", "f4", "f8") with the given size
// constraint. It panics on an unrecognized type name; schemas are built at
// startup and a bad type name is a programming error.
func NewScalarSchema(itemType string, size SizeConstraint) *ScalarSchema {
	switch itemType {
	case secs2.ASCIIType, secs2.BinaryType, secs2.BooleanType,
		secs2.Int8Type, secs2.Int16Type, secs2.Int32Type, secs2.Int64Type,
		secs2.Uint8Type, secs2.Uint16Type, secs2.Uint32Type, secs2.Uint64Type,
		secs2.Float32Type, secs2.Float64Type:
		return &ScalarSchema{itemType: itemType, size: size}
	default:
		panic(fmt.Sprintf("sf: unrecognized scalar item type %q", itemType))
	}
}

// Type returns the item type name this schema accepts.
func (s *ScalarSchema) Type() string {
	return s.itemType
}

// Build assembles a scalar item of the schema's type from value and checks
// it against the size constraint. A secs2.Item value is validated as-is.
func (s *ScalarSchema) Build(value any) (secs2.Item, error) {
	if item, ok := value.(secs2.Item); ok {
		if err := s.Validate(item); err != nil {
			return nil, err
		}

		return item, nil
	}

	item, err := s.newItem(value)
	if err != nil {
		return nil, err
	}

	if itemErr := item.Error(); itemErr != nil {
		var rangeErr *secs2.ValueRangeError
		if errors.As(itemErr, &rangeErr) {
			return nil, rangeErr
		}

		return nil, newStructureError("%v", itemErr)
	}

	if err := s.size.check(s.itemType, item.Size()); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks a decoded item against the schema's type and size
// constraint.
func (s *ScalarSchema) Validate(item secs2.Item) error {
	if itemErr := item.Error(); itemErr != nil {
		return itemErr
	}
	if item.Type() != s.itemType {
		return newStructureError("expected %s item, got %s", s.itemType, item.Type())
	}

	return s.size.check(s.itemType, item.Size())
}

func (s *ScalarSchema) maxBytes() int {
	bound := s.size.bound()
	if bound < 0 {
		return -1
	}

	// 1 format byte plus up to 3 length bytes
	return 4 + bound*secs2.ElementByteSize(s.itemType)
}

func (s *ScalarSchema) newItem(value any) (secs2.Item, error) {
	switch s.itemType {
	case secs2.ASCIIType:
		str, ok := value.(string)
		if !ok {
			return nil, newStructureError("expected string for ascii item, got %T", value)
		}

		return secs2.NewASCIIItem(str), nil

	case secs2.BinaryType:
		return secs2.NewBinaryItem(value), nil

	case secs2.BooleanType:
		return secs2.NewBooleanItem(value), nil

	case secs2.Int8Type, secs2.Int16Type, secs2.Int32Type, secs2.Int64Type:
		return secs2.NewIntItem(secs2.ElementByteSize(s.itemType), value), nil

	case secs2.Uint8Type, secs2.Uint16Type, secs2.Uint32Type, secs2.Uint64Type:
		return secs2.NewUintItem(secs2.ElementByteSize(s.itemType), value), nil

	case secs2.Float32Type, secs2.Float64Type:
		return secs2.NewFloatItem(secs2.ElementByteSize(s.itemType), value), nil
	}

	return nil, newStructureError("unrecognized item type %s", s.itemType)
}
