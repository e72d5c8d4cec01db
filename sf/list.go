package sf

import (
	"github.com/semifab/secsmsg/secs2"
)

// Field names one position inside a fixed-arity list schema. Names follow
// the SEMI E5 data item vocabulary (SVID, CEID, RPTID and so on) and key
// map-valued inputs to Build.
type Field struct {
	Name   string
	Schema Schema
}

// F creates a named list field.
func F(name string, schema Schema) Field {
	return Field{Name: name, Schema: schema}
}

// ListSchema constrains a list item position to a fixed arity with a
// per-position child schema.
type ListSchema struct {
	fields []Field
}

// List creates a fixed-arity list schema from the given fields.
func List(fields ...Field) *ListSchema {
	return &ListSchema{fields: fields}
}

// Arity returns the number of fields in the list.
func (s *ListSchema) Arity() int {
	return len(s.fields)
}

// Fields returns the list's field definitions in declaration order.
func (s *ListSchema) Fields() []Field {
	return s.fields
}

// Build assembles a list item from value. A []any supplies children
// positionally; a map[string]any supplies them by field name and must cover
// every field exactly. A secs2.Item value is validated as-is.
func (s *ListSchema) Build(value any) (secs2.Item, error) {
	switch v := value.(type) {
	case secs2.Item:
		if err := s.Validate(v); err != nil {
			return nil, err
		}

		return v, nil

	case []any:
		if len(v) != len(s.fields) {
			return nil, newStructureError("list requires %d items, got %d", len(s.fields), len(v))
		}

		children := make([]secs2.Item, len(v))
		for i, field := range s.fields {
			child, err := field.Schema.Build(v[i])
			if err != nil {
				return nil, prefixPath(field.Name, err)
			}
			children[i] = child
		}

		return secs2.NewListItem(children...), nil

	case map[string]any:
		if len(v) != len(s.fields) {
			return nil, newStructureError("list requires %d named items, got %d", len(s.fields), len(v))
		}

		children := make([]secs2.Item, len(s.fields))
		for i, field := range s.fields {
			fieldValue, ok := v[field.Name]
			if !ok {
				return nil, newStructureError("missing list field %s", field.Name)
			}

			child, err := field.Schema.Build(fieldValue)
			if err != nil {
				return nil, prefixPath(field.Name, err)
			}
			children[i] = child
		}

		return secs2.NewListItem(children...), nil

	case nil:
		if len(s.fields) != 0 {
			return nil, newStructureError("list requires %d items, got none", len(s.fields))
		}

		return secs2.NewListItem(), nil

	default:
		return nil, newStructureError("expected list value, got %T", value)
	}
}

// Validate checks a decoded list item's arity and each child against its
// field schema.
func (s *ListSchema) Validate(item secs2.Item) error {
	if itemErr := item.Error(); itemErr != nil {
		return itemErr
	}
	if !item.IsList() {
		return newStructureError("expected list item, got %s", item.Type())
	}
	if item.Size() != len(s.fields) {
		return newStructureError("list requires %d items, got %d", len(s.fields), item.Size())
	}

	children, err := item.ToList()
	if err != nil {
		return err
	}

	for i, field := range s.fields {
		if err := field.Schema.Validate(children[i]); err != nil {
			return prefixPath(field.Name, err)
		}
	}

	return nil
}

func (s *ListSchema) maxBytes() int {
	// 1 format byte plus up to 3 length bytes
	total := 4
	for _, field := range s.fields {
		childMax := field.Schema.maxBytes()
		if childMax < 0 {
			return -1
		}
		total += childMax
	}

	return total
}
