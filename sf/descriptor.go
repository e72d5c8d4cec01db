package sf

import (
	"github.com/semifab/secsmsg/secs2"
)

// FormatDescriptor is the schema root for one message type's data item. A
// nil descriptor, or one with a nil root, describes a header-only message
// carrying no data item at all, such as S1F1.
type FormatDescriptor struct {
	root Schema
}

// NewFormatDescriptor creates a descriptor with the given root schema.
func NewFormatDescriptor(root Schema) *FormatDescriptor {
	return &FormatDescriptor{root: root}
}

// Root returns the root schema, nil for a header-only descriptor.
func (d *FormatDescriptor) Root() Schema {
	if d == nil {
		return nil
	}

	return d.root
}

// Build validates value against the root schema and assembles the message
// body item. For a header-only descriptor only a nil value or an empty
// item is accepted.
func (d *FormatDescriptor) Build(value any) (secs2.Item, error) {
	if d == nil || d.root == nil {
		if value == nil {
			return secs2.NewEmptyItem(), nil
		}
		if item, ok := value.(secs2.Item); ok && item.IsEmpty() {
			return item, nil
		}

		return nil, newStructureError("message carries no data item, got %T", value)
	}

	return d.root.Build(value)
}

// Parse decodes a message body and validates the item tree against the
// root schema. Decoding must consume the whole input; trailing bytes are a
// format error.
func (d *FormatDescriptor) Parse(data []byte) (secs2.Item, error) {
	if d == nil || d.root == nil {
		if len(data) != 0 {
			return nil, newStructureError("message carries no data item, got %d bytes", len(data))
		}

		return secs2.NewEmptyItem(), nil
	}

	item, consumed, err := secs2.Decode(data)
	if err != nil {
		return nil, err
	}
	if consumed != len(data) {
		return nil, secs2.NewFormatError("trailing bytes after data item: %d consumed, %d total", consumed, len(data))
	}
	if item.IsEmpty() {
		return nil, newStructureError("missing data item")
	}

	if err := d.root.Validate(item); err != nil {
		return nil, err
	}

	return item, nil
}

// MaxEncodedBytes returns the maximum encoded body size in bytes for items
// conforming to this descriptor, or -1 when unbounded. Header-only
// descriptors return 0.
func (d *FormatDescriptor) MaxEncodedBytes() int {
	if d == nil || d.root == nil {
		return 0
	}

	return d.root.maxBytes()
}
