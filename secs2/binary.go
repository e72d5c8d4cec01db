package secs2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/semifab/secsmsg/internal/util"
)

// BinaryItem represents raw binary data in a SECS-II message.
//
// Each element is one byte; the item size equals the number of bytes stored.
type BinaryItem struct {
	baseItem
	values []byte
}

// NewBinaryItem creates a new BinaryItem from the given values.
//
// Each value can be a byte, a []byte, or a signed/unsigned integer in the
// range [0, 255]. Integers outside that range are rejected with a
// ValueRangeError recorded on the item.
func NewBinaryItem(values ...any) Item {
	item := &BinaryItem{}

	for _, value := range values {
		switch v := value.(type) {
		case byte:
			item.values = append(item.values, v)
		case []byte:
			item.values = append(item.values, v...)
		case int:
			if v < 0 || v > 255 {
				item.setError(newRangeError(BinaryType, v))
				return item
			}
			item.values = append(item.values, byte(v))
		case int64:
			if v < 0 || v > 255 {
				item.setError(newRangeError(BinaryType, v))
				return item
			}
			item.values = append(item.values, byte(v))
		case uint64:
			if v > 255 {
				item.setError(newRangeError(BinaryType, v))
				return item
			}
			item.values = append(item.values, byte(v))
		default:
			item.setError(fmt.Errorf("input argument contains invalid type %T for BinaryItem", value))
			return item
		}
	}

	if len(item.values) > MaxByteSize {
		item.setErrorMsg("item size limit exceeded")
		item.values = nil

		return item
	}

	return item
}

// Get implements Item.Get().
//
// It does not accept any index arguments as BinaryItem represents a single
// item, not a list.
func (item *BinaryItem) Get(indices ...int) (Item, error) {
	if len(indices) != 0 {
		err := NewItemError(fmt.Errorf("item is not a list, item is %s, indices is %v", item.ToSML(), indices))
		item.setError(err)
		return nil, err
	}

	return item, nil
}

// ToBinary retrieves the byte payload stored within the item.
func (item *BinaryItem) ToBinary() ([]byte, error) {
	return item.values, nil
}

// Values returns the byte payload; the result can be type-asserted to []byte.
func (item *BinaryItem) Values() any {
	return item.values
}

// Size implements Item.Size().
func (item *BinaryItem) Size() int {
	return len(item.values)
}

// ToBytes serializes the BinaryItem into its SECS-II byte representation.
func (item *BinaryItem) ToBytes() []byte {
	result, err := getHeaderBytes(BinaryType, item.Size(), len(item.values))
	if err != nil {
		item.setError(err)
		return []byte{}
	}

	return append(result, item.values...)
}

// ToSML converts the BinaryItem into its SML representation, with each byte
// rendered in 0xNN hexadecimal form.
func (item *BinaryItem) ToSML() string {
	if item.Size() == 0 {
		return "<B[0]>"
	}

	var sb strings.Builder
	sb.Grow(len(item.values)*5 + 10)

	sb.WriteString("<B[")
	sb.WriteString(strconv.Itoa(item.Size()))
	sb.WriteString("]")

	for _, v := range item.values {
		fmt.Fprintf(&sb, " 0x%02X", v)
	}

	sb.WriteByte('>')

	return sb.String()
}

// Clone creates a deep copy of the BinaryItem.
func (item *BinaryItem) Clone() Item {
	return &BinaryItem{values: util.CloneSlice(item.values, 0)}
}

// Type returns "binary".
func (item *BinaryItem) Type() string { return BinaryType }

// IsBinary returns true, indicating that BinaryItem is a binary data item.
func (item *BinaryItem) IsBinary() bool { return true }
