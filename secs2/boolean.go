package secs2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/semifab/secsmsg/internal/util"
)

// BooleanItem represents a sequence of boolean values in a SECS-II message.
//
// Each element encodes to one byte: 0x00 for false, 0x01 for true.
type BooleanItem struct {
	baseItem
	values []bool
}

// NewBooleanItem creates a new BooleanItem from the given values.
//
// Each value can be a bool or a []bool; all values are concatenated in order.
func NewBooleanItem(values ...any) Item {
	item := &BooleanItem{}

	for _, value := range values {
		switch v := value.(type) {
		case bool:
			item.values = append(item.values, v)
		case []bool:
			item.values = append(item.values, v...)
		default:
			item.setError(fmt.Errorf("input argument contains invalid type %T for BooleanItem", value))
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
// It does not accept any index arguments as BooleanItem represents a single
// item, not a list.
func (item *BooleanItem) Get(indices ...int) (Item, error) {
	if len(indices) != 0 {
		err := NewItemError(fmt.Errorf("item is not a list, item is %s, indices is %v", item.ToSML(), indices))
		item.setError(err)
		return nil, err
	}

	return item, nil
}

// ToBoolean retrieves the boolean values stored within the item.
func (item *BooleanItem) ToBoolean() ([]bool, error) {
	return item.values, nil
}

// Values returns the boolean values; the result can be type-asserted to []bool.
func (item *BooleanItem) Values() any {
	return item.values
}

// Size implements Item.Size().
func (item *BooleanItem) Size() int {
	return len(item.values)
}

// ToBytes serializes the BooleanItem into its SECS-II byte representation.
func (item *BooleanItem) ToBytes() []byte {
	result, err := getHeaderBytes(BooleanType, item.Size(), len(item.values))
	if err != nil {
		item.setError(err)
		return []byte{}
	}

	for _, value := range item.values {
		if value {
			result = append(result, 1)
		} else {
			result = append(result, 0)
		}
	}

	return result
}

// ToSML converts the BooleanItem into its SML representation, with each value
// rendered as T or F.
func (item *BooleanItem) ToSML() string {
	if item.Size() == 0 {
		return "<BOOLEAN[0]>"
	}

	var sb strings.Builder
	sb.Grow(len(item.values)*2 + 16)

	sb.WriteString("<BOOLEAN[")
	sb.WriteString(strconv.Itoa(item.Size()))
	sb.WriteString("]")

	for _, v := range item.values {
		if v {
			sb.WriteString(" T")
		} else {
			sb.WriteString(" F")
		}
	}

	sb.WriteByte('>')

	return sb.String()
}

// Clone creates a deep copy of the BooleanItem.
func (item *BooleanItem) Clone() Item {
	return &BooleanItem{values: util.CloneSlice(item.values, 0)}
}

// Type returns "boolean".
func (item *BooleanItem) Type() string { return BooleanType }

// IsBoolean returns true, indicating that BooleanItem is a boolean data item.
func (item *BooleanItem) IsBoolean() bool { return true }
