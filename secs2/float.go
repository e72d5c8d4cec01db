package secs2

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/semifab/secsmsg/internal/util"
)

// FloatItem represents a sequence of IEEE-754 floating point values in a
// SECS-II message.
//
// Every value is stored widened to float64; byteSize fixes the wire width of
// each element (4 or 8 bytes, big-endian).
type FloatItem struct {
	baseItem
	byteSize int
	values   []float64
}

// NewFloatItem creates a new FloatItem representing floating point data.
//
// byteSize is the wire width of each element in bytes (4 or 8).
//
// Each value can be a float32, float64, a signed or unsigned Go integer, or
// a slice of float32/float64. A finite value whose magnitude exceeds the
// 4-byte float range is rejected with a ValueRangeError recorded on the item.
func NewFloatItem(byteSize int, values ...any) Item {
	item := &FloatItem{}

	if byteSize != 4 && byteSize != 8 {
		item.setErrorMsg("invalid byte size")
		return item
	}

	item.byteSize = byteSize

	if err := item.appendValues(values...); err != nil {
		item.setError(err)
		item.values = nil

		return item
	}

	if len(item.values)*byteSize > MaxByteSize {
		item.setErrorMsg("item size limit exceeded")
		item.values = nil

		return item
	}

	return item
}

// Get implements Item.Get().
//
// It does not accept any index arguments as FloatItem represents a single
// item, not a list.
func (item *FloatItem) Get(indices ...int) (Item, error) {
	if len(indices) != 0 {
		err := NewItemError(fmt.Errorf("item is not a list, item is %s, indices is %v", item.ToSML(), indices))
		item.setError(err)
		return nil, err
	}

	return item, nil
}

// ToFloat retrieves the floating point values stored within the item.
func (item *FloatItem) ToFloat() ([]float64, error) {
	return item.values, nil
}

// Values returns the floating point values; the result can be type-asserted
// to []float64.
func (item *FloatItem) Values() any {
	return item.values
}

// Size implements Item.Size().
func (item *FloatItem) Size() int {
	return len(item.values)
}

// ToBytes serializes the FloatItem into its SECS-II byte representation,
// each element IEEE-754 big-endian with the declared byte width.
func (item *FloatItem) ToBytes() []byte {
	result, err := getHeaderBytes(item.Type(), item.Size(), len(item.values)*item.byteSize)
	if err != nil {
		item.setError(err)
		return []byte{}
	}

	if item.byteSize == 4 {
		for _, value := range item.values {
			result = binary.BigEndian.AppendUint32(result, math.Float32bits(float32(value)))
		}
	} else {
		for _, value := range item.values {
			result = binary.BigEndian.AppendUint64(result, math.Float64bits(value))
		}
	}

	return result
}

// ToSML converts the FloatItem into its SML representation, e.g. `<F8[1] 3.14>`.
func (item *FloatItem) ToSML() string {
	if item.Size() == 0 {
		return fmt.Sprintf("<F%d[0]>", item.byteSize)
	}

	var sb strings.Builder
	sb.Grow(len(item.values)*12 + 10)

	fmt.Fprintf(&sb, "<F%d[%d] ", item.byteSize, item.Size())

	bitSize := item.byteSize * 8
	for i, v := range item.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, bitSize))
	}

	sb.WriteByte('>')

	return sb.String()
}

// Clone creates a deep copy of the FloatItem.
func (item *FloatItem) Clone() Item {
	return &FloatItem{byteSize: item.byteSize, values: util.CloneSlice(item.values, 0)}
}

// Type returns "f4" or "f8" depending on the byte width.
func (item *FloatItem) Type() string {
	switch item.byteSize {
	case 4:
		return Float32Type
	case 8:
		return Float64Type
	default:
		return ""
	}
}

// IsFloat32 returns true if the item is a 4-byte float data item.
func (item *FloatItem) IsFloat32() bool { return item.byteSize == 4 }

// IsFloat64 returns true if the item is an 8-byte float data item.
func (item *FloatItem) IsFloat64() bool { return item.byteSize == 8 }

func (item *FloatItem) appendValues(values ...any) error {
	checked := func(v float64) error {
		if item.byteSize == 4 && !math.IsInf(v, 0) && math.Abs(v) > math.MaxFloat32 {
			return newRangeError(item.Type(), v)
		}
		item.values = append(item.values, v)

		return nil
	}

	for _, value := range values {
		var err error
		switch v := value.(type) {
		case float32:
			err = checked(float64(v))
		case float64:
			err = checked(v)
		case int:
			err = checked(float64(v))
		case int64:
			err = checked(float64(v))
		case uint64:
			err = checked(float64(v))
		case []float32:
			for _, e := range v {
				if err = checked(float64(e)); err != nil {
					break
				}
			}
		case []float64:
			for _, e := range v {
				if err = checked(e); err != nil {
					break
				}
			}
		default:
			return fmt.Errorf("input argument contains invalid type %T for FloatItem", value)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
