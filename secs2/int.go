package secs2

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/semifab/secsmsg/internal/util"
)

// IntItem represents a sequence of signed integers in a SECS-II message.
//
// Every value is stored widened to int64; byteSize fixes the wire width of
// each element (1, 2, 4, or 8 bytes, big-endian).
type IntItem struct {
	baseItem
	byteSize int
	values   []int64
}

// NewIntItem creates a new IntItem representing signed integer data.
//
// byteSize is the wire width of each element in bytes (1, 2, 4, or 8).
//
// Each value can be a signed or unsigned Go integer or a slice of either.
// A value outside the representable range of the declared byte width is
// rejected with a ValueRangeError recorded on the item; no clamping or
// truncation is ever performed.
func NewIntItem(byteSize int, values ...any) Item {
	item := &IntItem{}

	if byteSize != 1 && byteSize != 2 && byteSize != 4 && byteSize != 8 {
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
// It does not accept any index arguments as IntItem represents a single
// item, not a list.
func (item *IntItem) Get(indices ...int) (Item, error) {
	if len(indices) != 0 {
		err := NewItemError(fmt.Errorf("item is not a list, item is %s, indices is %v", item.ToSML(), indices))
		item.setError(err)
		return nil, err
	}

	return item, nil
}

// ToInt retrieves the signed integer values stored within the item.
func (item *IntItem) ToInt() ([]int64, error) {
	return item.values, nil
}

// Values returns the signed integer values; the result can be type-asserted
// to []int64.
func (item *IntItem) Values() any {
	return item.values
}

// Size implements Item.Size().
func (item *IntItem) Size() int {
	return len(item.values)
}

// ToBytes serializes the IntItem into its SECS-II byte representation, each
// element big-endian with the declared byte width.
func (item *IntItem) ToBytes() []byte {
	result, err := getHeaderBytes(item.Type(), item.Size(), len(item.values)*item.byteSize)
	if err != nil {
		item.setError(err)
		return []byte{}
	}

	switch item.byteSize {
	case 1:
		for _, value := range item.values {
			result = append(result, byte(value))
		}
	case 2:
		for _, value := range item.values {
			result = binary.BigEndian.AppendUint16(result, uint16(value)) //nolint:gosec
		}
	case 4:
		for _, value := range item.values {
			result = binary.BigEndian.AppendUint32(result, uint32(value)) //nolint:gosec
		}
	case 8:
		for _, value := range item.values {
			result = binary.BigEndian.AppendUint64(result, uint64(value)) //nolint:gosec
		}
	}

	return result
}

// ToSML converts the IntItem into its SML representation, e.g. `<I2[3] 1 2 3>`.
func (item *IntItem) ToSML() string {
	if item.Size() == 0 {
		return fmt.Sprintf("<I%d[0]>", item.byteSize)
	}

	var sb strings.Builder
	sb.Grow(len(item.values)*10 + 10)

	fmt.Fprintf(&sb, "<I%d[%d] ", item.byteSize, item.Size())

	var intBuf [20]byte
	for i, v := range item.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.Write(strconv.AppendInt(intBuf[:0], v, 10))
	}

	sb.WriteByte('>')

	return sb.String()
}

// Clone creates a deep copy of the IntItem.
func (item *IntItem) Clone() Item {
	return &IntItem{byteSize: item.byteSize, values: util.CloneSlice(item.values, 0)}
}

// Type returns "i1", "i2", "i4", or "i8" depending on the byte width.
func (item *IntItem) Type() string {
	switch item.byteSize {
	case 1:
		return Int8Type
	case 2:
		return Int16Type
	case 4:
		return Int32Type
	case 8:
		return Int64Type
	default:
		return ""
	}
}

// IsInt8 returns true if the item is an 8-bit signed integer data item.
func (item *IntItem) IsInt8() bool { return item.byteSize == 1 }

// IsInt16 returns true if the item is a 16-bit signed integer data item.
func (item *IntItem) IsInt16() bool { return item.byteSize == 2 }

// IsInt32 returns true if the item is a 32-bit signed integer data item.
func (item *IntItem) IsInt32() bool { return item.byteSize == 4 }

// IsInt64 returns true if the item is a 64-bit signed integer data item.
func (item *IntItem) IsInt64() bool { return item.byteSize == 8 }

func (item *IntItem) rangeLimits() (int64, int64) {
	if item.byteSize == 8 {
		return math.MinInt64, math.MaxInt64
	}

	shift := item.byteSize*8 - 1

	return -1 << shift, (1 << shift) - 1
}

func (item *IntItem) appendValues(values ...any) error { //nolint:cyclop,gocyclo
	minVal, maxVal := item.rangeLimits()

	checked := func(v int64) error {
		if v < minVal || v > maxVal {
			return newRangeError(item.Type(), v)
		}
		item.values = append(item.values, v)

		return nil
	}

	checkedUint := func(v uint64) error {
		//nolint:gosec // maxVal is always positive
		if v > uint64(maxVal) {
			return newRangeError(item.Type(), v)
		}
		item.values = append(item.values, int64(v)) //nolint:gosec

		return nil
	}

	for _, value := range values {
		var err error
		switch v := value.(type) {
		case int:
			err = checked(int64(v))
		case int8:
			err = checked(int64(v))
		case int16:
			err = checked(int64(v))
		case int32:
			err = checked(int64(v))
		case int64:
			err = checked(v)
		case uint:
			err = checkedUint(uint64(v))
		case uint8:
			err = checkedUint(uint64(v))
		case uint16:
			err = checkedUint(uint64(v))
		case uint32:
			err = checkedUint(uint64(v))
		case uint64:
			err = checkedUint(v)
		case []int:
			for _, e := range v {
				if err = checked(int64(e)); err != nil {
					break
				}
			}
		case []int8:
			for _, e := range v {
				if err = checked(int64(e)); err != nil {
					break
				}
			}
		case []int16:
			for _, e := range v {
				if err = checked(int64(e)); err != nil {
					break
				}
			}
		case []int32:
			for _, e := range v {
				if err = checked(int64(e)); err != nil {
					break
				}
			}
		case []int64:
			for _, e := range v {
				if err = checked(e); err != nil {
					break
				}
			}
		case []uint:
			for _, e := range v {
				if err = checkedUint(uint64(e)); err != nil {
					break
				}
			}
		case []uint16:
			for _, e := range v {
				if err = checkedUint(uint64(e)); err != nil {
					break
				}
			}
		case []uint32:
			for _, e := range v {
				if err = checkedUint(uint64(e)); err != nil {
					break
				}
			}
		case []uint64:
			for _, e := range v {
				if err = checkedUint(e); err != nil {
					break
				}
			}
		default:
			return fmt.Errorf("input argument contains invalid type %T for IntItem", value)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
