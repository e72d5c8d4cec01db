package secs2

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/semifab/secsmsg/internal/util"
)

// UintItem represents a sequence of unsigned integers in a SECS-II message.
//
// Every value is stored widened to uint64; byteSize fixes the wire width of
// each element (1, 2, 4, or 8 bytes, big-endian).
type UintItem struct {
	baseItem
	byteSize int
	values   []uint64
}

// NewUintItem creates a new UintItem representing unsigned integer data.
//
// byteSize is the wire width of each element in bytes (1, 2, 4, or 8).
//
// Each value can be a signed or unsigned Go integer or a slice of either.
// Negative values and values above the maximum for the declared byte width
// are rejected with a ValueRangeError recorded on the item; no clamping or
// truncation is ever performed.
func NewUintItem(byteSize int, values ...any) Item {
	item := &UintItem{}

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
// It does not accept any index arguments as UintItem represents a single
// item, not a list.
func (item *UintItem) Get(indices ...int) (Item, error) {
	if len(indices) != 0 {
		err := NewItemError(fmt.Errorf("item is not a list, item is %s, indices is %v", item.ToSML(), indices))
		item.setError(err)
		return nil, err
	}

	return item, nil
}

// ToUint retrieves the unsigned integer values stored within the item.
func (item *UintItem) ToUint() ([]uint64, error) {
	return item.values, nil
}

// Values returns the unsigned integer values; the result can be
// type-asserted to []uint64.
func (item *UintItem) Values() any {
	return item.values
}

// Size implements Item.Size().
func (item *UintItem) Size() int {
	return len(item.values)
}

// ToBytes serializes the UintItem into its SECS-II byte representation, each
// element big-endian with the declared byte width.
func (item *UintItem) ToBytes() []byte {
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
			result = binary.BigEndian.AppendUint64(result, value)
		}
	}

	return result
}

// ToSML converts the UintItem into its SML representation, e.g. `<U4[2] 10 20>`.
func (item *UintItem) ToSML() string {
	if item.Size() == 0 {
		return fmt.Sprintf("<U%d[0]>", item.byteSize)
	}

	var sb strings.Builder
	sb.Grow(len(item.values)*10 + 10)

	fmt.Fprintf(&sb, "<U%d[%d] ", item.byteSize, item.Size())

	var intBuf [20]byte
	for i, v := range item.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.Write(strconv.AppendUint(intBuf[:0], v, 10))
	}

	sb.WriteByte('>')

	return sb.String()
}

// Clone creates a deep copy of the UintItem.
func (item *UintItem) Clone() Item {
	return &UintItem{byteSize: item.byteSize, values: util.CloneSlice(item.values, 0)}
}

// Type returns "u1", "u2", "u4", or "u8" depending on the byte width.
func (item *UintItem) Type() string {
	switch item.byteSize {
	case 1:
		return Uint8Type
	case 2:
		return Uint16Type
	case 4:
		return Uint32Type
	case 8:
		return Uint64Type
	default:
		return ""
	}
}

// IsUint8 returns true if the item is an 8-bit unsigned integer data item.
func (item *UintItem) IsUint8() bool { return item.byteSize == 1 }

// IsUint16 returns true if the item is a 16-bit unsigned integer data item.
func (item *UintItem) IsUint16() bool { return item.byteSize == 2 }

// IsUint32 returns true if the item is a 32-bit unsigned integer data item.
func (item *UintItem) IsUint32() bool { return item.byteSize == 4 }

// IsUint64 returns true if the item is a 64-bit unsigned integer data item.
func (item *UintItem) IsUint64() bool { return item.byteSize == 8 }

func (item *UintItem) maxValue() uint64 {
	if item.byteSize == 8 {
		return math.MaxUint64
	}

	return 1<<(item.byteSize*8) - 1
}

func (item *UintItem) appendValues(values ...any) error { //nolint:cyclop,gocyclo
	maxVal := item.maxValue()

	checked := func(v uint64) error {
		if v > maxVal {
			return newRangeError(item.Type(), v)
		}
		item.values = append(item.values, v)

		return nil
	}

	checkedInt := func(v int64) error {
		if v < 0 {
			return newRangeError(item.Type(), v)
		}

		return checked(uint64(v))
	}

	for _, value := range values {
		var err error
		switch v := value.(type) {
		case uint:
			err = checked(uint64(v))
		case uint8:
			err = checked(uint64(v))
		case uint16:
			err = checked(uint64(v))
		case uint32:
			err = checked(uint64(v))
		case uint64:
			err = checked(v)
		case int:
			err = checkedInt(int64(v))
		case int8:
			err = checkedInt(int64(v))
		case int16:
			err = checkedInt(int64(v))
		case int32:
			err = checkedInt(int64(v))
		case int64:
			err = checkedInt(v)
		case []uint:
			for _, e := range v {
				if err = checked(uint64(e)); err != nil {
					break
				}
			}
		case []uint8:
			for _, e := range v {
				if err = checked(uint64(e)); err != nil {
					break
				}
			}
		case []uint16:
			for _, e := range v {
				if err = checked(uint64(e)); err != nil {
					break
				}
			}
		case []uint32:
			for _, e := range v {
				if err = checked(uint64(e)); err != nil {
					break
				}
			}
		case []uint64:
			for _, e := range v {
				if err = checked(e); err != nil {
					break
				}
			}
		case []int:
			for _, e := range v {
				if err = checkedInt(int64(e)); err != nil {
					break
				}
			}
		case []int16:
			for _, e := range v {
				if err = checkedInt(int64(e)); err != nil {
					break
				}
			}
		case []int32:
			for _, e := range v {
				if err = checkedInt(int64(e)); err != nil {
					break
				}
			}
		case []int64:
			for _, e := range v {
				if err = checkedInt(e); err != nil {
					break
				}
			}
		default:
			return fmt.Errorf("input argument contains invalid type %T for UintItem", value)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
