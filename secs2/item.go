package secs2

import (
	"fmt"
)

// MaxByteSize defines the maximum allowed size (in bytes) for an Item's data,
// as defined by the SEMI standard: the length field is at most 3 bytes.
const MaxByteSize = 1<<24 - 1

// Item type name constants, used by Item.Type() and the schema layer.
const (
	EmptyType   = "empty"
	ListType    = "list"
	BinaryType  = "binary"
	BooleanType = "boolean"
	ASCIIType   = "ascii"
	Int8Type    = "i1"
	Int16Type   = "i2"
	Int32Type   = "i4"
	Int64Type   = "i8"
	Uint8Type   = "u1"
	Uint16Type  = "u2"
	Uint32Type  = "u4"
	Uint64Type  = "u8"
	Float32Type = "f4"
	Float64Type = "f8"
)

// FormatCode is the 6-bit SECS-II item format code carried in the upper bits
// of the item header byte.
type FormatCode = int

// Format codes defined by the SEMI E5 standard. The octal notation follows
// the standard's own tables.
const (
	ListFormatCode    FormatCode = 0o00
	BinaryFormatCode  FormatCode = 0o10
	BooleanFormatCode FormatCode = 0o11
	ASCIIFormatCode   FormatCode = 0o20
	Int64FormatCode   FormatCode = 0o30
	Int8FormatCode    FormatCode = 0o31
	Int16FormatCode   FormatCode = 0o32
	Int32FormatCode   FormatCode = 0o34
	Float64FormatCode FormatCode = 0o40
	Float32FormatCode FormatCode = 0o44
	Uint64FormatCode  FormatCode = 0o50
	Uint8FormatCode   FormatCode = 0o51
	Uint16FormatCode  FormatCode = 0o52
	Uint32FormatCode  FormatCode = 0o54
)

type itemType struct {
	formatCode FormatCode
	size       int // byte width of one element
}

var itemTypeMap = map[string]*itemType{
	ListType:    {formatCode: ListFormatCode, size: 1},
	BinaryType:  {formatCode: BinaryFormatCode, size: 1},
	BooleanType: {formatCode: BooleanFormatCode, size: 1},
	ASCIIType:   {formatCode: ASCIIFormatCode, size: 1},
	Int64Type:   {formatCode: Int64FormatCode, size: 8},
	Int8Type:    {formatCode: Int8FormatCode, size: 1},
	Int16Type:   {formatCode: Int16FormatCode, size: 2},
	Int32Type:   {formatCode: Int32FormatCode, size: 4},
	Float64Type: {formatCode: Float64FormatCode, size: 8},
	Float32Type: {formatCode: Float32FormatCode, size: 4},
	Uint64Type:  {formatCode: Uint64FormatCode, size: 8},
	Uint8Type:   {formatCode: Uint8FormatCode, size: 1},
	Uint16Type:  {formatCode: Uint16FormatCode, size: 2},
	Uint32Type:  {formatCode: Uint32FormatCode, size: 4},
}

// ElementByteSize returns the byte width of one element of the given item
// type name, or 0 if the name is unknown.
func ElementByteSize(dataType string) int {
	it, ok := itemTypeMap[dataType]
	if !ok {
		return 0
	}

	return it.size
}

// Item represents an immutable data item in a SECS-II message.
//
// Items can hold various data types (binary, boolean, ASCII, integers,
// floats) and can be nested through lists to form complex structures.
//
// An item tree belongs to exactly one message instance; it is never shared
// or mutated after construction.
type Item interface {
	// Get retrieves a nested Item at the specified indices.
	// An error is returned if the item isn't a list or the indices are invalid.
	Get(indices ...int) (Item, error)

	// ToList retrieves the child items. Only available for ListItem.
	ToList() ([]Item, error)

	// ToBinary retrieves the raw byte payload. Only available for BinaryItem.
	ToBinary() ([]byte, error)

	// ToBoolean retrieves the boolean values. Only available for BooleanItem.
	ToBoolean() ([]bool, error)

	// ToASCII retrieves the ASCII string. Only available for ASCIIItem.
	ToASCII() (string, error)

	// ToInt retrieves the signed integer values widened to int64.
	// Only available for IntItem.
	ToInt() ([]int64, error)

	// ToUint retrieves the unsigned integer values widened to uint64.
	// Only available for UintItem.
	ToUint() ([]uint64, error)

	// ToFloat retrieves the floating point values widened to float64.
	// Only available for FloatItem.
	ToFloat() ([]float64, error)

	// Values returns the value(s) held by the Item as `any`; the concrete
	// type depends on the item implementation.
	Values() any

	// Size returns the number of elements in the item: child items for a
	// list, characters for an ASCII item, values otherwise.
	Size() int

	// ToBytes serializes the Item into its SECS-II byte representation.
	// On failure it returns an empty slice and records the error, which is
	// retrievable through Error().
	ToBytes() []byte

	// ToSML renders the Item as SML (SECS Message Language) text for
	// diagnostics. The rendering is presentation only and has no effect on
	// the wire format.
	ToSML() string

	// Clone creates a deep copy of the Item.
	Clone() Item

	// Error returns any error recorded during creation or serialization.
	Error() error

	// Type returns the item type name, e.g. "list", "ascii", "u1".
	Type() string

	IsEmpty() bool
	IsList() bool
	IsBinary() bool
	IsBoolean() bool
	IsASCII() bool
	IsInt8() bool
	IsInt16() bool
	IsInt32() bool
	IsInt64() bool
	IsUint8() bool
	IsUint16() bool
	IsUint32() bool
	IsUint64() bool
	IsFloat32() bool
	IsFloat64() bool
}

// EmptyItem is an immutable data type that represents the absence of a data
// item, used for header-only messages. Its byte representation is empty.
type EmptyItem struct {
	baseItem
}

// NewEmptyItem creates a new empty data item.
func NewEmptyItem() Item {
	return &EmptyItem{}
}

func (item *EmptyItem) Get(indices ...int) (Item, error) {
	if len(indices) != 0 {
		err := NewItemError(fmt.Errorf("item is not a list, item is %s, indices is %v", item.ToSML(), indices))
		item.setError(err)
		return nil, err
	}

	return item, nil
}

func (item *EmptyItem) Size() int {
	return 0
}

func (item *EmptyItem) Values() any {
	return []string{}
}

func (item *EmptyItem) ToBytes() []byte {
	return []byte{}
}

func (item *EmptyItem) ToSML() string {
	return ""
}

func (item *EmptyItem) Clone() Item {
	return &EmptyItem{}
}

func (item *EmptyItem) Type() string {
	return EmptyType
}

func (item *EmptyItem) IsEmpty() bool { return true }

// baseItem provides a partial implementation of the Item interface, covering
// the To* accessors that don't apply to a concrete type and centralizing
// error recording. Concrete implementations provide the remaining methods.
type baseItem struct {
	itemErr error
}

func (item *baseItem) ToList() ([]Item, error) {
	err := newItemErrorWithMsg("method ToList not implemented")
	item.setError(err)

	return nil, err
}

func (item *baseItem) ToBinary() ([]byte, error) {
	err := newItemErrorWithMsg("method ToBinary not implemented")
	item.setError(err)

	return nil, err
}

func (item *baseItem) ToBoolean() ([]bool, error) {
	err := newItemErrorWithMsg("method ToBoolean not implemented")
	item.setError(err)

	return nil, err
}

func (item *baseItem) ToASCII() (string, error) {
	err := newItemErrorWithMsg("method ToASCII not implemented")
	item.setError(err)

	return "", err
}

func (item *baseItem) ToInt() ([]int64, error) {
	err := newItemErrorWithMsg("method ToInt not implemented")
	item.setError(err)

	return nil, err
}

func (item *baseItem) ToUint() ([]uint64, error) {
	err := newItemErrorWithMsg("method ToUint not implemented")
	item.setError(err)

	return nil, err
}

func (item *baseItem) ToFloat() ([]float64, error) {
	err := newItemErrorWithMsg("method ToFloat not implemented")
	item.setError(err)

	return nil, err
}

func (item *baseItem) Error() error {
	return item.itemErr
}

func (item *baseItem) IsEmpty() bool   { return false }
func (item *baseItem) IsList() bool    { return false }
func (item *baseItem) IsBinary() bool  { return false }
func (item *baseItem) IsBoolean() bool { return false }
func (item *baseItem) IsASCII() bool   { return false }
func (item *baseItem) IsInt8() bool    { return false }
func (item *baseItem) IsInt16() bool   { return false }
func (item *baseItem) IsInt32() bool   { return false }
func (item *baseItem) IsInt64() bool   { return false }
func (item *baseItem) IsUint8() bool   { return false }
func (item *baseItem) IsUint16() bool  { return false }
func (item *baseItem) IsUint32() bool  { return false }
func (item *baseItem) IsUint64() bool  { return false }
func (item *baseItem) IsFloat32() bool { return false }
func (item *baseItem) IsFloat64() bool { return false }

func (item *baseItem) setError(err error) {
	item.itemErr = NewItemError(err)
}

func (item *baseItem) setErrorMsg(errMsg string) {
	item.itemErr = newItemErrorWithMsg(errMsg)
}

// getDataByteLength returns the total number of payload bytes needed to
// represent size elements of the given item type.
func getDataByteLength(dataType string, size int) (int, error) {
	it, ok := itemTypeMap[dataType]
	if !ok {
		return 0, fmt.Errorf("invalid item type %s", dataType)
	}

	return size * it.size, nil
}

// getHeaderBytes returns the header bytes of a SECS-II data item: the format
// byte followed by 1 to 3 big-endian length bytes.
//
// size is the number of elements in the item (child items for a list). The
// returned slice has capacity for preAlloc additional payload bytes so the
// caller can append the payload without reallocating.
func getHeaderBytes(dataType string, size int, preAlloc int) ([]byte, error) {
	it, ok := itemTypeMap[dataType]
	if !ok {
		return []byte{}, fmt.Errorf("invalid item type: %s", dataType)
	}

	dataByteLength := size * it.size
	if dataByteLength > MaxByteSize {
		return []byte{}, fmt.Errorf("size limit exceeded")
	}

	lenBytes := []byte{
		byte(dataByteLength >> 16),
		byte(dataByteLength >> 8),
		byte(dataByteLength),
	}

	// determine the number of length bytes needed
	lenByteCount := 3
	if lenBytes[0] == 0 {
		lenByteCount--
		if lenBytes[1] == 0 {
			lenByteCount--
		}
	}

	result := make([]byte, 0, 1+lenByteCount+preAlloc)
	result = append(result, byte(it.formatCode<<2+lenByteCount))
	result = append(result, lenBytes[3-lenByteCount:]...)

	return result, nil
}
