package secs2

import (
	"encoding/binary"
	"math"
	"sync"
)

// MaxListDepth is the maximum allowed nesting depth for SECS-II list items
// during decoding. Well-formed message schemas are shallow; the bound keeps
// a hostile length prefix from driving unbounded recursion.
const MaxListDepth = 64

var decoderPool = sync.Pool{New: func() any { return new(itemDecoder) }}

// Decode decodes one SECS-II data item from the given byte slice.
//
// It returns the decoded item tree, the number of bytes consumed, and an
// error if the bytes are malformed. All decoding failures are of type
// *FormatError.
//
// An empty input decodes to an EmptyItem with zero bytes consumed, matching
// the encoding of a header-only message body.
func Decode(data []byte) (Item, int, error) {
	if len(data) == 0 {
		return NewEmptyItem(), 0, nil
	}

	decoder, _ := decoderPool.Get().(*itemDecoder)
	decoder.input = data
	decoder.pos = 0
	decoder.depth = 0

	item, err := decoder.decodeItem()
	consumed := decoder.pos
	decoder.input = nil
	decoderPool.Put(decoder)

	if err != nil {
		return nil, 0, err
	}

	return item, consumed, nil
}

// itemDecoder maintains the current position in the input byte array while
// decoding nested items.
type itemDecoder struct {
	input []byte
	pos   int
	depth int
}

// remaining returns the number of bytes remaining in the input buffer.
func (d *itemDecoder) remaining() int {
	return len(d.input) - d.pos
}

// read reads a specified number of bytes from the input and advances the
// current position.
func (d *itemDecoder) read(length int) ([]byte, error) {
	if d.pos+length > len(d.input) {
		return nil, NewFormatError("unexpected end of item: need %d bytes, have %d", length, d.remaining())
	}
	result := d.input[d.pos : d.pos+length]
	d.pos += length

	return result, nil
}

// readByte reads a single byte from the input and advances the current position.
func (d *itemDecoder) readByte() (byte, error) {
	if d.pos >= len(d.input) {
		return 0, NewFormatError("unexpected end of item: need 1 byte")
	}
	result := d.input[d.pos]
	d.pos++

	return result, nil
}

// decodeItem decodes the item at the current position, recursing into list
// children.
func (d *itemDecoder) decodeItem() (Item, error) { //nolint:cyclop
	formatByte, err := d.readByte()
	if err != nil {
		return nil, err
	}
	formatCode := formatByte >> 2

	lenBytesCount := int(formatByte & 0x3)
	if lenBytesCount == 0 {
		return nil, NewFormatError("length bytes count is zero")
	}

	lenBytes, err := d.read(lenBytesCount)
	if err != nil {
		return nil, err
	}

	length := 0
	switch lenBytesCount {
	case 1:
		length = int(lenBytes[0])
	case 2:
		length = int(lenBytes[1]) | int(lenBytes[0])<<8
	case 3:
		length = int(lenBytes[2]) | int(lenBytes[1])<<8 | int(lenBytes[0])<<16
	}

	switch FormatCode(formatCode) {
	case ListFormatCode:
		return d.decodeListItem(length)

	case ASCIIFormatCode:
		value, err := d.read(length)
		if err != nil {
			return nil, err
		}

		item := NewASCIIItem(string(value))
		if itemErr := item.Error(); itemErr != nil {
			return nil, NewFormatError("invalid ASCII payload: %v", itemErr)
		}

		return item, nil

	case BinaryFormatCode:
		value, err := d.read(length)
		if err != nil {
			return nil, err
		}

		return NewBinaryItem(value), nil

	case BooleanFormatCode:
		data, err := d.read(length)
		if err != nil {
			return nil, err
		}

		values := make([]bool, 0, length)
		for _, v := range data {
			values = append(values, v != 0)
		}

		return NewBooleanItem(values), nil

	case Int8FormatCode:
		return d.decodeIntItem(1, length)
	case Int16FormatCode:
		return d.decodeIntItem(2, length)
	case Int32FormatCode:
		return d.decodeIntItem(4, length)
	case Int64FormatCode:
		return d.decodeIntItem(8, length)

	case Uint8FormatCode:
		return d.decodeUintItem(1, length)
	case Uint16FormatCode:
		return d.decodeUintItem(2, length)
	case Uint32FormatCode:
		return d.decodeUintItem(4, length)
	case Uint64FormatCode:
		return d.decodeUintItem(8, length)

	case Float32FormatCode:
		return d.decodeFloatItem(4, length)
	case Float64FormatCode:
		return d.decodeFloatItem(8, length)

	default:
		return nil, NewFormatError("unrecognized format code: 0o%o", formatCode)
	}
}

func (d *itemDecoder) decodeListItem(length int) (Item, error) {
	d.depth++
	if d.depth > MaxListDepth {
		return nil, NewFormatError("list nesting depth exceeds maximum allowed: %d", MaxListDepth)
	}

	// each child item needs at least a format byte and one length byte
	if d.remaining() < length*2 {
		return nil, NewFormatError("list claims %d items but only %d bytes remaining", length, d.remaining())
	}

	values := make([]Item, length)
	for i := 0; i < length; i++ {
		var err error
		values[i], err = d.decodeItem()
		if err != nil {
			return nil, err
		}
	}
	d.depth--

	return NewListItem(values...), nil
}

func (d *itemDecoder) decodeIntItem(byteSize int, length int) (Item, error) {
	if length%byteSize != 0 {
		return nil, NewFormatError("invalid payload length %d for I%d item", length, byteSize)
	}

	data, err := d.read(length)
	if err != nil {
		return nil, err
	}

	count := length / byteSize
	values := make([]int64, 0, count)

	for i := 0; i < count; i++ {
		start := byteSize * i
		switch byteSize {
		case 1:
			values = append(values, int64(int8(data[i])))
		case 2:
			values = append(values, int64(int16(binary.BigEndian.Uint16(data[start:])))) //nolint:gosec
		case 4:
			values = append(values, int64(int32(binary.BigEndian.Uint32(data[start:])))) //nolint:gosec
		case 8:
			values = append(values, int64(binary.BigEndian.Uint64(data[start:]))) //nolint:gosec
		}
	}

	return NewIntItem(byteSize, values), nil
}

func (d *itemDecoder) decodeUintItem(byteSize int, length int) (Item, error) {
	if length%byteSize != 0 {
		return nil, NewFormatError("invalid payload length %d for U%d item", length, byteSize)
	}

	data, err := d.read(length)
	if err != nil {
		return nil, err
	}

	count := length / byteSize
	values := make([]uint64, 0, count)

	for i := 0; i < count; i++ {
		start := byteSize * i
		switch byteSize {
		case 1:
			values = append(values, uint64(data[i]))
		case 2:
			values = append(values, uint64(binary.BigEndian.Uint16(data[start:])))
		case 4:
			values = append(values, uint64(binary.BigEndian.Uint32(data[start:])))
		case 8:
			values = append(values, binary.BigEndian.Uint64(data[start:]))
		}
	}

	return NewUintItem(byteSize, values), nil
}

func (d *itemDecoder) decodeFloatItem(byteSize int, length int) (Item, error) {
	if length%byteSize != 0 {
		return nil, NewFormatError("invalid payload length %d for F%d item", length, byteSize)
	}

	data, err := d.read(length)
	if err != nil {
		return nil, err
	}

	count := length / byteSize
	values := make([]float64, 0, count)

	for i := 0; i < count; i++ {
		start := byteSize * i
		if byteSize == 4 {
			value := binary.BigEndian.Uint32(data[start:])
			values = append(values, float64(math.Float32frombits(value)))
		} else {
			value := binary.BigEndian.Uint64(data[start:])
			values = append(values, math.Float64frombits(value))
		}
	}

	return NewFloatItem(byteSize, values), nil
}
