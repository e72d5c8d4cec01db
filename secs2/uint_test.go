package secs2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintItem(t *testing.T) {
	tests := []struct {
		description     string   // Test case description
		input           []any    // Input
		byteSize        int      // the byte size of UintItem
		expectedSize    int      // expected result from Size()
		expectedValues  []uint64 // expected result from Values()
		expectedToBytes []byte   // expected result from ToBytes()
		expectedToSML   string   // expected result from ToSML()
	}{
		{
			description:     "Byte size: 1, data size: 0",
			input:           []any{},
			byteSize:        1,
			expectedSize:    0,
			expectedValues:  []uint64{},
			expectedToBytes: []byte{0xa5, 0},
			expectedToSML:   "<U1[0]>",
		},
		{
			description:     "Byte size: 1, boundary values",
			input:           []any{0, 255},
			byteSize:        1,
			expectedSize:    2,
			expectedValues:  []uint64{0, math.MaxUint8},
			expectedToBytes: []byte{0xa5, 2, 0x0, 0xff},
			expectedToSML:   "<U1[2] 0 255>",
		},
		{
			description:     "Byte size: 2, data size: 3",
			input:           []any{0, 1, math.MaxUint16},
			byteSize:        2,
			expectedSize:    3,
			expectedValues:  []uint64{0, 1, math.MaxUint16},
			expectedToBytes: []byte{0xa9, 0x6, 0x0, 0x0, 0x0, 0x1, 0xff, 0xff},
			expectedToSML:   "<U2[3] 0 1 65535>",
		},
		{
			description:     "Byte size: 4, data size: 2",
			input:           []any{0, math.MaxUint32},
			byteSize:        4,
			expectedSize:    2,
			expectedValues:  []uint64{0, math.MaxUint32},
			expectedToBytes: []byte{0xb1, 0x8, 0x0, 0x0, 0x0, 0x0, 0xff, 0xff, 0xff, 0xff},
			expectedToSML:   "<U4[2] 0 4294967295>",
		},
		{
			description:    "Byte size: 8, data size: 2",
			input:          []any{0, uint64(math.MaxUint64)},
			byteSize:       8,
			expectedSize:   2,
			expectedValues: []uint64{0, math.MaxUint64},
			expectedToBytes: []byte{
				0xa1, 0x10,
				0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
				0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			},
			expectedToSML: "<U8[2] 0 18446744073709551615>",
		},
		{
			description:     "Byte size: 1, byte slice input",
			input:           []any{[]uint8{1, 2, 3}},
			byteSize:        1,
			expectedSize:    3,
			expectedValues:  []uint64{1, 2, 3},
			expectedToBytes: []byte{0xa5, 3, 1, 2, 3},
			expectedToSML:   "<U1[3] 1 2 3>",
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		item := NewUintItem(test.byteSize, test.input...)
		require.NoError(item.Error())
		require.Equal(test.expectedToBytes, item.ToBytes())
		require.Equal(test.expectedSize, item.Size())
		require.Equal(test.expectedToSML, item.ToSML())

		if test.expectedSize > 0 {
			require.Equal(test.expectedValues, item.Values().([]uint64))

			val, err := item.ToUint()
			require.NoError(err)
			require.Equal(test.expectedValues, val)
		} else {
			require.Empty(item.Values())
		}

		clonedItem := item.Clone()
		require.Equal(test.expectedToBytes, clonedItem.ToBytes())
		require.Equal(test.expectedToSML, clonedItem.ToSML())
	}
}

func TestUintItem_OutOfRange(t *testing.T) {
	tests := []struct {
		description string
		byteSize    int
		input       any
	}{
		{
			description: "Byte size: 1, negative value",
			byteSize:    1,
			input:       -1,
		},
		{
			description: "Byte size: 1, above maximum",
			byteSize:    1,
			input:       256,
		},
		{
			description: "Byte size: 2, above maximum",
			byteSize:    2,
			input:       65536,
		},
		{
			description: "Byte size: 4, above maximum",
			byteSize:    4,
			input:       uint64(math.MaxUint32) + 1,
		},
		{
			description: "Byte size: 8, negative value",
			byteSize:    8,
			input:       int64(-1),
		},
		{
			description: "Byte size: 1, slice with one value out of range",
			byteSize:    1,
			input:       []int{0, 255, 256},
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		item := NewUintItem(test.byteSize, test.input)
		err := item.Error()
		require.Error(err)

		var rangeErr *ValueRangeError
		require.ErrorAs(err, &rangeErr)
		require.Equal(0, item.Size())
	}
}
