package secs2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatItem(t *testing.T) {
	tests := []struct {
		description     string    // Test case description
		input           []any     // Input
		byteSize        int       // the byte size of FloatItem
		expectedSize    int       // expected result from Size()
		expectedValues  []float64 // expected result from Values()
		expectedToBytes []byte    // expected result from ToBytes()
		expectedToSML   string    // expected result from ToSML()
	}{
		{
			description:     "Byte size: 4, data size: 0",
			input:           []any{},
			byteSize:        4,
			expectedSize:    0,
			expectedValues:  []float64{},
			expectedToBytes: []byte{0x91, 0},
			expectedToSML:   "<F4[0]>",
		},
		{
			description:     "Byte size: 4, data size: 2",
			input:           []any{1.0, -1.0},
			byteSize:        4,
			expectedSize:    2,
			expectedValues:  []float64{1, -1},
			expectedToBytes: []byte{0x91, 8, 0x3f, 0x80, 0x0, 0x0, 0xbf, 0x80, 0x0, 0x0},
			expectedToSML:   "<F4[2] 1 -1>",
		},
		{
			description:     "Byte size: 8, data size: 1",
			input:           []any{0.1},
			byteSize:        8,
			expectedSize:    1,
			expectedValues:  []float64{0.1},
			expectedToBytes: []byte{0x81, 8, 0x3f, 0xb9, 0x99, 0x99, 0x99, 0x99, 0x99, 0x9a},
			expectedToSML:   "<F8[1] 0.1>",
		},
		{
			description:     "Byte size: 8, integer input",
			input:           []any{42},
			byteSize:        8,
			expectedSize:    1,
			expectedValues:  []float64{42},
			expectedToBytes: []byte{0x81, 8, 0x40, 0x45, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0},
			expectedToSML:   "<F8[1] 42>",
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		item := NewFloatItem(test.byteSize, test.input...)
		require.NoError(item.Error())
		require.Equal(test.expectedToBytes, item.ToBytes())
		require.Equal(test.expectedSize, item.Size())
		require.Equal(test.expectedToSML, item.ToSML())

		if test.expectedSize > 0 {
			require.Equal(test.expectedValues, item.Values().([]float64))

			val, err := item.ToFloat()
			require.NoError(err)
			require.Equal(test.expectedValues, val)
		} else {
			require.Empty(item.Values())
		}

		clonedItem := item.Clone()
		require.Equal(test.expectedToBytes, clonedItem.ToBytes())
	}
}

func TestFloatItem_OutOfRange(t *testing.T) {
	require := require.New(t)

	// a finite float64 beyond the 4-byte range cannot be narrowed
	item := NewFloatItem(4, 1e39)
	var rangeErr *ValueRangeError
	require.ErrorAs(item.Error(), &rangeErr)

	// infinities remain representable at 4 bytes
	item = NewFloatItem(4, math.Inf(1))
	require.NoError(item.Error())

	// 8-byte items hold the full float64 range
	item = NewFloatItem(8, 1e39)
	require.NoError(item.Error())
}

func TestFloatItem_InvalidTypes(t *testing.T) {
	require := require.New(t)

	item := NewFloatItem(4, "3.14")
	require.ErrorContains(item.Error(), "invalid type")

	item = NewFloatItem(2, 1.0)
	require.ErrorContains(item.Error(), "invalid byte size")
}
