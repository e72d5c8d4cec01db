package secs2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryItem(t *testing.T) {
	tests := []struct {
		description     string // Test case description
		input           []any  // Input
		expectedSize    int    // expected result from Size()
		expectedValues  []byte // expected result from Values()
		expectedToBytes []byte // expected result from ToBytes()
		expectedToSML   string // expected result from ToSML()
	}{
		{
			description:     "Empty",
			input:           []any{},
			expectedSize:    0,
			expectedValues:  []byte{},
			expectedToBytes: []byte{0x21, 0},
			expectedToSML:   "<B[0]>",
		},
		{
			description:     "Single byte",
			input:           []any{0},
			expectedSize:    1,
			expectedValues:  []byte{0},
			expectedToBytes: []byte{0x21, 1, 0x0},
			expectedToSML:   "<B[1] 0x00>",
		},
		{
			description:     "Byte slice input",
			input:           []any{[]byte{0xde, 0xad, 0xbe, 0xef}},
			expectedSize:    4,
			expectedValues:  []byte{0xde, 0xad, 0xbe, 0xef},
			expectedToBytes: []byte{0x21, 4, 0xde, 0xad, 0xbe, 0xef},
			expectedToSML:   "<B[4] 0xDE 0xAD 0xBE 0xEF>",
		},
		{
			description:     "Mixed byte and integer input",
			input:           []any{byte(1), 255},
			expectedSize:    2,
			expectedValues:  []byte{1, 255},
			expectedToBytes: []byte{0x21, 2, 0x1, 0xff},
			expectedToSML:   "<B[2] 0x01 0xFF>",
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		item := NewBinaryItem(test.input...)
		require.NoError(item.Error())
		require.Equal(test.expectedToBytes, item.ToBytes())
		require.Equal(test.expectedSize, item.Size())
		require.Equal(test.expectedToSML, item.ToSML())

		if test.expectedSize > 0 {
			require.Equal(test.expectedValues, item.Values().([]byte))

			val, err := item.ToBinary()
			require.NoError(err)
			require.Equal(test.expectedValues, val)
		} else {
			require.Empty(item.Values())
		}

		clonedItem := item.Clone()
		require.Equal(test.expectedToBytes, clonedItem.ToBytes())
	}
}

func TestBinaryItem_OutOfRange(t *testing.T) {
	require := require.New(t)

	var rangeErr *ValueRangeError

	item := NewBinaryItem(256)
	require.ErrorAs(item.Error(), &rangeErr)

	item = NewBinaryItem(-1)
	require.ErrorAs(item.Error(), &rangeErr)

	item = NewBinaryItem("bytes")
	require.ErrorContains(item.Error(), "invalid type")
}
