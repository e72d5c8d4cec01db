package secs2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBooleanItem(t *testing.T) {
	tests := []struct {
		description     string // Test case description
		input           []any  // Input
		expectedSize    int    // expected result from Size()
		expectedValues  []bool // expected result from Values()
		expectedToBytes []byte // expected result from ToBytes()
		expectedToSML   string // expected result from ToSML()
	}{
		{
			description:     "Empty",
			input:           []any{},
			expectedSize:    0,
			expectedValues:  []bool{},
			expectedToBytes: []byte{0x25, 0},
			expectedToSML:   "<BOOLEAN[0]>",
		},
		{
			description:     "Single value",
			input:           []any{true},
			expectedSize:    1,
			expectedValues:  []bool{true},
			expectedToBytes: []byte{0x25, 1, 0x1},
			expectedToSML:   "<BOOLEAN[1] T>",
		},
		{
			description:     "Bool slice input",
			input:           []any{[]bool{true, false, true}},
			expectedSize:    3,
			expectedValues:  []bool{true, false, true},
			expectedToBytes: []byte{0x25, 3, 0x1, 0x0, 0x1},
			expectedToSML:   "<BOOLEAN[3] T F T>",
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		item := NewBooleanItem(test.input...)
		require.NoError(item.Error())
		require.Equal(test.expectedToBytes, item.ToBytes())
		require.Equal(test.expectedSize, item.Size())
		require.Equal(test.expectedToSML, item.ToSML())

		if test.expectedSize > 0 {
			require.Equal(test.expectedValues, item.Values().([]bool))

			val, err := item.ToBoolean()
			require.NoError(err)
			require.Equal(test.expectedValues, val)
		} else {
			require.Empty(item.Values())
		}

		clonedItem := item.Clone()
		require.Equal(test.expectedToBytes, clonedItem.ToBytes())
	}
}

func TestBooleanItem_InvalidTypes(t *testing.T) {
	require := require.New(t)

	item := NewBooleanItem(1)
	require.ErrorContains(item.Error(), "invalid type")
}
