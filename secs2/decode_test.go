package secs2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		description string
		item        Item
	}{
		{
			description: "empty list",
			item:        NewListItem(),
		},
		{
			description: "ASCII item",
			item:        NewASCIIItem("equipment-01"),
		},
		{
			description: "binary item",
			item:        NewBinaryItem([]byte{0x00, 0x7f, 0xff}),
		},
		{
			description: "boolean item",
			item:        NewBooleanItem(true, false),
		},
		{
			description: "I1 boundary values",
			item:        NewIntItem(1, math.MinInt8, math.MaxInt8),
		},
		{
			description: "I8 boundary values",
			item:        NewIntItem(8, int64(math.MinInt64), int64(math.MaxInt64)),
		},
		{
			description: "U1 boundary values",
			item:        NewUintItem(1, 0, 255),
		},
		{
			description: "U8 boundary values",
			item:        NewUintItem(8, uint64(0), uint64(math.MaxUint64)),
		},
		{
			description: "F4 values",
			item:        NewFloatItem(4, 1.5, -2.25),
		},
		{
			description: "F8 values",
			item:        NewFloatItem(8, 0.1, math.MaxFloat64),
		},
		{
			description: "nested list",
			item: NewListItem(
				NewUintItem(1, 1),
				NewListItem(
					NewASCIIItem("report"),
					NewIntItem(4, -100, 100),
				),
			),
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		data := test.item.ToBytes()
		require.NoError(test.item.Error())

		decoded, consumed, err := Decode(data)
		require.NoError(err)
		require.Equal(len(data), consumed)
		require.Equal(test.item.Type(), decoded.Type())
		require.Equal(test.item.Size(), decoded.Size())
		require.Equal(data, decoded.ToBytes())
		require.Equal(test.item.ToSML(), decoded.ToSML())
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	require := require.New(t)

	item, consumed, err := Decode([]byte{})
	require.NoError(err)
	require.Equal(0, consumed)
	require.True(item.IsEmpty())
}

func TestDecode_NonMinimalLengthBytes(t *testing.T) {
	require := require.New(t)

	// two length bytes where one would do; decoders accept any of the
	// three length-byte counts
	data := []byte{0x42, 0x00, 0x02, 'h', 'i'}
	item, consumed, err := Decode(data)
	require.NoError(err)
	require.Equal(len(data), consumed)
	require.True(item.IsASCII())

	val, err := item.ToASCII()
	require.NoError(err)
	require.Equal("hi", val)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		description string
		input       []byte
	}{
		{
			description: "zero length-byte count",
			input:       []byte{0x40, 0x00},
		},
		{
			description: "truncated length bytes",
			input:       []byte{0x43, 0x00},
		},
		{
			description: "truncated payload",
			input:       []byte{0x41, 0x05, 'h', 'i'},
		},
		{
			description: "unrecognized format code",
			input:       []byte{0xfd, 0x00},
		},
		{
			description: "U2 payload not a multiple of element width",
			input:       []byte{0xa9, 0x03, 0x01, 0x02, 0x03},
		},
		{
			description: "I4 payload not a multiple of element width",
			input:       []byte{0x71, 0x06, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
		},
		{
			description: "F8 payload not a multiple of element width",
			input:       []byte{0x81, 0x04, 0x01, 0x02, 0x03, 0x04},
		},
		{
			description: "list claims more items than bytes remain",
			input:       []byte{0x01, 0xff},
		},
		{
			description: "list item truncated mid-child",
			input:       []byte{0x01, 0x02, 0xa5, 0x01, 0x01},
		},
		{
			description: "non-ASCII byte in ASCII payload",
			input:       []byte{0x41, 0x01, 0xff},
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		item, _, err := Decode(test.input)
		require.Nil(item)
		require.Error(err)

		var formatErr *FormatError
		require.ErrorAs(err, &formatErr)
	}
}

func TestDecode_DepthLimit(t *testing.T) {
	require := require.New(t)

	// L[1] nested MaxListDepth+1 times, terminated by an empty list
	data := make([]byte, 0, (MaxListDepth+2)*2)
	for i := 0; i < MaxListDepth+1; i++ {
		data = append(data, 0x01, 0x01)
	}
	data = append(data, 0x01, 0x00)

	_, _, err := Decode(data)
	require.ErrorContains(err, "nesting depth")
}

// FuzzDecode fuzzes the data item decoder with arbitrary payloads.
//
// The invariants are: Decode must never panic, and any item it accepts must
// re-encode and re-decode to the same value.
func FuzzDecode(f *testing.F) {
	// Seed: ASCII item <A[5] "hello">
	f.Add([]byte{0x41, 0x05, 'h', 'e', 'l', 'l', 'o'})

	// Seed: nested list L[2, <U1[1] 1>, L[1, <B[1] 0xFF>]]
	f.Add([]byte{0x01, 0x02, 0xa5, 0x01, 0x01, 0x01, 0x01, 0x21, 0x01, 0xff})

	// Seed: empty input
	f.Add([]byte{})

	// Seed: zero length-byte count
	f.Add([]byte{0x40, 0x00})

	// Seed: three length bytes
	f.Add([]byte{0x43, 0x00, 0x00, 0x01, 'x'})

	// Seed: I2 item with truncated payload
	f.Add([]byte{0x69, 0x04, 0x00, 0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		item, consumed, err := Decode(data)
		if err != nil {
			return
		}
		if consumed > len(data) {
			t.Fatalf("consumed %d bytes of %d", consumed, len(data))
		}

		encoded := item.ToBytes()
		if itemErr := item.Error(); itemErr != nil {
			t.Fatalf("decoded item failed to re-encode: %v", itemErr)
		}

		redecoded, _, err := Decode(encoded)
		if err != nil {
			t.Fatalf("re-encoded item failed to decode: %v", err)
		}
		if item.ToSML() != redecoded.ToSML() {
			t.Fatalf("round trip mismatch: %s != %s", item.ToSML(), redecoded.ToSML())
		}
	})
}
