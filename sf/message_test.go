package sf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/semifab/secsmsg/secs2"
)

func TestNewDataMessage(t *testing.T) {
	require := require.New(t)

	msg, err := NewDataMessage(1, 1, true, 0x01020304, nil)
	require.NoError(err)
	require.Equal(byte(1), msg.StreamCode())
	require.Equal(byte(1), msg.FunctionCode())
	require.True(msg.WaitBit())
	require.Equal(uint32(0x01020304), msg.TransactionID())
	require.True(msg.Item().IsEmpty())
	require.Equal("S1F1", msg.SFCode())

	// stream byte carries the W-bit in its top bit
	require.Equal([]byte{0, 0, 0x81, 0x01, 0, 0, 0x01, 0x02, 0x03, 0x04}, msg.Header())

	data, err := msg.ToBytes()
	require.NoError(err)
	require.Len(data, HeaderSize)
}

func TestNewDataMessage_Invalid(t *testing.T) {
	require := require.New(t)

	_, err := NewDataMessage(128, 1, false, 1, nil)
	require.ErrorIs(err, ErrInvalidStreamCode)

	// a secondary message never opens a transaction
	_, err = NewDataMessage(1, 2, true, 1, nil)
	require.ErrorIs(err, ErrUnexpectedReplyRequest)
}

func TestDataMessage_ToBytes(t *testing.T) {
	require := require.New(t)

	item := secs2.L(secs2.U1(1), secs2.A("text"))
	msg, err := NewDataMessage(2, 15, true, 7, item)
	require.NoError(err)

	data, err := msg.ToBytes()
	require.NoError(err)

	expected := []byte{
		0, 0, 0x82, 0x0f, 0, 0, 0, 0, 0, 7, // header
		0x01, 0x02, // L[2]
		0xa5, 0x01, 0x01, // U1[1] 1
		0x41, 0x04, 't', 'e', 'x', 't', // A[4] "text"
	}
	require.Equal(expected, data)
}

func TestDataMessage_ToBytesItemError(t *testing.T) {
	require := require.New(t)

	msg, err := NewDataMessage(1, 3, false, 1, secs2.U1(300))
	require.NoError(err)

	_, err = msg.ToBytes()
	var rangeErr *secs2.ValueRangeError
	require.ErrorAs(err, &rangeErr)
}

func TestDataMessage_ToSML(t *testing.T) {
	require := require.New(t)

	msg, err := NewDataMessage(1, 1, true, 1, nil)
	require.NoError(err)
	require.Equal("S1F1 W .", msg.ToSML())

	msg, err = NewDataMessage(2, 18, false, 1, secs2.A("2026-08-23"))
	require.NoError(err)
	require.Equal("S2F18\n<A[10] \"2026-08-23\">\n.", msg.ToSML())
}
