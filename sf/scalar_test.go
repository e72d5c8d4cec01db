package sf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/semifab/secsmsg/secs2"
)

func TestScalarSchema_Build(t *testing.T) {
	require := require.New(t)

	schema := U1(AnySize)

	item, err := schema.Build(7)
	require.NoError(err)
	require.True(item.IsUint8())
	require.Equal([]byte{0xa5, 0x01, 0x07}, item.ToBytes())

	item, err = schema.Build([]int{0, 255})
	require.NoError(err)
	require.Equal(2, item.Size())

	// out-of-range values surface the range error, not a structure error
	_, err = schema.Build(256)
	var rangeErr *secs2.ValueRangeError
	require.ErrorAs(err, &rangeErr)
	require.Equal(secs2.Uint8Type, rangeErr.ItemType)

	_, err = schema.Build(-1)
	require.ErrorAs(err, &rangeErr)

	// wrong value kind
	_, err = schema.Build("7")
	var structErr *StructureError
	require.ErrorAs(err, &structErr)
}

func TestScalarSchema_SizeConstraint(t *testing.T) {
	require := require.New(t)

	exact := B(Exact(1))

	_, err := exact.Build([]byte{0x00})
	require.NoError(err)

	_, err = exact.Build([]byte{0x00, 0x01})
	var structErr *StructureError
	require.ErrorAs(err, &structErr)
	require.Contains(structErr.Reason, "exactly 1")

	capped := A(Max(4))

	_, err = capped.Build("abcd")
	require.NoError(err)

	_, err = capped.Build("abcde")
	require.ErrorAs(err, &structErr)
	require.Contains(structErr.Reason, "at most 4")
}

func TestScalarSchema_Validate(t *testing.T) {
	require := require.New(t)

	schema := U2(Exact(1))

	require.NoError(schema.Validate(secs2.U2(1000)))

	var structErr *StructureError
	err := schema.Validate(secs2.U1(5))
	require.ErrorAs(err, &structErr)
	require.Contains(structErr.Reason, "expected u2")

	err = schema.Validate(secs2.U2(1, 2))
	require.ErrorAs(err, &structErr)
}

func TestScalarSchema_ItemValueValidated(t *testing.T) {
	require := require.New(t)

	schema := A(Max(20))

	item, err := schema.Build(secs2.NewASCIIItem("model-x"))
	require.NoError(err)
	require.True(item.IsASCII())

	_, err = schema.Build(secs2.U1(1))
	var structErr *StructureError
	require.ErrorAs(err, &structErr)
}

func TestNewScalarSchema_UnknownTypePanics(t *testing.T) {
	require := require.New(t)

	require.Panics(func() {
		NewScalarSchema("u3", AnySize)
	})
	require.Panics(func() {
		Dyn("list")
	})
}
