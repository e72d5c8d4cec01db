package sf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/semifab/secsmsg/secs2"
)

func TestDynamicSchema_Build(t *testing.T) {
	require := require.New(t)

	schema := Dyn(secs2.Uint8Type, secs2.ASCIIType)

	item, err := schema.Build(5)
	require.NoError(err)
	require.True(item.IsUint8())
	require.Equal([]byte{0xa5, 0x01, 0x05}, item.ToBytes())

	item, err = schema.Build("x")
	require.NoError(err)
	require.True(item.IsASCII())
	require.Equal([]byte{0x41, 0x01, 'x'}, item.ToBytes())

	// no float type permitted
	_, err = schema.Build(3.14)
	var typeErr *UnsupportedTypeError
	require.ErrorAs(err, &typeErr)
	require.Equal(secs2.Float64Type, typeErr.Got)
	require.Equal([]string{secs2.Uint8Type, secs2.ASCIIType}, typeErr.Allowed)

	// 300 needs two bytes and u2 is not permitted
	_, err = schema.Build(300)
	require.ErrorAs(err, &typeErr)
	require.Equal(secs2.Uint16Type, typeErr.Got)

	// negative values need a signed type
	_, err = schema.Build(-1)
	require.ErrorAs(err, &typeErr)
	require.Equal(secs2.Int8Type, typeErr.Got)
}

func TestDynamicSchema_WidthSelection(t *testing.T) {
	tests := []struct {
		description  string
		value        any
		expectedType string
	}{
		{
			description:  "small non-negative value picks u1",
			value:        5,
			expectedType: secs2.Uint8Type,
		},
		{
			description:  "value above one byte picks u2",
			value:        300,
			expectedType: secs2.Uint16Type,
		},
		{
			description:  "value above two bytes picks u4",
			value:        70000,
			expectedType: secs2.Uint32Type,
		},
		{
			description:  "value above four bytes picks u8",
			value:        uint64(math.MaxUint32) + 1,
			expectedType: secs2.Uint64Type,
		},
		{
			description:  "small negative value picks i1",
			value:        -1,
			expectedType: secs2.Int8Type,
		},
		{
			description:  "negative value below one byte picks i2",
			value:        -300,
			expectedType: secs2.Int16Type,
		},
		{
			description:  "slice bound by its widest element",
			value:        []int64{1, -40000},
			expectedType: secs2.Int32Type,
		},
		{
			description:  "float picks f8 when unconstrained",
			value:        3.14,
			expectedType: secs2.Float64Type,
		},
		{
			description:  "float32 input picks f4",
			value:        float32(1.5),
			expectedType: secs2.Float32Type,
		},
		{
			description:  "string picks ascii",
			value:        "id-7",
			expectedType: secs2.ASCIIType,
		},
		{
			description:  "bool picks boolean",
			value:        true,
			expectedType: secs2.BooleanType,
		},
		{
			description:  "byte slice picks binary",
			value:        []byte{0x01},
			expectedType: secs2.BinaryType,
		},
	}

	require := require.New(t)
	schema := AnyItem()

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		item, err := schema.Build(test.value)
		require.NoError(err)
		require.Equal(test.expectedType, item.Type())
	}
}

func TestDynamicSchema_ExplicitItemBypassesWidthSelection(t *testing.T) {
	require := require.New(t)

	schema := Dyn(secs2.Uint8Type, secs2.Uint32Type)

	// the value fits u1 but the caller demands u4
	item, err := schema.Build(secs2.U4(5))
	require.NoError(err)
	require.True(item.IsUint32())

	// explicit items still face the whitelist
	_, err = schema.Build(secs2.U2(5))
	var typeErr *UnsupportedTypeError
	require.ErrorAs(err, &typeErr)
	require.Equal(secs2.Uint16Type, typeErr.Got)
}

func TestDynamicSchema_Validate(t *testing.T) {
	require := require.New(t)

	schema := Dyn(secs2.ASCIIType, secs2.Uint8Type)

	require.NoError(schema.Validate(secs2.NewASCIIItem("ok")))
	require.NoError(schema.Validate(secs2.U1(1)))

	var typeErr *UnsupportedTypeError
	err := schema.Validate(secs2.F8(3.14))
	require.ErrorAs(err, &typeErr)
	require.Equal(secs2.Float64Type, typeErr.Got)

	// an empty whitelist permits everything except the empty item
	require.NoError(AnyItem().Validate(secs2.NewListItem()))
	require.Error(AnyItem().Validate(secs2.NewEmptyItem()))
}

func TestDynamicSchema_FloatSelection(t *testing.T) {
	require := require.New(t)

	// f4 only: a float64 exceeding the four-byte range cannot narrow
	schema := Dyn(secs2.Float32Type)

	item, err := schema.Build(1.5)
	require.NoError(err)
	require.True(item.IsFloat32())

	_, err = schema.Build(1e39)
	var typeErr *UnsupportedTypeError
	require.ErrorAs(err, &typeErr)
	require.Equal(secs2.Float64Type, typeErr.Got)
}
