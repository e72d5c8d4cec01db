package secs2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListItem(t *testing.T) {
	require := require.New(t)

	item := NewListItem(
		NewUintItem(1, 1),
		NewASCIIItem("text"),
	)
	require.NoError(item.Error())
	require.Equal(2, item.Size())
	require.True(item.IsList())
	require.Equal(ListType, item.Type())

	expectedBytes := []byte{
		0x01, 0x02, // L[2]
		0xa5, 0x01, 0x01, // U1[1] 1
		0x41, 0x04, 't', 'e', 'x', 't', // A[4] "text"
	}
	require.Equal(expectedBytes, item.ToBytes())

	children, err := item.ToList()
	require.NoError(err)
	require.Len(children, 2)
	require.True(children[0].IsUint8())
	require.True(children[1].IsASCII())

	expectedSML := "<L[2]\n  <U1[1] 1>\n  <A[4] \"text\">\n>"
	require.Equal(expectedSML, item.ToSML())
}

func TestListItem_Empty(t *testing.T) {
	require := require.New(t)

	item := NewListItem()
	require.NoError(item.Error())
	require.Equal(0, item.Size())
	require.Equal([]byte{0x01, 0x00}, item.ToBytes())
	require.Equal("<L[0]>", item.ToSML())
}

func TestListItem_Get(t *testing.T) {
	require := require.New(t)

	inner := NewListItem(
		NewUintItem(2, 10, 20),
		NewBooleanItem(true),
	)
	item := NewListItem(NewASCIIItem("name"), inner)

	got, err := item.Get()
	require.NoError(err)
	require.Equal(item, got)

	got, err = item.Get(0)
	require.NoError(err)
	require.True(got.IsASCII())

	got, err = item.Get(1, 0)
	require.NoError(err)
	values, err := got.ToUint()
	require.NoError(err)
	require.Equal([]uint64{10, 20}, values)

	_, err = item.Get(2)
	require.Error(err)

	_, err = item.Get(0, 0)
	require.Error(err)
}

func TestListItem_NestedSML(t *testing.T) {
	require := require.New(t)

	item := NewListItem(
		NewUintItem(1, 1),
		NewListItem(
			NewASCIIItem("rpt"),
		),
	)

	expected := "<L[2]\n  <U1[1] 1>\n  <L[1]\n    <A[3] \"rpt\">\n  >\n>"
	require.Equal(expected, item.ToSML())
}

func TestListItem_ChildErrorPropagates(t *testing.T) {
	require := require.New(t)

	item := NewListItem(
		NewUintItem(1, 300),
		NewASCIIItem("ok"),
	)

	err := item.Error()
	require.Error(err)

	var rangeErr *ValueRangeError
	require.ErrorAs(err, &rangeErr)
}

func TestListItem_Clone(t *testing.T) {
	require := require.New(t)

	item := NewListItem(NewUintItem(1, 7), NewListItem(NewASCIIItem("x")))
	cloned := item.Clone()

	require.Equal(item.ToBytes(), cloned.ToBytes())
	require.Equal(item.ToSML(), cloned.ToSML())

	// children are copied, not shared
	origChildren, _ := item.ToList()
	clonedChildren, _ := cloned.ToList()
	require.NotSame(origChildren[0], clonedChildren[0])
}
