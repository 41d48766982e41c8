package cplist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalars(t *testing.T) {
	n := NewInt(-5)
	defer Free(n)
	require.Equal(t, TypeInt, NodeType(n))
	require.Equal(t, int64(-5), GetInt(n))
	require.True(t, IntIsNegative(n))

	SetUint(n, 1<<63)
	require.Equal(t, uint64(1<<63), GetUint(n))
	require.False(t, IntIsNegative(n))

	s := NewString("héllo")
	defer Free(s)
	require.Equal(t, "héllo", GetString(s))

	d := NewData(nil)
	defer Free(d)
	require.Equal(t, []byte{}, GetData(d))
	SetData(d, []byte{1, 2})
	require.Equal(t, []byte{1, 2}, GetData(d))

	date := NewDate(10, 500)
	defer Free(date)
	sec, usec := GetDate(date)
	require.Equal(t, int32(10), sec)
	require.Equal(t, int32(500), usec)
}

func TestContainers(t *testing.T) {
	arr := NewArray()
	defer Free(arr)
	ArrayAppend(arr, NewBool(true))
	ArrayInsert(arr, NewUID(7), 0)
	require.Equal(t, uint32(2), ArraySize(arr))
	require.Equal(t, TypeUID, NodeType(ArrayGet(arr, 0)))
	require.Equal(t, arr, Parent(ArrayGet(arr, 1)))
	require.Nil(t, Parent(arr))

	it := ArrayNewIter(arr)
	var seen []Type
	for n := ArrayNext(arr, it); n != nil; n = ArrayNext(arr, it) {
		seen = append(seen, NodeType(n))
	}
	FreeIter(it)
	require.Equal(t, []Type{TypeUID, TypeBoolean}, seen)

	dict := NewDict()
	defer Free(dict)
	DictSet(dict, "a", NewReal(1.5))
	DictSet(dict, "b", NewNull())
	require.Equal(t, uint32(2), DictSize(dict))
	require.Equal(t, 1.5, GetReal(DictGet(dict, "a")))
	require.Nil(t, DictGet(dict, "missing"))
	require.Equal(t, "b", GetKey(DictItemKey(DictGet(dict, "b"))))

	DictRemove(dict, "a")
	require.Equal(t, uint32(1), DictSize(dict))
}

func TestCodecRoundTrip(t *testing.T) {
	dict := NewDict()
	defer Free(dict)
	DictSet(dict, "k", NewString("v"))

	bin, res := ToBin(dict)
	require.Equal(t, Success, res)
	back, format, res := FromMemory(bin)
	require.Equal(t, Success, res)
	defer Free(back)
	require.Equal(t, FormatBinary, format)
	require.Equal(t, "v", GetString(DictGet(back, "k")))

	_, res = FromXML([]byte("<plist><dict>"))
	require.NotEqual(t, Success, res)
}
