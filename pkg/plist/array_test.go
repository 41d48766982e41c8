package plist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayEquality(t *testing.T) {
	checkLedger(t)
	a := ArrayOf(1, 2, 3)
	defer a.Free()
	same := ArrayOf(1, 2, 3)
	defer same.Free()
	swapped := ArrayOf(1, 3, 2)
	defer swapped.Free()
	shorter := ArrayOf(1, 2)
	defer shorter.Free()

	require.True(t, a.Equal(same))
	require.False(t, a.Equal(swapped))
	require.False(t, a.Equal(shorter))
	require.False(t, shorter.Equal(a))
}

func TestArrayGet(t *testing.T) {
	checkLedger(t)
	a := ArrayOf("zero", "one")
	defer a.Free()

	require.Equal(t, 2, a.Len())
	require.False(t, a.IsEmpty())

	item, ok := a.Get(1)
	require.True(t, ok)
	require.Equal(t, Borrowed, item.Ownership())
	s, _ := item.AsString()
	require.Equal(t, "one", s.Text())

	_, ok = a.Get(2)
	require.False(t, ok)
	_, ok = a.Get(-1)
	require.False(t, ok)
	_, ok = a.GetMut(5)
	require.False(t, ok)
}

func TestArrayGetMutWritesThrough(t *testing.T) {
	checkLedger(t)
	a := ArrayOf(1, 2)
	defer a.Free()

	item, ok := a.GetMut(0)
	require.True(t, ok)
	i, _ := item.AsInteger()
	i.SetInt(100)

	require.Equal(t, []int64{100, 2}, intsOf(t, a))
}

func TestArraySet(t *testing.T) {
	checkLedger(t)
	a := ArrayOf(1, 2, 3)
	defer a.Free()

	a.Set(1, NewInteger(20))
	require.Equal(t, []int64{1, 20, 3}, intsOf(t, a))

	v := NewInteger(0)
	defer v.Free()
	require.Panics(t, func() { a.Set(3, v) })
	require.Panics(t, func() { a.Set(-1, v) })
}

func TestArrayInsertAndAppend(t *testing.T) {
	checkLedger(t)
	a := NewArray()
	defer a.Free()
	require.True(t, a.IsEmpty())

	a.Append(NewInteger(2))
	a.Insert(0, NewInteger(0))
	a.Insert(1, NewInteger(1))
	a.Insert(a.Len(), NewInteger(3)) // inserting at Len appends
	require.Equal(t, []int64{0, 1, 2, 3}, intsOf(t, a))

	v := NewInteger(9)
	defer v.Free()
	require.Panics(t, func() { a.Insert(5, v) })
	require.Panics(t, func() { a.Insert(-1, v) })
	require.Equal(t, Owned, v.Ownership(), "a rejected insert leaves the value owned")
}

func TestArrayRemove(t *testing.T) {
	checkLedger(t)
	a := ArrayOf(1, 2, 3)
	defer a.Free()

	a.Remove(0)
	require.Equal(t, []int64{2, 3}, intsOf(t, a))
	a.Remove(1)
	require.Equal(t, []int64{2}, intsOf(t, a))

	require.Panics(t, func() { a.Remove(1) })
	a.Remove(0)
	require.True(t, a.IsEmpty())
	require.Panics(t, func() { a.Remove(0) })
}

func TestArrayValuesAreCopies(t *testing.T) {
	checkLedger(t)
	a := ArrayOf("x", ArrayOf(1))
	defer a.Free()

	vals := a.Values()
	require.Len(t, vals, 2)
	for _, v := range vals {
		require.Equal(t, Owned, v.Ownership())
	}
	s, _ := vals[0].AsString()
	s.Set("changed")

	item, _ := a.Get(0)
	require.Equal(t, `"x"`, item.String())

	for _, v := range vals {
		v.Free()
	}
}

func TestNewArrayAdoptsValues(t *testing.T) {
	checkLedger(t)
	s := NewString("s")
	b := NewBoolean(true)
	a := NewArray(s, b)
	defer a.Free()

	require.Equal(t, Borrowed, s.Ownership())
	require.Equal(t, Borrowed, b.Ownership())
	require.Equal(t, `["s", true]`, a.String())
}
