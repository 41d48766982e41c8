package plist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayIterYieldsInOrder(t *testing.T) {
	checkLedger(t)
	a := ArrayOf(10, 20, 30, 40)
	defer a.Free()

	before := ReadStats().OpenCursors
	it := a.Iter()
	var got []int64
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		require.Equal(t, Borrowed, item.Ownership())
		i, _ := item.AsInteger()
		got = append(got, i.Int())
	}
	require.Equal(t, []int64{10, 20, 30, 40}, got)
	require.Equal(t, before, ReadStats().OpenCursors, "exhaustion releases the cursor")

	_, ok := it.Next()
	require.False(t, ok, "an exhausted iterator stays exhausted")
	it.Close()
	it.Close()
}

func TestArrayIterMutRewrites(t *testing.T) {
	checkLedger(t)
	a := ArrayOf(1, 2, 3, 4)
	defer a.Free()

	it := a.IterMut()
	defer it.Close()
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		i, _ := item.AsInteger()
		i.SetInt(i.Int() * 10)
	}
	require.Equal(t, []int64{10, 20, 30, 40}, intsOf(t, a))
}

func TestArrayAllMutReplacesKinds(t *testing.T) {
	checkLedger(t)
	a := ArrayOf(1, 2, 3, 4)
	defer a.Free()

	words := []string{"a", "b", "c", "d"}
	for i, item := range a.AllMut() {
		s := NewString(words[i])
		item.ReplaceWith(s)
		s.Free()
		require.Equal(t, KindString, item.Kind())
	}

	want := ArrayOf("a", "b", "c", "d")
	defer want.Free()
	require.True(t, a.Equal(want), "got %s", a)
}

func TestIterationEarlyExitReleasesCursor(t *testing.T) {
	checkLedger(t)
	a := ArrayOf(1, 2, 3, 4)
	defer a.Free()
	d := DictionaryOf("a", 1, "b", 2)
	defer d.Free()

	before := ReadStats().OpenCursors
	for i := range a.All() {
		if i == 1 {
			break
		}
	}
	for range d.AllMut() {
		break
	}
	require.Equal(t, before, ReadStats().OpenCursors)

	require.Panics(t, func() {
		for range a.All() {
			panic("boom")
		}
	})
	require.Equal(t, before, ReadStats().OpenCursors)

	it := d.Iter()
	_, _, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, before+1, ReadStats().OpenCursors)
	it.Close()
	require.Equal(t, before, ReadStats().OpenCursors)
}

func TestIterateEmptyContainers(t *testing.T) {
	checkLedger(t)
	a := NewArray()
	defer a.Free()
	d := NewDictionary()
	defer d.Free()

	for range a.All() {
		t.Fatal("empty array yielded an item")
	}
	for range d.All() {
		t.Fatal("empty dictionary yielded an entry")
	}
}

func TestDictionaryIter(t *testing.T) {
	checkLedger(t)
	d := DictionaryOf("one", 1, "two", 2, "three", 3)
	defer d.Free()

	it := d.Iter()
	defer it.Close()
	var keys []string
	var sum int64
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		require.Equal(t, KindKey, k.Kind())
		require.Equal(t, Borrowed, k.Ownership())
		keys = append(keys, k.Name())
		i, _ := v.AsInteger()
		sum += i.Int()
	}
	require.Equal(t, []string{"one", "two", "three"}, keys)
	require.Equal(t, int64(6), sum)
}

func TestDictionaryAllMutRewrites(t *testing.T) {
	checkLedger(t)
	d := DictionaryOf("flag", true, "name", "x")
	defer d.Free()

	for k, v := range d.AllMut() {
		if k.Name() == "flag" {
			r := NewReal(0.5)
			v.ReplaceWith(r)
			r.Free()
		}
	}
	require.Equal(t, `{"flag": 0.5, "name": "x"}`, d.String())
}

func TestIteratorOverFreedContainerPanics(t *testing.T) {
	checkLedger(t)
	a := ArrayOf(1, 2)
	it := a.Iter()
	_, ok := it.Next()
	require.True(t, ok)
	it.Close()
	a.Free()

	require.Panics(t, func() { a.Iter() })
}
