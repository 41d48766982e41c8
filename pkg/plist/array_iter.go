package plist

import (
	"iter"

	"github.com/joshuapare/plistkit/internal/cplist"
)

// arrayWalk is the cursor state shared by ArrayIter and ArrayIterMut.
type arrayWalk struct {
	arr *Array
	cur *cursor
}

func newArrayWalk(a *Array) arrayWalk {
	a.h.check()
	return arrayWalk{arr: a, cur: openCursor(cplist.ArrayNewIter(a.h.node))}
}

// next returns the next child, releasing the cursor on exhaustion.
func (w *arrayWalk) next() (Value, bool) {
	if w.cur == nil {
		return nil, false
	}
	w.arr.h.check()
	n := cplist.ArrayNext(w.arr.h.node, w.cur.it)
	if n == nil {
		w.close()
		return nil, false
	}
	return w.arr.h.borrow(n), true
}

func (w *arrayWalk) close() {
	if w.cur != nil {
		w.cur.release()
		w.cur = nil
	}
}

// ArrayIter walks the elements of an array in order, yielding read-only
// views. The cursor is released when Next reports exhaustion or on Close.
// The array must not be modified while an iterator is open.
type ArrayIter struct{ w arrayWalk }

// Iter opens a read-only iterator over a.
func (a *Array) Iter() *ArrayIter {
	return &ArrayIter{w: newArrayWalk(a)}
}

// Next returns the next element.
func (it *ArrayIter) Next() (Item, bool) {
	v, ok := it.w.next()
	return Item{v}, ok
}

// Close releases the cursor. It is safe to call more than once.
func (it *ArrayIter) Close() { it.w.close() }

// ArrayIterMut is ArrayIter yielding mutable views.
type ArrayIterMut struct{ w arrayWalk }

// IterMut opens a mutable iterator over a. Elements may be changed or
// replaced in place, but not inserted or removed.
func (a *Array) IterMut() *ArrayIterMut {
	return &ArrayIterMut{w: newArrayWalk(a)}
}

// Next returns the next element.
func (it *ArrayIterMut) Next() (MutableItem, bool) {
	v, ok := it.w.next()
	return MutableItem{v}, ok
}

// Close releases the cursor. It is safe to call more than once.
func (it *ArrayIterMut) Close() { it.w.close() }

// All returns an iterator over index/element pairs. The cursor is released
// however the loop ends.
func (a *Array) All() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		it := a.Iter()
		defer it.Close()
		for i := 0; ; i++ {
			item, ok := it.Next()
			if !ok || !yield(i, item) {
				return
			}
		}
	}
}

// AllMut is All yielding mutable views.
func (a *Array) AllMut() iter.Seq2[int, *MutableItem] {
	return func(yield func(int, *MutableItem) bool) {
		it := a.IterMut()
		defer it.Close()
		for i := 0; ; i++ {
			item, ok := it.Next()
			if !ok || !yield(i, &item) {
				return
			}
		}
	}
}
