package plist

import (
	"iter"

	"github.com/joshuapare/plistkit/internal/cplist"
)

type dictWalk struct {
	dict    *Dictionary
	cur     *cursor
	mutable bool
}

func newDictWalk(d *Dictionary, mutable bool) dictWalk {
	d.h.check()
	return dictWalk{dict: d, cur: openCursor(cplist.DictNewIter(d.h.node)), mutable: mutable}
}

func (w *dictWalk) next() (*Key, Value, bool) {
	if w.cur == nil {
		return nil, nil, false
	}
	w.dict.h.check()
	n := cplist.DictNext(w.dict.h.node, w.cur.it)
	if n == nil {
		w.close()
		return nil, nil, false
	}
	key := w.dict.h.borrow(cplist.DictItemKey(n)).(*Key)
	key.mutable = w.mutable
	return key, w.dict.h.borrow(n), true
}

func (w *dictWalk) close() {
	if w.cur != nil {
		w.cur.release()
		w.cur = nil
	}
}

// DictionaryIter walks the entries of a dictionary in insertion order,
// yielding each key and a read-only view of its value. The cursor is
// released when Next reports exhaustion or on Close.
type DictionaryIter struct{ w dictWalk }

// Iter opens a read-only iterator over d.
func (d *Dictionary) Iter() *DictionaryIter {
	return &DictionaryIter{w: newDictWalk(d, false)}
}

// Next returns the next entry.
func (it *DictionaryIter) Next() (*Key, Item, bool) {
	k, v, ok := it.w.next()
	return k, Item{v}, ok
}

// Close releases the cursor. It is safe to call more than once.
func (it *DictionaryIter) Close() { it.w.close() }

// DictionaryIterMut is DictionaryIter yielding mutable values and keys that
// can be renamed.
type DictionaryIterMut struct{ w dictWalk }

// IterMut opens a mutable iterator over d. Values may be changed or
// replaced and keys renamed, but entries must not be added or removed.
func (d *Dictionary) IterMut() *DictionaryIterMut {
	return &DictionaryIterMut{w: newDictWalk(d, true)}
}

// Next returns the next entry.
func (it *DictionaryIterMut) Next() (*Key, MutableItem, bool) {
	k, v, ok := it.w.next()
	return k, MutableItem{v}, ok
}

// Close releases the cursor. It is safe to call more than once.
func (it *DictionaryIterMut) Close() { it.w.close() }

// All returns an iterator over the entries. The cursor is released however
// the loop ends.
func (d *Dictionary) All() iter.Seq2[*Key, Item] {
	return func(yield func(*Key, Item) bool) {
		it := d.Iter()
		defer it.Close()
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// AllMut is All yielding mutable values and renamable keys.
func (d *Dictionary) AllMut() iter.Seq2[*Key, *MutableItem] {
	return func(yield func(*Key, *MutableItem) bool) {
		it := d.IterMut()
		defer it.Close()
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, &v) {
				return
			}
		}
	}
}
