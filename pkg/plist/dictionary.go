package plist

import "github.com/joshuapare/plistkit/internal/cplist"

// Dictionary maps string keys to values, keeping insertion order. It owns
// its values: overwriting or removing an entry frees the old value.
type Dictionary struct{ core }

// Entry is a key/value pair used to build dictionaries.
type Entry struct {
	Key   string
	Value Value
}

// NewDictionary returns an owned dictionary holding entries, which are
// inserted in order. Entry values become Borrowed.
func NewDictionary(entries ...Entry) *Dictionary {
	d := &Dictionary{core{rootHandle(cplist.NewDict(), KindDictionary)}}
	for _, e := range entries {
		d.Insert(e.Key, e.Value)
	}
	return d
}

// AsDictionary returns d itself.
func (d *Dictionary) AsDictionary() (*Dictionary, bool) { d.h.check(); return d, true }

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	d.h.check()
	return int(cplist.DictSize(d.h.node))
}

// IsEmpty reports whether the dictionary has no entries.
func (d *Dictionary) IsEmpty() bool {
	return d.Len() == 0
}

// Get returns a read-only view of the value stored under key.
func (d *Dictionary) Get(key string) (item Item, ok bool) {
	n := d.lookup(key)
	if n == nil {
		return Item{}, false
	}
	return Item{d.h.borrow(n)}, true
}

// GetMut returns a mutable view of the value stored under key.
func (d *Dictionary) GetMut(key string) (item MutableItem, ok bool) {
	n := d.lookup(key)
	if n == nil {
		return MutableItem{}, false
	}
	return MutableItem{d.h.borrow(n)}, true
}

// Contains reports whether key is present.
func (d *Dictionary) Contains(key string) bool {
	return d.lookup(key) != nil
}

func (d *Dictionary) lookup(key string) cplist.Node {
	d.h.check()
	mustNotContainNUL("key", key)
	return cplist.DictGet(d.h.node, key)
}

// Insert stores v under key, freeing any previous value. v must be an owned
// root; it becomes Borrowed.
func (d *Dictionary) Insert(key string, v Value) {
	d.h.check()
	mustNotContainNUL("key", key)
	h := v.base()
	h.adopt(d.h)
	if cplist.DictGet(d.h.node, key) != nil {
		d.h.mutated(h)
	}
	cplist.DictSet(d.h.node, key, h.node)
}

// Remove frees the entry stored under key. A missing key is not an error.
func (d *Dictionary) Remove(key string) {
	if d.lookup(key) == nil {
		return
	}
	d.h.mutated()
	cplist.DictRemove(d.h.node, key)
}

// Merge copies every entry of src into d, overwriting existing keys. src is
// left untouched and keeps its ownership.
func (d *Dictionary) Merge(src *Dictionary) {
	d.h.check()
	src.h.check()
	if src.h.node == d.h.node {
		return
	}
	d.h.mutated()
	cplist.DictMerge(d.h.node, src.h.node)
}

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []string {
	keys := make([]string, 0, d.Len())
	for k := range d.All() {
		keys = append(keys, k.Name())
	}
	return keys
}

// Entries returns the entries with deep-copied values. The caller owns and
// must free each value.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, 0, d.Len())
	for k, v := range d.All() {
		out = append(out, Entry{Key: k.Name(), Value: v.Clone()})
	}
	return out
}
