package plist

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/plistkit/internal/cplist"
)

// Array is an ordered container. It owns its children: removing or
// overwriting an element frees it, and freeing the array frees them all.
type Array struct{ core }

// NewArray returns an owned array holding values, which are inserted in
// order and become Borrowed.
func NewArray(values ...Value) *Array {
	a := &Array{core{rootHandle(cplist.NewArray(), KindArray)}}
	for _, v := range values {
		a.Append(v)
	}
	return a
}

// AsArray returns a itself.
func (a *Array) AsArray() (*Array, bool) { a.h.check(); return a, true }

// Len returns the number of elements.
func (a *Array) Len() int {
	a.h.check()
	return int(cplist.ArraySize(a.h.node))
}

// IsEmpty reports whether the array has no elements.
func (a *Array) IsEmpty() bool {
	return a.Len() == 0
}

// Get returns a read-only view of element i. ok is false when i is out of
// range.
func (a *Array) Get(i int) (item Item, ok bool) {
	n := a.child(i)
	if n == nil {
		return Item{}, false
	}
	return Item{a.h.borrow(n)}, true
}

// GetMut returns a mutable view of element i. ok is false when i is out of
// range.
func (a *Array) GetMut(i int) (item MutableItem, ok bool) {
	n := a.child(i)
	if n == nil {
		return MutableItem{}, false
	}
	return MutableItem{a.h.borrow(n)}, true
}

func (a *Array) child(i int) cplist.Node {
	if n := a.Len(); i < 0 || i >= n {
		return nil
	}
	return cplist.ArrayGet(a.h.node, uint32(i))
}

// Set replaces element i with v and frees the previous element. v must be
// an owned root; it becomes Borrowed. Set panics if i is out of range.
func (a *Array) Set(i int, v Value) {
	a.mustIndex("Set", i, a.Len()-1)
	h := v.base()
	h.adopt(a.h)
	a.h.mutated(h)
	cplist.ArraySet(a.h.node, h.node, uint32(i))
}

// Append adds v at the end. v must be an owned root; it becomes Borrowed.
func (a *Array) Append(v Value) {
	a.h.check()
	h := v.base()
	h.adopt(a.h)
	cplist.ArrayAppend(a.h.node, h.node)
}

// Insert places v before element i. Inserting at Len appends. Insert panics
// unless 0 <= i <= Len.
func (a *Array) Insert(i int, v Value) {
	n := a.Len()
	a.mustIndex("Insert", i, n)
	if n >= math.MaxUint32 {
		panic(errors.AssertionFailedf("plist: array is full"))
	}
	h := v.base()
	h.adopt(a.h)
	if i == n {
		cplist.ArrayAppend(a.h.node, h.node)
		return
	}
	cplist.ArrayInsert(a.h.node, h.node, uint32(i))
}

// Remove frees element i. Views of the element must not be used afterwards.
// Remove panics if i is out of range.
func (a *Array) Remove(i int) {
	a.mustIndex("Remove", i, a.Len()-1)
	a.h.mutated()
	cplist.ArrayRemove(a.h.node, uint32(i))
}

func (a *Array) mustIndex(op string, i, max int) {
	if i < 0 || i > max {
		panic(errors.AssertionFailedf("plist: Array.%s index %d out of range [0, %d]", errors.Safe(op), i, max))
	}
}

// Values returns deep copies of the elements. The caller owns and must free
// each of them.
func (a *Array) Values() []Value {
	out := make([]Value, 0, a.Len())
	for _, item := range a.All() {
		out = append(out, item.Clone())
	}
	return out
}
