package plist

import "github.com/joshuapare/plistkit/internal/cplist"

// Integer is a 64-bit integer node. The engine keeps a sign flag next to
// the bits, so the same node can be read as signed or unsigned.
type Integer struct{ core }

// NewInteger returns an owned signed integer.
func NewInteger(v int64) *Integer {
	return &Integer{core{rootHandle(cplist.NewInt(v), KindInteger)}}
}

// NewUnsigned returns an owned unsigned integer. Values above MaxInt64 only
// survive the binary format.
func NewUnsigned(v uint64) *Integer {
	return &Integer{core{rootHandle(cplist.NewUint(v), KindInteger)}}
}

// AsInteger returns i itself.
func (i *Integer) AsInteger() (*Integer, bool) { i.h.check(); return i, true }

// Int returns the value as a signed integer.
func (i *Integer) Int() int64 {
	i.h.check()
	return cplist.GetInt(i.h.node)
}

// Uint returns the value as an unsigned integer.
func (i *Integer) Uint() uint64 {
	i.h.check()
	return cplist.GetUint(i.h.node)
}

// IsNegative reports whether the node holds a negative signed value.
func (i *Integer) IsNegative() bool {
	i.h.check()
	return cplist.IntIsNegative(i.h.node)
}

// SetInt stores a signed value.
func (i *Integer) SetInt(v int64) {
	i.h.check()
	cplist.SetInt(i.h.node, v)
}

// SetUint stores an unsigned value.
func (i *Integer) SetUint(v uint64) {
	i.h.check()
	cplist.SetUint(i.h.node, v)
}
