package plist

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/plistkit/internal/cplist"
)

// Boolean is a true/false node.
type Boolean struct{ core }

// NewBoolean returns an owned boolean.
func NewBoolean(v bool) *Boolean {
	return &Boolean{core{rootHandle(cplist.NewBool(v), KindBoolean)}}
}

// AsBoolean returns b itself.
func (b *Boolean) AsBoolean() (*Boolean, bool) { b.h.check(); return b, true }

// Bool returns the stored value.
func (b *Boolean) Bool() bool {
	b.h.check()
	return cplist.GetBool(b.h.node)
}

// Set overwrites the stored value.
func (b *Boolean) Set(v bool) {
	b.h.check()
	cplist.SetBool(b.h.node, v)
}

// Real is a double-precision floating point node.
type Real struct{ core }

// NewReal returns an owned real.
func NewReal(v float64) *Real {
	return &Real{core{rootHandle(cplist.NewReal(v), KindReal)}}
}

// AsReal returns r itself.
func (r *Real) AsReal() (*Real, bool) { r.h.check(); return r, true }

// Float returns the stored value.
func (r *Real) Float() float64 {
	r.h.check()
	return cplist.GetReal(r.h.node)
}

// Set overwrites the stored value.
func (r *Real) Set(v float64) {
	r.h.check()
	cplist.SetReal(r.h.node, v)
}

// Uid is a keyed-archiver object reference.
type Uid struct{ core }

// NewUid returns an owned uid.
func NewUid(v uint64) *Uid {
	return &Uid{core{rootHandle(cplist.NewUID(v), KindUid)}}
}

// AsUid returns u itself.
func (u *Uid) AsUid() (*Uid, bool) { u.h.check(); return u, true }

// ID returns the stored identifier.
func (u *Uid) ID() uint64 {
	u.h.check()
	return cplist.GetUID(u.h.node)
}

// Set overwrites the stored identifier.
func (u *Uid) Set(v uint64) {
	u.h.check()
	cplist.SetUID(u.h.node, v)
}

// Null is the null node. Only the binary format can encode it.
type Null struct{ core }

// NewNull returns an owned null.
func NewNull() *Null {
	return &Null{core{rootHandle(cplist.NewNull(), KindNull)}}
}

// AsNull returns n itself.
func (n *Null) AsNull() (*Null, bool) { n.h.check(); return n, true }

func mustNotContainNUL(what, s string) {
	if strings.IndexByte(s, 0) >= 0 {
		panic(errors.AssertionFailedf("plist: %s contains a NUL byte", errors.Safe(what)))
	}
}
