package plist

import (
	"github.com/cockroachdb/errors"
	"github.com/joshuapare/plistkit/internal/cplist"
)

// String is a UTF-8 text node.
type String struct{ core }

// NewString returns an owned string. s must not contain NUL bytes.
func NewString(s string) *String {
	mustNotContainNUL("string", s)
	return &String{core{rootHandle(cplist.NewString(s), KindString)}}
}

// AsString returns s itself.
func (s *String) AsString() (*String, bool) { s.h.check(); return s, true }

// Text returns the stored text.
func (s *String) Text() string {
	s.h.check()
	return cplist.GetString(s.h.node)
}

// Set overwrites the stored text. v must not contain NUL bytes.
func (s *String) Set(v string) {
	s.h.check()
	mustNotContainNUL("string", v)
	cplist.SetString(s.h.node, v)
}

// Key is the key of a dictionary entry. Keys only exist as a product of
// dictionary iteration and are always borrowed.
type Key struct {
	core
	mutable bool
}

// AsKey returns k itself.
func (k *Key) AsKey() (*Key, bool) { k.h.check(); return k, true }

// Name returns the key text.
func (k *Key) Name() string {
	k.h.check()
	return cplist.GetKey(k.h.node)
}

// Rename changes the key in place. It is only allowed on keys yielded by a
// mutable dictionary iteration, and name must not already be used by
// another entry of the same dictionary.
//
// libplist does not rehash a dictionary's key index on rename, so on
// dictionaries large enough to be indexed a Get by the new name can miss
// until the dictionary is copied.
func (k *Key) Rename(name string) {
	k.h.check()
	if !k.mutable {
		panic(errors.AssertionFailedf("plist: Rename on a key from a read-only iteration"))
	}
	mustNotContainNUL("key", name)
	if name == cplist.GetKey(k.h.node) {
		return
	}
	if dict := cplist.Parent(k.h.node); dict != nil && cplist.DictGet(dict, name) != nil {
		panic(errors.AssertionFailedf("plist: Rename to a key that already exists"))
	}
	cplist.SetKey(k.h.node, name)
}
