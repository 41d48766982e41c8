package plist

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/plistkit/internal/cplist"
)

// Value is a node of a plist tree. The concrete type is one of *Array,
// *Dictionary, *Boolean, *Integer, *Real, *String, *Data, *Date, *Key,
// *Uid or *Null, or an Item/MutableItem wrapping one of them.
type Value interface {
	// Kind reports the node kind.
	Kind() Kind
	// Ownership reports whether Free releases the node.
	Ownership() Ownership
	// IsNull reports whether the value is a Null node.
	IsNull() bool

	// The As methods are checked downcasts. Each returns the concrete value
	// and true when the kind matches, or nil and false otherwise. The result
	// shares the receiver's node and ownership.
	AsArray() (*Array, bool)
	AsDictionary() (*Dictionary, bool)
	AsBoolean() (*Boolean, bool)
	AsInteger() (*Integer, bool)
	AsReal() (*Real, bool)
	AsString() (*String, bool)
	AsData() (*Data, bool)
	AsDate() (*Date, bool)
	AsKey() (*Key, bool)
	AsUid() (*Uid, bool)
	AsNull() (*Null, bool)

	// Equal reports deep equality. Arrays compare in order, dictionaries as
	// sets of key/value pairs.
	Equal(other Value) bool
	// Clone returns a deep copy that the caller owns.
	Clone() Value
	// Free releases an owned tree. It is a no-op for borrowed values and for
	// values that were already freed.
	Free()

	ToXML() (string, error)
	ToJSON(pretty bool) (string, error)
	ToBinary() ([]byte, error)
	ToOpenStep(pretty bool) (string, error)

	// String renders the subtree compactly for debugging.
	String() string

	// Pointer returns the underlying plist_t for use with other libplist
	// bindings. The pointer stays owned by the Value.
	Pointer() unsafe.Pointer

	base() *handle
}

// core carries the handle and implements the kind-independent part of
// Value. Each kind struct embeds it and overrides its own As method.
type core struct {
	h *handle
}

func (c core) base() *handle { return c.h }

func (c core) Kind() Kind {
	c.h.check()
	return c.h.kind
}

func (c core) Ownership() Ownership {
	return c.h.own
}

func (c core) IsNull() bool {
	c.h.check()
	return c.h.kind == KindNull
}

// The As methods below are the failing defaults. Each concrete type
// overrides the one naming itself to return the receiver and true.
func (c core) AsArray() (*Array, bool)           { c.h.check(); return nil, false }
func (c core) AsDictionary() (*Dictionary, bool) { c.h.check(); return nil, false }
func (c core) AsBoolean() (*Boolean, bool)       { c.h.check(); return nil, false }
func (c core) AsInteger() (*Integer, bool)       { c.h.check(); return nil, false }
func (c core) AsReal() (*Real, bool)             { c.h.check(); return nil, false }
func (c core) AsString() (*String, bool)         { c.h.check(); return nil, false }
func (c core) AsData() (*Data, bool)             { c.h.check(); return nil, false }
func (c core) AsDate() (*Date, bool)             { c.h.check(); return nil, false }
func (c core) AsKey() (*Key, bool)               { c.h.check(); return nil, false }
func (c core) AsUid() (*Uid, bool)               { c.h.check(); return nil, false }
func (c core) AsNull() (*Null, bool)             { c.h.check(); return nil, false }

func (c core) Equal(other Value) bool {
	c.h.check()
	if other == nil {
		return false
	}
	oh := other.base()
	oh.check()
	return nodesEqual(c.h.node, oh.node)
}

func (c core) Clone() Value {
	c.h.check()
	return newRoot(cplist.Copy(c.h.node))
}

func (c core) Free() {
	c.h.free()
}

func (c core) Pointer() unsafe.Pointer {
	c.h.check()
	return unsafe.Pointer(c.h.node)
}

// wrap dispatches on the engine's kind tag. n must be a valid node; a tag
// outside the known kinds means the tree is corrupt.
func wrap(n cplist.Node, own Ownership, owner *handle) Value {
	if n == nil {
		panic(errors.AssertionFailedf("plist: wrap of nil node"))
	}
	t := cplist.NodeType(n)
	k, ok := kindOf(t)
	if !ok {
		panic(errors.AssertionFailedf("plist: unknown node type %s", t))
	}
	h := &handle{node: n, kind: k, own: own, owner: owner}
	if owner != nil {
		h.seen = owner.epoch
	}
	return fromHandle(h)
}

func fromHandle(h *handle) Value {
	switch h.kind {
	case KindBoolean:
		return &Boolean{core{h}}
	case KindInteger:
		return &Integer{core{h}}
	case KindReal:
		return &Real{core{h}}
	case KindString:
		return &String{core{h}}
	case KindArray:
		return &Array{core{h}}
	case KindDictionary:
		return &Dictionary{core{h}}
	case KindDate:
		return &Date{core{h}}
	case KindData:
		return &Data{core{h}}
	case KindKey:
		return &Key{core: core{h}}
	case KindUid:
		return &Uid{core{h}}
	case KindNull:
		return &Null{core{h}}
	default:
		panic(errors.AssertionFailedf("plist: unknown kind %s", h.kind))
	}
}

// newRoot wraps a parentless node as an owned root.
func newRoot(n cplist.Node) Value {
	v := wrap(n, Owned, nil)
	roots.track(v.base())
	return v
}

// rootHandle creates the owned handle for a freshly allocated node of kind k.
func rootHandle(n cplist.Node, k Kind) *handle {
	if n == nil {
		panic(errors.Wrapf(ErrNoMemory, "allocating %s", k))
	}
	h := &handle{node: n, kind: k, own: Owned}
	roots.track(h)
	return h
}

// FromPointer wraps a plist_t that is owned elsewhere. The returned value is
// Borrowed and never frees the node. p must be a valid libplist node.
func FromPointer(p unsafe.Pointer) Value {
	return wrap(cplist.Node(p), Borrowed, nil)
}

// AdoptPointer takes ownership of a parentless plist_t, for example one
// returned by another libplist binding. The caller must not free p again.
func AdoptPointer(p unsafe.Pointer) Value {
	return newRoot(cplist.Node(p))
}

// unwrapItem returns the kind wrapper inside an Item or MutableItem.
func unwrapItem(v Value) Value {
	for {
		switch it := v.(type) {
		case Item:
			v = it.Value
		case *Item:
			v = it.Value
		case MutableItem:
			v = it.Value
		case *MutableItem:
			v = it.Value
		default:
			return v
		}
	}
}

// As is the generic form of the As* methods:
//
//	arr, ok := plist.As[*plist.Array](v)
func As[T Value](v Value) (T, bool) {
	var zero T
	if v == nil {
		return zero, false
	}
	v.base().check()
	t, ok := unwrapItem(v).(T)
	return t, ok
}

// Into moves v into its concrete type. On a match it returns the typed value
// and a nil remainder; otherwise it returns the zero T and v unchanged.
func Into[T Value](v Value) (T, Value) {
	if t, ok := As[T](v); ok {
		return t, nil
	}
	var zero T
	return zero, v
}
