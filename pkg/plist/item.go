package plist

import "github.com/cockroachdb/errors"

// Item is a read-only borrowed view of a container element. It is only
// valid while the container's owner is alive and the element has not been
// removed or overwritten. Setters reached through its As* methods must not
// be called.
type Item struct {
	Value
}

// MutableItem is a borrowed view of a container element that may be
// modified, including replacement of its content by a value of another
// scalar kind.
type MutableItem struct {
	Value
}

// ReplaceWith overwrites the element's content with a copy of v's and
// rebinds the item to the rewritten node. The parent keeps pointing at the
// same node. v stays owned by the caller.
func (m *MutableItem) ReplaceWith(v Value) {
	if m.Value == nil {
		panic(errors.AssertionFailedf("plist: ReplaceWith on an empty item"))
	}
	ReplaceWith(&m.Value, v)
}
