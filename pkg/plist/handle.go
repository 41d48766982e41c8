package plist

import (
	"github.com/cockroachdb/errors"
	"github.com/joshuapare/plistkit/internal/cplist"
	"github.com/joshuapare/plistkit/internal/invariants"
)

type handleState uint8

const (
	stateLive  handleState = iota
	stateFreed             // owned root released with Free
	stateStale             // superseded by ReplaceWith; owner points at the new handle
)

// handle is the per-wrapper record behind every Value. Borrowed handles link
// to the root handle that owns their node; when that root is itself inserted
// into another container it becomes Borrowed and links onward, so root()
// always reaches the handle that will eventually free the tree.
//
// epoch counts removals and overwrites made in the tree while h was its
// root. seen is the owner's epoch when the link to owner was last known to
// be valid.
type handle struct {
	node  cplist.Node
	kind  Kind
	own   Ownership
	state handleState
	owner *handle
	epoch uint64
	seen  uint64
}

// root follows owner links to the handle responsible for freeing h's node.
// A borrowed handle without an owner (FromPointer) is its own root.
func (h *handle) root() *handle {
	r := h
	for r.linked() {
		r = r.owner
	}
	return r
}

// check panics when h can no longer be dereferenced safely.
func (h *handle) check() {
	if h == nil {
		panic(errors.AssertionFailedf("plist: use of a zero Value"))
	}
	switch h.state {
	case stateStale:
		panic(errors.AssertionFailedf("plist: use of %s value after ReplaceWith", h.kind))
	case stateFreed:
		panic(errors.AssertionFailedf("plist: use of %s value after Free", h.kind))
	}
	if r := h.root(); r.state == stateFreed {
		panic(errors.AssertionFailedf("plist: use of borrowed %s value after its owner was freed", h.kind))
	}
	if invariants.Enabled {
		for l := h; l.linked(); l = l.owner {
			if l.seen != l.owner.epoch {
				panic(errors.AssertionFailedf(
					"plist: use of borrowed %s value after a removal or overwrite in its tree", h.kind))
			}
		}
	}
}

// linked reports whether root() continues past h.
func (h *handle) linked() bool {
	return h.owner != nil && (h.own == Borrowed || h.state == stateStale)
}

// mutated records a removal or overwrite made through h. Borrowed views of
// the tree become unusable in invariant builds, except h, keep and the
// handles they hang from.
func (h *handle) mutated(keep ...*handle) {
	h.root().epoch++
	h.resync()
	for _, k := range keep {
		k.resync()
	}
}

func (h *handle) resync() {
	for l := h; l.linked(); l = l.owner {
		l.seen = l.owner.epoch
	}
}

// borrow builds a borrowed view of node n, which must be a descendant of h's
// tree.
func (h *handle) borrow(n cplist.Node) Value {
	return wrap(n, Borrowed, h.root())
}

// adopt transfers ownership of h's tree to the tree containing parent. The
// caller performs the engine insert afterwards.
func (h *handle) adopt(parent *handle) {
	h.check()
	if h.own != Owned {
		panic(errors.AssertionFailedf("plist: cannot insert a borrowed %s value, insert a Clone instead", h.kind))
	}
	pr := parent.root()
	if pr == h {
		panic(errors.AssertionFailedf("plist: cannot insert a %s value into its own subtree", h.kind))
	}
	roots.untrack(h)
	h.own = Borrowed
	h.owner = pr
	h.seen = pr.epoch
}

// free releases h's tree if h owns it. Borrowed and already freed handles
// are left alone.
func (h *handle) free() {
	if h == nil || h.own != Owned || h.state != stateLive {
		return
	}
	roots.untrack(h)
	cplist.Free(h.node)
	h.state = stateFreed
}

// supersede retires h in favor of a new handle for the same node, which now
// holds a value of kind k. Used by ReplaceWith.
func (h *handle) supersede(k Kind) *handle {
	fresh := &handle{node: h.node, kind: k, own: h.own, owner: h.owner, epoch: h.epoch, seen: h.seen}
	if h.own == Owned {
		roots.untrack(h)
		roots.track(fresh)
	}
	h.state = stateStale
	h.own = Borrowed
	h.owner = fresh
	h.seen = fresh.epoch
	return fresh
}
