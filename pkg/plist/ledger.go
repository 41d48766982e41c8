package plist

import (
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/plistkit/internal/cplist"
	"github.com/joshuapare/plistkit/internal/invariants"
	"github.com/joshuapare/plistkit/internal/logger"
)

// Stats is a snapshot of the process-wide resource counters.
type Stats struct {
	// LiveRoots counts owned values that have not been freed or inserted
	// into a container.
	LiveRoots int64
	// OpenCursors counts iteration cursors that have not been released.
	OpenCursors int64
}

// ReadStats returns the current resource counters. Tests use it to check
// that every root and cursor is released.
func ReadStats() Stats {
	return Stats{
		LiveRoots:   roots.live.Load(),
		OpenCursors: roots.cursors.Load(),
	}
}

// ledger accounts for owned roots and open cursors. Invariant builds also
// keep the set of owned nodes so a second owner for the same node is caught
// before it can free it twice.
type ledger struct {
	live    atomic.Int64
	cursors atomic.Int64

	mu    sync.Mutex
	nodes map[cplist.Node]Kind
}

var roots = ledger{nodes: make(map[cplist.Node]Kind)}

func (l *ledger) track(h *handle) {
	l.live.Add(1)
	if !invariants.Enabled {
		return
	}
	l.mu.Lock()
	if k, ok := l.nodes[h.node]; ok {
		l.mu.Unlock()
		panic(errors.AssertionFailedf("plist: %s node already has an owner (%s)", h.kind, k))
	}
	l.nodes[h.node] = h.kind
	l.mu.Unlock()
	invariants.SetFinalizer(h, reportLeakedRoot)
}

func (l *ledger) untrack(h *handle) {
	l.live.Add(-1)
	if !invariants.Enabled {
		return
	}
	l.mu.Lock()
	if _, ok := l.nodes[h.node]; !ok {
		l.mu.Unlock()
		panic(errors.AssertionFailedf("plist: %s node released twice", h.kind))
	}
	delete(l.nodes, h.node)
	l.mu.Unlock()
	invariants.ClearFinalizer(h)
}

func reportLeakedRoot(h *handle) {
	if h.own == Owned && h.state == stateLive {
		logger.L.Warn("plist: owned value was never freed", "kind", h.kind.String())
	}
}

// cursor is an engine-allocated iteration position. It is released exactly
// once, independently of the container it walks.
type cursor struct {
	it     cplist.Iter
	closed invariants.CloseChecker
}

func openCursor(it cplist.Iter) *cursor {
	roots.cursors.Add(1)
	c := &cursor{it: it}
	invariants.SetFinalizer(c, reportLeakedCursor)
	return c
}

func (c *cursor) release() {
	c.closed.Close()
	invariants.ClearFinalizer(c)
	cplist.FreeIter(c.it)
	c.it = nil
	roots.cursors.Add(-1)
}

func reportLeakedCursor(c *cursor) {
	if c.it != nil {
		logger.L.Warn("plist: iterator was neither exhausted nor closed")
	}
}
