//go:build !invariants && !race

package invariants

// Enabled is true if we were built with the "invariants" or "race" build tags.
const Enabled = false

// CloseChecker is used to check that objects are closed exactly once. It is
// empty and does nothing in non-invariant builds.
type CloseChecker struct{}

// Close panics if called twice on the same object (invariant builds only).
func (d *CloseChecker) Close() {}

// AssertNotClosed panics if Close was called (invariant builds only).
func (d *CloseChecker) AssertNotClosed() {}
