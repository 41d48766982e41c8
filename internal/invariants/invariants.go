// Package invariants gates expensive consistency checks behind the
// "invariants" build tag (race builds enable it too).
//
// Cheap checks that protect the foreign heap from corruption are always on
// in pkg/plist; this package carries the ones that cost a map lookup or a
// finalizer per handle.
package invariants

import "runtime"

// SetFinalizer is runtime.SetFinalizer in invariant builds and a no-op
// otherwise.
func SetFinalizer(obj, finalizer interface{}) {
	if Enabled {
		runtime.SetFinalizer(obj, finalizer)
	}
}

// ClearFinalizer removes a finalizer installed with SetFinalizer.
func ClearFinalizer(obj interface{}) {
	if Enabled {
		runtime.SetFinalizer(obj, nil)
	}
}
