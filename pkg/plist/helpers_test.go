package plist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkLedger fails the test if it leaves owned roots or open cursors
// behind. Tests using it must not run in parallel.
func checkLedger(t *testing.T) {
	t.Helper()
	before := ReadStats()
	t.Cleanup(func() {
		after := ReadStats()
		require.Equal(t, before.LiveRoots, after.LiveRoots, "owned roots leaked")
		require.Equal(t, before.OpenCursors, after.OpenCursors, "cursors leaked")
	})
}

func intsOf(t *testing.T, a *Array) []int64 {
	t.Helper()
	out := make([]int64, 0, a.Len())
	for _, item := range a.All() {
		i, ok := item.AsInteger()
		require.True(t, ok, "element is %s", item.Kind())
		out = append(out, i.Int())
	}
	return out
}
