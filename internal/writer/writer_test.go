package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemWriter(t *testing.T) {
	var w MemWriter
	require.NoError(t, w.WritePlist([]byte("first document")))
	require.NoError(t, w.WritePlist([]byte("second")))
	require.Equal(t, []byte("second"), w.Buf)
}

func TestFileWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.plist")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o600))

	w := &FileWriter{Path: path}
	require.NoError(t, w.WritePlist([]byte("<plist/>")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<plist/>", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
}

func TestFileWriterMissingDir(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "missing", "out.plist")}
	require.Error(t, w.WritePlist([]byte("x")))
}
