package writer

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// FileWriter writes plist bytes to a filesystem path atomically.
type FileWriter struct {
	Path string
	Perm os.FileMode // mode of a newly created file; 0 means 0o644
}

// WritePlist writes buf to the configured path via temp file + rename, so
// readers never see a partially written document.
func (w *FileWriter) WritePlist(buf []byte) error {
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".plistkit-tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := tmpFile.Chmod(perm); err != nil {
		return errors.Wrap(err, "chmod temp file")
	}
	if _, err := tmpFile.Write(buf); err != nil {
		return errors.Wrap(err, "write temp file")
	}
	if err := tmpFile.Sync(); err != nil {
		return errors.Wrap(err, "sync temp file")
	}
	if err := tmpFile.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "rename temp file")
	}
	return nil
}
