// Package writer exposes sinks for encoded plists.
package writer

// MemWriter captures encoded bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WritePlist stores a copy of buf, replacing any previous content.
func (w *MemWriter) WritePlist(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
