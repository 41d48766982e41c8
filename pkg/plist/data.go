package plist

import "github.com/joshuapare/plistkit/internal/cplist"

// Data is an opaque byte buffer node.
type Data struct{ core }

// NewData returns an owned data node holding a copy of b.
func NewData(b []byte) *Data {
	return &Data{core{rootHandle(cplist.NewData(b), KindData)}}
}

// AsData returns d itself.
func (d *Data) AsData() (*Data, bool) { d.h.check(); return d, true }

// Bytes returns a copy of the stored bytes.
func (d *Data) Bytes() []byte {
	d.h.check()
	return cplist.GetData(d.h.node)
}

// Len returns the number of stored bytes.
func (d *Data) Len() int {
	return len(d.Bytes())
}

// IsEmpty reports whether the buffer is empty.
func (d *Data) IsEmpty() bool {
	return d.Len() == 0
}

// Set overwrites the stored bytes with a copy of b.
func (d *Data) Set(b []byte) {
	d.h.check()
	cplist.SetData(d.h.node, b)
}
