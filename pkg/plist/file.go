package plist

import (
	"github.com/cockroachdb/errors"
	"github.com/joshuapare/plistkit/internal/mmfile"
	"github.com/joshuapare/plistkit/internal/writer"
)

// FromFile reads the file at path and decodes it in whichever format it is
// in. Filesystem failures are reported as ErrIO. The caller owns the
// result.
func FromFile(path string) (Value, error) {
	v, _, err := DecodeFile(path)
	return v, err
}

// DecodeFile is FromFile that also reports the detected format.
func DecodeFile(path string) (Value, Format, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, 0, opError(ErrKindIO, "from file", errors.Wrapf(err, "reading %s", path))
	}
	defer func() { _ = release() }()
	// The engine copies everything it needs, so the mapping can go as soon
	// as decoding returns.
	return DecodeDetect(data)
}

// WriteFile encodes v in format f and atomically replaces the file at path.
func WriteFile(path string, v Value, f Format, opts EncodeOptions) error {
	return WriteTo(&writer.FileWriter{Path: path}, v, f, opts)
}

// Sink receives an encoded document.
type Sink interface {
	WritePlist(buf []byte) error
}

// WriteTo encodes v in format f and hands the result to sink.
func WriteTo(sink Sink, v Value, f Format, opts EncodeOptions) error {
	buf, err := Encode(v, f, opts)
	if err != nil {
		return err
	}
	if err := sink.WritePlist(buf); err != nil {
		return opError(ErrKindIO, "write", err)
	}
	return nil
}
