package plist

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/joshuapare/plistkit/internal/cplist"
	"github.com/joshuapare/plistkit/internal/logger"
	"github.com/joshuapare/plistkit/internal/textenc"
)

// Format is a plist serialization format.
type Format int

const (
	FormatXML Format = iota + 1
	FormatBinary
	FormatJSON
	FormatOpenStep
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatBinary:
		return "binary"
	case FormatJSON:
		return "json"
	case FormatOpenStep:
		return "openstep"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a format name ("xml", "binary"/"bin", "json",
// "openstep"/"ascii") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xml":
		return FormatXML, nil
	case "binary", "bin", "bplist":
		return FormatBinary, nil
	case "json":
		return FormatJSON, nil
	case "openstep", "ascii":
		return FormatOpenStep, nil
	default:
		return 0, opError(ErrKindInvalidArgument, "parse format", fmt.Errorf("unknown format %q", s))
	}
}

func formatOf(f cplist.Format) (Format, bool) {
	switch f {
	case cplist.FormatXML:
		return FormatXML, true
	case cplist.FormatBinary:
		return FormatBinary, true
	case cplist.FormatJSON:
		return FormatJSON, true
	case cplist.FormatOpenStep:
		return FormatOpenStep, true
	default:
		return 0, false
	}
}

// EncodeOptions controls serialization.
type EncodeOptions struct {
	// Pretty indents JSON and OpenStep output. XML is always indented and
	// binary ignores it.
	Pretty bool
}

// FromXML decodes an XML plist. The caller owns the result.
func FromXML(s string) (Value, error) {
	return Decode([]byte(s), FormatXML)
}

// FromJSON decodes a JSON plist. The caller owns the result.
func FromJSON(s string) (Value, error) {
	return Decode([]byte(s), FormatJSON)
}

// FromOpenStep decodes an OpenStep ASCII plist. The caller owns the result.
func FromOpenStep(s string) (Value, error) {
	return Decode([]byte(s), FormatOpenStep)
}

// FromBinary decodes a binary plist. The caller owns the result.
func FromBinary(b []byte) (Value, error) {
	return Decode(b, FormatBinary)
}

// FromMemory decodes data in any supported format. The caller owns the
// result.
func FromMemory(data []byte) (Value, error) {
	v, _, err := DecodeDetect(data)
	return v, err
}

// Decode decodes data in format f. The caller owns the result.
func Decode(data []byte, f Format) (Value, error) {
	op := "from " + f.String()
	var (
		n   cplist.Node
		res cplist.Result
	)
	if f != FormatBinary {
		if err := checkText(op, data); err != nil {
			return nil, err
		}
	} else if err := checkInput(op, data); err != nil {
		return nil, err
	}
	switch f {
	case FormatXML:
		n, res = cplist.FromXML(data)
	case FormatBinary:
		n, res = cplist.FromBin(data)
	case FormatJSON:
		n, res = cplist.FromJSON(data)
	case FormatOpenStep:
		n, res = cplist.FromOpenStep(data)
	default:
		return nil, opError(ErrKindInvalidArgument, op, fmt.Errorf("unsupported format %s", f))
	}
	return decoded(op, n, res)
}

// DecodeDetect decodes data in any supported format and reports the format
// found. Text input with a UTF-16 or UTF-8 byte-order mark is transcoded
// first. The caller owns the result.
func DecodeDetect(data []byte) (Value, Format, error) {
	const op = "from memory"
	utf8, enc, err := textenc.ToUTF8(data)
	if err != nil {
		return nil, 0, opError(ErrKindParse, op, err)
	}
	if enc != textenc.Raw {
		err = checkText(op, utf8)
	} else {
		err = checkInput(op, utf8)
	}
	if err != nil {
		return nil, 0, err
	}
	n, cf, res := cplist.FromMemory(utf8)
	v, err := decoded(op, n, res)
	if err != nil {
		return nil, 0, err
	}
	f, ok := formatOf(cf)
	if !ok {
		v.Free()
		return nil, 0, opError(ErrKindFormat, op, fmt.Errorf("unrecognized format %d", int(cf)))
	}
	logger.L.Debug("plist: decoded", "format", f.String(), "encoding", enc.String(), "bytes", len(data))
	return v, f, nil
}

func decoded(op string, n cplist.Node, res cplist.Result) (Value, error) {
	if res != cplist.Success {
		if n != nil {
			cplist.Free(n)
		}
		err := resultError(op, res)
		logger.L.Debug("plist: decode failed", "op", op, "err", err)
		return nil, err
	}
	if n == nil {
		return nil, opError(ErrKindParse, op, fmt.Errorf("no root node"))
	}
	return newRoot(n), nil
}

func checkInput(op string, data []byte) error {
	if len(data) == 0 {
		return opError(ErrKindInvalidArgument, op, fmt.Errorf("empty input"))
	}
	if uint64(len(data)) > math.MaxUint32 {
		return opError(ErrKindInvalidArgument, op, fmt.Errorf("input of %d bytes is too large", len(data)))
	}
	return nil
}

func checkText(op string, data []byte) error {
	if err := checkInput(op, data); err != nil {
		return err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return opError(ErrKindInvalidArgument, op, fmt.Errorf("NUL byte at offset %d", i))
	}
	return nil
}

// Encode serializes the subtree rooted at v in format f.
func Encode(v Value, f Format, opts EncodeOptions) ([]byte, error) {
	return encodeNode(v.base(), f, opts)
}

func encodeNode(h *handle, f Format, opts EncodeOptions) ([]byte, error) {
	h.check()
	op := "to " + f.String()
	var (
		out []byte
		res cplist.Result
	)
	switch f {
	case FormatXML:
		out, res = cplist.ToXML(h.node)
	case FormatBinary:
		out, res = cplist.ToBin(h.node)
	case FormatJSON:
		out, res = cplist.ToJSON(h.node, opts.Pretty)
	case FormatOpenStep:
		out, res = cplist.ToOpenStep(h.node, opts.Pretty)
	default:
		return nil, opError(ErrKindInvalidArgument, op, fmt.Errorf("unsupported format %s", f))
	}
	if res != cplist.Success {
		err := resultError(op, res)
		logger.L.Debug("plist: encode failed", "kind", h.kind.String(), "err", err)
		return nil, err
	}
	return out, nil
}

func (c core) encode(f Format, opts EncodeOptions) ([]byte, error) {
	return encodeNode(c.h, f, opts)
}

func (c core) ToXML() (string, error) {
	b, err := c.encode(FormatXML, EncodeOptions{})
	return string(b), err
}

func (c core) ToJSON(pretty bool) (string, error) {
	b, err := c.encode(FormatJSON, EncodeOptions{Pretty: pretty})
	return string(b), err
}

func (c core) ToBinary() ([]byte, error) {
	return c.encode(FormatBinary, EncodeOptions{})
}

func (c core) ToOpenStep(pretty bool) (string, error) {
	b, err := c.encode(FormatOpenStep, EncodeOptions{Pretty: pretty})
	return string(b), err
}
