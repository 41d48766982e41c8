// Package textenc normalizes text plist input to UTF-8 before it reaches
// the engine, which only understands UTF-8 text formats.
package textenc

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding identifies the text encoding detected on an input.
type Encoding int

const (
	// Raw means no byte-order mark was found; the input is passed through.
	Raw Encoding = iota
	UTF8BOM
	UTF16LE
	UTF16BE
)

func (e Encoding) String() string {
	switch e {
	case Raw:
		return "raw"
	case UTF8BOM:
		return "utf-8 (bom)"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect reports the encoding announced by the byte-order mark of data.
func Detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	default:
		return Raw
	}
}

// ToUTF8 returns data as UTF-8 without a byte-order mark. Input without a
// BOM (including binary plists) is returned unchanged and not copied.
func ToUTF8(data []byte) ([]byte, Encoding, error) {
	enc := Detect(data)
	var dec *encoding.Decoder
	switch enc {
	case Raw:
		return data, enc, nil
	case UTF8BOM:
		return data[len(bomUTF8):], enc, nil
	case UTF16LE:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case UTF16BE:
		dec = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	}
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, enc, fmt.Errorf("textenc: decoding %s: %w", enc, err)
	}
	return out, enc, nil
}
