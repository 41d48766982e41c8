package textenc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func TestToUTF8(t *testing.T) {
	const text = `{ greeting = "grüße"; }`

	le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)
	be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)

	tests := []struct {
		name string
		in   []byte
		enc  Encoding
	}{
		{"raw", []byte(text), Raw},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, text...), UTF8BOM},
		{"utf16le", le, UTF16LE},
		{"utf16be", be, UTF16BE},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, enc, err := ToUTF8(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.enc, enc)
			require.Equal(t, text, string(out))
		})
	}
}

func TestBinaryPassesThrough(t *testing.T) {
	in := []byte("bplist00\x08")
	out, enc, err := ToUTF8(in)
	require.NoError(t, err)
	require.Equal(t, Raw, enc)
	require.Equal(t, in, out)
}
