package plist

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

// fullTree uses every kind the binary format can carry.
func fullTree() *Dictionary {
	return DictionaryOf(
		"bool", true,
		"int", -12,
		"uint", uint64(1<<63),
		"real", 1.5,
		"string", "héllo",
		"data", []byte{0, 1, 2, 0xff},
		"date", time.Date(2024, 2, 29, 12, 0, 0, 250_000_000, time.UTC),
		"uid", NewUid(4),
		"null", nil,
		"array", ArrayOf(1, "two", ArrayOf()),
		"dict", DictionaryOf("nested", DictionaryOf()),
	)
}

// xmlTree leaves out what XML cannot carry: Null, Uid and sub-second dates.
func xmlTree() *Dictionary {
	return DictionaryOf(
		"bool", false,
		"int", 42,
		"real", 0.5,
		"string", "a < b & c",
		"data", []byte("bytes"),
		"date", time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		"array", ArrayOf(1, "two"),
		"dict", DictionaryOf("k", "v"),
	)
}

func TestBinaryRoundTrip(t *testing.T) {
	checkLedger(t)
	tree := fullTree()
	defer tree.Free()

	bin, err := tree.ToBinary()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(bin), "bplist00"))

	back, err := FromBinary(bin)
	require.NoError(t, err)
	defer back.Free()
	require.True(t, tree.Equal(back), "got %s", back)
}

func TestXMLRoundTrip(t *testing.T) {
	checkLedger(t)
	tree := xmlTree()
	defer tree.Free()

	xml, err := tree.ToXML()
	require.NoError(t, err)
	require.Contains(t, xml, "<plist version=\"1.0\">")

	back, err := FromXML(xml)
	require.NoError(t, err)
	defer back.Free()
	require.True(t, tree.Equal(back), "got %s", back)
}

func TestJSONRoundTrip(t *testing.T) {
	checkLedger(t)
	tree := DictionaryOf(
		"bool", true,
		"int", -3,
		"real", 2.5,
		"string", "quote \" here",
		"array", ArrayOf(1, 2, ArrayOf()),
		"dict", DictionaryOf("k", "v"),
	)
	defer tree.Free()

	for _, pretty := range []bool{false, true} {
		js, err := tree.ToJSON(pretty)
		require.NoError(t, err)
		if pretty {
			require.Contains(t, js, "\n")
		}

		back, err := FromJSON(js)
		require.NoError(t, err)
		require.True(t, tree.Equal(back), "got %s", back)
		back.Free()
	}
}

func TestOpenStepRoundTrip(t *testing.T) {
	checkLedger(t)
	tree := DictionaryOf(
		"name", "demo",
		"list", ArrayOf("a", "b c"),
		"blob", []byte{0xde, 0xad},
		"nested", DictionaryOf("k", "v"),
	)
	defer tree.Free()

	for _, pretty := range []bool{false, true} {
		text, err := tree.ToOpenStep(pretty)
		require.NoError(t, err)
		back, err := FromOpenStep(text)
		require.NoError(t, err)
		require.True(t, tree.Equal(back), "got %s", back)
		back.Free()
	}
}

func TestDecodeDetect(t *testing.T) {
	checkLedger(t)
	tree := DictionaryOf("k", ArrayOf("v"))
	defer tree.Free()

	encodings := []Format{FormatXML, FormatBinary, FormatJSON, FormatOpenStep}
	for _, f := range encodings {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(tree, f, EncodeOptions{Pretty: true})
			require.NoError(t, err)

			back, got, err := DecodeDetect(data)
			require.NoError(t, err)
			defer back.Free()
			require.Equal(t, f, got)
			require.True(t, tree.Equal(back))

			again, err := Decode(data, f)
			require.NoError(t, err)
			defer again.Free()
			require.True(t, tree.Equal(again))
		})
	}
}

func TestDecodeDetectUTF16(t *testing.T) {
	checkLedger(t)
	tree := DictionaryOf("greeting", "héllo")
	defer tree.Free()
	xml, err := tree.ToXML()
	require.NoError(t, err)

	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	utf16, err := enc.Bytes([]byte(xml))
	require.NoError(t, err)

	back, f, err := DecodeDetect(utf16)
	require.NoError(t, err)
	defer back.Free()
	require.Equal(t, FormatXML, f)
	require.True(t, tree.Equal(back))
}

// cyclicBinary is a binary plist whose only object is an array containing
// itself.
func cyclicBinary() []byte {
	b := []byte("bplist00")
	b = append(b, 0xA1, 0x00) // object 0: array of one ref, ref -> object 0
	b = append(b, 0x08)       // offset table: object 0 at offset 8
	trailer := make([]byte, 32)
	trailer[6] = 1 // offset int size
	trailer[7] = 1 // object ref size
	binary.BigEndian.PutUint64(trailer[8:], 1)   // number of objects
	binary.BigEndian.PutUint64(trailer[16:], 0)  // top object
	binary.BigEndian.PutUint64(trailer[24:], 10) // offset table offset
	return append(b, trailer...)
}

func TestCyclicBinaryIsRejected(t *testing.T) {
	checkLedger(t)
	done := make(chan struct{})
	var (
		v   Value
		err error
	)
	go func() {
		defer close(done)
		v, err = FromBinary(cyclicBinary())
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("decoding a cyclic binary plist did not terminate")
	}
	require.Nil(t, v)
	require.ErrorIs(t, err, ErrParse)
}

func TestDecodeErrors(t *testing.T) {
	checkLedger(t)
	tests := []struct {
		name string
		run  func() (Value, error)
		want error
	}{
		{"empty xml", func() (Value, error) { return FromXML("") }, ErrInvalidArgument},
		{"nul in json", func() (Value, error) { return FromJSON("{\"a\":\x00}") }, ErrInvalidArgument},
		{"empty binary", func() (Value, error) { return FromBinary(nil) }, ErrInvalidArgument},
		{"empty memory", func() (Value, error) { return FromMemory(nil) }, ErrInvalidArgument},
		{"bad xml", func() (Value, error) { return FromXML("<plist><dict><key>a</key>") }, ErrParse},
		{"bad json", func() (Value, error) { return FromJSON("{\"a\": [1, 2") }, ErrParse},
		{"truncated binary", func() (Value, error) { return FromBinary([]byte("bplist00\xd1")) }, ErrParse},
		{"unknown format", func() (Value, error) { return Decode([]byte("x"), Format(99)) }, ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.run()
			require.Nil(t, v)
			require.ErrorIs(t, err, tt.want)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			require.NotEmpty(t, perr.Op)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	checkLedger(t)
	withData := DictionaryOf("blob", []byte{1})
	defer withData.Free()

	_, err := withData.ToJSON(false)
	require.ErrorIs(t, err, ErrFormat)

	_, err = Encode(withData, Format(0), EncodeOptions{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"xml":      FormatXML,
		"Binary":   FormatBinary,
		"bin":      FormatBinary,
		" json ":   FormatJSON,
		"openstep": FormatOpenStep,
		"ascii":    FormatOpenStep,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseFormat("yaml")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestErrorMessages(t *testing.T) {
	err := &Error{Kind: ErrKindParse, Op: "from xml"}
	require.Equal(t, "plist: from xml: parsing of the input format failed", err.Error())
	require.ErrorIs(t, err, ErrParse)
	require.NotErrorIs(t, err, ErrIO)
	require.Equal(t, "plist: I/O error", ErrIO.Error())
	require.Panics(t, func() { _ = resultError("x", 0) })
}
