package plist

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/joshuapare/plistkit/internal/cplist"
)

// maxRenderBytes caps the data bytes shown by String.
const maxRenderBytes = 32

func (c core) String() string {
	if c.h == nil {
		return "<nil>"
	}
	c.h.check()
	var sb strings.Builder
	renderNode(&sb, c.h.node)
	return sb.String()
}

// renderNode writes a compact, JSON-like rendering of n:
//
//	{"name": "demo", "tags": ["a", 1, true], "blob": <0a0b>, "ref": uid(3)}
func renderNode(sb *strings.Builder, n cplist.Node) {
	switch cplist.NodeType(n) {
	case cplist.TypeBoolean:
		sb.WriteString(strconv.FormatBool(cplist.GetBool(n)))
	case cplist.TypeInt:
		if cplist.IntIsNegative(n) {
			sb.WriteString(strconv.FormatInt(cplist.GetInt(n), 10))
		} else {
			sb.WriteString(strconv.FormatUint(cplist.GetUint(n), 10))
		}
	case cplist.TypeReal:
		sb.WriteString(strconv.FormatFloat(cplist.GetReal(n), 'g', -1, 64))
	case cplist.TypeString:
		sb.WriteString(strconv.Quote(cplist.GetString(n)))
	case cplist.TypeKey:
		sb.WriteString(strconv.Quote(cplist.GetKey(n)))
	case cplist.TypeData:
		b := cplist.GetData(n)
		sb.WriteByte('<')
		if len(b) > maxRenderBytes {
			sb.WriteString(hex.EncodeToString(b[:maxRenderBytes]))
			sb.WriteString("...")
		} else {
			sb.WriteString(hex.EncodeToString(b))
		}
		sb.WriteByte('>')
	case cplist.TypeDate:
		us := joinUnixMicro(dateParts(n))
		sb.WriteString(time.UnixMicro(us).UTC().Format(time.RFC3339Nano))
	case cplist.TypeUID:
		sb.WriteString("uid(")
		sb.WriteString(strconv.FormatUint(cplist.GetUID(n), 10))
		sb.WriteByte(')')
	case cplist.TypeNull:
		sb.WriteString("null")
	case cplist.TypeArray:
		sb.WriteByte('[')
		size := cplist.ArraySize(n)
		for i := uint32(0); i < size; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			renderNode(sb, cplist.ArrayGet(n, i))
		}
		sb.WriteByte(']')
	case cplist.TypeDict:
		sb.WriteByte('{')
		cur := openCursor(cplist.DictNewIter(n))
		defer cur.release()
		for first := true; ; first = false {
			v := cplist.DictNext(n, cur.it)
			if v == nil {
				break
			}
			if !first {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(cplist.GetKey(cplist.DictItemKey(v))))
			sb.WriteString(": ")
			renderNode(sb, v)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("<invalid>")
	}
}
