// Package cplist is the raw cgo binding to libplist.
//
// Every function here maps to exactly one libplist call (or a fixed pair of
// calls when the C side hands back memory that has to be released). There is
// no ownership tracking at this level: a Node is a bare plist_t and callers
// are responsible for freeing roots exactly once and never freeing children.
// The safe API on top of this lives in pkg/plist.
package cplist

/*
#cgo pkg-config: libplist-2.0
#include <stdlib.h>
#include <plist/plist.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Node is a raw plist_t handle.
type Node unsafe.Pointer

// Iter is a raw plist_array_iter / plist_dict_iter cursor.
type Iter unsafe.Pointer

// Type is the node kind tag reported by plist_get_node_type.
type Type int

// Node kinds. The numbers match libplist's plist_type enum.
const (
	TypeNone    Type = -1
	TypeBoolean Type = 0
	TypeInt     Type = 1
	TypeReal    Type = 2
	TypeString  Type = 3
	TypeArray   Type = 4
	TypeDict    Type = 5
	TypeDate    Type = 6
	TypeData    Type = 7
	TypeKey     Type = 8
	TypeUID     Type = 9
	TypeNull    Type = 10
)

// String returns the libplist name of the type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "PLIST_NONE"
	case TypeBoolean:
		return "PLIST_BOOLEAN"
	case TypeInt:
		return "PLIST_INT"
	case TypeReal:
		return "PLIST_REAL"
	case TypeString:
		return "PLIST_STRING"
	case TypeArray:
		return "PLIST_ARRAY"
	case TypeDict:
		return "PLIST_DICT"
	case TypeDate:
		return "PLIST_DATE"
	case TypeData:
		return "PLIST_DATA"
	case TypeKey:
		return "PLIST_KEY"
	case TypeUID:
		return "PLIST_UID"
	case TypeNull:
		return "PLIST_NULL"
	default:
		return fmt.Sprintf("PLIST_UNKNOWN_%d", int(t))
	}
}

// Result is a plist_err_t return code.
type Result int

// Result codes. The numbers match libplist's plist_err_t enum.
const (
	Success       Result = 0
	ErrInvalidArg Result = -1
	ErrFormat     Result = -2
	ErrParse      Result = -3
	ErrNoMem      Result = -4
	ErrIO         Result = -5
	ErrUnknown    Result = -255
)

// Format is a plist_format_t serialization format.
type Format int

// Formats reported by FromMemory. The numbers match libplist's
// plist_format_t enum.
const (
	FormatNone     Format = 0
	FormatXML      Format = 1
	FormatBinary   Format = 2
	FormatJSON     Format = 3
	FormatOpenStep Format = 4
)

func c(n Node) C.plist_t { return C.plist_t(n) }

// NodeType returns the kind tag of n.
func NodeType(n Node) Type {
	return Type(C.plist_get_node_type(c(n)))
}

// Free releases n and, recursively, all of its children. If n is attached
// to a parent it is detached first.
func Free(n Node) {
	C.plist_free(c(n))
}

// Copy returns a deep copy of n with no parent.
func Copy(n Node) Node {
	return Node(C.plist_copy(c(n)))
}

// Parent returns the container holding n, or nil for a root.
func Parent(n Node) Node {
	return Node(C.plist_get_parent(c(n)))
}

// MemFree releases memory allocated by libplist (encoded buffers, strings,
// iteration cursors).
func MemFree(p unsafe.Pointer) {
	C.plist_mem_free(p)
}

// FreeIter releases an iteration cursor.
func FreeIter(it Iter) {
	MemFree(unsafe.Pointer(it))
}

// cstring copies s into C memory. The caller frees the result with C.free.
func cstring(s string) *C.char {
	return C.CString(s)
}

func freeCString(p *C.char) {
	C.free(unsafe.Pointer(p))
}
