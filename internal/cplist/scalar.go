package cplist

/*
#include <stdlib.h>
#include <plist/plist.h>
*/
import "C"

import "unsafe"

// NewBool creates a boolean node.
func NewBool(v bool) Node {
	return Node(C.plist_new_bool(cbool(v)))
}

// NewUint creates an integer node from an unsigned value.
func NewUint(v uint64) Node {
	return Node(C.plist_new_uint(C.uint64_t(v)))
}

// NewInt creates an integer node from a signed value.
func NewInt(v int64) Node {
	return Node(C.plist_new_int(C.int64_t(v)))
}

// NewReal creates a real node.
func NewReal(v float64) Node {
	return Node(C.plist_new_real(C.double(v)))
}

// NewString creates a string node. s must not contain NUL bytes; the C side
// would silently truncate it.
func NewString(s string) Node {
	cs := cstring(s)
	defer freeCString(cs)
	return Node(C.plist_new_string(cs))
}

// NewData creates a data node holding a copy of b.
func NewData(b []byte) Node {
	return Node(C.plist_new_data(bytesPtr(b), C.uint64_t(len(b))))
}

// NewDate creates a date node from seconds and microseconds since
// 2001-01-01T00:00:00Z.
func NewDate(sec, usec int32) Node {
	return Node(C.plist_new_date(C.int32_t(sec), C.int32_t(usec)))
}

// NewUID creates a uid node.
func NewUID(v uint64) Node {
	return Node(C.plist_new_uid(C.uint64_t(v)))
}

// NewNull creates a null node.
func NewNull() Node {
	return Node(C.plist_new_null())
}

// GetBool reads a boolean node.
func GetBool(n Node) bool {
	var v C.uint8_t
	C.plist_get_bool_val(c(n), &v)
	return v != 0
}

// GetUint reads an integer node as unsigned.
func GetUint(n Node) uint64 {
	var v C.uint64_t
	C.plist_get_uint_val(c(n), &v)
	return uint64(v)
}

// GetInt reads an integer node as signed.
func GetInt(n Node) int64 {
	var v C.int64_t
	C.plist_get_int_val(c(n), &v)
	return int64(v)
}

// IntIsNegative reports whether an integer node holds a negative signed
// value.
func IntIsNegative(n Node) bool {
	return C.plist_int_val_is_negative(c(n)) != 0
}

// GetReal reads a real node.
func GetReal(n Node) float64 {
	var v C.double
	C.plist_get_real_val(c(n), &v)
	return float64(v)
}

// GetString reads a string node without an intermediate C copy.
func GetString(n Node) string {
	var length C.uint64_t
	p := C.plist_get_string_ptr(c(n), &length)
	if p == nil {
		return ""
	}
	return C.GoStringN(p, C.int(length))
}

// GetKey reads a key node.
func GetKey(n Node) string {
	var p *C.char
	C.plist_get_key_val(c(n), &p)
	if p == nil {
		return ""
	}
	defer MemFree(unsafe.Pointer(p))
	return C.GoString(p)
}

// GetData reads a data node into a fresh Go slice.
func GetData(n Node) []byte {
	var length C.uint64_t
	p := C.plist_get_data_ptr(c(n), &length)
	if p == nil || length == 0 {
		return []byte{}
	}
	return C.GoBytes(unsafe.Pointer(p), C.int(length))
}

// GetDate reads a date node as seconds and microseconds since
// 2001-01-01T00:00:00Z.
func GetDate(n Node) (sec, usec int32) {
	var s, us C.int32_t
	C.plist_get_date_val(c(n), &s, &us)
	return int32(s), int32(us)
}

// GetUID reads a uid node.
func GetUID(n Node) uint64 {
	var v C.uint64_t
	C.plist_get_uid_val(c(n), &v)
	return uint64(v)
}

// The setters below overwrite the node's content in place and, when the
// node held a different kind, change its kind. The node pointer is
// unchanged.

// SetBool stores a boolean into n.
func SetBool(n Node, v bool) {
	C.plist_set_bool_val(c(n), cbool(v))
}

// SetUint stores an unsigned integer into n.
func SetUint(n Node, v uint64) {
	C.plist_set_uint_val(c(n), C.uint64_t(v))
}

// SetInt stores a signed integer into n.
func SetInt(n Node, v int64) {
	C.plist_set_int_val(c(n), C.int64_t(v))
}

// SetReal stores a real into n.
func SetReal(n Node, v float64) {
	C.plist_set_real_val(c(n), C.double(v))
}

// SetString stores a copy of s into n.
func SetString(n Node, s string) {
	cs := cstring(s)
	defer freeCString(cs)
	C.plist_set_string_val(c(n), cs)
}

// SetKey renames a key node.
func SetKey(n Node, s string) {
	cs := cstring(s)
	defer freeCString(cs)
	C.plist_set_key_val(c(n), cs)
}

// SetData stores a copy of b into n.
func SetData(n Node, b []byte) {
	C.plist_set_data_val(c(n), bytesPtr(b), C.uint64_t(len(b)))
}

// SetDate stores a date into n.
func SetDate(n Node, sec, usec int32) {
	C.plist_set_date_val(c(n), C.int32_t(sec), C.int32_t(usec))
}

// SetUID stores a uid into n.
func SetUID(n Node, v uint64) {
	C.plist_set_uid_val(c(n), C.uint64_t(v))
}

func cbool(v bool) C.uint8_t {
	if v {
		return 1
	}
	return 0
}

// bytesPtr returns a C view of b. libplist copies from it before returning,
// so pinning for the duration of the call is enough.
func bytesPtr(b []byte) *C.char {
	if len(b) == 0 {
		return nil
	}
	return (*C.char)(unsafe.Pointer(&b[0]))
}
