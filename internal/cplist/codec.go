package cplist

/*
#include <stdlib.h>
#include <plist/plist.h>
*/
import "C"

import "unsafe"

// FromXML parses an XML plist. On success the returned root has no parent
// and must be freed by the caller.
func FromXML(b []byte) (Node, Result) {
	var root C.plist_t
	res := C.plist_from_xml(bytesPtr(b), C.uint32_t(len(b)), &root)
	return Node(root), Result(res)
}

// FromJSON parses a JSON plist.
func FromJSON(b []byte) (Node, Result) {
	var root C.plist_t
	res := C.plist_from_json(bytesPtr(b), C.uint32_t(len(b)), &root)
	return Node(root), Result(res)
}

// FromOpenStep parses an OpenStep ASCII plist.
func FromOpenStep(b []byte) (Node, Result) {
	var root C.plist_t
	res := C.plist_from_openstep(bytesPtr(b), C.uint32_t(len(b)), &root)
	return Node(root), Result(res)
}

// FromBin parses a binary plist.
func FromBin(b []byte) (Node, Result) {
	var root C.plist_t
	res := C.plist_from_bin(bytesPtr(b), C.uint32_t(len(b)), &root)
	return Node(root), Result(res)
}

// FromMemory detects the format of b and parses it.
func FromMemory(b []byte) (Node, Format, Result) {
	var root C.plist_t
	var format C.plist_format_t
	res := C.plist_from_memory(bytesPtr(b), C.uint32_t(len(b)), &root, &format)
	return Node(root), Format(format), Result(res)
}

// ToXML serializes n as an XML plist.
func ToXML(n Node) ([]byte, Result) {
	var out *C.char
	var length C.uint32_t
	res := Result(C.plist_to_xml(c(n), &out, &length))
	return takeBuffer(out, length, res)
}

// ToBin serializes n as a binary plist.
func ToBin(n Node) ([]byte, Result) {
	var out *C.char
	var length C.uint32_t
	res := Result(C.plist_to_bin(c(n), &out, &length))
	return takeBuffer(out, length, res)
}

// ToJSON serializes n as JSON, optionally indented.
func ToJSON(n Node, pretty bool) ([]byte, Result) {
	var out *C.char
	var length C.uint32_t
	res := Result(C.plist_to_json(c(n), &out, &length, cint(pretty)))
	return takeBuffer(out, length, res)
}

// ToOpenStep serializes n as an OpenStep ASCII plist, optionally indented.
func ToOpenStep(n Node, pretty bool) ([]byte, Result) {
	var out *C.char
	var length C.uint32_t
	res := Result(C.plist_to_openstep(c(n), &out, &length, cint(pretty)))
	return takeBuffer(out, length, res)
}

// takeBuffer copies an engine-allocated output buffer into Go memory and
// releases it.
func takeBuffer(out *C.char, length C.uint32_t, res Result) ([]byte, Result) {
	if out == nil {
		return nil, res
	}
	defer MemFree(unsafe.Pointer(out))
	if res != Success {
		return nil, res
	}
	return C.GoBytes(unsafe.Pointer(out), C.int(length)), res
}

func cint(v bool) C.int {
	if v {
		return 1
	}
	return 0
}
