package cplist

/*
#include <stdlib.h>
#include <plist/plist.h>
*/
import "C"

// NewArray creates an empty array node.
func NewArray() Node {
	return Node(C.plist_new_array())
}

// NewDict creates an empty dictionary node.
func NewDict() Node {
	return Node(C.plist_new_dict())
}

// ArraySize returns the number of children of an array node.
func ArraySize(n Node) uint32 {
	return uint32(C.plist_array_get_size(c(n)))
}

// ArrayGet returns the child at index, or nil when out of range. The child
// stays owned by n.
func ArrayGet(n Node, index uint32) Node {
	return Node(C.plist_array_get_item(c(n), C.uint32_t(index)))
}

// ArraySet replaces the child at index with item, freeing the previous
// child. item must have no parent; n takes ownership of it.
func ArraySet(n Node, item Node, index uint32) {
	C.plist_array_set_item(c(n), c(item), C.uint32_t(index))
}

// ArrayAppend adds item at the end of n. n takes ownership of item.
func ArrayAppend(n Node, item Node) {
	C.plist_array_append_item(c(n), c(item))
}

// ArrayInsert inserts item before index. n takes ownership of item.
func ArrayInsert(n Node, item Node, index uint32) {
	C.plist_array_insert_item(c(n), c(item), C.uint32_t(index))
}

// ArrayRemove detaches and frees the child at index.
func ArrayRemove(n Node, index uint32) {
	C.plist_array_remove_item(c(n), C.uint32_t(index))
}

// ArrayNewIter allocates a cursor over the children of n. Release it with
// FreeIter.
func ArrayNewIter(n Node) Iter {
	var it C.plist_array_iter
	C.plist_array_new_iter(c(n), &it)
	return Iter(it)
}

// ArrayNext advances the cursor and returns the next child, or nil when
// the array is exhausted.
func ArrayNext(n Node, it Iter) Node {
	var item C.plist_t
	C.plist_array_next_item(c(n), C.plist_array_iter(it), &item)
	return Node(item)
}

// DictSize returns the number of entries of a dictionary node.
func DictSize(n Node) uint32 {
	return uint32(C.plist_dict_get_size(c(n)))
}

// DictGet returns the value stored under key, or nil. The value stays
// owned by n.
func DictGet(n Node, key string) Node {
	ck := cstring(key)
	defer freeCString(ck)
	return Node(C.plist_dict_get_item(c(n), ck))
}

// DictSet stores item under key, freeing any previous value. n takes
// ownership of item.
func DictSet(n Node, key string, item Node) {
	ck := cstring(key)
	defer freeCString(ck)
	C.plist_dict_set_item(c(n), ck, c(item))
}

// DictRemove detaches and frees the entry stored under key.
func DictRemove(n Node, key string) {
	ck := cstring(key)
	defer freeCString(ck)
	C.plist_dict_remove_item(c(n), ck)
}

// DictMerge copies every entry of source into target, overwriting
// existing keys. source is left untouched.
func DictMerge(target, source Node) {
	t := c(target)
	C.plist_dict_merge(&t, c(source))
}

// DictItemKey returns the key node paired with a value node of a
// dictionary.
func DictItemKey(value Node) Node {
	return Node(C.plist_dict_item_get_key(c(value)))
}

// DictNewIter allocates a cursor over the entries of n. Release it with
// FreeIter.
func DictNewIter(n Node) Iter {
	var it C.plist_dict_iter
	C.plist_dict_new_iter(c(n), &it)
	return Iter(it)
}

// DictNext advances the cursor and returns the next value node, or nil
// when the dictionary is exhausted. Use DictItemKey for its key.
func DictNext(n Node, it Iter) Node {
	var val C.plist_t
	C.plist_dict_next_item(c(n), C.plist_dict_iter(it), nil, &val)
	return Node(val)
}
