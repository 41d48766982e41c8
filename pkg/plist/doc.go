// Package plist provides a memory-safe API over libplist property-list
// trees.
//
// # Overview
//
// libplist keeps every plist as a tree of C-allocated nodes. A container
// owns its children exclusively and frees them recursively when it is
// freed. This package wraps those nodes in typed Go values and tracks, per
// wrapper, whether it is responsible for freeing its node:
//
//   - Owned: the wrapper is the unique root of a tree. Call Free exactly
//     when you are done with it.
//   - Borrowed: the wrapper is a view of a node that some container owns.
//     Free is a no-op. The view must not be used after its owner is freed.
//
// # Key Types
//
//   - Value: the sealed interface over the 11 node kinds
//   - Array, Dictionary: containers
//   - Boolean, Integer, Real, String, Data, Date, Uid, Null: scalars
//   - Key: a dictionary key, only obtainable while iterating a Dictionary
//   - Item, MutableItem: borrowed children returned by lookups and iterators
//
// # Creating and Freeing Trees
//
//	root := plist.DictionaryOf(
//	    "name", "plistkit",
//	    "tags", plist.ArrayOf("a", "b"),
//	)
//	defer root.Free()
//
//	xml, err := root.ToXML()
//
// Decoding returns an owned root as well:
//
//	v, err := plist.FromFile("/Library/Preferences/com.example.plist")
//	if err != nil {
//	    return err
//	}
//	defer v.Free()
//
// # Ownership Transfer
//
// Inserting a value into a container moves it: the value becomes a
// borrowed view of the child and the container frees it later. Only owned
// roots can be inserted; use Clone to insert a copy of a borrowed value.
//
//	arr := plist.NewArray()
//	s := plist.NewString("hello")
//	arr.Append(s)  // s is now Borrowed
//	arr.Free()     // frees s's node too
//
// Array indices are checked: Set and Remove panic outside [0, Len), and
// Insert accepts [0, Len], where inserting at Len appends.
//
// Removing or overwriting a child frees its subtree. Views of that subtree
// must not be used afterwards.
//
// # Iteration
//
// Iterators hold a cursor allocated by libplist. Range-over-func forms
// release it on every exit path; explicit iterators release it when
// exhausted or closed.
//
//	for i, item := range arr.All() {
//	    fmt.Println(i, item)
//	}
//
// Mutating a container while iterating it is not supported.
//
// # Replacing Values in Place
//
// ReplaceWith and MutableItem.ReplaceWith overwrite the content of a scalar
// node without changing its identity, so the parent container keeps
// pointing at it. The replacement's content is copied.
//
// # Thread Safety
//
// Trees are not safe for concurrent use. Independent trees may be used from
// different goroutines.
//
// # Debug Builds
//
// Building with -tags invariants (or -race) records every owned root and
// panics on double frees and double cursor releases. Owned roots that
// become unreachable without being freed are logged as leaks.
//
// Invariant builds also panic on use of a borrowed view taken before a
// removal or overwrite anywhere in its tree (Array.Set, Array.Remove,
// Dictionary.Insert over an existing key, Dictionary.Remove,
// Dictionary.Merge). The wrapper the change was made through stays usable,
// as does the value that was inserted.
package plist
