package main

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/plistkit/pkg/plist"
)

// splitPath turns "a/0/b" into its segments. "", "/" and "." name the root.
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" || p == "." {
		return nil
	}
	return strings.Split(p, "/")
}

// resolve walks segs from root. Array segments are decimal indices and
// dictionary segments are keys. The result borrows from root.
func resolve(root plist.Value, segs []string) (plist.Value, error) {
	v := root
	for i, s := range segs {
		switch c := v.(type) {
		case *plist.Array:
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, errors.Newf("%s: %q is not an array index", joinPath(segs[:i]), s)
			}
			item, ok := c.Get(n)
			if !ok {
				return nil, errors.Newf("%s: index %d out of range (len %d)", joinPath(segs[:i]), n, c.Len())
			}
			v = item.Value
		case *plist.Dictionary:
			item, ok := c.Get(s)
			if !ok {
				return nil, errors.Newf("%s: no key %q", joinPath(segs[:i]), s)
			}
			v = item.Value
		default:
			return nil, errors.Newf("%s: %s has no children", joinPath(segs[:i]), v.Kind())
		}
	}
	return v, nil
}

func joinPath(segs []string) string {
	return "/" + strings.Join(segs, "/")
}

// parseValue reads a single JSON value, e.g. `"text"`, `3` or `[1, 2]`.
func parseValue(s string) (plist.Value, error) {
	wrapper, err := plist.FromJSON("[" + s + "]")
	if err != nil {
		return nil, errors.Wrapf(err, "parsing value %q", s)
	}
	defer wrapper.Free()
	arr, _ := wrapper.AsArray()
	if arr.Len() != 1 {
		return nil, errors.Newf("expected exactly one value, got %d", arr.Len())
	}
	item, _ := arr.Get(0)
	return item.Clone(), nil
}
