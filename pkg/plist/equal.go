package plist

import (
	"bytes"

	"github.com/joshuapare/plistkit/internal/cplist"
)

// nodesEqual compares two subtrees directly on the engine nodes, without
// allocating wrappers for the children.
func nodesEqual(a, b cplist.Node) bool {
	if a == b {
		return true
	}
	ta, tb := cplist.NodeType(a), cplist.NodeType(b)
	if ta != tb {
		return false
	}
	switch ta {
	case cplist.TypeBoolean:
		return cplist.GetBool(a) == cplist.GetBool(b)
	case cplist.TypeInt:
		return cplist.GetUint(a) == cplist.GetUint(b)
	case cplist.TypeReal:
		return cplist.GetReal(a) == cplist.GetReal(b)
	case cplist.TypeString:
		return cplist.GetString(a) == cplist.GetString(b)
	case cplist.TypeKey:
		return cplist.GetKey(a) == cplist.GetKey(b)
	case cplist.TypeData:
		return bytes.Equal(cplist.GetData(a), cplist.GetData(b))
	case cplist.TypeDate:
		as, au := dateParts(a)
		bs, bu := dateParts(b)
		return as == bs && au == bu
	case cplist.TypeUID:
		return cplist.GetUID(a) == cplist.GetUID(b)
	case cplist.TypeNull:
		return true
	case cplist.TypeArray:
		return arraysEqual(a, b)
	case cplist.TypeDict:
		return dictsEqual(a, b)
	default:
		return false
	}
}

func arraysEqual(a, b cplist.Node) bool {
	n := cplist.ArraySize(a)
	if n != cplist.ArraySize(b) {
		return false
	}
	for i := uint32(0); i < n; i++ {
		if !nodesEqual(cplist.ArrayGet(a, i), cplist.ArrayGet(b, i)) {
			return false
		}
	}
	return true
}

func dictsEqual(a, b cplist.Node) bool {
	if cplist.DictSize(a) != cplist.DictSize(b) {
		return false
	}
	cur := openCursor(cplist.DictNewIter(a))
	defer cur.release()
	for {
		av := cplist.DictNext(a, cur.it)
		if av == nil {
			return true
		}
		bv := cplist.DictGet(b, cplist.GetKey(cplist.DictItemKey(av)))
		if bv == nil || !nodesEqual(av, bv) {
			return false
		}
	}
}
