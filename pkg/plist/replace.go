package plist

import (
	"github.com/cockroachdb/errors"
	"github.com/joshuapare/plistkit/internal/cplist"
)

// ReplaceWith overwrites the content of the scalar node *target with a copy
// of v's content, changing its kind if needed, and rebinds *target to a new
// wrapper for the same node. The previous wrapper becomes unusable; the new
// one keeps its ownership. v is not consumed.
//
// Both *target and v must be scalars: Boolean, Integer, Real, String, Data,
// Date or Uid.
func ReplaceWith(target *Value, v Value) {
	if target == nil || *target == nil || v == nil {
		panic(errors.AssertionFailedf("plist: ReplaceWith with a nil value"))
	}
	th := (*target).base()
	th.check()
	vh := v.base()
	vh.check()
	if !th.kind.IsScalar() {
		panic(errors.AssertionFailedf("plist: content replacement is not defined for %s", th.kind))
	}
	if !vh.kind.IsScalar() {
		panic(errors.AssertionFailedf("plist: replacement value is %s, not a scalar", vh.kind))
	}
	if th == vh {
		return
	}
	copyContent(th.node, vh.node, vh.kind)
	*target = fromHandle(th.supersede(vh.kind))
}

// copyContent writes src's scalar content into dst through the engine's
// per-kind setter.
func copyContent(dst, src cplist.Node, k Kind) {
	switch k {
	case KindBoolean:
		cplist.SetBool(dst, cplist.GetBool(src))
	case KindInteger:
		if cplist.IntIsNegative(src) {
			cplist.SetInt(dst, cplist.GetInt(src))
		} else {
			cplist.SetUint(dst, cplist.GetUint(src))
		}
	case KindReal:
		cplist.SetReal(dst, cplist.GetReal(src))
	case KindString:
		cplist.SetString(dst, cplist.GetString(src))
	case KindData:
		cplist.SetData(dst, cplist.GetData(src))
	case KindDate:
		sec, usec := dateParts(src)
		setDate(dst, sec, usec)
	case KindUid:
		cplist.SetUID(dst, cplist.GetUID(src))
	default:
		panic(errors.AssertionFailedf("plist: no content setter for %s", k))
	}
}
