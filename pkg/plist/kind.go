package plist

import (
	"fmt"

	"github.com/joshuapare/plistkit/internal/cplist"
)

// Kind enumerates the plist node kinds.
type Kind uint8

// The zero Kind is invalid. Every live node reports one of these.
const (
	KindBoolean    Kind = iota + 1 // true or false
	KindInteger                    // signed or unsigned 64-bit integer
	KindReal                       // IEEE 754 double
	KindString                     // UTF-8 text
	KindArray                      // ordered list of values
	KindDictionary                 // string-keyed map in insertion order
	KindDate                       // point in time, microsecond precision
	KindData                       // raw bytes
	KindKey                        // dictionary entry key, only seen during iteration
	KindUid                        // keyed-archive object reference
	KindNull                       // explicit null
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindDictionary:
		return "dictionary"
	case KindDate:
		return "date"
	case KindData:
		return "data"
	case KindKey:
		return "key"
	case KindUid:
		return "uid"
	case KindNull:
		return "null"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsScalar reports whether content replacement is defined for k.
func (k Kind) IsScalar() bool {
	switch k {
	case KindBoolean, KindInteger, KindReal, KindString, KindData, KindDate, KindUid:
		return true
	default:
		return false
	}
}

// IsContainer reports whether k holds children.
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindDictionary
}

// kindOf maps an engine type tag to a Kind. ok is false for PLIST_NONE and
// for tags this package does not know.
func kindOf(t cplist.Type) (k Kind, ok bool) {
	switch t {
	case cplist.TypeBoolean:
		return KindBoolean, true
	case cplist.TypeInt:
		return KindInteger, true
	case cplist.TypeReal:
		return KindReal, true
	case cplist.TypeString:
		return KindString, true
	case cplist.TypeArray:
		return KindArray, true
	case cplist.TypeDict:
		return KindDictionary, true
	case cplist.TypeDate:
		return KindDate, true
	case cplist.TypeData:
		return KindData, true
	case cplist.TypeKey:
		return KindKey, true
	case cplist.TypeUID:
		return KindUid, true
	case cplist.TypeNull:
		return KindNull, true
	default:
		return 0, false
	}
}

// Ownership records whether a wrapper must free its node.
type Ownership uint8

const (
	// Owned wrappers are unique roots and free their subtree on Free.
	Owned Ownership = iota
	// Borrowed wrappers view a node owned by a container; Free is a no-op.
	Borrowed
)

func (o Ownership) String() string {
	switch o {
	case Owned:
		return "owned"
	case Borrowed:
		return "borrowed"
	default:
		return fmt.Sprintf("Ownership(%d)", uint8(o))
	}
}
