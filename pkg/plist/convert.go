package plist

import (
	"maps"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
)

// Of converts a Go value into an owned plist value:
//
//	nil                       -> Null
//	bool                      -> Boolean
//	int, int8 ... int64       -> Integer (signed)
//	uint, uint8 ... uint64    -> Integer (unsigned)
//	float32, float64          -> Real
//	string                    -> String
//	[]byte                    -> Data
//	time.Time                 -> Date
//	[]any, []string, []Value  -> Array
//	map[string]any            -> Dictionary, keys sorted
//	Value                     -> returned unchanged
//
// Any other type panics.
func Of(x any) Value {
	switch x := x.(type) {
	case nil:
		return NewNull()
	case Value:
		return x
	case bool:
		return NewBoolean(x)
	case int:
		return NewInteger(int64(x))
	case int8:
		return NewInteger(int64(x))
	case int16:
		return NewInteger(int64(x))
	case int32:
		return NewInteger(int64(x))
	case int64:
		return NewInteger(x)
	case uint:
		return NewUnsigned(uint64(x))
	case uint8:
		return NewUnsigned(uint64(x))
	case uint16:
		return NewUnsigned(uint64(x))
	case uint32:
		return NewUnsigned(uint64(x))
	case uint64:
		return NewUnsigned(x)
	case float32:
		return NewReal(float64(x))
	case float64:
		return NewReal(x)
	case string:
		return NewString(x)
	case []byte:
		return NewData(x)
	case time.Time:
		return NewDate(x)
	case []any:
		return ArrayOf(x...)
	case []string:
		a := NewArray()
		for _, s := range x {
			a.Append(NewString(s))
		}
		return a
	case []Value:
		return NewArray(x...)
	case map[string]any:
		d := NewDictionary()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			d.Insert(k, Of(x[k]))
		}
		return d
	default:
		panic(errors.AssertionFailedf("plist: cannot convert %T", x))
	}
}

// ArrayOf builds an owned array, converting each element with Of.
func ArrayOf(xs ...any) *Array {
	a := NewArray()
	for _, x := range xs {
		a.Append(Of(x))
	}
	return a
}

// DictionaryOf builds an owned dictionary from alternating keys and values,
// converting each value with Of.
//
//	plist.DictionaryOf("name", "demo", "size", 3)
func DictionaryOf(kv ...any) *Dictionary {
	if len(kv)%2 != 0 {
		panic(errors.AssertionFailedf("plist: DictionaryOf needs key/value pairs, got %d arguments", len(kv)))
	}
	for i := 0; i < len(kv); i += 2 {
		if _, ok := kv[i].(string); !ok {
			panic(errors.AssertionFailedf("plist: DictionaryOf key %d is %T, not string", i/2, kv[i]))
		}
	}
	d := NewDictionary()
	for i := 0; i < len(kv); i += 2 {
		d.Insert(kv[i].(string), Of(kv[i+1]))
	}
	return d
}
