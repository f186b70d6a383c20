package domain

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindAbsent is the zero Kind: no value.
	KindAbsent Kind = iota

	// KindString holds a string leaf.
	KindString

	// KindNumber holds a numeric leaf.
	KindNumber

	// KindBool holds a boolean leaf.
	KindBool

	// KindDict holds a string-keyed mapping.
	KindDict

	// KindArray holds an ordered sequence.
	KindArray
)

// Value is a tagged variant over the dynamically-typed trees produced by
// property-list deserialization. Accessors return a zero value and false on
// a kind mismatch instead of casting; a missing or unexpected shape degrades
// to absent rather than failing.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	dict Dict
	arr  Array
}

// Dict is a string-keyed mapping of Values.
type Dict map[string]Value

// Array is an ordered sequence of Values.
type Array []Value

// Absent is the no-value Value.
var Absent = Value{}

// StringValue wraps a string leaf.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberValue wraps a numeric leaf.
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// BoolValue wraps a boolean leaf.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// DictValue wraps a mapping.
func DictValue(d Dict) Value {
	return Value{kind: KindDict, dict: d}
}

// ArrayValue wraps a sequence.
func ArrayValue(a Array) Value {
	return Value{kind: KindArray, arr: a}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// AsString returns the string leaf, or ("", false) for any other kind.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the numeric leaf, or (0, false) for any other kind.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the boolean leaf, or (false, false) for any other kind.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsDict returns the mapping, or (nil, false) for any other kind.
func (v Value) AsDict() (Dict, bool) {
	return v.dict, v.kind == KindDict
}

// AsArray returns the sequence, or (nil, false) for any other kind.
func (v Value) AsArray() (Array, bool) {
	return v.arr, v.kind == KindArray
}

// String returns the string held under key, or ("", false) if the key is
// missing or holds a non-string.
func (d Dict) String(key string) (string, bool) {
	return d[key].AsString()
}

// Dict returns the mapping held under key, or (nil, false).
func (d Dict) Dict(key string) (Dict, bool) {
	return d[key].AsDict()
}

// Array returns the sequence held under key, or (nil, false).
func (d Dict) Array(key string) (Array, bool) {
	return d[key].AsArray()
}

// FromAny converts an arbitrary deserialized tree into the variant model.
// Recognised shapes are strings, byte slices, booleans, the integer and float
// widths a plist decoder emits, map[string]any, and []any. Anything else
// degrades to Absent.
func FromAny(raw any) Value {
	switch val := raw.(type) {
	case string:
		return StringValue(val)
	case []byte:
		return StringValue(string(val))
	case bool:
		return BoolValue(val)
	case int:
		return NumberValue(float64(val))
	case int8:
		return NumberValue(float64(val))
	case int16:
		return NumberValue(float64(val))
	case int32:
		return NumberValue(float64(val))
	case int64:
		return NumberValue(float64(val))
	case uint:
		return NumberValue(float64(val))
	case uint8:
		return NumberValue(float64(val))
	case uint16:
		return NumberValue(float64(val))
	case uint32:
		return NumberValue(float64(val))
	case uint64:
		return NumberValue(float64(val))
	case float32:
		return NumberValue(float64(val))
	case float64:
		return NumberValue(val)
	case map[string]any:
		dict := make(Dict, len(val))
		for k, v := range val {
			dict[k] = FromAny(v)
		}
		return DictValue(dict)
	case map[any]any:
		dict := make(Dict, len(val))
		for k, v := range val {
			key, ok := k.(string)
			if !ok {
				continue
			}
			dict[key] = FromAny(v)
		}
		return DictValue(dict)
	case []any:
		arr := make(Array, len(val))
		for i, v := range val {
			arr[i] = FromAny(v)
		}
		return ArrayValue(arr)
	default:
		return Absent
	}
}

// DictFromAny converts a deserialized tree whose root should be a mapping.
// A non-mapping root yields an empty Dict.
func DictFromAny(raw any) Dict {
	if dict, ok := FromAny(raw).AsDict(); ok {
		return dict
	}
	return Dict{}
}
