package shapefmt

import (
	"reflect"
	"strings"
)

// TypeTag is the coarse symbolic type derived from a single sample value.
// The closed scalar set is string, number, boolean, object, and any; array
// tags append "[]" to their element tag.
type TypeTag string

const (
	TagString TypeTag = "string"
	TagNumber TypeTag = "number"
	TagBool   TypeTag = "boolean"
	TagObject TypeTag = "object"
	TagAny    TypeTag = "any"
)

// String returns the tag name.
func (t TypeTag) String() string { return string(t) }

// Array returns the tag for a sequence of t.
func (t TypeTag) Array() TypeTag { return t + "[]" }

// Elem unwraps one level of array nesting. ok is false for scalar tags.
func (t TypeTag) Elem() (TypeTag, bool) {
	if s, ok := strings.CutSuffix(string(t), "[]"); ok {
		return TypeTag(s), true
	}
	return t, false
}

// Infer maps one sample value to a TypeTag. It is total: every value lands
// on some tag. The tag reflects only this sample's runtime kind; no
// unification across records happens anywhere in the package, so a field
// holding a number in one record and a string in another yields whatever
// the chosen sample happened to be.
func Infer(v any) TypeTag {
	switch x := v.(type) {
	case nil:
		return TagAny
	case string:
		return TagString
	case bool:
		return TagBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return TagNumber
	case *Record:
		if x == nil {
			return TagAny
		}
		return TagObject
	case Record, map[string]any:
		return TagObject
	case []any:
		if len(x) == 0 {
			return TagAny.Array()
		}
		return Infer(x[0]).Array()
	}
	return inferReflect(reflect.ValueOf(v))
}

// inferReflect covers concrete kinds the fast-path switch misses, such as
// []int, named string types, or struct samples.
func inferReflect(rv reflect.Value) TypeTag {
	switch rv.Kind() {
	case reflect.String:
		return TagString
	case reflect.Bool:
		return TagBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return TagNumber
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return TagAny.Array()
		}
		return Infer(rv.Index(0).Interface()).Array()
	case reflect.Map, reflect.Struct:
		return TagObject
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return TagAny
		}
		return Infer(rv.Elem().Interface())
	default:
		return TagAny
	}
}

// Field describes one field of a representative record: its name, the
// sample value it was derived from, and the inferred tag. Descriptors are
// built fresh per call and drive every field-list renderer.
type Field struct {
	Name   string
	Sample any
	Tag    TypeTag
}

// Fields returns the field descriptors of the representative record of v,
// in insertion order.
func Fields(v any) []Field {
	return fieldsOf(representative(v))
}

func fieldsOf(r *Record) []Field {
	fields := make([]Field, 0, len(r.keys))
	for _, k := range r.keys {
		fields = append(fields, Field{Name: k, Sample: r.vals[k], Tag: Infer(r.vals[k])})
	}
	return fields
}
