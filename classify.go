package visualijoper

import (
	"reflect"
)

var pairType = reflect.TypeFor[Pair]()

// Classify maps v to exactly one [Kind] and wraps it in the matching
// [Value]. It never fails: shapes it does not recognize are [UnknownValue].
//
// Pointers and interfaces are followed to the value they hold. A nil
// pointer or interface is [NullValue]; a nil slice or map is an empty
// [ArrayValue].
func Classify(v any) Value {
	return classify(reflect.ValueOf(v))
}

func classify(rv reflect.Value) Value {
	rv, ptr, ok := indirect(rv)
	if !ok {
		return UnknownValue{rv: rv, cyclic: true}
	}
	if !rv.IsValid() {
		return NullValue{}
	}
	switch rv.Kind() {
	case reflect.String:
		return StringValue{Text: rv.String()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntegerValue{Signed: true, Int: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return IntegerValue{Uint: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return FloatValue{Float: rv.Float(), Bits: rv.Type().Bits()}
	case reflect.Slice:
		var id identity
		if rv.Len() > 0 {
			id = identity{ptr: rv.Pointer(), typ: rv.Type(), n: rv.Len()}
		}
		return ArrayValue{Len: rv.Len(), rv: rv, id: id}
	case reflect.Array:
		var id identity
		if ptr != 0 && rv.Len() > 0 {
			id = identity{ptr: ptr, typ: rv.Type(), n: rv.Len()}
		}
		return ArrayValue{Len: rv.Len(), rv: rv, id: id}
	case reflect.Map:
		return ArrayValue{Len: rv.Len(), rv: rv, id: identity{ptr: rv.Pointer(), typ: rv.Type()}}
	case reflect.Struct:
		var id identity
		if ptr != 0 {
			id = identity{ptr: ptr, typ: rv.Type()}
		}
		return ObjectValue{TypeName: rv.Type().String(), rv: rv, id: id}
	case reflect.Bool:
		return BooleanValue{Bool: rv.Bool()}
	default:
		return UnknownValue{rv: rv}
	}
}

// indirect follows interfaces and pointers down to a concrete value. It
// also returns the address of the last pointer followed, which identifies
// a struct or array reached by reference. ok is false when a pointer chain leads
// back to itself.
func indirect(rv reflect.Value) (_ reflect.Value, ptr uintptr, ok bool) {
	var seen map[uintptr]struct{}
	for rv.IsValid() {
		switch rv.Kind() {
		case reflect.Interface:
			if rv.IsNil() {
				return reflect.Value{}, 0, true
			}
			rv = rv.Elem()
		case reflect.Pointer:
			if rv.IsNil() {
				return reflect.Value{}, 0, true
			}
			p := rv.Pointer()
			if _, dup := seen[p]; dup {
				return rv, 0, false
			}
			if seen == nil {
				seen = make(map[uintptr]struct{})
			}
			seen[p] = struct{}{}
			ptr = p
			rv = rv.Elem()
		default:
			return rv, ptr, true
		}
	}
	return rv, 0, true
}
