package visualijoper

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Map is a mapping that keeps its insertion order. Native Go maps have no
// order of their own, so use Map when the order of entries matters. Any
// slice of [Pair], including named types defined on Map, renders the same
// way.
type Map []Pair

// Pair is a single entry of a [Map].
type Pair struct {
	Key   string
	Value any
}

// Field is one named member of an object.
type Field struct {
	Name  string
	Value reflect.Value
}

// FieldMapper turns a struct into the ordered list of fields rendered as
// its rows. v is always a valid reflect.Value of kind Struct.
type FieldMapper interface {
	Fields(v reflect.Value) []Field
}

// FieldMapperFunc adapts a function to [FieldMapper].
type FieldMapperFunc func(v reflect.Value) []Field

// Fields calls f(v).
func (f FieldMapperFunc) Fields(v reflect.Value) []Field { return f(v) }

// Built-in field mappers. Both list fields in declaration order and honor
// the `vj` struct tag: `vj:"-"` hides a field and `vj:"name"` renames it.
var (
	// ExportedFields lists exported fields only. It is the default.
	ExportedFields FieldMapper = FieldMapperFunc(func(v reflect.Value) []Field {
		return structFields(v, false)
	})

	// AllFields lists exported and unexported fields. Unexported values are
	// read through reflection without calling their methods.
	AllFields FieldMapper = FieldMapperFunc(func(v reflect.Value) []Field {
		return structFields(v, true)
	})
)

func structFields(v reflect.Value, unexported bool) []Field {
	t := v.Type()
	fields := make([]Field, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() && !unexported {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("vj"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, Field{Name: name, Value: v.Field(i)})
	}
	return fields
}

// entry is one child of a container, keyed the way its row shows it.
type entry struct {
	key   string
	value reflect.Value
}

func (r *Renderer) arrayEntries(v ArrayValue) []entry {
	rv := v.rv
	if rv.Len() == 0 {
		return nil
	}
	switch {
	case rv.Kind() == reflect.Slice && rv.Type().Elem() == pairType:
		entries := make([]entry, rv.Len())
		for i := range entries {
			pair := rv.Index(i)
			entries[i] = entry{key: pair.Field(0).String(), value: pair.Field(1)}
		}
		return entries
	case rv.Kind() == reflect.Map:
		return mapEntries(rv)
	default:
		entries := make([]entry, rv.Len())
		for i := range entries {
			entries[i] = entry{key: strconv.Itoa(i), value: rv.Index(i)}
		}
		return entries
	}
}

func (r *Renderer) objectEntries(v ObjectValue) []entry {
	fields := r.fields.Fields(v.rv)
	if len(fields) == 0 {
		return nil
	}
	entries := make([]entry, len(fields))
	for i, f := range fields {
		entries[i] = entry{key: f.Name, value: f.Value}
	}
	return entries
}

// mapEntries lists a native map sorted by key so output is reproducible.
func mapEntries(rv reflect.Value) []entry {
	keys := rv.MapKeys()
	slices.SortStableFunc(keys, compareKeys)
	entries := make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{key: keyText(k), value: rv.MapIndex(k)}
	}
	return entries
}

// compareKeys orders numbers numerically, strings lexically and bools
// false first. Mixed or other kinds are compared by their printed text.
func compareKeys(a, b reflect.Value) int {
	a, b = unwrapInterface(a), unwrapInterface(b)
	if a.IsValid() && b.IsValid() && a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.String:
			return strings.Compare(a.String(), b.String())
		case reflect.Bool:
			switch {
			case a.Bool() == b.Bool():
				return 0
			case !a.Bool():
				return -1
			default:
				return 1
			}
		}
	}
	return strings.Compare(keyText(a), keyText(b))
}

func unwrapInterface(rv reflect.Value) reflect.Value {
	for rv.IsValid() && rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

func keyText(rv reflect.Value) string {
	rv = unwrapInterface(rv)
	if !rv.IsValid() {
		return "nil"
	}
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(rv)
}
