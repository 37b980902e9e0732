package visualijoper

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/kr/pretty"
)

// Kind is the semantic category a value is rendered as.
type Kind int

const (
	KindUnknown Kind = iota
	KindNull
	KindString
	KindInteger
	KindFloat
	KindArray
	KindObject
	KindBoolean
)

var kindNames = map[Kind]string{
	KindUnknown: "Unknown",
	KindNull:    "Null",
	KindString:  "String",
	KindInteger: "Integer",
	KindFloat:   "Float",
	KindArray:   "Array",
	KindObject:  "Object",
	KindBoolean: "Boolean",
}

// String returns the kind name shown in headers and rows.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Expandable reports whether values of this kind get a detail body.
// Strings expand to show their full text; arrays and objects expand to
// show their entries.
func (k Kind) Expandable() bool {
	switch k {
	case KindString, KindArray, KindObject:
		return true
	default:
		return false
	}
}

// Value is a classified input. It is implemented only by the value types
// of this package, one per [Kind]:
//
//   - [NullValue]
//   - [StringValue]
//   - [IntegerValue]
//   - [FloatValue]
//   - [ArrayValue]
//   - [ObjectValue]
//   - [BooleanValue]
//   - [UnknownValue]
type Value interface {
	Kind() Kind
	isValue()
}

// NullValue is a nil pointer, nil interface or untyped nil.
type NullValue struct{}

// StringValue holds any value whose underlying kind is string.
type StringValue struct {
	Text string
}

// IntegerValue holds a signed or unsigned integer.
type IntegerValue struct {
	Signed bool
	Int    int64
	Uint   uint64
}

// FloatValue holds a float32 or float64. Bits is 32 or 64.
type FloatValue struct {
	Float float64
	Bits  int
}

// BooleanValue holds a bool.
type BooleanValue struct {
	Bool bool
}

// ArrayValue is a slice, array, map or [Map].
type ArrayValue struct {
	Len int

	rv reflect.Value
	id identity
}

// ObjectValue is a struct, reached directly or through pointers.
type ObjectValue struct {
	TypeName string

	rv reflect.Value
	id identity
}

// UnknownValue is anything else: channels, funcs, complex numbers, unsafe
// pointers and pointer chains that point back at themselves.
type UnknownValue struct {
	rv     reflect.Value
	cyclic bool
}

func (NullValue) Kind() Kind    { return KindNull }
func (StringValue) Kind() Kind  { return KindString }
func (IntegerValue) Kind() Kind { return KindInteger }
func (FloatValue) Kind() Kind   { return KindFloat }
func (BooleanValue) Kind() Kind { return KindBoolean }
func (ArrayValue) Kind() Kind   { return KindArray }
func (ObjectValue) Kind() Kind  { return KindObject }
func (UnknownValue) Kind() Kind { return KindUnknown }

func (NullValue) isValue()    {}
func (StringValue) isValue()  {}
func (IntegerValue) isValue() {}
func (FloatValue) isValue()   {}
func (BooleanValue) isValue() {}
func (ArrayValue) isValue()   {}
func (ObjectValue) isValue()  {}
func (UnknownValue) isValue() {}

func (NullValue) String() string { return "nil" }

func (v IntegerValue) String() string {
	if v.Signed {
		return strconv.FormatInt(v.Int, 10)
	}
	return strconv.FormatUint(v.Uint, 10)
}

func (v FloatValue) String() string {
	bits := v.Bits
	if bits != 32 {
		bits = 64
	}
	return strconv.FormatFloat(v.Float, 'g', -1, bits)
}

func (v BooleanValue) String() string {
	if v.Bool {
		return "True"
	}
	return "False"
}

// String returns the Go-syntax representation of the value. Values that
// cannot be read through Interface (unexported fields) fall back to fmt.
func (v UnknownValue) String() string {
	if !v.rv.IsValid() {
		return "<invalid>"
	}
	if v.cyclic {
		return v.rv.Type().String() + " (self-referential)"
	}
	if v.rv.CanInterface() {
		return fmt.Sprintf("%# v", pretty.Formatter(v.rv.Interface()))
	}
	return fmt.Sprint(v.rv)
}

// identity distinguishes containers that can take part in a reference
// cycle. The zero identity is never tracked.
type identity struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

func (id identity) valid() bool { return id.ptr != 0 }

func identityOf(v Value) identity {
	switch v := v.(type) {
	case ArrayValue:
		return v.id
	case ObjectValue:
		return v.id
	default:
		return identity{}
	}
}
