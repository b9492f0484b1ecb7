package primitive

import (
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNil
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindString
	KindArray
	KindChan
	KindFunc
	KindMap
	KindSlice
	KindStruct
	KindPointer
	KindUnsafePointer

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var tags = map[KindEnum]string{
	KindNil:           "nil",
	KindBool:          "bool",
	KindInt:           "int",
	KindInt8:          "int8",
	KindInt16:         "int16",
	KindInt32:         "int32",
	KindInt64:         "int64",
	KindUint:          "uint",
	KindUint8:         "uint8",
	KindUint16:        "uint16",
	KindUint32:        "uint32",
	KindUint64:        "uint64",
	KindUintptr:       "uintptr",
	KindFloat32:       "float32",
	KindFloat64:       "float64",
	KindComplex64:     "complex64",
	KindComplex128:    "complex128",
	KindString:        "string",
	KindArray:         "array",
	KindChan:          "chan",
	KindFunc:          "func",
	KindMap:           "map",
	KindSlice:         "slice",
	KindStruct:        "struct",
	KindPointer:       "pointer",
	KindUnsafePointer: "unsafe.Pointer",
}

// Tag returns the short type name used when comparing primitive values
// against declared type names, e.g. "int", "string", "map" or "nil".
// Invalid kinds have an empty tag.
func (k KindEnum) Tag() string {
	return tags[k]
}

// IsStructured reports whether values of this kind are matched by their
// concrete Go type rather than by tag.
func (k KindEnum) IsStructured() bool {
	switch k {
	default:
		return false
	case KindStruct, KindPointer:
		return true
	}
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return KindNil
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Uintptr:
		return KindUintptr
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Complex64:
		return KindComplex64
	case reflect.Complex128:
		return KindComplex128
	case reflect.String:
		return KindString
	case reflect.Array:
		return KindArray
	case reflect.Chan:
		return KindChan
	case reflect.Func:
		return KindFunc
	case reflect.Map:
		return KindMap
	case reflect.Slice:
		return KindSlice
	case reflect.Struct:
		return KindStruct
	case reflect.Pointer:
		return KindPointer
	case reflect.UnsafePointer:
		return KindUnsafePointer
	}
}

// Of returns the kind of a runtime value. Untyped nil and nil pointers are
// both reported as KindNil.
func Of(value any) KindEnum {
	if value == nil {
		return KindNil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return KindNil
	}

	return FromReflectType(rv.Type())
}
