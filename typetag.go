package fixedcap

import (
	"reflect"
	"unsafe"
)

// typeTag identifies an element type at runtime. Handles are untyped at
// rest, so the tag recorded at creation is compared against the tag of the
// type parameter on every typed access. Tags are the address of the type's
// runtime descriptor, which is unique and stable for the process lifetime.
type typeTag uintptr

func tagOf[T any]() typeTag {
	t := reflect.TypeFor[T]()
	// Second word of the interface value: the *rtype descriptor.
	return typeTag((*[2]uintptr)(unsafe.Pointer(&t))[1])
}

// checkElemType rejects element types that cannot live in a pointerless
// block: zero-size types and anything containing Go pointers. Called once
// per container at creation.
func checkElemType[T any]() {
	t := reflect.TypeFor[T]()
	if t.Size() < 1 {
		panic("fixedcap: element size must be >= 1")
	}
	if !pointerFree(t) {
		panic("fixedcap: element type " + t.String() + " contains pointers")
	}
}

// pointerFree reports whether values of t contain no Go pointers anywhere.
// The backing block is not scanned by the collector, so a pointer stored in
// it would not keep its referent alive.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Ptr, UnsafePointer, Map, Slice, String, Chan, Func, Interface.
		return false
	}
}
