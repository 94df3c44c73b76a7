package fixedcap

import (
	"iter"
	"unsafe"
)

// Array is the control block of a fixed-length typed array. It lives at the
// start of the same allocation as its element storage and is only ever
// addressed through the *Array handle returned by NewArray; it is never
// copied by value.
type Array struct {
	data   unsafe.Pointer // element storage, immediately after the padded header
	length int
	stride uintptr
	bytes  uintptr // total block size, for the allocation counters
	tag    typeTag
}

// NewArray allocates a zero-filled array of length elements of type T.
// Header and storage share one allocation. The element type is recorded and
// verified on every typed access. Panics if length < 1 or if T contains
// pointers.
func NewArray[T any](length int) *Array {
	if length < 1 {
		panic("fixedcap: array length must be >= 1")
	}
	checkElemType[T]()
	var zero T
	stride := unsafe.Sizeof(zero)
	checkBlockSize(unsafe.Sizeof(Array{}), unsafe.Alignof(zero), stride, length)
	payload := stride * uintptr(length)
	base, data := allocBlock(unsafe.Sizeof(Array{}), unsafe.Alignof(zero), payload)
	a := (*Array)(base)
	a.data = data
	a.length = length
	a.stride = stride
	a.bytes = blockBytes(unsafe.Sizeof(Array{}), unsafe.Alignof(zero), payload)
	a.tag = tagOf[T]()
	statsAlloc(a.bytes)
	return a
}

// Free releases the array's storage and invalidates the handle. Any
// subsequent operation on the handle panics. Call exactly once.
func (a *Array) Free() {
	if a == nil {
		panic("fixedcap: nil array handle")
	}
	if a.data == nil {
		panic("fixedcap: array used after Free")
	}
	statsFree(a.bytes)
	a.data = nil
	a.length = 0
	a.tag = 0
}

// Len returns the array's fixed length.
func (a *Array) Len() int {
	a.checkLive()
	return a.length
}

// Stride returns the element size in bytes.
func (a *Array) Stride() uintptr {
	a.checkLive()
	return a.stride
}

func (a *Array) checkLive() {
	if a == nil {
		panic("fixedcap: nil array handle")
	}
	if a.data == nil {
		panic("fixedcap: array used after Free")
	}
}

func (a *Array) checkTag(tag typeTag) {
	a.checkLive()
	if a.tag != tag {
		panic("fixedcap: array element type mismatch")
	}
}

// check validates the handle and the caller's element type, then the index.
// The unsigned compare rejects negative indices and indices >= length in one
// branch.
func (a *Array) check(tag typeTag, i int) unsafe.Pointer {
	a.checkTag(tag)
	if uint(i) >= uint(a.length) {
		panic("fixedcap: array index out of range")
	}
	return unsafe.Add(a.data, uintptr(i)*a.stride)
}

// Get returns the element at index i. Panics if i is out of range or T is
// not the array's element type.
func Get[T any](a *Array, i int) T {
	return *(*T)(a.check(tagOf[T](), i))
}

// GetPtr returns the address of the element at index i. The pointer is valid
// until Free.
func GetPtr[T any](a *Array, i int) *T {
	return (*T)(a.check(tagOf[T](), i))
}

// Set overwrites the element at index i.
func Set[T any](a *Array, i int, v T) {
	*(*T)(a.check(tagOf[T](), i)) = v
}

// Copy copies n elements from src starting at srcIndex into dst starting at
// dstIndex. Both arrays must have element type T; the two handles may be the
// same array and the ranges may overlap. Panics on a type mismatch or when
// either range falls outside its array.
func Copy[T any](dst *Array, dstIndex int, src *Array, srcIndex int, n int) {
	tag := tagOf[T]()
	dst.checkTag(tag)
	src.checkTag(tag)
	if n == 0 {
		return
	}
	if n < 0 ||
		uint(srcIndex) >= uint(src.length) || n > src.length-srcIndex ||
		uint(dstIndex) >= uint(dst.length) || n > dst.length-dstIndex {
		panic("fixedcap: array copy range out of range")
	}
	blockCopy(
		unsafe.Add(dst.data, uintptr(dstIndex)*dst.stride),
		unsafe.Add(src.data, uintptr(srcIndex)*src.stride),
		uintptr(n)*src.stride,
	)
}

// IndexOf returns the lowest index whose element equals v, or -1 if v is not
// present.
func IndexOf[T comparable](a *Array, v T) int {
	a.checkTag(tagOf[T]())
	for i := 0; i < a.length; i++ {
		if *(*T)(unsafe.Add(a.data, uintptr(i)*a.stride)) == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the highest index whose element equals v, or -1 if v
// is not present.
func LastIndexOf[T comparable](a *Array, v T) int {
	a.checkTag(tagOf[T]())
	for i := a.length - 1; i >= 0; i-- {
		if *(*T)(unsafe.Add(a.data, uintptr(i)*a.stride)) == v {
			return i
		}
	}
	return -1
}

// FindIndex returns the lowest index whose element satisfies pred, or -1.
func FindIndex[T any](a *Array, pred func(T) bool) int {
	a.checkTag(tagOf[T]())
	for i := 0; i < a.length; i++ {
		if pred(*(*T)(unsafe.Add(a.data, uintptr(i)*a.stride))) {
			return i
		}
	}
	return -1
}

// FindLastIndex returns the highest index whose element satisfies pred,
// or -1.
func FindLastIndex[T any](a *Array, pred func(T) bool) int {
	a.checkTag(tagOf[T]())
	for i := a.length - 1; i >= 0; i-- {
		if pred(*(*T)(unsafe.Add(a.data, uintptr(i)*a.stride))) {
			return i
		}
	}
	return -1
}

// Values returns a restartable sequence over the array's elements in index
// order. The handle is re-validated each time the sequence is started.
func Values[T any](a *Array) iter.Seq[T] {
	return func(yield func(T) bool) {
		a.checkTag(tagOf[T]())
		for i := 0; i < a.length; i++ {
			if !yield(*(*T)(unsafe.Add(a.data, uintptr(i)*a.stride))) {
				return
			}
		}
	}
}

// All returns a restartable sequence of index/element pairs in index order.
func All[T any](a *Array) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a.checkTag(tagOf[T]())
		for i := 0; i < a.length; i++ {
			if !yield(i, *(*T)(unsafe.Add(a.data, uintptr(i)*a.stride))) {
				return
			}
		}
	}
}
