package mmsffi

import (
	"math"
	"unsafe"
)

// RawBuffer is the C layout of a buffer handed to a foreign caller:
//
//	typedef struct ByteBuffer {
//	  uint8_t *ptr;
//	  int32_t length;
//	  int32_t capacity;
//	} ByteBuffer;
type RawBuffer struct {
	Ptr      unsafe.Pointer
	Length   int32
	Capacity int32
}

// Bytes views the buffer's contents without copying. Only the owner of the
// buffer may call it, and only before release.
func (r RawBuffer) Bytes() []byte {
	if r.Ptr == nil || r.Length <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(r.Ptr), int(r.Length))
}

// Allocator provides the memory that crosses the foreign boundary. The cgo
// shim allocates with C.malloc so the memory outlives any Go reference.
type Allocator interface {
	Alloc(size int) unsafe.Pointer
	Free(p unsafe.Pointer)
}

// OwnedBuffer holds allocator memory until it is handed to a foreign caller.
//
// There are exactly three operations: NewOwnedBuffer builds one from owned
// bytes, HandOff gives up ownership and returns the raw parts, and
// ReleaseBuffer reclaims the raw parts and frees them. There is no way to
// read the raw parts without transferring ownership.
type OwnedBuffer struct {
	alloc Allocator
	raw   RawBuffer
	owned bool
}

// NewOwnedBuffer copies data into freshly allocated memory.
func NewOwnedBuffer(alloc Allocator, data []byte) *OwnedBuffer {
	if len(data) > math.MaxInt32 {
		panic("mmsffi: buffer length cannot fit into an int32")
	}
	b := &OwnedBuffer{alloc: alloc, owned: true}
	if len(data) == 0 {
		return b
	}
	p := alloc.Alloc(len(data))
	if p == nil {
		panic("mmsffi: buffer allocation failed")
	}
	copy(unsafe.Slice((*byte)(p), len(data)), data)
	b.raw = RawBuffer{Ptr: p, Length: int32(len(data)), Capacity: int32(len(data))}
	return b
}

// HandOff transfers ownership to the caller. The buffer must not be used
// afterwards; the caller releases the raw parts exactly once.
func (b *OwnedBuffer) HandOff() RawBuffer {
	if !b.owned {
		panic("mmsffi: buffer already handed off")
	}
	raw := b.raw
	b.owned = false
	b.raw = RawBuffer{}
	return raw
}

// ReleaseBuffer reclaims a buffer previously returned by HandOff and frees
// it. Releasing the same buffer twice is undefined, as in C.
func ReleaseBuffer(alloc Allocator, raw RawBuffer) {
	if raw.Ptr == nil {
		return
	}
	alloc.Free(raw.Ptr)
}
