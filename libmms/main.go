// =============================================================================
// main.go - C Shared Library Entry Points
// =============================================================================
//
// Build with:
//
//	go build -buildmode=c-shared -o libmms.so ./libmms
//
// The generated libmms.h declares the same functions and ByteBuffer layout
// as mms.h in this directory, so a C, C++ or Zig mouse can link against
// either. The library talks to the simulator over the process's own stdin
// and stdout.
//
// Failures abort the process: a bad token, a malformed reply, or a broken
// channel is logged to stderr and the panic escapes the export. Set
// MMS_LOG_LEVEL=debug to trace every exchanged line on stderr.
//
// =============================================================================

package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>

typedef struct ByteBuffer {
  uint8_t *ptr;
  int32_t length;
  int32_t capacity;
} ByteBuffer;
*/
import "C"

import (
	"os"
	"sync"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/mmsgo/mms/mmsffi"
	"github.com/mmsgo/mms/mmsprotocol"
)

// cAllocator hands out C heap memory the foreign caller can hold onto.
type cAllocator struct{}

func (cAllocator) Alloc(size int) unsafe.Pointer { return C.malloc(C.size_t(size)) }

func (cAllocator) Free(p unsafe.Pointer) { C.free(p) }

var (
	adapterOnce sync.Once
	adapter     *mmsffi.Adapter
)

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("MMS_LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Str("app", "libmms").Logger()
}

func mouse() *mmsffi.Adapter {
	adapterOnce.Do(func() {
		logger := newLogger()
		mmsprotocol.SetDefault(mmsprotocol.NewClient(os.Stdin, os.Stdout, mmsprotocol.WithLogger(logger)))
		adapter = mmsffi.NewAdapter(mmsprotocol.Default(), cAllocator{}, logger)
	})
	return adapter
}

// goBytes copies a caller-owned (pointer, length) pair into Go memory.
func goBytes(p unsafe.Pointer, n int32) []byte {
	if n < 0 {
		panic("libmms: negative string length")
	}
	if n == 0 {
		return []byte{}
	}
	if p == nil {
		panic("libmms: nil string pointer")
	}
	return C.GoBytes(p, C.int(n))
}

//export maze_width
func maze_width() C.int32_t { return C.int32_t(mouse().MazeWidth()) }

//export maze_height
func maze_height() C.int32_t { return C.int32_t(mouse().MazeHeight()) }

//export wall_front
func wall_front() C.bool { return C.bool(mouse().WallFront()) }

//export wall_right
func wall_right() C.bool { return C.bool(mouse().WallRight()) }

//export wall_left
func wall_left() C.bool { return C.bool(mouse().WallLeft()) }

//export move_forward
func move_forward(distance C.uint32_t) { mouse().MoveForward(uint32(distance)) }

//export turn_right
func turn_right() { mouse().TurnRight() }

//export turn_left
func turn_left() { mouse().TurnLeft() }

//export set_wall
func set_wall(x, y C.uint32_t, direction *C.uint8_t, length C.int32_t) {
	mouse().SetWall(uint32(x), uint32(y), goBytes(unsafe.Pointer(direction), int32(length)))
}

//export clear_wall
func clear_wall(x, y C.uint32_t, direction *C.uint8_t, length C.int32_t) {
	mouse().ClearWall(uint32(x), uint32(y), goBytes(unsafe.Pointer(direction), int32(length)))
}

//export set_color
func set_color(x, y C.uint32_t, color *C.uint8_t, length C.int32_t) {
	mouse().SetColor(uint32(x), uint32(y), goBytes(unsafe.Pointer(color), int32(length)))
}

//export clear_color
func clear_color(x, y C.uint32_t) { mouse().ClearColor(uint32(x), uint32(y)) }

//export clear_all_color
func clear_all_color() { mouse().ClearAllColor() }

//export set_text
func set_text(x, y C.uint32_t, text *C.uint8_t, length C.int32_t) {
	mouse().SetText(uint32(x), uint32(y), goBytes(unsafe.Pointer(text), int32(length)))
}

//export clear_text
func clear_text(x, y C.uint32_t) { mouse().ClearText(uint32(x), uint32(y)) }

//export clear_all_text
func clear_all_text() { mouse().ClearAllText() }

//export was_reset
func was_reset() C.bool { return C.bool(mouse().WasReset()) }

//export ack_reset
func ack_reset() { mouse().AckReset() }

//export get_stat
func get_stat(query *C.uint8_t, length C.int32_t) *C.ByteBuffer {
	raw := mouse().GetStat(goBytes(unsafe.Pointer(query), int32(length)))

	buf := (*C.ByteBuffer)(C.malloc(C.sizeof_ByteBuffer))
	if buf == nil {
		mouse().FreeByteBuffer(raw)
		panic("libmms: buffer allocation failed")
	}
	buf.ptr = (*C.uint8_t)(raw.Ptr)
	buf.length = C.int32_t(raw.Length)
	buf.capacity = C.int32_t(raw.Capacity)
	return buf
}

//export free_byte_buffer
func free_byte_buffer(buf *C.ByteBuffer) {
	if buf == nil {
		return
	}
	mouse().FreeByteBuffer(mmsffi.RawBuffer{
		Ptr:      unsafe.Pointer(buf.ptr),
		Length:   int32(buf.length),
		Capacity: int32(buf.capacity),
	})
	C.free(unsafe.Pointer(buf))
}

func main() {}
