// Package mmsffi is the foreign call surface of the mms client.
//
// Every Adapter method corresponds to one protocol operation and uses only
// primitive types: 32-bit integers, booleans, byte slices copied from
// caller-owned (pointer, length) pairs, and RawBuffer for returned strings.
// The libmms cgo shim maps these one-to-one onto exported C functions.
//
// There is no channel for structured errors across the boundary. A
// malformed token, a protocol violation, or a transport failure is logged
// and then aborts the call with a panic carrying the classified error. A
// panic that escapes a cgo export terminates the process.
package mmsffi

import (
	"errors"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/mmsgo/mms/mmsprotocol"
)

// ErrInvalidUTF8 is raised when a string argument is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("argument is not valid UTF-8")

// Adapter exposes the protocol client through primitive-typed entry points.
type Adapter struct {
	mouse  *mmsprotocol.MustClient
	alloc  Allocator
	logger zerolog.Logger
}

// NewAdapter wraps client. Buffers returned by GetStat come from alloc and
// must be released with FreeByteBuffer.
func NewAdapter(client *mmsprotocol.Client, alloc Allocator, logger zerolog.Logger) *Adapter {
	return &Adapter{
		mouse:  client.Must(),
		alloc:  alloc,
		logger: logger,
	}
}

// guard logs a failing call before letting the panic continue.
func (a *Adapter) guard(op string) {
	if r := recover(); r != nil {
		ev := a.logger.Error().Str("op", op)
		if err, ok := r.(error); ok {
			ev = ev.Err(err)
		} else {
			ev = ev.Interface("panic", r)
		}
		ev.Msg("foreign call aborted")
		panic(r)
	}
}

func decodeString(b []byte) string {
	if !utf8.Valid(b) {
		panic(ErrInvalidUTF8)
	}
	return string(b)
}

func decodeDirection(b []byte) mmsprotocol.Direction {
	d, err := mmsprotocol.ParseDirection(decodeString(b))
	if err != nil {
		panic(err)
	}
	return d
}

func decodeColor(b []byte) mmsprotocol.CellColor {
	c, err := mmsprotocol.ParseCellColor(decodeString(b))
	if err != nil {
		panic(err)
	}
	return c
}

func decodeStatQuery(b []byte) mmsprotocol.StatQuery {
	q, err := mmsprotocol.ParseStatQuery(decodeString(b))
	if err != nil {
		panic(err)
	}
	return q
}

// MazeWidth returns the width of the maze.
func (a *Adapter) MazeWidth() int32 {
	defer a.guard("maze_width")
	return a.mouse.MazeWidth()
}

// MazeHeight returns the height of the maze.
func (a *Adapter) MazeHeight() int32 {
	defer a.guard("maze_height")
	return a.mouse.MazeHeight()
}

// WallFront reports whether there is a wall in front of the mouse.
func (a *Adapter) WallFront() bool {
	defer a.guard("wall_front")
	return a.mouse.WallFront()
}

// WallRight reports whether there is a wall to the right of the mouse.
func (a *Adapter) WallRight() bool {
	defer a.guard("wall_right")
	return a.mouse.WallRight()
}

// WallLeft reports whether there is a wall to the left of the mouse.
func (a *Adapter) WallLeft() bool {
	defer a.guard("wall_left")
	return a.mouse.WallLeft()
}

// MoveForward moves distance cells. Zero means the unset form (one cell).
func (a *Adapter) MoveForward(distance uint32) {
	defer a.guard("move_forward")
	if distance == 0 {
		a.mouse.MoveForward()
		return
	}
	a.mouse.MoveForwardBy(distance)
}

// TurnRight turns the mouse ninety degrees to the right.
func (a *Adapter) TurnRight() {
	defer a.guard("turn_right")
	a.mouse.TurnRight()
}

// TurnLeft turns the mouse ninety degrees to the left.
func (a *Adapter) TurnLeft() {
	defer a.guard("turn_left")
	a.mouse.TurnLeft()
}

// SetWall displays a wall. direction is a one-letter token (n, e, s, w).
func (a *Adapter) SetWall(x, y uint32, direction []byte) {
	defer a.guard("set_wall")
	a.mouse.SetWall(x, y, decodeDirection(direction))
}

// ClearWall removes a displayed wall.
func (a *Adapter) ClearWall(x, y uint32, direction []byte) {
	defer a.guard("clear_wall")
	a.mouse.ClearWall(x, y, decodeDirection(direction))
}

// SetColor colors a cell. color is a one-letter token.
func (a *Adapter) SetColor(x, y uint32, color []byte) {
	defer a.guard("set_color")
	a.mouse.SetColor(x, y, decodeColor(color))
}

// ClearColor clears the color of a cell.
func (a *Adapter) ClearColor(x, y uint32) {
	defer a.guard("clear_color")
	a.mouse.ClearColor(x, y)
}

// ClearAllColor clears the color of every cell.
func (a *Adapter) ClearAllColor() {
	defer a.guard("clear_all_color")
	a.mouse.ClearAllColor()
}

// SetText sets the text of a cell.
func (a *Adapter) SetText(x, y uint32, text []byte) {
	defer a.guard("set_text")
	a.mouse.SetText(x, y, decodeString(text))
}

// ClearText clears the text of a cell.
func (a *Adapter) ClearText(x, y uint32) {
	defer a.guard("clear_text")
	a.mouse.ClearText(x, y)
}

// ClearAllText clears the text of every cell.
func (a *Adapter) ClearAllText() {
	defer a.guard("clear_all_text")
	a.mouse.ClearAllText()
}

// WasReset reports whether the reset button was pressed.
func (a *Adapter) WasReset() bool {
	defer a.guard("was_reset")
	return a.mouse.WasReset()
}

// AckReset acknowledges a reset.
func (a *Adapter) AckReset() {
	defer a.guard("ack_reset")
	a.mouse.AckReset()
}

// GetStat returns the stat named by query as decimal text in a buffer the
// caller now owns.
func (a *Adapter) GetStat(query []byte) RawBuffer {
	defer a.guard("get_stat")
	stat := a.mouse.GetStat(decodeStatQuery(query))
	return NewOwnedBuffer(a.alloc, []byte(stat.Format())).HandOff()
}

// FreeByteBuffer releases a buffer returned by GetStat.
func (a *Adapter) FreeByteBuffer(raw RawBuffer) {
	ReleaseBuffer(a.alloc, raw)
}
