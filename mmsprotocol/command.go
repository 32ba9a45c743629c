package mmsprotocol

import (
	"fmt"
	"strconv"
)

// CommandType represents the type of protocol command.
type CommandType int

const (
	// Maze queries
	CmdMazeWidth CommandType = iota
	CmdMazeHeight
	CmdWallFront
	CmdWallRight
	CmdWallLeft

	// Movement
	CmdMoveForward
	CmdTurnRight
	CmdTurnLeft

	// Wall display
	CmdSetWall
	CmdClearWall

	// Color display
	CmdSetColor
	CmdClearColor
	CmdClearAllColor

	// Text display
	CmdSetText
	CmdClearText
	CmdClearAllText

	// Reset handling
	CmdWasReset
	CmdAckReset

	// Statistics
	CmdGetStat
)

// ReplyKind describes what the simulator sends back for a command.
type ReplyKind int

const (
	// ReplyNone is used by fire-and-forget display commands.
	ReplyNone ReplyKind = iota
	// ReplyAck expects the literal "ack".
	ReplyAck
	// ReplyBool expects "true" or anything else (false).
	ReplyBool
	// ReplyInt expects a base-10 integer.
	ReplyInt
	// ReplyStat expects an integer or a float depending on the query.
	ReplyStat
)

// String returns the reply kind name.
func (r ReplyKind) String() string {
	switch r {
	case ReplyNone:
		return "none"
	case ReplyAck:
		return "ack"
	case ReplyBool:
		return "bool"
	case ReplyInt:
		return "int"
	case ReplyStat:
		return "stat"
	default:
		return "unknown"
	}
}

var commandKeywords = map[CommandType]string{
	CmdMazeWidth:     "mazeWidth",
	CmdMazeHeight:    "mazeHeight",
	CmdWallFront:     "wallFront",
	CmdWallRight:     "wallRight",
	CmdWallLeft:      "wallLeft",
	CmdMoveForward:   "moveForward",
	CmdTurnRight:     "turnRight",
	CmdTurnLeft:      "turnLeft",
	CmdSetWall:       "setWall",
	CmdClearWall:     "clearWall",
	CmdSetColor:      "setColor",
	CmdClearColor:    "clearColor",
	CmdClearAllColor: "clearAllColor",
	CmdSetText:       "setText",
	CmdClearText:     "clearText",
	CmdClearAllText:  "clearAllText",
	CmdWasReset:      "wasReset",
	CmdAckReset:      "ackReset",
}

// Keyword returns the command keyword. CmdGetStat has no fixed keyword; its
// keyword is the query token.
func (t CommandType) Keyword() string {
	return commandKeywords[t]
}

// Reply returns the kind of response the command expects.
func (t CommandType) Reply() ReplyKind {
	switch t {
	case CmdMazeWidth, CmdMazeHeight:
		return ReplyInt
	case CmdWallFront, CmdWallRight, CmdWallLeft, CmdWasReset:
		return ReplyBool
	case CmdMoveForward, CmdTurnRight, CmdTurnLeft, CmdAckReset:
		return ReplyAck
	case CmdGetStat:
		return ReplyStat
	default:
		return ReplyNone
	}
}

// Distance is the optional number of cells for moveForward. The zero value
// means "unset", which the simulator treats as one cell.
type Distance uint32

// Command represents a protocol command with its arguments.
// Use the constructor functions (NewMazeWidthCommand, NewSetWallCommand,
// etc.) to create Command instances.
type Command struct {
	Type CommandType

	// Fields used by various commands (only relevant fields are populated)
	X, Y      uint32    // For cell addressed display commands
	Direction Direction // For setWall, clearWall
	Color     CellColor // For setColor
	Text      string    // For setText
	Distance  Distance  // For moveForward, zero means unset
	Query     StatQuery // For getStat
}

// Command constructors - these provide a clean API for creating commands.

// NewMazeWidthCommand creates a mazeWidth query.
func NewMazeWidthCommand() Command {
	return Command{Type: CmdMazeWidth}
}

// NewMazeHeightCommand creates a mazeHeight query.
func NewMazeHeightCommand() Command {
	return Command{Type: CmdMazeHeight}
}

// NewWallFrontCommand creates a wallFront query.
func NewWallFrontCommand() Command {
	return Command{Type: CmdWallFront}
}

// NewWallRightCommand creates a wallRight query.
func NewWallRightCommand() Command {
	return Command{Type: CmdWallRight}
}

// NewWallLeftCommand creates a wallLeft query.
func NewWallLeftCommand() Command {
	return Command{Type: CmdWallLeft}
}

// NewMoveForwardCommand creates a moveForward command. A zero distance is
// the unset form and moves one cell.
func NewMoveForwardCommand(distance Distance) Command {
	return Command{Type: CmdMoveForward, Distance: distance}
}

// NewTurnRightCommand creates a turnRight command.
func NewTurnRightCommand() Command {
	return Command{Type: CmdTurnRight}
}

// NewTurnLeftCommand creates a turnLeft command.
func NewTurnLeftCommand() Command {
	return Command{Type: CmdTurnLeft}
}

// NewSetWallCommand creates a command that displays a wall.
func NewSetWallCommand(x, y uint32, d Direction) Command {
	return Command{Type: CmdSetWall, X: x, Y: y, Direction: d}
}

// NewClearWallCommand creates a command that hides a wall.
func NewClearWallCommand(x, y uint32, d Direction) Command {
	return Command{Type: CmdClearWall, X: x, Y: y, Direction: d}
}

// NewSetColorCommand creates a command that colors a cell.
func NewSetColorCommand(x, y uint32, c CellColor) Command {
	return Command{Type: CmdSetColor, X: x, Y: y, Color: c}
}

// NewClearColorCommand creates a command that clears a cell's color.
func NewClearColorCommand(x, y uint32) Command {
	return Command{Type: CmdClearColor, X: x, Y: y}
}

// NewClearAllColorCommand creates a command that clears every cell's color.
func NewClearAllColorCommand() Command {
	return Command{Type: CmdClearAllColor}
}

// NewSetTextCommand creates a command that sets a cell's text.
// The text is sent verbatim; it must not contain a newline.
func NewSetTextCommand(x, y uint32, text string) Command {
	return Command{Type: CmdSetText, X: x, Y: y, Text: text}
}

// NewClearTextCommand creates a command that clears a cell's text.
func NewClearTextCommand(x, y uint32) Command {
	return Command{Type: CmdClearText, X: x, Y: y}
}

// NewClearAllTextCommand creates a command that clears every cell's text.
func NewClearAllTextCommand() Command {
	return Command{Type: CmdClearAllText}
}

// NewWasResetCommand creates a wasReset query.
func NewWasResetCommand() Command {
	return Command{Type: CmdWasReset}
}

// NewAckResetCommand creates an ackReset command.
func NewAckResetCommand() Command {
	return Command{Type: CmdAckReset}
}

// NewGetStatCommand creates a stat query.
func NewGetStatCommand(q StatQuery) Command {
	return Command{Type: CmdGetStat, Query: q}
}

// Format returns the command formatted for transmission over the protocol.
// This does not include the trailing newline.
func (c Command) Format() string {
	switch c.Type {
	case CmdMazeWidth, CmdMazeHeight,
		CmdWallFront, CmdWallRight, CmdWallLeft,
		CmdTurnRight, CmdTurnLeft,
		CmdClearAllColor, CmdClearAllText,
		CmdWasReset, CmdAckReset:
		return c.Type.Keyword()
	case CmdMoveForward:
		// The argument slot is always present; an unset distance leaves it empty.
		if c.Distance == 0 {
			return "moveForward "
		}
		return "moveForward " + strconv.FormatUint(uint64(c.Distance), 10)
	case CmdSetWall, CmdClearWall:
		return fmt.Sprintf("%s %d %d %c", c.Type.Keyword(), c.X, c.Y, c.Direction.Token())
	case CmdSetColor:
		return fmt.Sprintf("setColor %d %d %c", c.X, c.Y, c.Color.Token())
	case CmdClearColor, CmdClearText:
		return fmt.Sprintf("%s %d %d", c.Type.Keyword(), c.X, c.Y)
	case CmdSetText:
		return fmt.Sprintf("setText %d %d %s", c.X, c.Y, c.Text)
	case CmdGetStat:
		return c.Query.Token()
	default:
		return ""
	}
}

// FormatLine returns the command formatted as a complete protocol line with newline.
func (c Command) FormatLine() string {
	return c.Format() + LineTerminator
}

// String implements fmt.Stringer.
func (c Command) String() string {
	return c.Format()
}

// Validate checks that the command's enumerated arguments are in range.
// Text is not inspected.
func (c Command) Validate() error {
	switch c.Type {
	case CmdSetWall, CmdClearWall:
		if c.Direction < North || c.Direction > West {
			return newInvalidDirectionError(strconv.Itoa(int(c.Direction)))
		}
	case CmdSetColor:
		if c.Color < Black || c.Color > DarkYellow {
			return newInvalidColorError(strconv.Itoa(int(c.Color)))
		}
	case CmdGetStat:
		if c.Query < TotalDistance || c.Query > Score {
			return newInvalidStatQueryError(strconv.Itoa(int(c.Query)))
		}
	}
	return nil
}
