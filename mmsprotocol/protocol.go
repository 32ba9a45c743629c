// Package mmsprotocol implements the line-oriented text protocol spoken
// between a mouse program and the mms micromouse simulator.
//
// Protocol Format:
//
//	Request (mouse -> simulator):  <keyword> [arguments...]\n
//	Query response:                <value>\n
//	Acknowledgment:                ack\n
//	Fire-and-forget commands:      (no response)
//
// Example Session:
//
//	MOUSE: mazeWidth
//	SIM:   16
//	MOUSE: wallFront
//	SIM:   false
//	MOUSE: moveForward
//	SIM:   ack
//	MOUSE: setColor 0 0 G
//	MOUSE: score
//	SIM:   12.5
package mmsprotocol

// Protocol constants.
const (
	// AckToken is the only reply accepted after a movement or reset command.
	AckToken = "ack"

	// TrueToken is the reply text that decodes to boolean true. Every other
	// reply decodes to false.
	TrueToken = "true"

	// LineTerminator ends every command and every response.
	LineTerminator = "\n"

	// MaxLineLength is the default cap on a response line in bytes.
	MaxLineLength = 4096

	// NoStatValue is reported by the simulator for a stat that has no value yet.
	NoStatValue = -1

	// MaxCellTextLength is the longest text the simulator displays in a cell.
	// Longer text is still sent verbatim.
	MaxCellTextLength = 10
)
