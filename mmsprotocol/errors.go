package mmsprotocol

import (
	"errors"
	"fmt"
)

// Sentinel errors for the mms protocol.
var (
	// ErrZeroDistance indicates moveForward was asked to move zero cells.
	// The command is rejected before anything is written.
	ErrZeroDistance = errors.New("distance must be non-zero")

	// ErrLineTooLong indicates a response line exceeded the client's limit.
	ErrLineTooLong = errors.New("line too long")

	// ErrEmptyResponse indicates the channel closed before a response line
	// was received.
	ErrEmptyResponse = errors.New("channel closed before response")
)

// ErrorKind classifies a protocol failure.
type ErrorKind int

const (
	// KindIntegerFormat indicates a response that should be an integer was not.
	KindIntegerFormat ErrorKind = iota
	// KindFloatFormat indicates a response that should be a float was not.
	KindFloatFormat
	// KindIO indicates a read or write on the channel failed.
	KindIO
	// KindInvalidAck indicates a movement command was answered with
	// something other than "ack".
	KindInvalidAck
	// KindInvalidColor indicates an unknown color token.
	KindInvalidColor
	// KindInvalidDirection indicates an unknown direction token.
	KindInvalidDirection
	// KindInvalidStatQuery indicates an unknown stat query token.
	KindInvalidStatQuery
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindIntegerFormat:
		return "IntegerFormat"
	case KindFloatFormat:
		return "FloatFormat"
	case KindIO:
		return "IoFailure"
	case KindInvalidAck:
		return "InvalidAcknowledgment"
	case KindInvalidColor:
		return "InvalidColorToken"
	case KindInvalidDirection:
		return "InvalidDirectionToken"
	case KindInvalidStatQuery:
		return "InvalidStatQueryToken"
	default:
		return "Unknown"
	}
}

// ProtocolError is a classified failure of a protocol operation.
type ProtocolError struct {
	Kind  ErrorKind
	Value string // The offending text (raw response line, token, ...)
	Cause error  // Underlying parse or transport error, if any
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	switch e.Kind {
	case KindIntegerFormat:
		return fmt.Sprintf("invalid integer '%s': %v", e.Value, e.Cause)
	case KindFloatFormat:
		return fmt.Sprintf("invalid float '%s': %v", e.Value, e.Cause)
	case KindIO:
		if e.Value != "" {
			return fmt.Sprintf("i/o failure: %s: %v", e.Value, e.Cause)
		}
		return fmt.Sprintf("i/o failure: %v", e.Cause)
	case KindInvalidAck:
		return fmt.Sprintf("invalid acknowledgment %q", e.Value)
	case KindInvalidColor:
		return fmt.Sprintf("invalid color '%s'", e.Value)
	case KindInvalidDirection:
		return fmt.Sprintf("invalid direction '%s'", e.Value)
	case KindInvalidStatQuery:
		return fmt.Sprintf("invalid stat query '%s'", e.Value)
	default:
		return fmt.Sprintf("protocol error: %s", e.Value)
	}
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ProtocolError) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a *ProtocolError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Kind == kind
}

func newIntegerFormatError(value string, cause error) error {
	return &ProtocolError{Kind: KindIntegerFormat, Value: value, Cause: cause}
}

func newFloatFormatError(value string, cause error) error {
	return &ProtocolError{Kind: KindFloatFormat, Value: value, Cause: cause}
}

// NewIOError wraps a transport failure. op names what was being attempted.
func NewIOError(op string, cause error) error {
	return &ProtocolError{Kind: KindIO, Value: op, Cause: cause}
}

func newInvalidAckError(raw string) error {
	return &ProtocolError{Kind: KindInvalidAck, Value: raw}
}

func newInvalidColorError(token string) error {
	return &ProtocolError{Kind: KindInvalidColor, Value: token}
}

func newInvalidDirectionError(token string) error {
	return &ProtocolError{Kind: KindInvalidDirection, Value: token}
}

func newInvalidStatQueryError(token string) error {
	return &ProtocolError{Kind: KindInvalidStatQuery, Value: token}
}

// ParseError represents an error that occurred while parsing command text.
type ParseError struct {
	Kind    ParseErrorKind
	Value   string // The invalid value that caused the error
	Message string // Additional context
}

// ParseErrorKind categorizes command parsing errors.
type ParseErrorKind int

const (
	// ErrKindInvalidCommand indicates an unknown or empty command keyword.
	ErrKindInvalidCommand ParseErrorKind = iota
	// ErrKindInvalidCoordinate indicates a coordinate that is not a
	// non-negative base-10 integer.
	ErrKindInvalidCoordinate
	// ErrKindInvalidDistance indicates a distance that is not a positive integer.
	ErrKindInvalidDistance
	// ErrKindInvalidToken indicates a bad direction or color token.
	ErrKindInvalidToken
	// ErrKindMissingArgument indicates a required argument was not provided.
	ErrKindMissingArgument
	// ErrKindUnexpectedArgument indicates arguments after a bare keyword.
	ErrKindUnexpectedArgument
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrKindInvalidCommand:
		return fmt.Sprintf("invalid command '%s'", e.Value)
	case ErrKindInvalidCoordinate:
		return fmt.Sprintf("invalid coordinate '%s'", e.Value)
	case ErrKindInvalidDistance:
		return fmt.Sprintf("invalid distance '%s'", e.Value)
	case ErrKindInvalidToken:
		return fmt.Sprintf("invalid token '%s': %s", e.Value, e.Message)
	case ErrKindMissingArgument:
		return e.Message
	case ErrKindUnexpectedArgument:
		return fmt.Sprintf("unexpected argument '%s'", e.Value)
	default:
		return fmt.Sprintf("parse error: %s", e.Value)
	}
}

// Helper functions to create specific parse errors.

func newInvalidCommandError(cmd string) error {
	return &ParseError{Kind: ErrKindInvalidCommand, Value: cmd}
}

func newInvalidCoordinateError(v string) error {
	return &ParseError{Kind: ErrKindInvalidCoordinate, Value: v}
}

func newInvalidDistanceError(v string) error {
	return &ParseError{Kind: ErrKindInvalidDistance, Value: v}
}

func newInvalidTokenError(v string, cause error) error {
	return &ParseError{Kind: ErrKindInvalidToken, Value: v, Message: cause.Error()}
}

func newMissingArgumentError(msg string) error {
	return &ParseError{Kind: ErrKindMissingArgument, Message: msg}
}

func newUnexpectedArgumentError(v string) error {
	return &ParseError{Kind: ErrKindUnexpectedArgument, Value: v}
}
