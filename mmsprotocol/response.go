package mmsprotocol

import (
	"strconv"
	"strings"
)

// TrimResponse strips the line terminator and any trailing whitespace.
func TrimResponse(line string) string {
	return strings.TrimRightFunc(line, isSpace)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

// ParseBool decodes a boolean reply. Only the literal "true" is true; any
// other text is false and never an error.
func ParseBool(line string) bool {
	return TrimResponse(line) == TrueToken
}

// ParseInt decodes an integer reply.
func ParseInt(line string) (int32, error) {
	text := TrimResponse(line)
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, newIntegerFormatError(text, err)
	}
	return int32(v), nil
}

// ParseFloat decodes a float reply.
func ParseFloat(line string) (float32, error) {
	text := TrimResponse(line)
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, newFloatFormatError(text, err)
	}
	return float32(v), nil
}

// CheckAck validates an acknowledgment line. The error carries the raw,
// untrimmed line.
func CheckAck(line string) error {
	if TrimResponse(line) != AckToken {
		return newInvalidAckError(line)
	}
	return nil
}

// ParseStat decodes a stat reply, choosing integer or float by query.
func ParseStat(q StatQuery, line string) (Stat, error) {
	if q.IsFloat() {
		v, err := ParseFloat(line)
		if err != nil {
			return Stat{}, err
		}
		return NewFloatStat(q, v), nil
	}
	v, err := ParseInt(line)
	if err != nil {
		return Stat{}, err
	}
	return NewIntStat(q, v), nil
}

// Result is the decoded reply to a command. Only the field selected by
// Reply is meaningful.
type Result struct {
	Reply ReplyKind
	Bool  bool
	Int   int32
	Stat  Stat
	Raw   string // The untrimmed response line; empty for ReplyNone
}

// DecodeReply decodes a response line for the given command.
func DecodeReply(cmd Command, line string) (Result, error) {
	res := Result{Reply: cmd.Type.Reply(), Raw: line}
	var err error
	switch res.Reply {
	case ReplyAck:
		err = CheckAck(line)
	case ReplyBool:
		res.Bool = ParseBool(line)
	case ReplyInt:
		res.Int, err = ParseInt(line)
	case ReplyStat:
		res.Stat, err = ParseStat(cmd.Query, line)
	}
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// String renders the decoded value for display.
func (r Result) String() string {
	switch r.Reply {
	case ReplyAck:
		return AckToken
	case ReplyBool:
		return strconv.FormatBool(r.Bool)
	case ReplyInt:
		return strconv.FormatInt(int64(r.Int), 10)
	case ReplyStat:
		return r.Stat.Format()
	default:
		return ""
	}
}
