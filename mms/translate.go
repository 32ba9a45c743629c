// =============================================================================
// translate.go - Reply Translation (Human Input → Simulator Reply)
// =============================================================================
//
// In the console the human plays the simulator. Typing the exact wire text
// for every reply is tedious, so short forms are expanded here into the
// canonical reply line for the kind of command being answered:
//
//   ack:    "" or "a"             → "ack"
//   bool:   "y", "t", "1", "yes"  → "true"
//           "n", "f", "0", "no"   → "false"
//   int:    " 16 "                → "16"
//   stat:   "-" or "none"         → "-1"
//           "12.50" (float stat)  → "12.5"
//
// A leading "!" sends the rest of the line verbatim, without validation.
// That is how a mouse author checks their program's handling of a bad
// acknowledgment or a non-numeric maze size.
//
// =============================================================================

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmsgo/mms/mmsprotocol"
)

// rawPrefix marks input that is sent to the mouse unchanged.
const rawPrefix = "!"

// GO CONCEPT: Switch on a Custom Type
// -----------------------------------
// ReplyKind is an int-based enum from mmsprotocol. A switch over it reads
// like a table: one case per reply shape, and the compiler accepts any
// constant of that type in the case list. There is no exhaustiveness
// check, so the default case reports kinds this file does not know.

// translateReply converts human input into the reply line (without the
// newline) for a command expecting kind. query is used only for stats.
func translateReply(input string, kind mmsprotocol.ReplyKind, query mmsprotocol.StatQuery) (string, error) {
	if strings.HasPrefix(input, rawPrefix) {
		return strings.TrimPrefix(input, rawPrefix), nil
	}

	value := strings.TrimSpace(input)

	switch kind {
	case mmsprotocol.ReplyAck:
		switch strings.ToLower(value) {
		case "", "a", mmsprotocol.AckToken:
			return mmsprotocol.AckToken, nil
		}
		return "", fmt.Errorf("expected ack, got %q (prefix with %s to send it anyway)", value, rawPrefix)

	case mmsprotocol.ReplyBool:
		switch strings.ToLower(value) {
		case "y", "yes", "t", "1", mmsprotocol.TrueToken:
			return mmsprotocol.TrueToken, nil
		case "n", "no", "f", "0", "false":
			return "false", nil
		}
		return "", fmt.Errorf("expected true or false, got %q", value)

	case mmsprotocol.ReplyInt:
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return "", fmt.Errorf("expected an integer, got %q", value)
		}
		return strconv.FormatInt(n, 10), nil

	case mmsprotocol.ReplyStat:
		return translateStat(value, query)

	default:
		return "", fmt.Errorf("%s commands take no reply", kind)
	}
}

func translateStat(value string, query mmsprotocol.StatQuery) (string, error) {
	switch strings.ToLower(value) {
	case "-", "none":
		return strconv.Itoa(mmsprotocol.NoStatValue), nil
	}

	if query.IsFloat() {
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return "", fmt.Errorf("%s expects a number, got %q", query, value)
		}
		return mmsprotocol.NewFloatStat(query, float32(f)).Format(), nil
	}

	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return "", fmt.Errorf("%s expects an integer, got %q", query, value)
	}
	return mmsprotocol.NewIntStat(query, int32(n)).Format(), nil
}
