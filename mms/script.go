// =============================================================================
// script.go - Scripted Mouse (mms script <file>)
// =============================================================================
//
// "mms script" turns a text file into a mouse program. Configure it in the
// simulator as the mouse command, e.g. `mms script square.mms`, and every
// line of the file is sent as a command:
//
//	# drive a square and mark the start cell
//	setColor 0 0 G
//	moveForward 2
//	turnRight
//	wallFront
//	score
//
// Blank lines and lines starting with "#" are skipped. Each command goes
// through the checked Client on stdin/stdout; replies are logged to stderr.
// The first error stops the script.
//
// =============================================================================

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mmsgo/mms/mmsprotocol"
)

// scriptComment starts a comment line in a script.
const scriptComment = "#"

// runScript executes every command in script through client and returns
// how many commands were executed.
func runScript(script io.Reader, client *mmsprotocol.Client, logger zerolog.Logger) (int, error) {
	parser := mmsprotocol.NewCommandParser()
	scanner := bufio.NewScanner(script)

	executed := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, scriptComment) {
			continue
		}

		cmd, err := parser.Parse(line)
		if err != nil {
			return executed, fmt.Errorf("line %d: %w", lineNo, err)
		}

		result, err := client.Execute(cmd)
		if err != nil {
			return executed, fmt.Errorf("line %d: %s: %w", lineNo, cmd, err)
		}
		executed++

		logger.Info().
			Int("line", lineNo).
			Str("command", cmd.Format()).
			Str("reply", result.Reply.String()).
			Str("result", result.String()).
			Msg("executed")
	}
	if err := scanner.Err(); err != nil {
		return executed, fmt.Errorf("read script: %w", err)
	}
	return executed, nil
}
