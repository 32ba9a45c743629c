// =============================================================================
// lineeditor.go - Line Editor with Dual-Mode Operation
// =============================================================================
//
// The console asks a human to play the simulator: every query the mouse
// sends needs a typed reply. This file provides the input side of that.
//
//   - Interactive mode: ergochat/readline with Emacs keybindings and a
//     persistent history, so a reply typed once ("true", "16") can be
//     recalled with the arrow keys.
//   - Non-interactive mode: bufio.Scanner over any reader, printing the
//     prompt manually. Used when stdin is piped (replaying a recorded
//     session) or inside Emacs, and by the tests.
//
// History defaults to ~/.mms_history with a 500-entry limit; both are
// configurable in mms.toml.
//
// =============================================================================

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ergochat/readline"
	"golang.org/x/term"
)

// LineEditor reads one line of human input at a time.
type LineEditor struct {
	// interactive is true when readline is driving a terminal.
	interactive bool

	// rl is the readline instance, nil in non-interactive mode.
	rl *readline.Instance

	// scanner reads lines in non-interactive mode.
	scanner *bufio.Scanner

	// out receives prompts in non-interactive mode.
	out io.Writer
}

// GO CONCEPT: Factory Functions with Fallbacks
// --------------------------------------------
// NewLineEditor never fails. If readline cannot start (no terminal, odd
// TERM settings) it quietly degrades to the scanner path, and callers use
// the same GetLine method either way. Returning a working value instead of
// an error keeps the console loop free of setup branches.
//
// Compare with Python: the equivalent would be a try/except ImportError
// around `import readline` with input() as the fallback.

// NewLineEditor creates a line editor on stdin. Prompts go to stdout.
func NewLineEditor(historyFile string, historyLimit int) *LineEditor {
	isInteractive := term.IsTerminal(int(os.Stdin.Fd())) &&
		os.Getenv("INSIDE_EMACS") == ""

	if !isInteractive {
		return newScannerLineEditor(os.Stdin, os.Stdout)
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:            historyFile,
		HistoryLimit:           historyLimit,
		DisableAutoSaveHistory: true,
		Prompt:                 "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: readline init failed (%v), using basic input\n", err)
		return newScannerLineEditor(os.Stdin, os.Stdout)
	}

	return &LineEditor{
		interactive: true,
		rl:          rl,
	}
}

// newScannerLineEditor creates a non-interactive editor over in.
func newScannerLineEditor(in io.Reader, out io.Writer) *LineEditor {
	return &LineEditor{
		interactive: false,
		scanner:     bufio.NewScanner(in),
		out:         out,
	}
}

// GetLine displays prompt and reads one line. It returns io.EOF at end of
// input and when the user presses Ctrl-C or Ctrl-D.
func (le *LineEditor) GetLine(prompt string) (string, error) {
	if le.interactive {
		return le.getInteractiveLine(prompt)
	}
	return le.getNonInteractiveLine(prompt)
}

func (le *LineEditor) getInteractiveLine(prompt string) (string, error) {
	le.rl.SetPrompt(prompt)

	line, err := le.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}

	if trimmed := strings.TrimSpace(line); trimmed != "" {
		le.rl.SaveToHistory(trimmed)
	}
	return line, nil
}

func (le *LineEditor) getNonInteractiveLine(prompt string) (string, error) {
	fmt.Fprint(le.out, prompt)

	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return le.scanner.Text(), nil
}

// Close releases the terminal. It is safe to call more than once.
func (le *LineEditor) Close() {
	if le.rl != nil {
		le.rl.Close()
		le.rl = nil
	}
}

// IsInteractive reports whether readline is in use.
func (le *LineEditor) IsInteractive() bool {
	return le.interactive
}
