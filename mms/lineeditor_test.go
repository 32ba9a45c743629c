// =============================================================================
// lineeditor_test.go - Tests for Line Editor (lineeditor.go)
// =============================================================================
//
// The interactive path needs a real TTY, so these tests exercise the
// scanner path, either through NewLineEditor with stdin redirected to a
// pipe or through newScannerLineEditor directly.
//
// =============================================================================

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPipedStdin replaces os.Stdin with a pipe holding input for the
// duration of the test.
func withPipedStdin(t *testing.T, input string) {
	t.Helper()

	reader, writer, err := os.Pipe()
	require.NoError(t, err)

	oldStdin := os.Stdin
	os.Stdin = reader
	t.Cleanup(func() {
		os.Stdin = oldStdin
		reader.Close()
	})

	_, err = writer.WriteString(input)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
}

func TestNewLineEditorNonInteractive(t *testing.T) {
	withPipedStdin(t, "true\n")

	editor := NewLineEditor(filepath.Join(t.TempDir(), "history"), 10)
	defer editor.Close()

	assert.False(t, editor.IsInteractive())
	assert.Nil(t, editor.rl)
	require.NotNil(t, editor.scanner)
}

func TestNewLineEditorWithEmacsEnv(t *testing.T) {
	t.Setenv("INSIDE_EMACS", "29.1,comint")
	withPipedStdin(t, "")

	editor := NewLineEditor("", historySize)
	defer editor.Close()

	assert.False(t, editor.IsInteractive())
}

func TestGetLine(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prompt string
		want   []string
	}{
		{"single line", "16\n", "[mazeWidth] ? ", []string{"16"}},
		{"multiple lines", "true\nfalse\nack\n", "? ", []string{"true", "false", "ack"}},
		{"empty line", "\n", "? ", []string{""}},
		{"whitespace preserved", "  12.5  \n", "? ", []string{"  12.5  "}},
		{"no trailing newline", "-1", "? ", []string{"-1"}},
		{"carriage return stripped", "ack\r\n", "? ", []string{"ack"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			editor := newScannerLineEditor(strings.NewReader(tt.input), &out)

			for _, want := range tt.want {
				line, err := editor.GetLine(tt.prompt)
				require.NoError(t, err)
				assert.Equal(t, want, line)
			}

			_, err := editor.GetLine(tt.prompt)
			assert.ErrorIs(t, err, io.EOF)
			assert.Equal(t, strings.Repeat(tt.prompt, len(tt.want)+1), out.String())
		})
	}
}

func TestGetLineFromPipedStdin(t *testing.T) {
	withPipedStdin(t, "wallFront reply\n")

	editor := NewLineEditor("", historySize)
	defer editor.Close()

	// Prompts go to the real stdout here; only the returned line matters.
	line, err := editor.GetLine("")
	require.NoError(t, err)
	assert.Equal(t, "wallFront reply", line)
}

func TestCloseIsIdempotent(t *testing.T) {
	editor := newScannerLineEditor(strings.NewReader(""), io.Discard)
	editor.Close()
	editor.Close()
	assert.False(t, editor.IsInteractive())
}
