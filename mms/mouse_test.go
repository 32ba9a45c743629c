// =============================================================================
// mouse_test.go - Tests for Mouse Discovery and Launch (mouse.go)
// =============================================================================

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsExecutable(t *testing.T) {
	dir := t.TempDir()

	exe := filepath.Join(dir, "mouse")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755))

	text := filepath.Join(dir, "readme.txt")
	require.NoError(t, os.WriteFile(text, []byte("hello"), 0644))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"executable file", exe, true},
		{"plain file", text, false},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "nope"), false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isExecutable(tt.path))
		})
	}
}

func TestHomeDir(t *testing.T) {
	home := homeDir()
	if home == "" {
		t.Skip("no home directory in this environment")
	}
	assert.True(t, filepath.IsAbs(home))
}

func TestFindMouseExecutable(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "floodfill")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755))

	t.Run("explicit path", func(t *testing.T) {
		got, err := findMouseExecutable(exe)
		require.NoError(t, err)
		assert.Equal(t, exe, got)
	})

	t.Run("explicit path not executable", func(t *testing.T) {
		text := filepath.Join(dir, "notes.txt")
		require.NoError(t, os.WriteFile(text, nil, 0644))
		_, err := findMouseExecutable(text)
		assert.Error(t, err)
	})

	t.Run("found on PATH", func(t *testing.T) {
		t.Setenv("PATH", dir)
		got, err := findMouseExecutable("floodfill")
		require.NoError(t, err)
		assert.Equal(t, exe, got)
	})

	t.Run("not found", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		_, err := findMouseExecutable("no-such-mouse-program")
		assert.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := findMouseExecutable("")
		assert.Error(t, err)
	})
}

func TestLaunchMouseMissingProgram(t *testing.T) {
	_, err := launchMouse(context.Background(), filepath.Join(t.TempDir(), "gone"), nil, io.Discard)
	assert.Error(t, err)
}

func TestLaunchMouseKill(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "idle")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\nread line\n"), 0755))

	proc, err := launchMouse(context.Background(), exe, nil, io.Discard)
	if err != nil {
		t.Skipf("cannot run shell scripts here: %v", err)
	}

	proc.kill()
	assert.Error(t, proc.wait())
}
