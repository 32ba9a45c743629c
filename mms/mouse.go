// =============================================================================
// mouse.go - Mouse Program Discovery and Launch
// =============================================================================
//
// The console stands in for the simulator, so it has to do what the
// simulator does: start the mouse program with its stdin and stdout
// connected to pipes. The mouse's stderr is passed through unchanged, since
// that is where mouse programs print their own debug output.
//
// Discovery order for a bare program name (no path separator):
//  1. Same directory as the mms executable
//  2. $PATH
//  3. Common install locations (~/.local/bin, /usr/local/bin)
//
// =============================================================================

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// mouseProcess is a running mouse program and its protocol pipes.
type mouseProcess struct {
	cmd *exec.Cmd

	// stdin carries simulator replies to the mouse.
	stdin io.WriteCloser

	// stdout carries the mouse's commands.
	stdout io.ReadCloser
}

// GO CONCEPT: Pipes to a Child Process
// ------------------------------------
// exec.Cmd.StdinPipe and StdoutPipe return pipe ends that are connected
// once Start is called. They must be requested before Start. The stdout
// pipe is closed by Wait, so all reading has to finish before Wait is
// called or the last lines can be lost.
//
// Compare with Python: subprocess.Popen(args, stdin=PIPE, stdout=PIPE)
// gives the same pair as proc.stdin and proc.stdout.

// launchMouse starts program with args. The process is killed if ctx is
// cancelled before it exits.
func launchMouse(ctx context.Context, program string, args []string, stderr io.Writer) (*mouseProcess, error) {
	exePath, err := findMouseExecutable(program)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, exePath, args...)
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("mouse stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("mouse stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to launch %s: %w", program, err)
	}

	return &mouseProcess{cmd: cmd, stdin: stdin, stdout: stdout}, nil
}

// pid returns the process id of the mouse.
func (m *mouseProcess) pid() int {
	return m.cmd.Process.Pid
}

// wait closes the mouse's stdin and waits for it to exit.
func (m *mouseProcess) wait() error {
	m.stdin.Close()
	return m.cmd.Wait()
}

// kill stops the mouse immediately.
func (m *mouseProcess) kill() {
	if m.cmd.Process != nil {
		m.cmd.Process.Kill()
	}
}

// findMouseExecutable resolves program to an executable path.
func findMouseExecutable(program string) (string, error) {
	if program == "" {
		return "", errors.New("no mouse program given")
	}

	if strings.ContainsRune(program, filepath.Separator) {
		if isExecutable(program) {
			return program, nil
		}
		return "", fmt.Errorf("%s is not an executable file", program)
	}

	if selfPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(selfPath), program)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath(program); err == nil {
		return path, nil
	}

	commonPaths := []string{
		filepath.Join(homeDir(), ".local", "bin"),
		"/usr/local/bin",
	}
	for _, dir := range commonPaths {
		candidate := filepath.Join(dir, program)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%s not found in PATH or common locations", program)
}

// isExecutable reports whether path is a regular file with an execute bit.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode().Perm()&0111 != 0
}

// homeDir returns the user's home directory, or "" if unknown.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
