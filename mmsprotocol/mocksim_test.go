package mmsprotocol

import (
	"bufio"
	"io"
	"sync"
	"testing"
)

// mockSimulator is an in-memory stand-in for the mms simulator.
//
// It reads command lines written by a Client, records them, and answers
// every command that expects a reply with the line returned by handler.
// Fire-and-forget commands are recorded and never answered, so a test that
// issues them between queries catches any client that reads too much.
type mockSimulator struct {
	client *Client

	cmdW  *io.PipeWriter
	respR *io.PipeReader
	respW *io.PipeWriter

	handler func(cmd Command) string

	mu       sync.Mutex
	received []string
	errors   []error

	done chan struct{}
}

// startMockSimulator wires a Client to a mock simulator. handler returns the
// full reply line (without newline) for reply-bearing commands.
func startMockSimulator(t *testing.T, handler func(cmd Command) string, opts ...Option) *mockSimulator {
	t.Helper()

	cmdR, cmdW := io.Pipe()
	respR, respW := io.Pipe()

	sim := &mockSimulator{
		client:  NewClient(respR, cmdW, opts...),
		cmdW:    cmdW,
		respR:   respR,
		respW:   respW,
		handler: handler,
		done:    make(chan struct{}),
	}

	go sim.serve(cmdR)
	t.Cleanup(func() { sim.Close() })
	return sim
}

func (s *mockSimulator) serve(r io.Reader) {
	defer close(s.done)
	defer s.respW.Close()

	parser := NewCommandParser()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		cmd, err := parser.Parse(line)

		s.mu.Lock()
		s.received = append(s.received, line)
		if err != nil {
			s.errors = append(s.errors, err)
		}
		s.mu.Unlock()

		if err != nil || cmd.Type.Reply() == ReplyNone {
			continue
		}
		if _, err := io.WriteString(s.respW, s.handler(cmd)+"\n"); err != nil {
			return
		}
	}
}

// Close stops the simulator and returns every command line it received.
func (s *mockSimulator) Close() []string {
	s.cmdW.Close()
	s.respR.Close()
	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.received...)
}

// parseErrors returns command lines the simulator could not parse.
func (s *mockSimulator) parseErrors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.errors...)
}
