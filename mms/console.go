// =============================================================================
// console.go - Simulator Console (Human-in-the-Loop Mouse Runner)
// =============================================================================
//
// The console runs a mouse program and lets a human answer for the
// simulator. Each command line the mouse writes is parsed and echoed:
//
//	> wallFront
//	[wallFront] ? y
//	< true
//	> moveForward 2
//	< ack
//	> setColor 0 0 G
//
// Commands that take no reply (setWall, setColor, setText and the clears)
// are only echoed. Acknowledged commands are answered with "ack" without
// prompting when auto_ack is on. Queries always prompt; see translate.go
// for the short forms accepted at the prompt.
//
// A line the parser rejects is reported with "!" and gets no reply. The
// real simulator would not answer it either, so a mouse that sent it and
// waits for a reply will hang, which is the behavior being debugged.
//
// Dot-commands at the prompt:
//
//	.help   show the accepted replies for the pending command
//	.quit   stop the mouse and exit
//
// =============================================================================

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mmsgo/mms/mmsprotocol"
)

// errQuit is returned by Serve when the human ends the session.
var errQuit = errors.New("console quit")

const (
	mousePrefix   = "> "
	replyPrefix   = "< "
	problemPrefix = "! "
)

// Console relays between a mouse program and a human playing the simulator.
type Console struct {
	parser  *mmsprotocol.CommandParser
	editor  *LineEditor
	out     io.Writer
	logger  zerolog.Logger
	autoAck bool
	maxLine int

	commands int
	replies  int
	rejected int
}

// NewConsole creates a console that prompts through editor and echoes the
// exchange to out.
func NewConsole(editor *LineEditor, out io.Writer, cfg Config, logger zerolog.Logger) *Console {
	return &Console{
		parser:  mmsprotocol.NewCommandParser(),
		editor:  editor,
		out:     out,
		logger:  logger,
		autoAck: cfg.AutoAck,
		maxLine: cfg.MaxLineLength,
	}
}

// GO CONCEPT: Reading Lines with a Size Limit
// -------------------------------------------
// bufio.Scanner refuses tokens larger than its buffer and stops with
// bufio.ErrTooLong. Setting the maximum with Buffer() turns a runaway
// mouse (one that never writes a newline) into a clean error instead of
// unbounded memory growth.

// Serve reads commands from fromMouse and writes replies to toMouse until
// the mouse closes its output, the human quits (errQuit), or a pipe fails.
func (c *Console) Serve(fromMouse io.Reader, toMouse io.Writer) error {
	scanner := bufio.NewScanner(fromMouse)
	// The limit is the larger of max and cap(buf).
	scanner.Buffer(make([]byte, 0, min(512, c.maxLine+1)), c.maxLine+1)

	defer func() {
		c.logger.Info().
			Int("commands", c.commands).
			Int("replies", c.replies).
			Int("rejected", c.rejected).
			Msg("console finished")
	}()

	for scanner.Scan() {
		if err := c.handleLine(scanner.Text(), toMouse); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read from mouse: %w", err)
	}
	return nil
}

func (c *Console) handleLine(line string, toMouse io.Writer) error {
	c.commands++
	fmt.Fprintln(c.out, mousePrefix+line)

	cmd, err := c.parser.Parse(line)
	if err != nil {
		c.rejected++
		fmt.Fprintln(c.out, problemPrefix+err.Error())
		c.logger.Warn().Err(err).Str("line", line).Msg("unparseable command")
		return nil
	}

	kind := cmd.Type.Reply()
	if kind == mmsprotocol.ReplyNone {
		return nil
	}

	var reply string
	if kind == mmsprotocol.ReplyAck && c.autoAck {
		reply = mmsprotocol.AckToken
	} else {
		reply, err = c.promptReply(cmd)
		if err != nil {
			return err
		}
	}

	if _, err := io.WriteString(toMouse, reply+mmsprotocol.LineTerminator); err != nil {
		return fmt.Errorf("reply to mouse: %w", err)
	}
	c.replies++
	fmt.Fprintln(c.out, replyPrefix+reply)
	c.logger.Debug().Str("command", cmd.Format()).Str("reply", reply).Msg("answered")
	return nil
}

// promptReply asks the human until the input translates into a reply.
func (c *Console) promptReply(cmd mmsprotocol.Command) (string, error) {
	prompt := "[" + commandLabel(cmd) + "] ? "
	kind := cmd.Type.Reply()

	for {
		input, err := c.editor.GetLine(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", errQuit
			}
			return "", fmt.Errorf("read reply: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case ".quit":
			return "", errQuit
		case ".help":
			printReplyHelp(c.out, kind, cmd.Query)
			continue
		}

		reply, err := translateReply(input, kind, cmd.Query)
		if err != nil {
			fmt.Fprintln(c.out, problemPrefix+err.Error())
			continue
		}
		return reply, nil
	}
}

// commandLabel names a command in the prompt: its keyword, or the query
// token for stats.
func commandLabel(cmd mmsprotocol.Command) string {
	if cmd.Type == mmsprotocol.CmdGetStat {
		return cmd.Query.Token()
	}
	return cmd.Type.Keyword()
}

// runConsole launches the mouse program and serves it until it exits.
func runConsole(ctx context.Context, cfg Config, logger zerolog.Logger, program string, args []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	proc, err := launchMouse(ctx, program, args, os.Stderr)
	if err != nil {
		return err
	}
	logger.Info().Str("program", program).Int("pid", proc.pid()).Msg("mouse started")

	editor := NewLineEditor(cfg.HistoryFile, cfg.HistoryLimit)
	defer editor.Close()

	setupSignalHandler(func() {
		proc.kill()
		editor.Close()
	})

	fmt.Print(consoleBanner(program))

	serveErr := NewConsole(editor, os.Stdout, cfg, logger).Serve(proc.stdout, proc.stdin)
	quit := errors.Is(serveErr, errQuit)
	if serveErr != nil {
		proc.kill()
	}
	waitErr := proc.wait()

	switch {
	case quit:
		logger.Info().Msg("mouse stopped")
		return nil
	case serveErr != nil:
		return serveErr
	case waitErr != nil:
		return fmt.Errorf("mouse exited: %w", waitErr)
	}
	logger.Info().Msg("mouse exited")
	return nil
}
