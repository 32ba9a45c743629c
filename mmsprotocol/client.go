package mmsprotocol

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Client speaks the mms protocol over a duplex text channel.
//
// Each operation is a full round trip: the command line is written and
// flushed, then (for commands that expect one) exactly one response line is
// read and decoded. Fire-and-forget commands never read.
//
// Thread Safety:
// A Client is not safe for concurrent use. It owns its channel for the
// duration of a session and supports one in-flight operation at a time.
type Client struct {
	reader *bufio.Reader
	writer *bufio.Writer

	logger        zerolog.Logger
	maxLineLength int
}

// Option configures a Client.
type Option func(*Client)

// WithLogger traces every command and response at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMaxLineLength caps the length of a response line. Values <= 0 keep
// the default MaxLineLength.
func WithMaxLineLength(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxLineLength = n
		}
	}
}

// NewClient creates a client reading responses from r and writing commands to w.
func NewClient(r io.Reader, w io.Writer, opts ...Option) *Client {
	c := &Client{
		reader:        bufio.NewReader(r),
		writer:        bufio.NewWriter(w),
		logger:        zerolog.Nop(),
		maxLineLength: MaxLineLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send writes one command line and flushes it. It does not read a response.
func (c *Client) Send(cmd Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	line := cmd.FormatLine()
	c.logger.Debug().Str("command", cmd.Format()).Msg("send")
	if _, err := c.writer.WriteString(line); err != nil {
		return NewIOError("write command", err)
	}
	if err := c.writer.Flush(); err != nil {
		return NewIOError("flush command", err)
	}
	return nil
}

// ReadLine reads one full response line including its terminator. A final
// line without a terminator is returned as is when the channel closes.
func (c *Client) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		chunk, err := c.reader.ReadSlice('\n')
		sb.Write(chunk)
		if sb.Len() > c.maxLineLength+len(LineTerminator) {
			return "", NewIOError("read response", ErrLineTooLong)
		}
		switch {
		case err == nil:
			line := sb.String()
			c.logger.Debug().Str("response", TrimResponse(line)).Msg("recv")
			return line, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if sb.Len() == 0 {
				return "", NewIOError("read response", ErrEmptyResponse)
			}
			line := sb.String()
			c.logger.Debug().Str("response", TrimResponse(line)).Msg("recv")
			return line, nil
		default:
			return "", NewIOError("read response", err)
		}
	}
}

// Execute sends a command and decodes its reply. This is the single code
// path every typed operation goes through.
func (c *Client) Execute(cmd Command) (Result, error) {
	if err := c.Send(cmd); err != nil {
		return Result{}, err
	}
	if cmd.Type.Reply() == ReplyNone {
		return Result{Reply: ReplyNone}, nil
	}
	line, err := c.ReadLine()
	if err != nil {
		return Result{}, err
	}
	res, err := DecodeReply(cmd, line)
	if err != nil {
		c.logger.Warn().Err(err).Str("command", cmd.Format()).Msg("bad response")
		return Result{}, err
	}
	return res, nil
}

// MazeWidth returns the width of the maze in cells.
func (c *Client) MazeWidth() (int32, error) {
	res, err := c.Execute(NewMazeWidthCommand())
	return res.Int, err
}

// MazeHeight returns the height of the maze in cells.
func (c *Client) MazeHeight() (int32, error) {
	res, err := c.Execute(NewMazeHeightCommand())
	return res.Int, err
}

// WallFront reports whether there is a wall in front of the mouse.
func (c *Client) WallFront() (bool, error) {
	res, err := c.Execute(NewWallFrontCommand())
	return res.Bool, err
}

// WallRight reports whether there is a wall to the right of the mouse.
func (c *Client) WallRight() (bool, error) {
	res, err := c.Execute(NewWallRightCommand())
	return res.Bool, err
}

// WallLeft reports whether there is a wall to the left of the mouse.
func (c *Client) WallLeft() (bool, error) {
	res, err := c.Execute(NewWallLeftCommand())
	return res.Bool, err
}

// MoveForward moves the mouse one cell forward.
func (c *Client) MoveForward() error {
	_, err := c.Execute(NewMoveForwardCommand(0))
	return err
}

// MoveForwardBy moves the mouse distance cells forward. A zero distance is
// rejected with ErrZeroDistance before anything is sent.
func (c *Client) MoveForwardBy(distance uint32) error {
	if distance == 0 {
		return ErrZeroDistance
	}
	_, err := c.Execute(NewMoveForwardCommand(Distance(distance)))
	return err
}

// TurnRight turns the mouse ninety degrees to the right.
func (c *Client) TurnRight() error {
	_, err := c.Execute(NewTurnRightCommand())
	return err
}

// TurnLeft turns the mouse ninety degrees to the left.
func (c *Client) TurnLeft() error {
	_, err := c.Execute(NewTurnLeftCommand())
	return err
}

// SetWall displays a wall on the given side of cell (x, y).
func (c *Client) SetWall(x, y uint32, d Direction) error {
	_, err := c.Execute(NewSetWallCommand(x, y, d))
	return err
}

// ClearWall removes a displayed wall.
func (c *Client) ClearWall(x, y uint32, d Direction) error {
	_, err := c.Execute(NewClearWallCommand(x, y, d))
	return err
}

// SetColor colors cell (x, y).
func (c *Client) SetColor(x, y uint32, color CellColor) error {
	_, err := c.Execute(NewSetColorCommand(x, y, color))
	return err
}

// ClearColor clears the color of cell (x, y).
func (c *Client) ClearColor(x, y uint32) error {
	_, err := c.Execute(NewClearColorCommand(x, y))
	return err
}

// ClearAllColor clears the color of every cell.
func (c *Client) ClearAllColor() error {
	_, err := c.Execute(NewClearAllColorCommand())
	return err
}

// SetText sets the text of cell (x, y). The text is sent verbatim and must
// not contain a newline, which would desynchronize the channel.
func (c *Client) SetText(x, y uint32, text string) error {
	_, err := c.Execute(NewSetTextCommand(x, y, text))
	return err
}

// ClearText clears the text of cell (x, y).
func (c *Client) ClearText(x, y uint32) error {
	_, err := c.Execute(NewClearTextCommand(x, y))
	return err
}

// ClearAllText clears the text of every cell.
func (c *Client) ClearAllText() error {
	_, err := c.Execute(NewClearAllTextCommand())
	return err
}

// WasReset reports whether the simulator's reset button was pressed.
func (c *Client) WasReset() (bool, error) {
	res, err := c.Execute(NewWasResetCommand())
	return res.Bool, err
}

// AckReset tells the simulator the mouse may be moved back to the start.
func (c *Client) AckReset() error {
	_, err := c.Execute(NewAckResetCommand())
	return err
}

// GetStat returns the value of a statistic, or NoStatValue if the
// simulator has none yet.
func (c *Client) GetStat(q StatQuery) (Stat, error) {
	res, err := c.Execute(NewGetStatCommand(q))
	return res.Stat, err
}

// Must returns an unchecked view of the client that panics on error.
func (c *Client) Must() *MustClient {
	return &MustClient{c: c}
}
