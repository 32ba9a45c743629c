package mmsprotocol

import (
	"strconv"
	"strings"
)

// CommandParser parses protocol command lines back into Commands. It is the
// inverse of Command.Format: for every command c,
// Parse(c.Format()) formats to the same text.
type CommandParser struct {
	keywords map[string]CommandType
}

// NewCommandParser creates a new command parser.
func NewCommandParser() *CommandParser {
	keywords := make(map[string]CommandType, len(commandKeywords))
	for t, kw := range commandKeywords {
		keywords[kw] = t
	}
	return &CommandParser{keywords: keywords}
}

// Parse parses a command line into a Command. Keywords are case-sensitive.
// Only the line terminator is stripped, so setText keeps any trailing spaces.
func (p *CommandParser) Parse(line string) (Command, error) {
	commandLine := strings.TrimRight(line, "\r\n")

	// Check line length
	if len(commandLine) > MaxLineLength {
		return Command{}, ErrLineTooLong
	}

	keyword, args, hasArgs := strings.Cut(commandLine, " ")
	if keyword == "" {
		return Command{}, newInvalidCommandError(strings.TrimSpace(commandLine))
	}

	if q, err := ParseStatQuery(keyword); err == nil {
		if err := expectNoArgs(args); err != nil {
			return Command{}, err
		}
		return NewGetStatCommand(q), nil
	}

	cmdType, ok := p.keywords[keyword]
	if !ok {
		return Command{}, newInvalidCommandError(keyword)
	}

	switch cmdType {
	case CmdMoveForward:
		return p.parseMoveForward(args)
	case CmdSetWall, CmdClearWall:
		return p.parseWall(cmdType, args)
	case CmdSetColor:
		return p.parseSetColor(args)
	case CmdClearColor, CmdClearText:
		x, y, rest, err := parseCell(args)
		if err != nil {
			return Command{}, err
		}
		if err := expectNoArgs(rest); err != nil {
			return Command{}, err
		}
		return Command{Type: cmdType, X: x, Y: y}, nil
	case CmdSetText:
		return p.parseSetText(args, hasArgs)
	default:
		if err := expectNoArgs(args); err != nil {
			return Command{}, err
		}
		return Command{Type: cmdType}, nil
	}
}

func (p *CommandParser) parseMoveForward(args string) (Command, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return NewMoveForwardCommand(0), nil
	}
	n, err := strconv.ParseUint(args, 10, 32)
	if err != nil || n == 0 {
		return Command{}, newInvalidDistanceError(args)
	}
	return NewMoveForwardCommand(Distance(n)), nil
}

func (p *CommandParser) parseWall(t CommandType, args string) (Command, error) {
	x, y, rest, err := parseCell(args)
	if err != nil {
		return Command{}, err
	}
	token := strings.TrimSpace(rest)
	if token == "" {
		return Command{}, newMissingArgumentError(t.Keyword() + " requires x y direction")
	}
	d, err := ParseDirection(token)
	if err != nil {
		return Command{}, newInvalidTokenError(token, err)
	}
	return Command{Type: t, X: x, Y: y, Direction: d}, nil
}

func (p *CommandParser) parseSetColor(args string) (Command, error) {
	x, y, rest, err := parseCell(args)
	if err != nil {
		return Command{}, err
	}
	token := strings.TrimSpace(rest)
	if token == "" {
		return Command{}, newMissingArgumentError("setColor requires x y color")
	}
	c, err := ParseCellColor(token)
	if err != nil {
		return Command{}, newInvalidTokenError(token, err)
	}
	return NewSetColorCommand(x, y, c), nil
}

func (p *CommandParser) parseSetText(args string, hasArgs bool) (Command, error) {
	if !hasArgs {
		return Command{}, newMissingArgumentError("setText requires x y text")
	}
	parts := strings.SplitN(args, " ", 3)
	if len(parts) < 3 {
		return Command{}, newMissingArgumentError("setText requires x y text")
	}
	x, err := parseCoordinate(parts[0])
	if err != nil {
		return Command{}, err
	}
	y, err := parseCoordinate(parts[1])
	if err != nil {
		return Command{}, err
	}
	return NewSetTextCommand(x, y, parts[2]), nil
}

// Helper functions

// parseCell reads the leading "x y" pair and returns what follows.
func parseCell(args string) (x, y uint32, rest string, err error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return 0, 0, "", newMissingArgumentError("missing cell coordinates")
	}
	if x, err = parseCoordinate(fields[0]); err != nil {
		return 0, 0, "", err
	}
	if y, err = parseCoordinate(fields[1]); err != nil {
		return 0, 0, "", err
	}
	return x, y, strings.Join(fields[2:], " "), nil
}

// parseCoordinate parses a non-negative base-10 coordinate.
func parseCoordinate(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, newInvalidCoordinateError(s)
	}
	return uint32(v), nil
}

func expectNoArgs(args string) error {
	if extra := strings.TrimSpace(args); extra != "" {
		return newUnexpectedArgumentError(extra)
	}
	return nil
}
