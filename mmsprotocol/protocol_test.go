package mmsprotocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProtocolConstants verifies the wire literals.
func TestProtocolConstants(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"AckToken", AckToken, "ack"},
		{"TrueToken", TrueToken, "true"},
		{"LineTerminator", LineTerminator, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestDirectionTokens(t *testing.T) {
	expected := map[Direction]string{North: "n", East: "e", South: "s", West: "w"}
	seen := make(map[byte]bool)

	for _, d := range Directions() {
		t.Run(expected[d], func(t *testing.T) {
			assert.Equal(t, expected[d], d.String())

			back, err := ParseDirection(d.String())
			require.NoError(t, err)
			assert.Equal(t, d, back)
		})
		seen[d.Token()] = true
	}
	assert.Len(t, seen, 4)
}

func TestDirectionParseErrors(t *testing.T) {
	for _, tok := range []string{"", "N", "north", "x", "ne"} {
		t.Run(tok, func(t *testing.T) {
			_, err := ParseDirection(tok)
			require.Error(t, err)
			assert.True(t, IsKind(err, KindInvalidDirection))
		})
	}
}

func TestCellColorTokens(t *testing.T) {
	tests := []struct {
		color CellColor
		token string
	}{
		{Black, "k"},
		{Blue, "b"},
		{Gray, "a"},
		{Cyan, "c"},
		{Green, "g"},
		{Orange, "o"},
		{Red, "r"},
		{White, "w"},
		{Yellow, "y"},
		{DarkBlue, "B"},
		{DarkCyan, "C"},
		{DarkGray, "A"},
		{DarkGreen, "G"},
		{DarkRed, "R"},
		{DarkYellow, "Y"},
	}
	require.Len(t, CellColors(), len(tests))

	for _, tt := range tests {
		t.Run(tt.color.Name(), func(t *testing.T) {
			assert.Equal(t, tt.token, tt.color.String())

			back, err := ParseCellColor(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.color, back)
		})
	}
}

// TestCellColorBijection checks that every one of the 52 ASCII letters
// either decodes to exactly one color that encodes back to it, or fails.
func TestCellColorBijection(t *testing.T) {
	decoded := 0
	for _, r := range "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		tok := string(r)
		c, err := ParseCellColor(tok)
		if err != nil {
			assert.True(t, IsKind(err, KindInvalidColor), tok)
			continue
		}
		decoded++
		assert.Equal(t, tok, c.String())
	}
	assert.Equal(t, 15, decoded)
}

func TestStatQueryTokens(t *testing.T) {
	tests := []struct {
		query   StatQuery
		token   string
		isFloat bool
	}{
		{TotalDistance, "total-distance", false},
		{TotalTurns, "total-turns", false},
		{BestRunDistance, "best-run-distance", false},
		{BestRunTurns, "best-run-turns", false},
		{CurrentRunDistance, "current-run-distance", false},
		{CurrentRunTurns, "current-run-turns", false},
		{TotalEffectiveDistance, "total-effective-distance", true},
		{BestRunEffectiveDistance, "best-run-effective-distance", true},
		{CurrentRunEffectiveDistance, "current-run-effective-distance", true},
		{Score, "score", true},
	}
	require.Len(t, StatQueries(), len(tests))

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.token, tt.query.Token())
			assert.Equal(t, tt.isFloat, tt.query.IsFloat())

			back, err := ParseStatQuery(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.query, back)
		})
	}
}

func TestStatQueryParseErrors(t *testing.T) {
	for _, tok := range []string{"", "Score", "total_distance", "distance", "score "} {
		t.Run(tok, func(t *testing.T) {
			_, err := ParseStatQuery(tok)
			require.Error(t, err)
			assert.True(t, IsKind(err, KindInvalidStatQuery))
		})
	}
}

func TestStatFormat(t *testing.T) {
	tests := []struct {
		name     string
		stat     Stat
		expected string
	}{
		{"int", NewIntStat(TotalTurns, 4), "4"},
		{"negative int", NewIntStat(BestRunDistance, NoStatValue), "-1"},
		{"float", NewFloatStat(Score, 12.5), "12.5"},
		{"whole float", NewFloatStat(TotalEffectiveDistance, 3), "3"},
		{"no value float", NewFloatStat(Score, NoStatValue), "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stat.Format())
		})
	}

	assert.False(t, NewIntStat(TotalTurns, NoStatValue).HasValue())
	assert.True(t, NewFloatStat(Score, 0).HasValue())
	assert.Equal(t, "score=12.5", NewFloatStat(Score, 12.5).String())
}

// TestCommandFormatting verifies command formatting matches the protocol.
func TestCommandFormatting(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{"MazeWidth", NewMazeWidthCommand(), "mazeWidth"},
		{"MazeHeight", NewMazeHeightCommand(), "mazeHeight"},
		{"WallFront", NewWallFrontCommand(), "wallFront"},
		{"WallRight", NewWallRightCommand(), "wallRight"},
		{"WallLeft", NewWallLeftCommand(), "wallLeft"},
		{"MoveForward unset", NewMoveForwardCommand(0), "moveForward "},
		{"MoveForward 3", NewMoveForwardCommand(3), "moveForward 3"},
		{"TurnRight", NewTurnRightCommand(), "turnRight"},
		{"TurnLeft", NewTurnLeftCommand(), "turnLeft"},
		{"SetWall", NewSetWallCommand(1, 2, North), "setWall 1 2 n"},
		{"ClearWall", NewClearWallCommand(15, 0, West), "clearWall 15 0 w"},
		{"SetColor", NewSetColorCommand(0, 0, Green), "setColor 0 0 g"},
		{"SetColor dark", NewSetColorCommand(3, 4, DarkGreen), "setColor 3 4 G"},
		{"ClearColor", NewClearColorCommand(3, 4), "clearColor 3 4"},
		{"ClearAllColor", NewClearAllColorCommand(), "clearAllColor"},
		{"SetText", NewSetTextCommand(0, 0, "abc"), "setText 0 0 abc"},
		{"SetText with spaces", NewSetTextCommand(1, 1, "a b"), "setText 1 1 a b"},
		{"ClearText", NewClearTextCommand(5, 6), "clearText 5 6"},
		{"ClearAllText", NewClearAllTextCommand(), "clearAllText"},
		{"WasReset", NewWasResetCommand(), "wasReset"},
		{"AckReset", NewAckResetCommand(), "ackReset"},
		{"GetStat score", NewGetStatCommand(Score), "score"},
		{"GetStat total-turns", NewGetStatCommand(TotalTurns), "total-turns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cmd.Format())
			assert.Equal(t, tt.expected+"\n", tt.cmd.FormatLine())
		})
	}
}

func TestCommandReplyKinds(t *testing.T) {
	tests := []struct {
		cmd   Command
		reply ReplyKind
	}{
		{NewMazeWidthCommand(), ReplyInt},
		{NewMazeHeightCommand(), ReplyInt},
		{NewWallFrontCommand(), ReplyBool},
		{NewWasResetCommand(), ReplyBool},
		{NewMoveForwardCommand(2), ReplyAck},
		{NewTurnLeftCommand(), ReplyAck},
		{NewAckResetCommand(), ReplyAck},
		{NewSetWallCommand(0, 0, East), ReplyNone},
		{NewSetColorCommand(0, 0, Red), ReplyNone},
		{NewSetTextCommand(0, 0, "x"), ReplyNone},
		{NewClearAllTextCommand(), ReplyNone},
		{NewGetStatCommand(Score), ReplyStat},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Format(), func(t *testing.T) {
			assert.Equal(t, tt.reply, tt.cmd.Type.Reply())
		})
	}
}

func TestCommandValidate(t *testing.T) {
	assert.NoError(t, NewSetWallCommand(0, 0, South).Validate())

	err := NewSetWallCommand(0, 0, Direction(9)).Validate()
	assert.True(t, IsKind(err, KindInvalidDirection))

	err = NewSetColorCommand(0, 0, CellColor(-1)).Validate()
	assert.True(t, IsKind(err, KindInvalidColor))

	err = NewGetStatCommand(StatQuery(42)).Validate()
	assert.True(t, IsKind(err, KindInvalidStatQuery))
}

// TestCommandParsing verifies command parsing works correctly.
func TestCommandParsing(t *testing.T) {
	parser := NewCommandParser()

	tests := []struct {
		name     string
		input    string
		expected Command
	}{
		{"MazeWidth", "mazeWidth", NewMazeWidthCommand()},
		{"MazeWidth with newline", "mazeWidth\n", NewMazeWidthCommand()},
		{"MazeWidth with CRLF", "mazeWidth\r\n", NewMazeWidthCommand()},
		{"MoveForward unset", "moveForward ", NewMoveForwardCommand(0)},
		{"MoveForward bare", "moveForward", NewMoveForwardCommand(0)},
		{"MoveForward 3", "moveForward 3", NewMoveForwardCommand(3)},
		{"SetWall", "setWall 1 2 n", NewSetWallCommand(1, 2, North)},
		{"ClearWall", "clearWall 0 7 s", NewClearWallCommand(0, 7, South)},
		{"SetColor", "setColor 3 4 G", NewSetColorCommand(3, 4, DarkGreen)},
		{"ClearColor", "clearColor 3 4", NewClearColorCommand(3, 4)},
		{"SetText", "setText 0 0 abc", NewSetTextCommand(0, 0, "abc")},
		{"SetText spaces", "setText 0 0 a b ", NewSetTextCommand(0, 0, "a b ")},
		{"SetText empty", "setText 0 0 ", NewSetTextCommand(0, 0, "")},
		{"Stat", "best-run-turns", NewGetStatCommand(BestRunTurns)},
		{"AckReset", "ackReset", NewAckResetCommand()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestCommandParseRoundTrip checks Parse(Format(c)) == c for every
// constructor with representative arguments.
func TestCommandParseRoundTrip(t *testing.T) {
	parser := NewCommandParser()
	cmds := []Command{
		NewMazeWidthCommand(), NewMazeHeightCommand(),
		NewWallFrontCommand(), NewWallRightCommand(), NewWallLeftCommand(),
		NewMoveForwardCommand(0), NewMoveForwardCommand(12),
		NewTurnRightCommand(), NewTurnLeftCommand(),
		NewClearColorCommand(9, 9), NewClearAllColorCommand(),
		NewSetTextCommand(2, 3, "hello"), NewClearTextCommand(2, 3), NewClearAllTextCommand(),
		NewWasResetCommand(), NewAckResetCommand(),
	}
	for _, d := range Directions() {
		cmds = append(cmds, NewSetWallCommand(1, 1, d), NewClearWallCommand(1, 1, d))
	}
	for _, c := range CellColors() {
		cmds = append(cmds, NewSetColorCommand(0, 1, c))
	}
	for _, q := range StatQueries() {
		cmds = append(cmds, NewGetStatCommand(q))
	}

	for _, cmd := range cmds {
		got, err := parser.Parse(cmd.FormatLine())
		require.NoError(t, err, cmd.Format())
		assert.Equal(t, cmd, got)
	}
}

func TestCommandParsingErrors(t *testing.T) {
	parser := NewCommandParser()

	tests := []struct {
		name  string
		input string
		kind  ParseErrorKind
	}{
		{"Empty command", "", ErrKindInvalidCommand},
		{"Unknown command", "jump", ErrKindInvalidCommand},
		{"Wrong case", "mazewidth", ErrKindInvalidCommand},
		{"Zero distance", "moveForward 0", ErrKindInvalidDistance},
		{"Negative distance", "moveForward -2", ErrKindInvalidDistance},
		{"Bad coordinate", "setWall a 2 n", ErrKindInvalidCoordinate},
		{"Negative coordinate", "clearColor -1 2", ErrKindInvalidCoordinate},
		{"Missing direction", "setWall 1 2", ErrKindMissingArgument},
		{"Bad direction", "setWall 1 2 q", ErrKindInvalidToken},
		{"Bad color", "setColor 1 2 z", ErrKindInvalidToken},
		{"Missing coordinates", "clearText 1", ErrKindMissingArgument},
		{"Missing text", "setText 1 2", ErrKindMissingArgument},
		{"Extra argument", "wallFront now", ErrKindUnexpectedArgument},
		{"Extra stat argument", "score 1", ErrKindUnexpectedArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind)
		})
	}
}
