package mmsprotocol

// MustClient is the fail-fast view of a Client. Every method delegates to
// the checked Client and panics with the returned error, which is a
// *ProtocolError or one of the package's sentinel errors.
//
// A program should pick one mode: either inspect errors from Client or
// let MustClient abort. Mixing the two on one channel is allowed but makes
// failure handling harder to follow.
type MustClient struct {
	c *Client
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

// Checked returns the underlying checked client.
func (m *MustClient) Checked() *Client { return m.c }

// Execute sends a command and decodes its reply.
func (m *MustClient) Execute(cmd Command) Result { return must(m.c.Execute(cmd)) }

// MazeWidth returns the width of the maze in cells.
func (m *MustClient) MazeWidth() int32 { return must(m.c.MazeWidth()) }

// MazeHeight returns the height of the maze in cells.
func (m *MustClient) MazeHeight() int32 { return must(m.c.MazeHeight()) }

// WallFront reports whether there is a wall in front of the mouse.
func (m *MustClient) WallFront() bool { return must(m.c.WallFront()) }

// WallRight reports whether there is a wall to the right of the mouse.
func (m *MustClient) WallRight() bool { return must(m.c.WallRight()) }

// WallLeft reports whether there is a wall to the left of the mouse.
func (m *MustClient) WallLeft() bool { return must(m.c.WallLeft()) }

// MoveForward moves the mouse one cell forward.
func (m *MustClient) MoveForward() { check(m.c.MoveForward()) }

// MoveForwardBy moves the mouse distance cells forward.
func (m *MustClient) MoveForwardBy(distance uint32) { check(m.c.MoveForwardBy(distance)) }

// TurnRight turns the mouse ninety degrees to the right.
func (m *MustClient) TurnRight() { check(m.c.TurnRight()) }

// TurnLeft turns the mouse ninety degrees to the left.
func (m *MustClient) TurnLeft() { check(m.c.TurnLeft()) }

// SetWall displays a wall on the given side of cell (x, y).
func (m *MustClient) SetWall(x, y uint32, d Direction) { check(m.c.SetWall(x, y, d)) }

// ClearWall removes a displayed wall.
func (m *MustClient) ClearWall(x, y uint32, d Direction) { check(m.c.ClearWall(x, y, d)) }

// SetColor colors cell (x, y).
func (m *MustClient) SetColor(x, y uint32, color CellColor) { check(m.c.SetColor(x, y, color)) }

// ClearColor clears the color of cell (x, y).
func (m *MustClient) ClearColor(x, y uint32) { check(m.c.ClearColor(x, y)) }

// ClearAllColor clears the color of every cell.
func (m *MustClient) ClearAllColor() { check(m.c.ClearAllColor()) }

// SetText sets the text of cell (x, y).
func (m *MustClient) SetText(x, y uint32, text string) { check(m.c.SetText(x, y, text)) }

// ClearText clears the text of cell (x, y).
func (m *MustClient) ClearText(x, y uint32) { check(m.c.ClearText(x, y)) }

// ClearAllText clears the text of every cell.
func (m *MustClient) ClearAllText() { check(m.c.ClearAllText()) }

// WasReset reports whether the simulator's reset button was pressed.
func (m *MustClient) WasReset() bool { return must(m.c.WasReset()) }

// AckReset tells the simulator the mouse may be moved back to the start.
func (m *MustClient) AckReset() { check(m.c.AckReset()) }

// GetStat returns the value of a statistic.
func (m *MustClient) GetStat(q StatQuery) Stat { return must(m.c.GetStat(q)) }
