// =============================================================================
// help.go - Help Text and Vocabulary Tables
// =============================================================================
//
// Two kinds of help live here:
//   - Console help: ".help" at a reply prompt shows the accepted input for
//     the pending command, keyed by the reply kind.
//   - Vocabulary: "mms check" prints every command, direction, color and
//     stat token the protocol knows, as a reference for binding authors.
//
// The vocabulary is generated from mmsprotocol's own tables, so it can
// never drift from what the client sends and the parser accepts.
//
// =============================================================================

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmsgo/mms/mmsprotocol"
)

// GO CONCEPT: Map Literals for Lookup Tables
// -------------------------------------------
// A map literal keyed by an enum type works as a static lookup table. A
// missing key yields the zero value (""), which callers treat as "no help".
//
//   text, ok := replyHelp[kind]
//
// Compare with Python: a module-level dict, REPLY_HELP.get(kind, "").

// replyHelp describes the accepted input for each reply kind.
var replyHelp = map[mmsprotocol.ReplyKind]string{
	mmsprotocol.ReplyAck: `  Acknowledge the command:
    (empty), a, ack   send "ack"
    !<text>           send <text> verbatim (test bad acknowledgments)`,

	mmsprotocol.ReplyBool: `  Answer the question:
    y, yes, t, true, 1    send "true"
    n, no, f, false, 0    send "false"
    !<text>               send <text> verbatim (anything but "true" reads as false)`,

	mmsprotocol.ReplyInt: `  Answer with a whole number, e.g. 16.
    !<text>   send <text> verbatim (test malformed numbers)`,
}

// statHelp is shown for stat queries; the number kind depends on the query.
const statHelp = `  Answer with %s, or "-" / "none" when the stat has no value yet (-1).
    !<text>   send <text> verbatim (test malformed numbers)`

// printReplyHelp writes the help for a pending command to w.
func printReplyHelp(w io.Writer, kind mmsprotocol.ReplyKind, query mmsprotocol.StatQuery) {
	if kind == mmsprotocol.ReplyStat {
		number := "a whole number"
		if query.IsFloat() {
			number = "a decimal number, e.g. 12.5"
		}
		fmt.Fprintf(w, statHelp+"\n", number)
	} else if text, ok := replyHelp[kind]; ok {
		fmt.Fprintln(w, text)
	}
	fmt.Fprintln(w, `  .quit     stop the mouse and exit`)
}

// consoleBanner is printed when the console starts.
func consoleBanner(program string) string {
	return fmt.Sprintf(`%s - simulator console for %s

Type '.help' at a prompt for accepted replies.
Type '.quit' to stop the mouse.
`, fullTitle(), program)
}

// directionNames spells out the one-letter direction tokens.
var directionNames = map[mmsprotocol.Direction]string{
	mmsprotocol.North: "north",
	mmsprotocol.East:  "east",
	mmsprotocol.South: "south",
	mmsprotocol.West:  "west",
}

// sampleCommands is one command of each type, used to print the command
// table in a stable order.
func sampleCommands() []mmsprotocol.Command {
	return []mmsprotocol.Command{
		mmsprotocol.NewMazeWidthCommand(),
		mmsprotocol.NewMazeHeightCommand(),
		mmsprotocol.NewWallFrontCommand(),
		mmsprotocol.NewWallRightCommand(),
		mmsprotocol.NewWallLeftCommand(),
		mmsprotocol.NewMoveForwardCommand(0),
		mmsprotocol.NewMoveForwardCommand(2),
		mmsprotocol.NewTurnRightCommand(),
		mmsprotocol.NewTurnLeftCommand(),
		mmsprotocol.NewSetWallCommand(0, 0, mmsprotocol.North),
		mmsprotocol.NewClearWallCommand(0, 0, mmsprotocol.North),
		mmsprotocol.NewSetColorCommand(0, 0, mmsprotocol.Green),
		mmsprotocol.NewClearColorCommand(0, 0),
		mmsprotocol.NewClearAllColorCommand(),
		mmsprotocol.NewSetTextCommand(0, 0, "abc"),
		mmsprotocol.NewClearTextCommand(0, 0),
		mmsprotocol.NewClearAllTextCommand(),
		mmsprotocol.NewWasResetCommand(),
		mmsprotocol.NewAckResetCommand(),
		mmsprotocol.NewGetStatCommand(mmsprotocol.Score),
	}
}

// printVocabulary writes the protocol's token tables to w.
func printVocabulary(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "COMMANDS")
	for _, cmd := range sampleCommands() {
		fmt.Fprintf(tw, "  %q\t%s\n", cmd.Format(), cmd.Type.Reply())
	}

	fmt.Fprintln(tw, "\nDIRECTIONS")
	for _, d := range mmsprotocol.Directions() {
		fmt.Fprintf(tw, "  %c\t%s\n", d.Token(), directionNames[d])
	}

	fmt.Fprintln(tw, "\nCOLORS")
	for _, c := range mmsprotocol.CellColors() {
		fmt.Fprintf(tw, "  %c\t%s\n", c.Token(), c.Name())
	}

	fmt.Fprintln(tw, "\nSTATS")
	for _, q := range mmsprotocol.StatQueries() {
		number := "integer"
		if q.IsFloat() {
			number = "float"
		}
		fmt.Fprintf(tw, "  %s\t%s\n", q.Token(), number)
	}

	return tw.Flush()
}
