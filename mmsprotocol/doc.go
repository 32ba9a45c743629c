// Package mmsprotocol provides a Go implementation of the text protocol used
// by mouse programs to talk to the mms micromouse simulator.
//
// The simulator starts the mouse program as a child process and connects
// to its standard streams: the mouse writes one command per line to stdout
// and reads one response per line from stdin. Anything the mouse writes to
// stderr shows up in the simulator's log, so that is where logging goes.
//
// # Protocol Overview
//
// Commands fall into three groups by what the simulator sends back:
//
//	Queries:           mazeWidth, mazeHeight, wallFront, wallRight, wallLeft,
//	                   wasReset, and the stat tokens (total-distance, score, ...)
//	Acknowledged:      moveForward [n], turnRight, turnLeft, ackReset  -> "ack"
//	Fire-and-forget:   setWall, clearWall, setColor, clearColor, clearAllColor,
//	                   setText, clearText, clearAllText                -> nothing
//
// Boolean queries are lenient: only the literal "true" is true, any other
// reply is false. Numeric replies must parse or the call fails with an
// IntegerFormat or FloatFormat error.
//
// # Basic Usage
//
// Use the process-wide client when running under the simulator:
//
//	mouse := mmsprotocol.Default()
//
//	if err := mouse.SetColor(0, 0, mmsprotocol.DarkGreen); err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    left, err := mouse.WallLeft()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if !left {
//	        mouse.TurnLeft()
//	    }
//	    ...
//	}
//
// Or wrap any reader/writer pair:
//
//	client := mmsprotocol.NewClient(conn, conn, mmsprotocol.WithLogger(logger))
//
// # Fail-fast Mode
//
// Programs that prefer to abort on any protocol failure can use the
// unchecked view, which panics with the classified error:
//
//	mouse := mmsprotocol.Default().Must()
//	mouse.MoveForward()
//	fmt.Fprintln(os.Stderr, mouse.GetStat(mmsprotocol.Score))
//
// # Parsing Commands
//
// To parse command text (e.g., from a script or a captured session):
//
//	parser := mmsprotocol.NewCommandParser()
//	cmd, err := parser.Parse("setWall 3 4 n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// A Client owns its channel and is not safe for concurrent use. The
// protocol is half-duplex with no request ids, so callers that need
// concurrency must serialize access themselves.
package mmsprotocol
