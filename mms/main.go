// =============================================================================
// main.go - mms CLI Entry Point
// =============================================================================
//
// mms is the developer tool that ships with the Go client for the mms
// micromouse simulator protocol.
//
// Usage:
//
//	mms console -- ./mymouse --fast   Play the simulator for a mouse program
//	mms script square.mms             Run a command script as the mouse
//	mms check                         Print the protocol vocabulary
//	mms --version                     Show version
//
// Global flags:
//
//	--config <path>      mms.toml to load (default ./mms.toml, $MMS_CONFIG)
//	--log-level <level>  trace, debug, info, warn, error (default info)
//
// Logs always go to stderr. When mms runs as a mouse (script), stdout is
// the protocol channel and must carry nothing but commands.
//
// =============================================================================

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mmsgo/mms/mmsprotocol"
)

const (
	// version is the current version of the mms CLI.
	version = "0.3.0"

	// appName is the application name, also used as the log "app" field.
	appName = "mms"
)

// fullTitle returns the application name with version.
func fullTitle() string {
	return fmt.Sprintf("%s v%s (Go)", appName, version)
}

// printError prints an error message to stderr.
func printError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// =============================================================================
// Command Tree
// =============================================================================

// GO CONCEPT: Closures over Shared State
// --------------------------------------
// Every subcommand needs the resolved Config and logger, but they only
// exist after flags are parsed. The root's PersistentPreRunE fills in the
// cli struct, and each subcommand's RunE closes over the same *cli, so it
// sees the values by the time it runs. Building the tree in a function
// (instead of package-level vars) gives each test a fresh tree.
//
// Compare with Python: click passes shared state through a context object
// (ctx.obj); a closure over a dataclass instance is the same idea.

// cli carries flag values and resolved settings to the subcommands.
type cli struct {
	configPath string
	logLevel   string

	cfg    Config
	logger zerolog.Logger
}

// newRootCommand builds the mms command tree.
func newRootCommand() *cobra.Command {
	c := &cli{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Tools for mms micromouse simulator programs",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.SetVersionTemplate(fullTitle() + "\n")

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to mms.toml")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newConsoleCommand(c),
		newScriptCommand(c),
		newCheckCommand(),
	)
	return root
}

// setup resolves configuration and builds the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger.With().Str("command", cmd.Name()).Logger()
	return nil
}

func newConsoleCommand(c *cli) *cobra.Command {
	var autoAck bool

	cmd := &cobra.Command{
		Use:   "console -- <mouse-program> [args...]",
		Short: "Run a mouse program and answer its queries by hand",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("auto-ack") {
				c.cfg.AutoAck = autoAck
			}
			return runConsole(cmd.Context(), c.cfg, c.logger, args[0], args[1:])
		},
	}
	cmd.Flags().BoolVar(&autoAck, "auto-ack", true, "answer acknowledged commands without prompting")
	return cmd
}

func newScriptCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "script <file>",
		Short: "Act as a mouse that sends the commands in a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()

			mmsprotocol.SetDefault(mmsprotocol.NewClient(
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
				mmsprotocol.WithLogger(c.logger),
				mmsprotocol.WithMaxLineLength(c.cfg.MaxLineLength),
			))
			defer mmsprotocol.SetDefault(nil)

			n, err := runScript(f, mmsprotocol.Default(), c.logger)
			c.logger.Info().Str("script", args[0]).Int("executed", n).Msg("script finished")
			return err
		},
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Print the commands, directions, colors and stats of the protocol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVocabulary(cmd.OutOrStdout())
		},
	}
}

// =============================================================================
// Signal Handling
// =============================================================================

// GO CONCEPT: Channels and Goroutines
// ------------------------------------
// signal.Notify delivers SIGINT and SIGTERM to a buffered channel instead
// of killing the process. A goroutine blocks on that channel and runs the
// cleanup when a signal arrives. The buffer of 1 means a signal sent before
// the goroutine is scheduled is not lost.

// setupSignalHandler runs cleanup and exits when SIGINT or SIGTERM arrives.
func setupSignalHandler(cleanup func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println()
		cleanup()
		os.Exit(130)
	}()
}

// =============================================================================
// Main
// =============================================================================

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}
