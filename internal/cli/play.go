package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"trivia/internal/logging"
	"trivia/internal/ui/live"
	"trivia/internal/ui/plain"
)

// stdin is a test seam for interactive input.
var stdin io.Reader = os.Stdin

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		fs, configPath := newFlagSet(cmd, stderr)
		uiMode := fs.String("ui", "", "UI mode: auto, live or plain (default from config)")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
		verbose := fs.Bool("verbose", false, "Show error details and debug logs on stderr")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		mode := cfg.UI.Mode
		if *uiMode != "" {
			mode = *uiMode
		}
		decision, err := resolveUIMode(mode, *verbose, stdin, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		// The live UI owns the terminal, so logs only go to a configured file.
		var logSink io.Writer
		if *verbose {
			logSink = stderr
		}
		logger, closeLog, err := logging.New(logConfig(cfg, *verbose), logSink)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
			return ExitError
		}
		defer func() { _ = closeLog() }()

		ctl, err := newController(cfg, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start quiz: %v\n", err)
			return ExitError
		}
		defer ctl.Close()

		ctx := context.Background()
		if decision.useLive {
			host := live.NewHost(ctl, live.Options{
				NoColor:   *noColor || cfg.UI.NoColor,
				Verbose:   *verbose,
				AutoStart: true,
			})
			ctl.AddObserver(host)
			err = host.Run(ctx, stdin, stdout)
		} else {
			host := plain.NewHost(ctl, stdin, stdout, plain.Options{Verbose: *verbose})
			ctl.AddObserver(host)
			err = host.Run(ctx)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
