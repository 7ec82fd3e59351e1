package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"trivia/internal/logging"
	"trivia/internal/webui"
)

// serveWeb is a test seam for running the web host.
var serveWeb = webui.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		fs, configPath := newFlagSet(cmd, stderr)
		addr := fs.String("addr", "", "Address to listen on (default from config)")
		verbose := fs.Bool("verbose", false, "Log debug output")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		if strings.TrimSpace(*addr) != "" {
			cfg.Web.Addr = strings.TrimSpace(*addr)
		}

		logger, closeLog, err := logging.New(logConfig(cfg, *verbose), stderr)
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
		if err := ctl.StartNewQuiz(); err != nil {
			logger.Warn("initial quiz not started", zap.Error(err))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(stdout, "Serving quiz at http://%s\n", cfg.Web.Addr)
		err = serveWeb(ctx, webui.Config{
			Addr:        cfg.Web.Addr,
			CORSOrigins: cfg.Web.CORSOrigins,
			Logger:      logger,
		}, ctl)
		if err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
