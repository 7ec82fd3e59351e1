package webui

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Config captures the settings for serving the quiz over HTTP.
type Config struct {
	Addr        string
	CORSOrigins []string
	Logger      *zap.Logger
	// Ready, when set, receives the bound address once the listener is up.
	Ready func(addr string)
}

// Serve starts an HTTP server for ctl and blocks until ctx is cancelled.
func Serve(ctx context.Context, cfg Config, ctl QuizController) error {
	if ctx == nil {
		return errors.New("webui: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("webui: addr is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	handler, err := NewHandler(cfg, ctl, logger)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("web ui listening", zap.String("addr", listener.Addr().String()))
	if cfg.Ready != nil {
		cfg.Ready(listener.Addr().String())
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
