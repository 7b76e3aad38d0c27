package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/obiente/scribed/internal/config"
	"github.com/obiente/scribed/internal/dispatch"
	"github.com/obiente/scribed/internal/engine"
	"github.com/obiente/scribed/internal/httpapi"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	lvl := zerolog.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if l, err := zerolog.ParseLevel(v); err == nil {
			lvl = l
		}
	}
	log.Logger = log.Level(lvl)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	cmd := &cobra.Command{
		Use:          "scribed",
		Short:        "Long-running transcription server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Engine, "engine", cfg.Engine, "transcription engine (whisper or parakeet)")
	cmd.Flags().StringVar(&cfg.ModelPath, "model-path", cfg.ModelPath, "path to whisper model file or parakeet model directory")
	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "bind address")
	cmd.Flags().IntVar(&cfg.MaxBytes, "max-bytes", cfg.MaxBytes, "max request body size in bytes")
	cmd.Flags().IntVar(&cfg.QueueCapacity, "queue-capacity", cfg.QueueCapacity, "max number of queued transcription jobs")
	return cmd
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	kind, err := engine.ParseKind(cfg.Engine)
	if err != nil {
		return err
	}

	eng, err := engine.New(kind, cfg.ModelPath)
	if err != nil {
		return fmt.Errorf("load engine: %w", err)
	}
	defer eng.Close()
	log.Info().Str("engine", cfg.Engine).Str("model", cfg.ModelPath).Msg("model loaded")

	d := dispatch.New(eng, cfg.QueueCapacity)
	defer d.Close()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpapi.NewRouter(cfg, d),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("scribed server listening")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("shutdown incomplete")
		}
	}
	return nil
}
