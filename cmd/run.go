package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mathstory/mathstory/internal/app"
	"github.com/mathstory/mathstory/internal/config"
	"github.com/mathstory/mathstory/internal/llm"
	"github.com/mathstory/mathstory/internal/profile"
	"github.com/mathstory/mathstory/internal/store"
	"github.com/mathstory/mathstory/internal/storygen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, cfg, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog.Close()

	provider, llmCfg := buildProvider(ctx, st.Events(), logger)

	return app.Run(ctx, app.Options{
		Profile:   profile.NewStore(st.KV()),
		Generator: storygen.New(provider, storygen.DefaultConfig()),
		Topics:    storygen.NewTopicRandomizer(nil),
		Logger:    logger,
		Timeout:   llmCfg.Timeout,
	})
}

// buildProvider never fails: without usable credentials it returns a
// provider whose every call reports the configuration problem.
func buildProvider(ctx context.Context, events store.EventRepo, logger *slog.Logger) (llm.Provider, llm.Config) {
	provider, cfg, err := llm.NewProviderFromEnv(ctx, events, logger)
	if err != nil {
		logger.Error("llm provider not configured, story generation disabled",
			"provider", cfg.Provider, "error", err)
		return llm.Unavailable(cfg.Provider, err), cfg
	}
	logger.Info("llm provider ready", "provider", provider.Name(), "model", provider.ModelID())
	return provider, cfg
}

// newLogger writes JSON logs to the configured file; the TUI owns stdout.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	return logger, f, nil
}
