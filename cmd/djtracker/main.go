package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"djtracker/internal/application"
	"djtracker/internal/config"
	"djtracker/pkg/contextx"
	"djtracker/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1) //nolint:gocritic
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "djtracker",
		Short:         "Score tracker, event listing and export viewer for INFINITAS players",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		serveCmd(),
		scoresCmd(),
		statsCmd(),
		profileCmd(),
		rankCmd(),
		lampCmd(),
		eventsCmd(),
		slideshowCmd(),
		exportCmd(),
	)

	return cmd
}

// setup loads the configuration and puts the logger into the command context.
func setup(cmd *cobra.Command) (context.Context, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("config.Load: %w", err)
	}

	log := slog.New(logx.NewHandler(os.Stderr, logx.ParseLevel(cfg.App.LogLevel), cfg.App.LogNoColor))
	slog.SetDefault(log)

	return contextx.WithLogger(cmd.Context(), log), cfg, nil
}

func services(cmd *cobra.Command) (context.Context, application.Services, error) {
	ctx, cfg, err := setup(cmd)
	if err != nil {
		return nil, application.Services{}, err
	}

	return ctx, application.NewServices(ctx, cfg, nil), nil
}
