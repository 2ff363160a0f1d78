package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"djtracker/internal/application"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API with the probe and metrics servers, plus the watcher and bot when configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			if err = application.Run(ctx, cfg); err != nil {
				return fmt.Errorf("application.Run: %w", err)
			}

			return nil
		},
	}
}
