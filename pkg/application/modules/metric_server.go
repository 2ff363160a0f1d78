package modules

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"djtracker/pkg/metrics"
)

type MetricServer struct {
	ListenAddress     string
	ReadHeaderTimeout time.Duration
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	if m.ListenAddress == "" {
		logger(ctx).Info("metrics server disabled")

		return
	}

	prometheusServer := metrics.NewPrometheusServer(m.ListenAddress, m.ReadHeaderTimeout)

	g.Go(func() error {
		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("prometheusServer.Run: %w", err)
		}

		return nil
	})
}
