package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"djtracker/internal/domain/service/event"
	"djtracker/internal/domain/value"
	"djtracker/pkg/httpx"
)

var errBannerStatus = errors.New("banner status")

const bannerCheckTimeout = 5 * time.Second

func eventsCmd() *cobra.Command {
	var (
		playType string
		details  bool
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events grouped by remaining time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := value.ParsePlayMode(playType)
			if err != nil {
				return fmt.Errorf("--type: %w", err)
			}

			ctx, svc, err := services(cmd)
			if err != nil {
				return err
			}

			groups, err := svc.Events.Listing(ctx, mode, nil)
			if err != nil {
				return fmt.Errorf("events.Listing: %w", err)
			}

			for i, g := range groups {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}

				t := newTable(g.Title, "#", "Title", "Remain", "Flags")
				t.muted = g.Muted

				for _, e := range g.Events {
					var flags []string
					if e.Urgent {
						flags = append(flags, "urgent")
					}

					if e.New {
						flags = append(flags, "new")
					}

					t.addRow(e.No, e.Title, e.Remain, strings.Join(flags, ","))

					if details {
						for _, d := range e.Details {
							t.addRow("", "  "+d.Label, d.Value, "")
						}
					}
				}

				if err = t.render(cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&playType, "type", value.PlayModeDP.String(), "play type: SP or DP")
	cmd.Flags().BoolVar(&details, "details", false, "print the detail lines of every event")

	return cmd
}

func slideshowCmd() *cobra.Command {
	var (
		playType  string
		animation string
		interval  int
		verify    bool
	)

	cmd := &cobra.Command{
		Use:   "slideshow",
		Short: "Print the banner playlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := value.ParsePlayMode(playType)
			if err != nil {
				return fmt.Errorf("--type: %w", err)
			}

			ctx, svc, err := services(cmd)
			if err != nil {
				return err
			}

			show, err := svc.Events.Slideshow(ctx, mode, animation, interval)
			if err != nil {
				return fmt.Errorf("events.Slideshow: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "animation=%s interval=%dms\n", show.Animation, show.IntervalMs)

			var load func(string) error
			if verify {
				load = func(url string) error { return headBanner(ctx, url) }
			}

			playlist := event.NewPlaylist(show.Banners)

			for range playlist.Len() {
				url, ok := playlist.Next(load)
				if !ok {
					break
				}

				fmt.Fprintln(cmd.OutOrStdout(), url)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&playType, "type", value.PlayModeDP.String(), "play type: SP or DP")
	cmd.Flags().StringVar(&animation, "animation", event.DefaultAnimation, "transition name")
	cmd.Flags().IntVar(&interval, "interval", event.DefaultIntervalMs, "milliseconds per banner")
	cmd.Flags().BoolVar(&verify, "verify", false, "skip banners that do not answer a HEAD request")

	return cmd
}

func headBanner(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, bannerCheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	client := &http.Client{Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, httpx.WithUpstream("banners"))}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: %d", errBannerStatus, resp.StatusCode)
	}

	return nil
}
