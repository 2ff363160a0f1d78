package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"djtracker/internal/domain/service/rank"
	"djtracker/internal/domain/value"
)

func rankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank <letter> <score> <notes>",
		Short: "Show the rate and the distance to the nearest rank boundary",
		Args:  cobra.ExactArgs(3), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("score: %w", err)
			}

			notes, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("notes: %w", err)
			}

			e := rank.Evaluate(strings.ToUpper(args[0]), score, notes)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", e.Rank, e.RatePercent, e.Detail)

			return nil
		},
	}
}

func lampCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lamp <code>...",
		Short: "Decode clear lamp codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newTable("", "Code", "Lamp", "Ordinal")

			for _, code := range args {
				info := value.DecodeLamp(code)
				t.addRow(value.NormalizeLampCode(code), info.Label, strconv.Itoa(info.Ordinal))
			}

			return t.render(cmd.OutOrStdout())
		},
	}
}
