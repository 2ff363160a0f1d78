package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"djtracker/internal/domain/service/score"
	"djtracker/internal/domain/value"
)

func scoresCmd() *cobra.Command {
	var (
		mode   string
		level  string
		column string
		order  string
	)

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "List tracker scores with rank distance and lamp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			playMode, err := value.ParsePlayMode(mode)
			if err != nil {
				return fmt.Errorf("--mode: %w", err)
			}

			sortColumn, err := score.ParseSortColumn(column)
			if err != nil {
				return fmt.Errorf("--sort: %w", err)
			}

			sortOrder, err := score.ParseSortOrder(order)
			if err != nil {
				return fmt.Errorf("--order: %w", err)
			}

			if level == "all" {
				level = ""
			}

			ctx, svc, err := services(cmd)
			if err != nil {
				return err
			}

			rows, err := svc.Scores.Rows(ctx, score.Query{
				Mode:   playMode,
				Level:  level,
				Column: sortColumn,
				Order:  sortOrder,
			})
			if err != nil {
				return fmt.Errorf("scores.Rows: %w", err)
			}

			t := newTable(
				fmt.Sprintf("%s scores (%d)", playMode, len(rows)),
				"Level", "Title", "Chart", "Score", "Rank", "Rate", "Detail", "Lamp", "Miss",
			)

			for _, row := range rows {
				miss := ""
				if row.MissCount != nil {
					miss = strconv.Itoa(*row.MissCount)
				}

				title := row.Title
				if row.DJPointsMatched {
					title += " *"
				}

				t.addRow(
					row.Level, title, row.ChartLabel, row.ScoreText,
					row.Rank, row.RatePercent, row.Detail, row.Lamp.Label, miss,
				)
			}

			return t.render(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&mode, "mode", value.PlayModeDP.String(), "play mode: SP or DP")
	cmd.Flags().StringVar(&level, "level", score.DefaultLevel, `level to show, "all" for every level`)
	cmd.Flags().StringVar(&column, "sort", string(score.SortTitle), "sort column: level, title, score, rank, rate, detail, lamp, miss")
	cmd.Flags().StringVar(&order, "order", string(score.OrderAsc), "sort order: asc or desc")

	return cmd
}

func statsCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count charts per level by rank and by lamp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			playMode, err := value.ParsePlayMode(mode)
			if err != nil {
				return fmt.Errorf("--mode: %w", err)
			}

			ctx, svc, err := services(cmd)
			if err != nil {
				return err
			}

			summary, err := svc.Scores.Stats(ctx, playMode)
			if err != nil {
				return fmt.Errorf("scores.Stats: %w", err)
			}

			ranks := newTable("Ranks", append(append([]string{"Level"}, summary.RankOrder...), "Total")...)
			lamps := newTable("Lamps", append(append([]string{"Level"}, summary.LampOrder...), "Total")...)

			for _, l := range summary.Levels {
				ranks.addRow(countRow("☆"+l.Level, summary.RankOrder, l.Ranks, l.RankTotal)...)
				lamps.addRow(countRow("☆"+l.Level, summary.LampOrder, l.Lamps, l.LampTotal)...)
			}

			ranks.addRow(countRow("Total", summary.RankOrder, summary.RankTotals, summary.GrandTotal)...)
			lamps.addRow(countRow("Total", summary.LampOrder, summary.LampTotals, summary.GrandTotal)...)

			if err = ranks.render(cmd.OutOrStdout()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout())

			return lamps.render(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&mode, "mode", value.PlayModeDP.String(), "play mode: SP or DP")

	return cmd
}

func countRow(label string, keys []string, counts map[string]int, total int) []string {
	row := make([]string, 0, len(keys)+2) //nolint:mnd
	row = append(row, label)

	for _, k := range keys {
		row = append(row, strconv.Itoa(counts[k]))
	}

	return append(row, strconv.Itoa(total))
}

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print the dog tag with DJ points totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, svc, err := services(cmd)
			if err != nil {
				return err
			}

			tag, err := svc.Scores.DogTag(ctx)
			if err != nil {
				return fmt.Errorf("scores.DogTag: %w", err)
			}

			for _, line := range score.DogTagLines(tag) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}
}
