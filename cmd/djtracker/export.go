package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"djtracker/internal/domain/service/export"
	"djtracker/internal/domain/value"
)

func exportCmd() *cobra.Command {
	var (
		playType string
		filters  map[string]string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Show an INFINITAS export CSV with footer counts",
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

			view, err := svc.Exports.View(ctx, mode, filters)
			if err != nil {
				return fmt.Errorf("exports.View: %w", err)
			}

			t := newTable(fmt.Sprintf("%s export (%d)", mode, len(view.Rows)), view.Columns...)

			for _, row := range view.Rows {
				cells := make([]string, len(view.Columns))
				for i, column := range view.Columns {
					cells[i] = row.Values[column]
				}

				t.addRow(cells...)
			}

			if err = t.render(cmd.OutOrStdout()); err != nil {
				return err
			}

			for _, column := range export.DropdownColumns() {
				counts, ok := view.Footer[column]
				if !ok {
					continue
				}

				parts := make([]string, 0, len(counts))
				for _, c := range counts {
					parts = append(parts, c.Value+": "+strconv.Itoa(c.Count))
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", column, strings.Join(parts, "  "))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&playType, "type", value.PlayModeDP.String(), "play type: SP or DP")
	cmd.Flags().StringToStringVar(&filters, "filter", nil, "exact value filter, e.g. --filter 難易度=ANOTHER")

	return cmd
}
