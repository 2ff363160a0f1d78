package export

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"djtracker/internal/domain"
	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/pkg/errcodes"
)

const (
	ColumnLevel      = "レベル"
	ColumnTitle      = "曲名"
	ColumnDifficulty = "難易度"
	ColumnClearType  = "クリアタイプ"
	ColumnDJLevel    = "DJレベル"
	ColumnScore      = "スコア"
	ColumnMissCount  = "ミスカウント"
)

//nolint:gochecknoglobals
var (
	excludedColumns = []string{"最終プレイ日時", "プレイ回数", "バージョン"}
	leadingColumns  = []string{ColumnLevel, ColumnTitle, ColumnDifficulty, ColumnClearType, ColumnDJLevel, ColumnScore, ColumnMissCount}
	dropdownColumns = []string{ColumnLevel, ColumnDifficulty, ColumnClearType, ColumnDJLevel}
	footerColumns   = []string{ColumnClearType, ColumnDJLevel}

	difficultyClasses = map[string]string{
		"BEGINNER":    "diff-beginner",
		"NORMAL":      "diff-normal",
		"HYPER":       "diff-hyper",
		"ANOTHER":     "diff-another",
		"LEGGENDARIA": "diff-legg",
	}
)

type exportSource interface {
	Export(ctx context.Context, mode value.PlayMode) (entity.Table, error)
}

type Service struct {
	source exportSource
}

func NewService(source exportSource) *Service {
	return &Service{source: source}
}

// View loads the mode's export and applies the dropdown filters, which are
// keyed by column name.
func (s *Service) View(ctx context.Context, mode value.PlayMode, filters map[string]string) (entity.ExportTable, error) {
	table, err := s.source.Export(ctx, mode)
	if err != nil {
		return entity.ExportTable{}, domain.WrapError(
			fmt.Errorf("source.Export: %w", err),
			errcodes.ExportUnavailable,
			"export unavailable",
		)
	}

	if len(table.Header) == 0 {
		return entity.ExportTable{}, domain.NewError(errcodes.EmptyExport, "export has no header")
	}

	for column := range filters {
		if !IsDropdownColumn(column) {
			return entity.ExportTable{}, domain.NewInvalidError(errcodes.ColumnNotFound, "column "+column+" cannot be filtered")
		}
	}

	return View(table, filters), nil
}

// IsDropdownColumn reports whether column offers a value filter.
func IsDropdownColumn(column string) bool {
	return slices.Contains(dropdownColumns, column)
}

// DropdownColumns lists the filterable columns in display order.
func DropdownColumns() []string {
	return slices.Clone(dropdownColumns)
}

func View(table entity.Table, filters map[string]string) entity.ExportTable {
	columns := Columns(table.Header)

	all := make([]entity.ExportRow, 0, len(table.Rows))

	for _, line := range table.Rows {
		values := make(map[string]string, len(columns))
		nonEmpty := false

		for _, column := range columns {
			v := table.Cell(line, column)
			values[column] = v

			if v != "" {
				nonEmpty = true
			}
		}

		if !nonEmpty {
			continue
		}

		all = append(all, entity.ExportRow{
			Class:  RowClass(values[ColumnDifficulty]),
			Values: values,
		})
	}

	rows := make([]entity.ExportRow, 0, len(all))

	for _, row := range all {
		if matches(row, filters) {
			rows = append(rows, row)
		}
	}

	return entity.ExportTable{
		Columns:  columns,
		Rows:     rows,
		Footer:   footer(columns, rows),
		Dropdown: dropdown(columns, all),
	}
}

// Columns drops the excluded columns and moves the leading ones to the
// front. The rest keep source order.
func Columns(header []string) []string {
	var kept []string

	for _, h := range header {
		h = strings.TrimSpace(h)
		if h == "" || slices.Contains(excludedColumns, h) || slices.Contains(kept, h) {
			continue
		}

		kept = append(kept, h)
	}

	columns := make([]string, 0, len(kept))

	for _, c := range leadingColumns {
		if slices.Contains(kept, c) {
			columns = append(columns, c)
		}
	}

	for _, c := range kept {
		if !slices.Contains(leadingColumns, c) {
			columns = append(columns, c)
		}
	}

	return columns
}

func RowClass(difficulty string) string {
	return difficultyClasses[strings.ToUpper(strings.TrimSpace(difficulty))]
}

func matches(row entity.ExportRow, filters map[string]string) bool {
	for column, want := range filters {
		if want == "" {
			continue
		}

		if row.Values[column] != strings.TrimSpace(want) {
			return false
		}
	}

	return true
}

func footer(columns []string, rows []entity.ExportRow) map[string][]entity.Count {
	out := make(map[string][]entity.Count)

	for _, column := range footerColumns {
		if !slices.Contains(columns, column) {
			continue
		}

		var counts []entity.Count

		for _, row := range rows {
			v := row.Values[column]
			if v == "" {
				continue
			}

			idx := slices.IndexFunc(counts, func(c entity.Count) bool { return c.Value == v })
			if idx == -1 {
				counts = append(counts, entity.Count{Value: v, Count: 1})
			} else {
				counts[idx].Count++
			}
		}

		out[column] = counts
	}

	return out
}

func dropdown(columns []string, rows []entity.ExportRow) map[string][]string {
	out := make(map[string][]string)

	for _, column := range dropdownColumns {
		if !slices.Contains(columns, column) {
			continue
		}

		var options []string

		for _, row := range rows {
			if v := row.Values[column]; v != "" && !slices.Contains(options, v) {
				options = append(options, v)
			}
		}

		slices.Sort(options)
		out[column] = options
	}

	return out
}
