package score

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"djtracker/internal/domain"
	"djtracker/internal/domain/entity"
	"djtracker/pkg/errcodes"
)

type SortColumn string

const (
	SortLevel  SortColumn = "level"
	SortTitle  SortColumn = "title"
	SortScore  SortColumn = "score"
	SortRank   SortColumn = "rank"
	SortRate   SortColumn = "rate"
	SortDetail SortColumn = "detail"
	SortLamp   SortColumn = "lamp"
	SortMiss   SortColumn = "miss"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

var nonNumeric = regexp.MustCompile(`[^\d.-]`) //nolint:gochecknoglobals

func ParseSortColumn(s string) (SortColumn, error) {
	if s == "" {
		return SortTitle, nil
	}

	switch c := SortColumn(strings.ToLower(s)); c {
	case SortLevel, SortTitle, SortScore, SortRank, SortRate, SortDetail, SortLamp, SortMiss:
		return c, nil
	default:
		return "", domain.NewInvalidError(errcodes.InvalidSortColumn, "unknown sort column "+strconv.Quote(s))
	}
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(s)); o {
	case "":
		return OrderAsc, nil
	case OrderAsc, OrderDesc:
		return o, nil
	default:
		return "", domain.NewInvalidError(errcodes.InvalidSortOrder, "sort order must be asc or desc")
	}
}

// SortRows sorts in place and keeps the relative order of equal rows.
func SortRows(rows []entity.ScoreRow, column SortColumn, order SortOrder) error {
	if column == "" {
		column = SortTitle
	}

	compare, err := comparator(column)
	if err != nil {
		return err
	}

	if order == OrderDesc {
		slices.SortStableFunc(rows, func(a, b entity.ScoreRow) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(rows, compare)
	}

	return nil
}

func comparator(column SortColumn) (func(a, b entity.ScoreRow) int, error) {
	switch column {
	case SortLevel:
		return func(a, b entity.ScoreRow) int {
			return cmp.Compare(parseInt(LevelOf(a)), parseInt(LevelOf(b)))
		}, nil
	case SortTitle:
		return func(a, b entity.ScoreRow) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}, nil
	case SortRate:
		return func(a, b entity.ScoreRow) int {
			return cmp.Compare(parseRate(a.RatePercent), parseRate(b.RatePercent))
		}, nil
	case SortLamp:
		return func(a, b entity.ScoreRow) int {
			return cmp.Compare(a.Lamp.Ordinal, b.Lamp.Ordinal)
		}, nil
	case SortScore:
		return byText(func(r entity.ScoreRow) string { return r.ScoreText }), nil
	case SortRank:
		return byText(func(r entity.ScoreRow) string { return r.Rank }), nil
	case SortDetail:
		return byText(func(r entity.ScoreRow) string { return r.Detail }), nil
	case SortMiss:
		return byText(func(r entity.ScoreRow) string {
			if r.MissCount == nil {
				return ""
			}

			return strconv.Itoa(*r.MissCount)
		}), nil
	default:
		return nil, domain.NewInvalidError(errcodes.InvalidSortColumn, "unknown sort column "+strconv.Quote(string(column)))
	}
}

// byText compares numerically when both cells carry a number, otherwise as
// text. "(AAA - 78)" compares as -78.
func byText(cell func(entity.ScoreRow) string) func(a, b entity.ScoreRow) int {
	return func(a, b entity.ScoreRow) int {
		at, bt := cell(a), cell(b)

		an, aok := numericPart(at)
		bn, bok := numericPart(bt)

		if aok && bok {
			return cmp.Compare(an, bn)
		}

		return strings.Compare(at, bt)
	}
}

func numericPart(s string) (float64, bool) {
	v, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(s, ""), 64)
	if err != nil || v == 0 {
		return 0, false
	}

	return v, true
}

func parseRate(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0
	}

	return v
}
