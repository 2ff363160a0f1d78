package entity

import (
	"strings"
	"time"
)

// Table is a parsed delimited file. Columns are addressed by header name.
type Table struct {
	Header       []string
	Rows         [][]string
	LastModified time.Time
}

// Column returns the index of the named header, or -1.
func (t Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}

	return -1
}

// Cell returns the trimmed value of the named column, or "" when the column
// or the cell is missing.
func (t Table) Cell(row []string, name string) string {
	return CellAt(row, t.Column(name))
}

func CellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
