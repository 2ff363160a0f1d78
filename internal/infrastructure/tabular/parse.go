package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strings"

	"djtracker/internal/domain/entity"
)

const (
	bom            = "﻿"
	maxLineBytes   = 1 << 20
	tabDelimiter   = '\t'
	commaDelimiter = ','
)

// DelimiterFor picks tab for .tsv names and comma for everything else. A
// query string on a URL is ignored.
func DelimiterFor(name string) rune {
	name, _, _ = strings.Cut(name, "?")

	if strings.EqualFold(path.Ext(name), ".tsv") {
		return tabDelimiter
	}

	return commaDelimiter
}

// Parse reads a header line followed by data lines. Blank lines are skipped
// and ragged lines kept; missing cells read as empty through entity.Table.
func Parse(r io.Reader, delimiter rune) (entity.Table, error) {
	var (
		records [][]string
		err     error
	)

	if delimiter == tabDelimiter {
		records, err = readTSV(r)
	} else {
		records, err = readCSV(r, delimiter)
	}

	if err != nil {
		return entity.Table{}, err
	}

	if len(records) == 0 {
		return entity.Table{}, nil
	}

	header := make([]string, len(records[0]))
	for i, cell := range records[0] {
		header[i] = cleanHeader(cell)
	}

	return entity.Table{
		Header: header,
		Rows:   records[1:],
	}, nil
}

// readTSV splits on tabs without quote handling: song titles carry bare
// double quotes.
func readTSV(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records [][]string

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		records = append(records, strings.Split(line, "\t"))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan: %w", err)
	}

	return records, nil
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv.ReadAll: %w", err)
	}

	return records, nil
}

func cleanHeader(cell string) string {
	return strings.TrimSpace(strings.TrimPrefix(cell, bom))
}
