package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRankCommand(t *testing.T) {
	rq := require.New(t)

	out, err := run(t, "rank", "aa", "1600", "1000")
	rq.NoError(err)
	rq.Equal("AA 80.00% (AA + 45)\n", out)

	_, err = run(t, "rank", "AA", "many", "1000")
	rq.Error(err)

	_, err = run(t, "rank", "AA")
	rq.Error(err)
}

func TestLampCommand(t *testing.T) {
	rq := require.New(t)

	out, err := run(t, "lamp", "fc", "ＥＸ", "ZZ")
	rq.NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	rq.Len(lines, 5)
	rq.Contains(lines[0], "Code")
	rq.Contains(lines[2], "FULLCOMBO")
	rq.Contains(lines[3], "EX-HARD")
	rq.Contains(lines[4], "ZZ")
}

func TestTableRender(t *testing.T) {
	rq := require.New(t)

	tbl := newTable("Title", "A", "Long header")
	tbl.addRow("wide cell", "x")
	tbl.addRow("y")

	var out bytes.Buffer
	rq.NoError(tbl.render(&out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	rq.Len(lines, 5)
	rq.Contains(lines[0], "Title")
	rq.Contains(lines[1], "Long header")
	rq.Contains(lines[3], "wide cell")
	rq.Equal(len([]rune(lines[1])), len([]rune(lines[3])), "columns are padded to the same width")
}

func TestCountRow(t *testing.T) {
	rq := require.New(t)

	rq.Equal(
		[]string{"☆12", "1", "0", "1"},
		countRow("☆12", []string{"AAA", "AA"}, map[string]int{"AAA": 1}, 1),
	)
}
