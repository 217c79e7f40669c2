package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ichijohodaka/ohmcalc/internal/batch"
)

func sampleSummary(t *testing.T) batch.Summary {
	t.Helper()
	ps, err := batch.ParseProblems(strings.NewReader(
		"conductor: 100m; 2.5mm2; copper\ncircuit: 2a; 5ohm\ncircuit: 12v\ncable: 1m; 2mm; xyz\n",
	), ";")
	require.NoError(t, err)
	sum, err := batch.NewRunner(2, nil).Run(context.Background(), ps)
	require.NoError(t, err)
	return sum
}

func TestFmtColumnPrefix(t *testing.T) {
	sum := sampleSummary(t)
	circ := sum.Outcomes[1]

	assert.Equal(t, "2", fmtColumn(ColumnSpec{Key: "current"}, circ))
	assert.Equal(t, "2000", fmtColumn(ColumnSpec{Key: "current", Prefix: "m"}, circ))
	assert.Equal(t, "", fmtColumn(ColumnSpec{Key: "length"}, circ))
	assert.Equal(t, "0.6884", fmtColumn(ColumnSpec{Key: "resistance"}, sum.Outcomes[0]))
	assert.Equal(t, "", fmtColumn(ColumnSpec{Key: "length"}, sum.Outcomes[3]))
}

func TestPrintResultTable(t *testing.T) {
	sum := sampleSummary(t)
	var buf bytes.Buffer
	PrintResultTable(&buf, "=== results ===", DefaultConfig().Columns, sum.Outcomes, 0)
	out := buf.String()

	assert.Contains(t, out, "=== results ===")
	assert.Contains(t, out, "| No | Line | Kind")
	assert.Contains(t, out, "R [Ω]")
	assert.Contains(t, out, "0.6884")
	assert.Contains(t, out, "1: The resistance of the 100 m long cable")
	assert.Contains(t, out, "3: not solvable: 1 of 3")
	assert.Contains(t, out, `4: line 4: token 3 "xyz"`)

	// 罫線の幅は全行で同じ（rune 数）
	var widths []int
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "+") || strings.HasPrefix(l, "|") {
			widths = append(widths, runeLen(l))
		}
	}
	require.NotEmpty(t, widths)
	for _, w := range widths {
		assert.Equal(t, widths[0], w)
	}
}

func TestPrintResultTableLimit(t *testing.T) {
	sum := sampleSummary(t)
	var buf bytes.Buffer
	PrintResultTable(&buf, "t", DefaultConfig().Columns, sum.Outcomes, 1)
	assert.Contains(t, buf.String(), "(3 more not shown)")

	buf.Reset()
	PrintResultTable(&buf, "t", nil, nil, 0)
	assert.Contains(t, buf.String(), "(none)")
}

func TestPrintSummary(t *testing.T) {
	sum := sampleSummary(t)
	var buf bytes.Buffer
	PrintSummary(&buf, sum)
	assert.Contains(t, buf.String(), "problems=4  solved=2  unsolved=1  errors=1")
	assert.Contains(t, buf.String(), "solved_ratio=0.5")
}

func TestSaveToXLSX(t *testing.T) {
	sum := sampleSummary(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, SaveToXLSX(path, DefaultConfig().Columns, sum))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Conductor", "Circuit"}, f.GetSheetList())

	v, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
	v, err = f.GetCellValue("Summary", "B7")
	require.NoError(t, err)
	assert.Equal(t, sum.RunID, v)

	rows, err := f.GetRows("Conductor")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"No", "Line", "resistance", "resistivity", "length", "diameter", "area", "Solved", "Status", "Result"}, rows[0])
	assert.Equal(t, "resistance", rows[1][7])
	assert.Equal(t, "error", rows[2][8])

	rows, err = f.GetRows("Circuit")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"No", "Line", "resistance", "voltage", "current", "Solved", "Status", "Result"}, rows[0])
	assert.Equal(t, "10", rows[1][3])
	assert.Equal(t, "unsolved", rows[2][6])
}

func TestSaveListToTSV(t *testing.T) {
	sum := sampleSummary(t)
	assert.NoError(t, SaveListToTSV("", nil, sum.Outcomes))

	path := filepath.Join(t.TempDir(), "out.tsv")
	cols := []ColumnSpec{{Key: "current", Label: "I [mA]", Prefix: "m"}}
	require.NoError(t, SaveListToTSV(path, cols, sum.Outcomes))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "line\tkind\tI [mA]\tsolved\tstatus\tresult", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "2\tcircuit\t2000\tvoltage\tsolved\t"), lines[2])
}
