// output.go
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ichijohodaka/ohmcalc/internal/batch"
	"github.com/ichijohodaka/ohmcalc/internal/quantity"
)

func fmt4(x float64) string { return fmt.Sprintf("%.4g", x) }

// 種類ごとに意味のある列
var kindKeys = map[batch.Kind][]string{
	batch.KindConductor: {"resistance", "resistivity", "length", "diameter", "area"},
	batch.KindCircuit:   {"voltage", "current", "resistance"},
}

// columnValue は列キーに対応する値（元単位）
func columnValue(o batch.Outcome, key string) (float64, bool) {
	if o.Status == batch.StatusError {
		return 0, false
	}
	var p *float64
	if o.Problem.Kind == batch.KindCircuit {
		r := o.Circuit.Record
		switch key {
		case "voltage":
			p = r.Voltage
		case "current":
			p = r.Current
		case "resistance":
			p = r.Resistance
		}
	} else {
		r := o.Conductor.Record
		switch key {
		case "resistance":
			p = r.Resistance
		case "resistivity":
			p = r.Resistivity
		case "length":
			p = r.Length
		case "diameter":
			if r.Geometry != nil {
				p = r.Geometry.Diameter
			}
		case "area":
			if r.Geometry != nil {
				p = r.Geometry.Area
			}
		}
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// 表示用：列の接頭辞で単位変換してから文字列化する（未知は空欄）
func fmtColumn(col ColumnSpec, o batch.Outcome) string {
	v, ok := columnValue(o, col.Key)
	if !ok {
		return ""
	}
	q := quantity.Quantity{Value: v, Scale: quantity.None}.In(quantity.ParsePrefix(col.Prefix))
	return fmt4(q.Value)
}

func columnsFor(cols []ColumnSpec, kind batch.Kind) []ColumnSpec {
	out := make([]ColumnSpec, 0, len(cols))
	for _, c := range cols {
		for _, k := range kindKeys[kind] {
			if c.Key == k {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func PrintSummary(w io.Writer, sum batch.Summary) {
	fmt.Fprintf(w, "\nrun=%s\n", sum.RunID)
	fmt.Fprintf(w, "problems=%d  solved=%d  unsolved=%d  errors=%d\n",
		sum.Total(), sum.Solved, sum.Unsolved, sum.Errors)
	fmt.Fprintf(w, "solved_ratio=%s  unsolved_ratio=%s  error_ratio=%s\n\n",
		fmt4(sum.Ratio(batch.StatusSolved)),
		fmt4(sum.Ratio(batch.StatusUnsolved)),
		fmt4(sum.Ratio(batch.StatusError)))
}

// PrintResultTable は結果を罫線付きの表で出す。maxPrint > 0 なら先頭 maxPrint 件だけ。
func PrintResultTable(w io.Writer, title string, cols []ColumnSpec, list []batch.Outcome, maxPrint int) {
	fmt.Fprintln(w, title)
	if len(list) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	shown := list
	if maxPrint > 0 && len(shown) > maxPrint {
		shown = shown[:maxPrint]
	}

	// ヘッダ（No + Line + Kind + 列 + Solved + Status）
	headers := make([]string, 0, len(cols)+5)
	headers = append(headers, "No", "Line", "Kind")
	for _, c := range cols {
		headers = append(headers, c.Label)
	}
	headers = append(headers, "Solved", "Status")

	// 各セルの文字列を先に作る
	rows := make([][]string, len(shown))
	for i, o := range shown {
		row := make([]string, 0, len(headers))
		row = append(row, fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", o.Problem.Line), string(o.Problem.Kind))
		for _, c := range cols {
			row = append(row, fmtColumn(c, o))
		}
		row = append(row, o.Solved(), o.Status.String())
		rows[i] = row
	}

	// 列幅を決定（ヘッダ or 中身の最大）。Ω や ² があるので rune 数で数える。
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runeLen(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if n := runeLen(cell); n > widths[j] {
				widths[j] = n
			}
		}
	}

	printLine := func() {
		fmt.Fprint(w, "+")
		for _, wd := range widths {
			fmt.Fprint(w, strings.Repeat("-", wd+2)+"+")
		}
		fmt.Fprintln(w)
	}

	// ヘッダ行
	printLine()
	fmt.Fprint(w, "|")
	for i, h := range headers {
		fmt.Fprintf(w, " %s |", padRight(h, widths[i]))
	}
	fmt.Fprintln(w)
	printLine()

	// データ行（右寄せ）
	for _, row := range rows {
		fmt.Fprint(w, "|")
		for j, cell := range row {
			fmt.Fprintf(w, " %s |", padLeft(cell, widths[j]))
		}
		fmt.Fprintln(w)
	}
	printLine()

	if len(shown) < len(list) {
		fmt.Fprintf(w, "(%d more not shown)\n", len(list)-len(shown))
	}

	// 文章とエラー
	for i, o := range shown {
		if o.Err != nil {
			fmt.Fprintf(w, "%d: line %d: %v\n", i+1, o.Problem.Line, o.Err)
			continue
		}
		fmt.Fprintf(w, "%d: %s\n", i+1, o.Sentence)
	}
	fmt.Fprintln(w)
}

func runeLen(s string) int { return len([]rune(s)) }

func padRight(s string, w int) string { return s + strings.Repeat(" ", w-runeLen(s)) }

func padLeft(s string, w int) string { return strings.Repeat(" ", w-runeLen(s)) + s }

func SaveToXLSX(filename string, cols []ColumnSpec, sum batch.Summary) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	// 最初のエラーだけ覚えておく
	set := func(sheet, cell string, v any) {
		if err == nil {
			err = f.SetCellValue(sheet, cell, v)
		}
	}
	at := func(col, row int) string {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		return cell
	}

	// Summary
	summary := "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return err
	}

	set(summary, "A1", "Type")
	set(summary, "B1", "Count")
	set(summary, "C1", "Ratio")

	set(summary, "A2", "Solved")
	set(summary, "B2", sum.Solved)
	set(summary, "C2", sum.Ratio(batch.StatusSolved))

	set(summary, "A3", "Unsolved")
	set(summary, "B3", sum.Unsolved)
	set(summary, "C3", sum.Ratio(batch.StatusUnsolved))

	set(summary, "A4", "Error")
	set(summary, "B4", sum.Errors)
	set(summary, "C4", sum.Ratio(batch.StatusError))

	set(summary, "A5", "ALL")
	set(summary, "B5", sum.Total())
	set(summary, "C5", 1.0)

	set(summary, "A7", "Run")
	set(summary, "B7", sum.RunID)
	set(summary, "A8", "Started")
	set(summary, "B8", sum.Started)

	// Conductor / Circuit
	writeList := func(sheet string, kind batch.Kind) {
		if err != nil {
			return
		}
		if _, err = f.NewSheet(sheet); err != nil {
			return
		}
		kcols := columnsFor(cols, kind)

		headers := []string{"No", "Line"}
		for _, c := range kcols {
			headers = append(headers, c.Key)
		}
		headers = append(headers, "Solved", "Status", "Result")
		for i, h := range headers {
			set(sheet, at(i+1, 1), h)
		}

		row := 2
		for _, o := range sum.Outcomes {
			if o.Problem.Kind != kind {
				continue
			}
			col := 1
			set(sheet, at(col, row), row-1)
			col++
			set(sheet, at(col, row), o.Problem.Line)
			col++
			for _, c := range kcols {
				if v, ok := columnValue(o, c.Key); ok {
					set(sheet, at(col, row), v) // xlsx は元単位で保存
				}
				col++
			}
			set(sheet, at(col, row), o.Solved())
			col++
			set(sheet, at(col, row), o.Status.String())
			col++
			if o.Err != nil {
				set(sheet, at(col, row), o.Err.Error())
			} else {
				set(sheet, at(col, row), o.Sentence)
			}
			row++
		}
	}

	writeList("Conductor", batch.KindConductor)
	writeList("Circuit", batch.KindCircuit)
	if err != nil {
		return err
	}

	return f.SaveAs(filename)
}

// list を TSV で保存する（cols の列順で出力）
func SaveListToTSV(filename string, cols []ColumnSpec, list []batch.Outcome) error {
	if filename == "" {
		return nil
	}

	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := csv.NewWriter(fp)
	w.Comma = '\t'

	header := []string{"line", "kind"}
	for _, c := range cols {
		header = append(header, c.Label)
	}
	header = append(header, "solved", "status", "result")
	if err := w.Write(header); err != nil {
		return err
	}

	for _, o := range list {
		row := make([]string, 0, len(header))
		row = append(row, fmt.Sprintf("%d", o.Problem.Line), string(o.Problem.Kind))
		for _, c := range cols {
			row = append(row, fmtColumn(c, o))
		}
		result := o.Sentence
		if o.Err != nil {
			result = o.Err.Error()
		}
		row = append(row, o.Solved(), o.Status.String(), result)
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
