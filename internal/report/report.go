// Package report renders a keyword analysis as an Excel workbook.
package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
)

const (
	SheetSummary  = "Summary"
	SheetKeywords = "Keywords"
	SheetRoles    = "Roles"
	SheetJobMatch = "Job Match"
)

// Report is everything a workbook shows.
type Report struct {
	Title     string // shown in the Summary header; defaults to "Keyword Report"
	Generated time.Time
	Analysis  keywords.AnalysisResult
	Densities []keywords.DensityResult // one per top keyword, same order
}

// Build lays out the workbook. The Job Match sheet exists only when the
// analysis carries a comparison.
func Build(r Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	sheets := []sheetWriter{
		{SheetSummary, writeSummary},
		{SheetKeywords, writeKeywords},
		{SheetRoles, writeRoles},
	}
	if r.Analysis.Comparison != nil {
		sheets = append(sheets, sheetWriter{SheetJobMatch, writeJobMatch})
	}

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	for _, s := range sheets {
		if s.name != SheetSummary {
			if _, err := f.NewSheet(s.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("create sheet %s: %w", s.name, err)
			}
		}
		if err := s.write(f, st, r); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create %s sheet: %w", strings.ToLower(s.name), err)
		}
	}
	return f, nil
}

// Write renders r to w as xlsx.
func Write(w io.Writer, r Report) error {
	f, err := Build(r)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// Save renders r to path, adding the .xlsx extension when missing.
// It returns the path actually written.
func Save(path string, r Report) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	var buf bytes.Buffer
	if err := Write(&buf, r); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}
	return path, nil
}

type sheetWriter struct {
	name  string
	write func(*excelize.File, *styles, Report) error
}

type styles struct {
	header int
	label  int
	status map[keywords.DensityStatus]int
}

func newStyles(f *excelize.File) (*styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	label, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	st := &styles{header: header, label: label, status: map[keywords.DensityStatus]int{}}
	for status, color := range map[keywords.DensityStatus]string{
		keywords.DensityLow:  "FFF2CC",
		keywords.DensityGood: "C6EFCE",
		keywords.DensityHigh: "FFC7CE",
	} {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, err
		}
		st.status[status] = id
	}
	return st, nil
}

func cell(col string, row int) string { return fmt.Sprintf("%s%d", col, row) }

// writeRow sets values left to right starting at column A.
func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	start := cell("A", row)
	return f.SetSheetRow(sheet, start, &values)
}

func writeHeader(f *excelize.File, st *styles, sheet string, cols ...any) error {
	if err := writeRow(f, sheet, 1, cols...); err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(cols))
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", cell(last, 1), st.header)
}

func writeSummary(f *excelize.File, st *styles, r Report) error {
	const sheet = SheetSummary
	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "B", 90)

	title := r.Title
	if title == "" {
		title = "Keyword Report"
	}
	generated := r.Generated
	if generated.IsZero() {
		generated = time.Now()
	}

	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	f.MergeCell(sheet, "A1", "B1")
	f.SetCellStyle(sheet, "A1", "B1", st.header)

	a := r.Analysis
	rows := [][2]any{
		{"Generated:", generated.Format("2006-01-02 15:04:05")},
		{"Total words:", a.TotalWords},
		{"Unique keywords:", a.UniqueKeywords},
	}
	if len(a.RoleScores) > 0 {
		rows = append(rows, [2]any{"Best role:", fmt.Sprintf("%s (%d%%)", a.RoleScores[0].Role, a.RoleScores[0].Score)})
	}
	if a.Comparison != nil {
		rows = append(rows, [2]any{"Job match:", fmt.Sprintf("%d%%", a.Comparison.MatchPercentage)})
	}

	row := 3
	for _, kv := range rows {
		if err := writeRow(f, sheet, row, kv[0], kv[1]); err != nil {
			return err
		}
		f.SetCellStyle(sheet, cell("A", row), cell("A", row), st.label)
		row++
	}

	row++
	f.SetCellValue(sheet, cell("A", row), "Suggestions")
	f.MergeCell(sheet, cell("A", row), cell("B", row))
	f.SetCellStyle(sheet, cell("A", row), cell("B", row), st.header)
	row++
	for i, s := range a.Suggestions {
		if err := writeRow(f, sheet, row, i+1, s); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeKeywords(f *excelize.File, st *styles, r Report) error {
	const sheet = SheetKeywords
	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "D", 14)
	if err := writeHeader(f, st, sheet, "Keyword", "Count", "Density %", "Status"); err != nil {
		return err
	}

	densities := make(map[string]keywords.DensityResult, len(r.Densities))
	for _, d := range r.Densities {
		densities[keywords.Fold(d.Keyword)] = d
	}
	for i, kc := range r.Analysis.TopKeywords {
		row := i + 2
		d, ok := densities[kc.Keyword]
		if !ok {
			if err := writeRow(f, sheet, row, kc.Keyword, kc.Count); err != nil {
				return err
			}
			continue
		}
		if err := writeRow(f, sheet, row, kc.Keyword, kc.Count, math.Round(d.DensityPercent*100)/100, string(d.Status)); err != nil {
			return err
		}
		f.SetCellStyle(sheet, cell("D", row), cell("D", row), st.status[d.Status])
	}
	return nil
}

func writeRoles(f *excelize.File, st *styles, r Report) error {
	const sheet = SheetRoles
	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "B", "D", 12)
	if err := writeHeader(f, st, sheet, "Role", "Score %", "Matched", "Total"); err != nil {
		return err
	}
	for i, rs := range r.Analysis.RoleScores {
		if err := writeRow(f, sheet, i+2, rs.Role, rs.Score, rs.Matched, rs.Total); err != nil {
			return err
		}
	}
	return nil
}

func writeJobMatch(f *excelize.File, st *styles, r Report) error {
	const sheet = SheetJobMatch
	cmp := r.Analysis.Comparison
	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "D", 14)
	if err := writeHeader(f, st, sheet, "Keyword", "Importance", "In Resume", "Resume Count"); err != nil {
		return err
	}
	for i, m := range cmp.Matches {
		inResume := "no"
		if m.InResume {
			inResume = "yes"
		}
		if err := writeRow(f, sheet, i+2, m.Keyword, string(m.Importance), inResume, m.Count); err != nil {
			return err
		}
	}
	return nil
}
