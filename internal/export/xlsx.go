// Package export writes summary reports to spreadsheet files.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SheetOverview = "Overview"
	SheetDaily    = "Daily"
	SheetWeekly   = "Weekly"
	SheetMonthly  = "Monthly"
)

var bucketHeader = []string{"Start", "End", "Minutes", "Duration"}

// Meta is printed on the overview sheet.
type Meta struct {
	Subject     string
	Status      domain.Status
	GeneratedAt time.Time
}

// WriteSummaryXLSX renders report as a workbook with one sheet per
// granularity and writes it to w.
func WriteSummaryXLSX(w io.Writer, meta Meta, report domain.SummaryReport) error {
	f, err := buildWorkbook(meta, report)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveSummaryXLSX is WriteSummaryXLSX to a file path.
func SaveSummaryXLSX(path string, meta Meta, report domain.SummaryReport) error {
	f, err := buildWorkbook(meta, report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func buildWorkbook(meta Meta, report domain.SummaryReport) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	// The default sheet becomes the overview so no empty Sheet1 is left.
	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		f.Close()
		return nil, fmt.Errorf("renaming default sheet: %w", err)
	}
	overview := [][]any{
		{"Subject", meta.Subject},
		{"Status", string(meta.Status)},
		{"Generated", meta.GeneratedAt.UTC().Format(time.RFC3339)},
		{"Total minutes", int64(report.Total / time.Minute)},
		{"Total", formatDuration(report.Total)},
	}
	for i, row := range overview {
		if err := setRow(f, SheetOverview, i+1, row); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := f.SetColWidth(SheetOverview, "A", "B", 22); err != nil {
		f.Close()
		return nil, fmt.Errorf("setting column width: %w", err)
	}

	sheets := []struct {
		name    string
		layout  string
		buckets []domain.BucketTotal
	}{
		{SheetDaily, time.DateOnly, report.Daily},
		{SheetWeekly, time.DateOnly, report.Weekly},
		{SheetMonthly, "2006-01", report.Monthly},
	}
	for _, s := range sheets {
		if err := writeBucketSheet(f, s.name, s.layout, s.buckets, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeBucketSheet(f *excelize.File, sheet, layout string, buckets []domain.BucketTotal, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}

	header := make([]any, len(bucketHeader))
	for i, h := range bucketHeader {
		header[i] = h
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(bucketHeader), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling header of %s: %w", sheet, err)
	}

	for i, b := range buckets {
		row := []any{
			b.Start.Format(layout),
			b.End.Format(layout),
			int64(b.Total / time.Minute),
			formatDuration(b.Total),
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "D", 14); err != nil {
		return fmt.Errorf("setting column width on %s: %w", sheet, err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header of %s: %w", sheet, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	return fmt.Sprintf("%dh%02dm", int(d/time.Hour), int(d%time.Hour/time.Minute))
}
