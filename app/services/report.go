package services

import (
	"fmt"
	"io"
	"student-dashboard/app/models"
	"time"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Summary"

// WriteReport writes dash's cards to w as an XLSX workbook.
func WriteReport(w io.Writer, dash *models.Dashboard, profile models.Profile, generated time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := [][]interface{}{
		{"Student Management System Report"},
		{"Generated", generated.UTC().Format(time.RFC3339)},
		{"Prepared for", fmt.Sprintf("%s (%s)", profile.Name, profile.Role.Title())},
	}
	for i, row := range header {
		if err := setRow(f, i+1, row); err != nil {
			return err
		}
	}

	const tableStart = 5
	if err := setRow(f, tableStart, []interface{}{"Metric", "Value", "Detail"}); err != nil {
		return err
	}
	for i, card := range dash.Cards {
		if err := setRow(f, tableStart+1+i, []interface{}{card.Title, card.Value, card.Description}); err != nil {
			return err
		}
	}
	if dash.Degraded {
		note := []interface{}{"Note", "Some statistics could not be loaded and are shown as zero."}
		if err := setRow(f, tableStart+2+len(dash.Cards), note); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	if err := f.SetCellStyle(reportSheet, "A1", "A1", bold); err != nil {
		return fmt.Errorf("style title: %w", err)
	}
	if err := f.SetCellStyle(reportSheet, "A5", "C5", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if err := f.SetColWidth(reportSheet, "A", "A", 24); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(reportSheet, "C", "C", 40); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(reportSheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
