// Package export writes the bar bending schedule to tabular formats
// (XLSX and CSV) for site and billing use. The column layout mirrors
// the schedule entities one to one.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/bbs"
)

var markHeader = []string{
	"Mark", "Zone", "Shape", "Dia (mm)", "Count",
	"Cut Length (mm)", "Total Length (mm)", "Unit Wt (kg/m)", "Total Wt (kg)", "Remarks",
}

func markRow(m bbs.Mark) []interface{} {
	return []interface{}{
		m.ID, m.Zone, m.ShapeCode, m.DiameterMM, m.Count,
		m.CutLengthMM, m.TotalLengthMM,
		round3(m.UnitWeightKgPerM), round3(m.TotalWeightKg), m.Remarks,
	}
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}

// WriteXLSX saves the schedule as a workbook with one sheet of bar
// marks, one of the cutting plan and a summary sheet.
func WriteXLSX(s *bbs.Schedule, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const marksSheet = "Bar Bending Schedule"
	f.SetSheetName(f.GetSheetName(0), marksSheet)

	if err := writeRows(f, marksSheet, markTable(s)); err != nil {
		return err
	}

	const planSheet = "Cutting Plan"
	if _, err := f.NewSheet(planSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := writeRows(f, planSheet, planTable(s)); err != nil {
		return err
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := writeRows(f, summarySheet, summaryTable(s)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save schedule workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				return fmt.Errorf("set cell %s: %w", ref, err)
			}
		}
	}
	return nil
}

func markTable(s *bbs.Schedule) [][]interface{} {
	rows := make([][]interface{}, 0, len(s.Marks)+1)
	header := make([]interface{}, len(markHeader))
	for i, h := range markHeader {
		header[i] = h
	}
	rows = append(rows, header)
	for _, m := range s.Marks {
		rows = append(rows, markRow(m))
	}
	return rows
}

func planTable(s *bbs.Schedule) [][]interface{} {
	rows := [][]interface{}{
		{"Stock Bar", "Stock Length (mm)", "Pieces", "Used (mm)", "Offcut (mm)"},
	}
	for i, a := range s.Plan.Assignments {
		pieces := ""
		var used float64
		for k, p := range a.Pieces {
			if k > 0 {
				pieces += ", "
			}
			pieces += fmt.Sprintf("%s×%.0f", p.MarkID, p.LengthMM)
			used += p.LengthMM
		}
		rows = append(rows, []interface{}{i + 1, a.StockLengthMM, pieces, used, a.OffcutMM})
	}
	return rows
}

func summaryTable(s *bbs.Schedule) [][]interface{} {
	return [][]interface{}{
		{"Total bar marks", s.Summary.TotalMarks},
		{"Total bars", s.Summary.TotalBars},
		{"Total weight (kg)", round3(s.Summary.TotalWeightKg)},
		{"Total cut length (mm)", s.Summary.TotalCutLengthMM},
		{"Stock bars used", s.Summary.StockBarsUsed},
		{"Total waste (mm)", s.Summary.TotalWasteMM},
		{"Utilization (%)", round3(s.Summary.UtilizationPercent)},
		{"Unfabricable marks", s.Summary.UnfabricableMarks},
	}
}

// WriteCSV streams the bar-mark table as CSV.
func WriteCSV(s *bbs.Schedule, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(markHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, m := range s.Marks {
		rec := []string{
			m.ID, m.Zone, m.ShapeCode,
			strconv.FormatFloat(m.DiameterMM, 'f', 0, 64),
			strconv.Itoa(m.Count),
			strconv.FormatFloat(m.CutLengthMM, 'f', 0, 64),
			strconv.FormatFloat(m.TotalLengthMM, 'f', 0, 64),
			strconv.FormatFloat(m.UnitWeightKgPerM, 'f', 3, 64),
			strconv.FormatFloat(m.TotalWeightKg, 'f', 3, 64),
			m.Remarks,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
