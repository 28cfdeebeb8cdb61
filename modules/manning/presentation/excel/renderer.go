// Package excel renders the manning-table row sequence and the cleaned-data
// records into styled XLSX workbooks. It consumes the report rows strictly
// in order and never reorders or mutates them.
package excel

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"

	"github.com/dkusuma/manning/modules/manning/domain/employee"
	"github.com/dkusuma/manning/modules/manning/domain/report"
)

const (
	manningSheet = "ManningTable"
	cleanedSheet = "CleanedData"

	// Row layout of the manning sheet: merged title on row 1, column
	// headers on row 4, data from row 5.
	titleRow     = 1
	columnRow    = 4
	firstDataRow = 5
)

var manningColumns = []string{
	"Position Code", "Position Description", "Grade", "Pangkat/Level",
	"Standard", "Actual", "Vacant", "Excess",
	"Name", "Reg. No.", "Status", "Education", "Start Date", "Retirement Date",
}

var cleanedColumns = []string{
	"Nama", "Reg. No.", "Position Code", "Organization Description",
	"Position Description", "Pangkat/Level", "Pangkat/Level Struktural",
	"Position Grade", "Tgl. Mulai Bekerja", "Status", "Pendidikan",
	"Tgl. Pensiun", "Directorate", "Division", "Department", "Cost Center",
	"Directorate Group",
}

// WriteManningTable renders the ordered row sequence into a styled workbook.
// The caller owns the returned file and must Close it.
func WriteManningTable(rows []report.Row) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", manningSheet); err != nil {
		return nil, err
	}
	styles, err := newStyleSet(f)
	if err != nil {
		return nil, errors.Wrap(err, "build styles")
	}
	if err := writeTitle(f, styles); err != nil {
		return nil, err
	}
	if err := writeColumnHeaders(f, styles); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(f, styles, firstDataRow+i, i, row); err != nil {
			return nil, errors.Wrapf(err, "render row %d", i)
		}
	}
	if err := setColumnWidths(f); err != nil {
		return nil, err
	}
	return f, nil
}

func writeTitle(f *excelize.File, styles *styleSet) error {
	if err := f.MergeCell(manningSheet, cell(1, titleRow), cell(len(manningColumns), titleRow)); err != nil {
		return err
	}
	if err := f.SetCellStr(manningSheet, cell(1, titleRow), "MANNING TABLE"); err != nil {
		return err
	}
	if err := f.SetCellStyle(manningSheet, cell(1, titleRow), cell(len(manningColumns), titleRow), styles.title); err != nil {
		return err
	}
	return f.SetRowHeight(manningSheet, titleRow, 25)
}

func writeColumnHeaders(f *excelize.File, styles *styleSet) error {
	for i, name := range manningColumns {
		if err := f.SetCellStr(manningSheet, cell(i+1, columnRow), name); err != nil {
			return err
		}
	}
	return f.SetCellStyle(manningSheet, cell(1, columnRow), cell(len(manningColumns), columnRow), styles.columnHead)
}

func writeRow(f *excelize.File, styles *styleSet, excelRow, seq int, row report.Row) error {
	switch row.Kind {
	case report.KindHeader:
		return writeMergedLabel(f, excelRow, row.Label(), styles.headers[row.Level])
	case report.KindBreakdown:
		return writeMergedLabel(f, excelRow, row.Label(), styles.breakdown)
	case report.KindTotal:
		return writeTotal(f, styles, excelRow, row)
	case report.KindData:
		return writeData(f, styles, excelRow, seq, row)
	}
	return fmt.Errorf("unknown row kind %d", row.Kind)
}

func writeMergedLabel(f *excelize.File, excelRow int, label string, style int) error {
	first, last := cell(1, excelRow), cell(len(manningColumns), excelRow)
	if err := f.MergeCell(manningSheet, first, last); err != nil {
		return err
	}
	if err := f.SetCellStr(manningSheet, first, label); err != nil {
		return err
	}
	return f.SetCellStyle(manningSheet, first, last, style)
}

func writeTotal(f *excelize.File, styles *styleSet, excelRow int, row report.Row) error {
	if err := f.SetCellStr(manningSheet, cell(1, excelRow), row.Label()); err != nil {
		return err
	}
	if err := f.SetCellStyle(manningSheet, cell(1, excelRow), cell(len(manningColumns), excelRow), styles.totalText[row.Level]); err != nil {
		return err
	}
	for i, m := range []report.Metric{row.Standard, row.Actual, row.Vacant, row.Excess} {
		if err := setMetric(f, cell(5+i, excelRow), m); err != nil {
			return err
		}
	}
	// The numeric block gets a thick top rule on top of the level fill.
	return f.SetCellStyle(manningSheet, cell(5, excelRow), cell(8, excelRow), styles.totalSums[row.Level])
}

func writeData(f *excelize.File, styles *styleSet, excelRow, seq int, row report.Row) error {
	text := []struct {
		col   int
		value string
	}{
		{1, row.PositionCode}, {2, row.PositionName}, {3, row.Grade}, {4, row.Rank},
		{9, row.EmployeeName}, {10, row.RegNo}, {11, row.Status}, {12, row.Education},
		{13, row.StartDate}, {14, row.RetirementDate},
	}
	for _, t := range text {
		if t.value == "" {
			continue
		}
		if err := f.SetCellStr(manningSheet, cell(t.col, excelRow), t.value); err != nil {
			return err
		}
	}
	for i, m := range []report.Metric{row.Standard, row.Actual, row.Vacant, row.Excess} {
		if err := setMetric(f, cell(5+i, excelRow), m); err != nil {
			return err
		}
	}

	leftStyle, centerStyle := styles.data, styles.dataCenter
	if seq%2 == 0 {
		leftStyle, centerStyle = styles.dataStripe, styles.dataStripeCenter
	}
	if err := f.SetCellStyle(manningSheet, cell(1, excelRow), cell(2, excelRow), leftStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(manningSheet, cell(3, excelRow), cell(8, excelRow), centerStyle); err != nil {
		return err
	}
	return f.SetCellStyle(manningSheet, cell(9, excelRow), cell(14, excelRow), leftStyle)
}

func setMetric(f *excelize.File, ref string, m report.Metric) error {
	switch {
	case m.IsNumber():
		return f.SetCellValue(manningSheet, ref, m.Value())
	case m.IsWildcard():
		return f.SetCellStr(manningSheet, ref, report.WildcardMarker)
	}
	return nil
}

func setColumnWidths(f *excelize.File) error {
	widths := []struct {
		first, last string
		width       float64
	}{
		{"A", "A", 14}, {"B", "B", 30}, {"C", "D", 10}, {"E", "H", 9}, {"I", "N", 16},
	}
	for _, w := range widths {
		if err := f.SetColWidth(manningSheet, w.first, w.last, w.width); err != nil {
			return err
		}
	}
	return nil
}

// WriteCleanedData renders cleaned employee records into a single-sheet
// workbook. The position-code column is forced to text format so codes with
// leading zeros survive a spreadsheet round-trip.
func WriteCleanedData(records []employee.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", cleanedSheet); err != nil {
		return nil, err
	}
	for i, name := range cleanedColumns {
		if err := f.SetCellStr(cleanedSheet, cell(i+1, 1), name); err != nil {
			return nil, err
		}
	}
	for i, rec := range records {
		values := []string{
			rec.Name, rec.RegNo, rec.PositionCode, rec.OrgDescription,
			rec.PositionName, rec.Rank, rec.StructuralRank, rec.Grade,
			rec.StartDate, rec.Status, rec.Education, rec.RetirementDate,
			rec.Directorate, rec.Division, rec.Department, rec.CostCenter,
			rec.DirectorateGroup,
		}
		for col, v := range values {
			if err := f.SetCellStr(cleanedSheet, cell(col+1, i+2), v); err != nil {
				return nil, err
			}
		}
	}
	if len(records) > 0 {
		textStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtText})
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(cleanedSheet, "C2", fmt.Sprintf("C%d", len(records)+1), textStyle); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func cell(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}
