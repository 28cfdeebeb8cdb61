package services

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/dkusuma/manning/modules/manning/domain/employee"
	"github.com/dkusuma/manning/modules/manning/domain/position"
	"github.com/dkusuma/manning/modules/manning/domain/report"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func catRow(group, dir, div, dept, cc, code, rank, std string) position.Record {
	return position.Record{
		Code:             code,
		Name:             "Position " + code,
		Rank:             rank,
		Standard:         std,
		Grade:            "G1",
		DirectorateGroup: group,
		Directorate:      dir,
		Division:         div,
		Department:       dept,
		CostCenter:       cc,
	}
}

func empRec(reg, name, code, rank string) employee.Record {
	return employee.Record{
		Name:         name,
		RegNo:        reg,
		PositionCode: code,
		Rank:         rank,
		Status:       "Permanent",
		Education:    "S1",
	}
}

func generate(t *testing.T, employees []employee.Record, catalog []position.Record) []report.Row {
	t.Helper()
	rows, err := NewManningTableService(testLogger()).Generate(context.Background(), employees, catalog)
	require.NoError(t, err)
	return rows
}

func rowsOfKind(rows []report.Row, kind report.Kind) []report.Row {
	var out []report.Row
	for _, r := range rows {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

func TestGenerateBasicScenario(t *testing.T) {
	catalog := []position.Record{
		catRow("G", "D", "V", "X", "C", "001", "A", "2"),
	}
	employees := []employee.Record{
		empRec("E1", "Alice", "001", "A"),
		empRec("E2", "Bob", "001", "A"),
	}
	rows := generate(t, employees, catalog)

	headers := rowsOfKind(rows, report.KindHeader)
	require.Len(t, headers, 5)
	require.Equal(t, "Directorate Group: G", headers[0].Label())
	require.Equal(t, "Cost Center: C", headers[4].Label())

	data := rowsOfKind(rows, report.KindData)
	require.Len(t, data, 2)
	require.Equal(t, "001", data[0].PositionCode)
	require.Equal(t, "2", data[0].Standard.String())
	require.Equal(t, "2", data[0].Actual.String())
	require.Equal(t, "0", data[0].Vacant.String())
	require.Equal(t, "0", data[0].Excess.String())
	require.Equal(t, "Alice", data[0].EmployeeName)

	// Continuation row carries only employee fields.
	require.Equal(t, "Bob", data[1].EmployeeName)
	require.Equal(t, "E2", data[1].RegNo)
	require.Empty(t, data[1].PositionCode)
	require.True(t, data[1].Standard.IsBlank())
	require.True(t, data[1].Actual.IsBlank())

	totals := rowsOfKind(rows, report.KindTotal)
	require.Len(t, totals, 5)
	require.Equal(t, "TOTAL for Cost Center: C", totals[0].Label())
	require.Equal(t, "2", totals[0].Standard.String())
	require.Equal(t, "2", totals[0].Actual.String())

	breakdowns := rowsOfKind(rows, report.KindBreakdown)
	require.Len(t, breakdowns, 6) // Department, Directorate, Directorate Group
	require.Equal(t, "Pangkat breakdown: A (2)", breakdowns[0].Text)
	require.Equal(t, "Status breakdown: Permanent (2)", breakdowns[1].Text)
}

func TestGenerateBreakdownPlacement(t *testing.T) {
	catalog := []position.Record{
		catRow("G", "D", "V", "X", "C", "001", "A", "2"),
	}
	rows := generate(t, []employee.Record{empRec("E1", "Alice", "001", "A")}, catalog)

	for i, r := range rows {
		if r.Kind != report.KindTotal || !r.Level.HasBreakdown() {
			continue
		}
		require.Greater(t, len(rows), i+2, "total row for %s must be followed by two breakdown rows", r.Level)
		require.Equal(t, report.KindBreakdown, rows[i+1].Kind)
		require.Equal(t, report.KindBreakdown, rows[i+2].Kind)
		require.Contains(t, rows[i+1].Text, "Pangkat breakdown")
		require.Contains(t, rows[i+2].Text, "Status breakdown")
	}
	for _, r := range rowsOfKind(rows, report.KindBreakdown) {
		require.NotEqual(t, report.Division, r.Level)
		require.NotEqual(t, report.CostCenter, r.Level)
	}
}

func TestGenerateWildcardStandard(t *testing.T) {
	catalog := []position.Record{
		catRow("G", "D", "V", "X", "C", "001", "A", ""),
	}
	employees := []employee.Record{
		empRec("E1", "Alice", "001", "A"),
		empRec("E2", "Bob", "001", "A"),
		empRec("E3", "Carol", "001", "A"),
	}
	rows := generate(t, employees, catalog)

	data := rowsOfKind(rows, report.KindData)
	require.Equal(t, "*", data[0].Standard.String())
	require.Equal(t, "3", data[0].Actual.String())
	require.Equal(t, "*", data[0].Vacant.String())
	require.Equal(t, "*", data[0].Excess.String())

	// Wildcard rows contribute nothing to standard/vacant/excess sums.
	total := rowsOfKind(rows, report.KindTotal)[0]
	require.True(t, total.Standard.IsBlank())
	require.Equal(t, "3", total.Actual.String())
	require.Equal(t, "0", total.Vacant.String())
	require.Equal(t, "0", total.Excess.String())
}

func TestGenerateUnparsableStandardDegradesToWildcard(t *testing.T) {
	catalog := []position.Record{
		catRow("G", "D", "V", "X", "C", "001", "A", "n/a"),
	}
	rows := generate(t, nil, catalog)

	data := rowsOfKind(rows, report.KindData)[0]
	require.Equal(t, "*", data.Standard.String())
	require.Equal(t, "*", data.Vacant.String())
	require.Equal(t, "*", data.Excess.String())
}

func TestGenerateZeroStandardAsymmetry(t *testing.T) {
	catalog := []position.Record{
		catRow("G", "D", "V", "X", "C", "001", "A", "0"),
	}
	rows := generate(t, []employee.Record{empRec("E1", "Alice", "001", "A")}, catalog)

	data := rowsOfKind(rows, report.KindData)[0]
	require.Equal(t, "0", data.Standard.String())
	require.Equal(t, "1", data.Excess.String())

	// A zero standard still produces excess but never joins the standard sum.
	total := rowsOfKind(rows, report.KindTotal)[0]
	require.True(t, total.Standard.IsBlank())
	require.Equal(t, "1", total.Excess.String())
}

func TestGenerateNoIncumbentMarker(t *testing.T) {
	catalog := []position.Record{
		catRow("G", "D", "V", "X", "C", "001", "A", "1"),
	}
	rows := generate(t, nil, catalog)

	data := rowsOfKind(rows, report.KindData)
	require.Len(t, data, 1)
	require.Equal(t, report.NoIncumbent, data[0].EmployeeName)
	require.Empty(t, data[0].RegNo)
	require.Equal(t, "0", data[0].Actual.String())
	require.Equal(t, "1", data[0].Vacant.String())
}

func TestGenerateCostCenterCycleKeepsDepartmentAccruing(t *testing.T) {
	catalog := []position.Record{
		catRow("G", "D", "V", "X", "C1", "001", "A", "1"),
		catRow("G", "D", "V", "X", "C2", "002", "A", "1"),
	}
	rows := generate(t, nil, catalog)

	// Between the two data rows only a Cost Center total/header cycle fires.
	var midTotals, midHeaders []report.Row
	seenFirstData := false
	for _, r := range rows {
		if r.Kind == report.KindData {
			if seenFirstData {
				break
			}
			seenFirstData = true
			continue
		}
		if !seenFirstData {
			continue
		}
		switch r.Kind {
		case report.KindTotal:
			midTotals = append(midTotals, r)
		case report.KindHeader:
			midHeaders = append(midHeaders, r)
		}
	}
	require.Len(t, midTotals, 1)
	require.Equal(t, report.CostCenter, midTotals[0].Level)
	require.Len(t, midHeaders, 1)
	require.Equal(t, "Cost Center: C2", midHeaders[0].Label())

	// Department accumulated across both cost centers.
	for _, total := range rowsOfKind(rows, report.KindTotal) {
		if total.Level == report.Department {
			require.Equal(t, "2", total.Standard.String())
		}
	}
}

func TestGenerateOuterChangeRestartsInnerGroups(t *testing.T) {
	// Same literal cost center on both sides of a directorate change: the
	// cost center still closes and its header re-emits under the new
	// directorate.
	catalog := []position.Record{
		catRow("G", "D1", "V", "X", "S", "001", "A", "1"),
		catRow("G", "D2", "V", "X", "S", "002", "A", "1"),
	}
	rows := generate(t, nil, catalog)

	var ccHeaders, ccTotals int
	for _, r := range rows {
		if r.Level != report.CostCenter {
			continue
		}
		switch r.Kind {
		case report.KindHeader:
			ccHeaders++
		case report.KindTotal:
			ccTotals++
		}
	}
	require.Equal(t, 2, ccHeaders)
	require.Equal(t, 2, ccTotals)

	// Closes run innermost-first before any header of the new group.
	var sawDirectorateTotal bool
	for _, r := range rows {
		if r.Kind == report.KindTotal && r.Level == report.Directorate && r.Group == "D1" {
			sawDirectorateTotal = true
		}
		if r.Kind == report.KindHeader && r.Group == "D2" {
			require.True(t, sawDirectorateTotal, "D1 must close before D2 opens")
			break
		}
	}
}

func TestGenerateAssignsEachEmployeeAtMostOnce(t *testing.T) {
	catalog := []position.Record{
		catRow("G", "D", "V", "X", "C1", "001", "A", "1"),
		catRow("G", "D", "V", "X", "C2", "001", "A", "1"),
	}
	rows := generate(t, []employee.Record{empRec("E1", "Alice", "001", "A")}, catalog)

	data := rowsOfKind(rows, report.KindData)
	require.Len(t, data, 2)
	require.Equal(t, "Alice", data[0].EmployeeName)
	require.Equal(t, "1", data[0].Actual.String())
	require.Equal(t, report.NoIncumbent, data[1].EmployeeName)
	require.Equal(t, "0", data[1].Actual.String())

	seen := map[string]int{}
	for _, r := range data {
		if r.RegNo != "" {
			seen[r.RegNo]++
		}
	}
	require.Equal(t, map[string]int{"E1": 1}, seen)
}

func TestGenerateRankDisambiguatesMatch(t *testing.T) {
	catalog := []position.Record{
		catRow("G", "D", "V", "X", "C", "001", "A", "1"),
		catRow("G", "D", "V", "X", "C", "001", "B", "1"),
	}
	employees := []employee.Record{
		empRec("E1", "Alice", "001", "B"),
	}
	rows := generate(t, employees, catalog)

	data := rowsOfKind(rows, report.KindData)
	require.Len(t, data, 2)
	require.Equal(t, report.NoIncumbent, data[0].EmployeeName) // rank A row
	require.Equal(t, "Alice", data[1].EmployeeName)            // rank B row
}

func TestGenerateMatchesOnNormalizedCode(t *testing.T) {
	// The cleaner preserves leading zeros, the aggregation path strips them
	// on decimal-suffixed values; both sides meet on the normalized key.
	catalog := []position.Record{
		catRow("G", "D", "V", "X", "C", "0012.0", "A", "1"),
	}
	employees := []employee.Record{
		empRec("E1", "Alice", "12", "A"),
	}
	rows := generate(t, employees, catalog)

	data := rowsOfKind(rows, report.KindData)
	require.Len(t, data, 1)
	require.Equal(t, "Alice", data[0].EmployeeName)
	require.Equal(t, "12", data[0].PositionCode)
}

func TestGenerateEmptyGroupValuesSkipBreakdowns(t *testing.T) {
	// Unassigned department: the employee still counts towards actuals but
	// never enters the department breakdown.
	catalog := []position.Record{
		catRow("G", "D", "V", "", "C", "001", "A", "1"),
	}
	rows := generate(t, []employee.Record{empRec("E1", "Alice", "001", "A")}, catalog)

	for _, r := range rowsOfKind(rows, report.KindBreakdown) {
		require.NotEqual(t, report.Department, r.Level)
	}
	for _, r := range rowsOfKind(rows, report.KindTotal) {
		require.NotEqual(t, report.Department, r.Level)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	catalog := []position.Record{
		catRow("G", "D1", "V", "X", "C1", "001", "A", "2"),
		catRow("G", "D1", "V", "X", "C2", "002", "A", ""),
		catRow("G", "D2", "V2", "Y", "C3", "003", "B", "1"),
	}
	employees := []employee.Record{
		empRec("E1", "Alice", "001", "A"),
		empRec("E2", "Bob", "002", "A"),
		empRec("E3", "Carol", "003", "B"),
	}

	svc := NewManningTableService(testLogger())
	first, err := svc.Generate(context.Background(), employees, catalog)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), employees, catalog)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGenerateDoesNotMutateInputs(t *testing.T) {
	catalog := []position.Record{
		catRow("G", "D", "V", "X", "C", " 001 ", " A ", "1"),
	}
	before := catalog[0]
	_ = generate(t, nil, catalog)
	require.Equal(t, before, catalog[0])
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewManningTableService(testLogger()).Generate(ctx, nil, []position.Record{
		catRow("G", "D", "V", "X", "C", "001", "A", "1"),
	})
	require.ErrorIs(t, err, context.Canceled)
}
