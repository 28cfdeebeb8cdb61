package report

import "fmt"

// NoIncumbent is the employee-name marker on a position row that matched no
// employees.
const NoIncumbent = "–"

// Kind tags the variant of a Row.
type Kind int

const (
	KindHeader Kind = iota
	KindData
	KindTotal
	KindBreakdown
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "HEADER"
	case KindData:
		return "DATA"
	case KindTotal:
		return "TOTAL"
	case KindBreakdown:
		return "BREAKDOWN"
	}
	return "UNKNOWN"
}

// Row is one line of the manning table. It is a flat tagged variant: only the
// fields relevant to its Kind are set, everything else stays at its zero
// value (blank). Rows are never mutated after emission.
type Row struct {
	Kind  Kind
	Level Level  // HEADER, TOTAL, BREAKDOWN
	Group string // group name for HEADER and TOTAL
	Text  string // display text for BREAKDOWN

	PositionCode string
	PositionName string
	Grade        string
	Rank         string
	Standard     Metric
	Actual       Metric
	Vacant       Metric
	Excess       Metric

	EmployeeName   string
	RegNo          string
	Status         string
	Education      string
	StartDate      string
	RetirementDate string
}

// Label is the display text the renderer puts in the leading column for
// non-data rows.
func (r Row) Label() string {
	switch r.Kind {
	case KindHeader:
		return fmt.Sprintf("%s: %s", r.Level, r.Group)
	case KindTotal:
		return fmt.Sprintf("TOTAL for %s: %s", r.Level, r.Group)
	case KindBreakdown:
		return r.Text
	}
	return ""
}

// HeaderRow marks entry into a new organizational group. An empty group name
// is a legal literal group value and is rendered as such.
func HeaderRow(level Level, group string) Row {
	return Row{Kind: KindHeader, Level: level, Group: group}
}

// TotalRow is the rollup emitted when a group closes. The standard sum
// renders blank when zero; the other sums always render.
func TotalRow(level Level, group string, standard, actual, vacant, excess float64) Row {
	std := Blank()
	if standard != 0 {
		std = Number(standard)
	}
	return Row{
		Kind:     KindTotal,
		Level:    level,
		Group:    group,
		Standard: std,
		Actual:   Number(actual),
		Vacant:   Number(vacant),
		Excess:   Number(excess),
	}
}

// BreakdownRows packages the rank and status frequency summaries for a
// closing group: always the rank row first, then the status row. When both
// counters are empty no rows are emitted at all; a single empty counter
// renders as "-".
func BreakdownRows(level Level, ranks, statuses *Counter) []Row {
	if ranks.Empty() && statuses.Empty() {
		return nil
	}
	return []Row{
		{Kind: KindBreakdown, Level: level, Text: "Pangkat breakdown: " + ranks.Summary()},
		{Kind: KindBreakdown, Level: level, Text: "Status breakdown: " + statuses.Summary()},
	}
}
