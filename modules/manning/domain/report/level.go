// Package report defines the manning-table output contract: the four row
// kinds, the tri-state metric cells, and the breakdown counters. Rows are
// append-only; their emission order is part of the contract consumed by the
// spreadsheet renderer.
package report

// Level is one of the five nested organizational levels, outermost first.
type Level int

const (
	DirectorateGroup Level = iota
	Directorate
	Division
	Department
	CostCenter
)

// Levels returns all levels outermost-to-innermost.
func Levels() [5]Level {
	return [5]Level{DirectorateGroup, Directorate, Division, Department, CostCenter}
}

func (l Level) String() string {
	switch l {
	case DirectorateGroup:
		return "Directorate Group"
	case Directorate:
		return "Directorate"
	case Division:
		return "Division"
	case Department:
		return "Department"
	case CostCenter:
		return "Cost Center"
	}
	return "Unknown"
}

// HasBreakdown reports whether group closes at this level emit breakdown
// rows. Division and Cost Center never do.
func (l Level) HasBreakdown() bool {
	return l == Department || l == Directorate || l == DirectorateGroup
}
