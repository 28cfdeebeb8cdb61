// Package employee holds the roster-side data model: the raw rows read from
// the master roster and the cleaned records the aggregator matches against
// catalog positions.
package employee

// RosterRow is one raw row of the master roster, untouched apart from being
// lifted out of the source table.
type RosterRow struct {
	RegNo          string
	Name           string
	PositionCode   string
	OrgDescription string
	Rank           string
	Grade          string
	StartDate      string
	Status         string
	Education      string
	RetirementDate string
}

// Record is a cleaned employee. Organizational fields are resolved from the
// position catalog at cleaning time and are explicit empty strings when the
// position code is empty or found no match. Records are immutable once built.
type Record struct {
	Name           string
	RegNo          string
	PositionCode   string
	OrgDescription string
	PositionName   string
	Rank           string
	StructuralRank string
	Grade          string
	StartDate      string
	Status         string
	Education      string
	RetirementDate string

	Directorate      string
	Division         string
	Department       string
	CostCenter       string
	DirectorateGroup string
}
