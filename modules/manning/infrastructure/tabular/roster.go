package tabular

import (
	"github.com/dkusuma/manning/modules/manning/domain/employee"
)

// Master roster column names. These are the exact headers of the upstream
// HR exports and are part of the input contract.
const (
	ColRegNo          = "Reg. No."
	ColName           = "Nama"
	ColPositionCode   = "Position Code"
	ColOrgDescription = "Organization Descrip"
	ColRank           = "Pangkat/Level"
	ColGrade          = "Grade"
	ColStartDate      = "Tgl. Mulai Bekerja"
	ColStatus         = "Status"
	ColEducation      = "Pendidikan"
	ColRetirementDate = "Tgl. Pensiun"
)

var rosterColumns = []string{
	ColRegNo, ColName, ColPositionCode, ColOrgDescription, ColRank,
	ColGrade, ColStartDate, ColStatus, ColEducation, ColRetirementDate,
}

// Roster maps a master-data table onto raw roster rows. Missing required
// columns abort with ErrMissingColumn; no partial output.
func Roster(t *Table) ([]employee.RosterRow, error) {
	if err := t.Require(rosterColumns...); err != nil {
		return nil, err
	}
	rows := make([]employee.RosterRow, t.Len())
	for i := range rows {
		rows[i] = employee.RosterRow{
			RegNo:          t.Cell(i, ColRegNo),
			Name:           t.Cell(i, ColName),
			PositionCode:   t.Cell(i, ColPositionCode),
			OrgDescription: t.Cell(i, ColOrgDescription),
			Rank:           t.Cell(i, ColRank),
			Grade:          t.Cell(i, ColGrade),
			StartDate:      t.Cell(i, ColStartDate),
			Status:         t.Cell(i, ColStatus),
			Education:      t.Cell(i, ColEducation),
			RetirementDate: t.Cell(i, ColRetirementDate),
		}
	}
	return rows, nil
}

// CleanedRecords maps a previously exported cleaned-data table back onto
// employee records, so a saved cleaned workbook can feed table generation
// directly. Only the columns the aggregation consumes are required.
func CleanedRecords(t *Table) ([]employee.Record, error) {
	if err := t.Require(ColName, ColRegNo, ColPositionCode, ColRank, ColStatus, ColEducation, ColStartDate, ColRetirementDate); err != nil {
		return nil, err
	}
	records := make([]employee.Record, t.Len())
	for i := range records {
		records[i] = employee.Record{
			Name:           t.Cell(i, ColName),
			RegNo:          t.Cell(i, ColRegNo),
			PositionCode:   t.Cell(i, ColPositionCode),
			Rank:           t.Cell(i, ColRank),
			Status:         t.Cell(i, ColStatus),
			Education:      t.Cell(i, ColEducation),
			StartDate:      t.Cell(i, ColStartDate),
			RetirementDate: t.Cell(i, ColRetirementDate),
		}
	}
	return records, nil
}
