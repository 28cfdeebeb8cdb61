package tabular

import (
	"github.com/dkusuma/manning/modules/manning/domain/position"
)

// Structural mapping (position catalog) column names.
const (
	ColCatPositionCode = "Position Code"
	ColCatPositionName = "Position Name"
	ColCatRank         = "Level/Pangkat"
	ColCatStandard     = "Standard"
	ColCatDirGroup     = "DepartmentGroup"
	ColCatDirectorate  = "Directorate"
	ColCatDivision     = "Division"
	ColCatDepartment   = "Department"
	ColCatCostCenter   = "CostCenter"
	ColCatGrade        = "Grade"
)

var catalogColumns = []string{
	ColCatPositionCode, ColCatPositionName, ColCatRank, ColCatStandard,
	ColCatDirGroup, ColCatDirectorate, ColCatDivision, ColCatDepartment,
	ColCatCostCenter, ColCatGrade,
}

// Catalog maps a structural-mapping table onto position records. Cells are
// kept raw; code canonicalization and rank trimming are applied downstream
// per normalization path.
func Catalog(t *Table) ([]position.Record, error) {
	if err := t.Require(catalogColumns...); err != nil {
		return nil, err
	}
	records := make([]position.Record, t.Len())
	for i := range records {
		records[i] = position.Record{
			Code:             t.Cell(i, ColCatPositionCode),
			Name:             t.Cell(i, ColCatPositionName),
			Rank:             t.Cell(i, ColCatRank),
			Standard:         t.Cell(i, ColCatStandard),
			Grade:            t.Cell(i, ColCatGrade),
			DirectorateGroup: t.Cell(i, ColCatDirGroup),
			Directorate:      t.Cell(i, ColCatDirectorate),
			Division:         t.Cell(i, ColCatDivision),
			Department:       t.Cell(i, ColCatDepartment),
			CostCenter:       t.Cell(i, ColCatCostCenter),
		}
	}
	return records, nil
}
