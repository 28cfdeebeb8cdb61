package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dkusuma/manning/modules/manning/domain/employee"
	"github.com/dkusuma/manning/modules/manning/domain/position"
)

// CleanerService filters the raw roster down to valid employees and resolves
// each one to a position's organizational attributes. It holds no state
// between runs.
type CleanerService struct {
	log logrus.FieldLogger
}

func NewCleanerService(log logrus.FieldLogger) *CleanerService {
	return &CleanerService{log: log}
}

// Clean keeps roster rows whose registration number and name are non-empty
// after trimming and are neither the zero nor the NaN placeholder, then
// resolves organizational attributes through the first catalog row matching
// the cleaned position code. Output order follows input order. A code with
// no catalog match resolves to explicit empty strings.
func (s *CleanerService) Clean(ctx context.Context, roster []employee.RosterRow, catalog []position.Record) ([]employee.Record, error) {
	byCode := firstByCode(catalog)

	records := make([]employee.Record, 0, len(roster))
	misses := 0
	for _, row := range roster {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		regNo := strings.TrimSpace(row.RegNo)
		name := strings.TrimSpace(row.Name)
		if !validRegNo(regNo) || !validName(name) {
			continue
		}

		code := position.CleanCode(row.PositionCode)
		rec := employee.Record{
			Name:           name,
			RegNo:          regNo,
			PositionCode:   code,
			OrgDescription: row.OrgDescription,
			Rank:           row.Rank,
			Grade:          row.Grade,
			StartDate:      row.StartDate,
			Status:         row.Status,
			Education:      row.Education,
			RetirementDate: row.RetirementDate,
		}

		if code != "" {
			if match, ok := byCode[code]; ok {
				rec.PositionName = match.Name
				rec.StructuralRank = match.Rank
				rec.Directorate = match.Directorate
				rec.Division = match.Division
				rec.Department = match.Department
				rec.CostCenter = match.CostCenter
				rec.DirectorateGroup = match.DirectorateGroup
			} else {
				misses++
				s.log.WithFields(logrus.Fields{
					"reg_no":        regNo,
					"position_code": code,
				}).Debug("position code has no catalog match")
			}
		}
		records = append(records, rec)
	}

	if misses > 0 {
		s.log.WithField("count", misses).Warn("employees resolved with empty organizational fields")
	}
	return records, nil
}

// firstByCode indexes the catalog by trimmed position code, first row wins.
// Rank does not disambiguate at the cleaning stage.
func firstByCode(catalog []position.Record) map[string]position.Record {
	byCode := make(map[string]position.Record, len(catalog))
	for _, rec := range catalog {
		code := trimCell(rec.Code)
		if code == "" {
			continue
		}
		if _, ok := byCode[code]; !ok {
			byCode[code] = rec
		}
	}
	return byCode
}

// trimCell trims a raw cell and maps the NaN placeholder to empty.
func trimCell(s string) string {
	t := strings.TrimSpace(s)
	if position.IsNA(t) {
		return ""
	}
	return t
}

func validRegNo(s string) bool {
	return s != "" && s != "0" && !position.IsNA(s)
}

func validName(s string) bool {
	return s != "" && !position.IsNA(s)
}
