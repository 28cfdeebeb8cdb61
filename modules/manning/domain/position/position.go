package position

import (
	"sort"
	"strings"
)

// Record is one row of the organizational position catalog. The code is the
// join key towards employees but is not unique on its own; uniqueness is the
// (code, rank) pair. Standard keeps the raw cell text: a number, an empty
// string, or the wildcard marker.
type Record struct {
	Code             string
	Name             string
	Rank             string
	Standard         string
	Grade            string
	DirectorateGroup string
	Directorate      string
	Division         string
	Department       string
	CostCenter       string
}

// Key returns the organizational path outermost-to-innermost.
func (r Record) Key() [5]string {
	return [5]string{r.DirectorateGroup, r.Directorate, r.Division, r.Department, r.CostCenter}
}

// Normalize returns a copy with the aggregation-canonical position code,
// trimmed rank, and trimmed organizational path components.
func (r Record) Normalize() Record {
	r.Code = NormalizeCode(r.Code)
	r.Rank = strings.TrimSpace(r.Rank)
	r.DirectorateGroup = strings.TrimSpace(r.DirectorateGroup)
	r.Directorate = strings.TrimSpace(r.Directorate)
	r.Division = strings.TrimSpace(r.Division)
	r.Department = strings.TrimSpace(r.Department)
	r.CostCenter = strings.TrimSpace(r.CostCenter)
	return r
}

// Sort orders records ascending by the catalog sort key
// (dirGroup, directorate, division, department, costCenter, code, rank).
// Empty components sort after non-empty ones at every position; full ties
// keep their input order.
func Sort(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return compare(records[i], records[j]) < 0
	})
}

func compare(a, b Record) int {
	ka, kb := a.Key(), b.Key()
	for i := range ka {
		if c := comparePart(ka[i], kb[i]); c != 0 {
			return c
		}
	}
	if c := comparePart(a.Code, b.Code); c != 0 {
		return c
	}
	return comparePart(a.Rank, b.Rank)
}

// comparePart orders strings ascending with empties last.
func comparePart(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	case a < b:
		return -1
	default:
		return 1
	}
}
