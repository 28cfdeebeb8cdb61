package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dkusuma/manning/modules/manning/domain/employee"
	"github.com/dkusuma/manning/modules/manning/domain/position"
	"github.com/dkusuma/manning/modules/manning/domain/report"
)

// ManningTableService builds the hierarchical manning table: a single pass
// over the sorted catalog that detects group boundaries across the five
// organizational levels, matches employees to positions at most once, and
// emits the ordered row sequence.
//
// Generate is a pure function of its inputs. Every call runs on a fresh
// aggregator, so a service instance may be shared across requests.
type ManningTableService struct {
	log logrus.FieldLogger
}

func NewManningTableService(log logrus.FieldLogger) *ManningTableService {
	return &ManningTableService{log: log}
}

// Generate normalizes and sorts the catalog, then aggregates it against the
// cleaned employee records. The input slices are not mutated. Row order in
// the returned sequence is the external contract: boundary closes
// (innermost first), then boundary opens (outermost first), then data rows,
// entirely determined by catalog sort order.
func (s *ManningTableService) Generate(ctx context.Context, employees []employee.Record, catalog []position.Record) ([]report.Row, error) {
	sorted := make([]position.Record, len(catalog))
	for i, rec := range catalog {
		sorted[i] = rec.Normalize()
	}
	position.Sort(sorted)

	agg := newAggregator(s.log, employees)
	for _, rec := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		agg.consume(rec)
	}
	agg.flush()
	return agg.rows, nil
}

// matchKey joins employees to catalog rows. Both sides carry the
// aggregation-canonical position code and a trimmed rank.
type matchKey struct {
	code string
	rank string
}

// levelState tracks one organizational level: the currently open group name,
// the four running counters, and (for the three breakdown-bearing levels)
// the rank and status frequency tables.
type levelState struct {
	level    report.Level
	current  string
	standard float64
	actual   float64
	vacant   float64
	excess   float64
	ranks    *report.Counter
	statuses *report.Counter
}

func (ls *levelState) reset() {
	ls.standard, ls.actual, ls.vacant, ls.excess = 0, 0, 0, 0
	if ls.ranks != nil {
		ls.ranks = report.NewCounter()
		ls.statuses = report.NewCounter()
	}
}

type aggregator struct {
	log      logrus.FieldLogger
	levels   [5]*levelState
	rows     []report.Row
	index    map[matchKey][]employee.Record
	assigned map[string]struct{}
}

func newAggregator(log logrus.FieldLogger, employees []employee.Record) *aggregator {
	a := &aggregator{
		log:      log,
		index:    make(map[matchKey][]employee.Record),
		assigned: make(map[string]struct{}),
	}
	for i, level := range report.Levels() {
		ls := &levelState{level: level}
		if level.HasBreakdown() {
			ls.ranks = report.NewCounter()
			ls.statuses = report.NewCounter()
		}
		a.levels[i] = ls
	}
	// Index employees by (code, rank), preserving roster order within a key.
	// This keeps first-come-first-served consumption while avoiding a full
	// roster scan per catalog row.
	for _, e := range employees {
		k := matchKey{
			code: position.NormalizeCode(e.PositionCode),
			rank: strings.TrimSpace(e.Rank),
		}
		a.index[k] = append(a.index[k], e)
	}
	return a
}

// consume processes one catalog row in strict sort order. The step order is
// fixed: close boundaries, open boundaries, match employees, compute
// metrics, accumulate, emit data rows.
func (a *aggregator) consume(rec position.Record) {
	key := rec.Key()
	a.closeBoundaries(key)
	a.openBoundaries(key)
	matched := a.match(rec)
	std, vacant, excess := a.metrics(rec, len(matched))
	a.accumulate(std, vacant, excess, len(matched), matched)
	a.emitData(rec, std, vacant, excess, matched)
}

// closeBoundaries emits TOTAL (and breakdown) rows for every group the
// incoming row leaves, innermost first. Closing an outer level closes all
// inner levels with it, even when an inner value would literally match the
// next row again.
func (a *aggregator) closeBoundaries(key [5]string) {
	changed := -1
	for i, ls := range a.levels {
		if key[i] != ls.current {
			changed = i
			break
		}
	}
	if changed < 0 {
		return
	}
	for i := len(a.levels) - 1; i >= changed; i-- {
		a.closeLevel(a.levels[i])
	}
}

func (a *aggregator) closeLevel(ls *levelState) {
	if ls.current == "" {
		return
	}
	a.rows = append(a.rows, report.TotalRow(ls.level, ls.current, ls.standard, ls.actual, ls.vacant, ls.excess))
	if ls.ranks != nil {
		a.rows = append(a.rows, report.BreakdownRows(ls.level, ls.ranks, ls.statuses)...)
	}
	ls.reset()
}

// openBoundaries emits HEADER rows for every level whose value changed,
// outermost first. Opening a level blanks all strictly inner trackers so
// their headers re-emit even when their values are unchanged.
func (a *aggregator) openBoundaries(key [5]string) {
	for i, ls := range a.levels {
		if key[i] == ls.current {
			continue
		}
		a.rows = append(a.rows, report.HeaderRow(ls.level, key[i]))
		ls.current = key[i]
		for j := i + 1; j < len(a.levels); j++ {
			a.levels[j].current = ""
		}
	}
}

// match consumes every not-yet-assigned employee with the row's exact
// (code, rank). Consumption order is catalog row order; a consumed bucket
// never serves a later row.
func (a *aggregator) match(rec position.Record) []employee.Record {
	k := matchKey{code: rec.Code, rank: rec.Rank}
	bucket, ok := a.index[k]
	if !ok {
		return nil
	}
	delete(a.index, k)
	matched := make([]employee.Record, 0, len(bucket))
	for _, e := range bucket {
		if _, taken := a.assigned[e.RegNo]; taken {
			continue
		}
		a.assigned[e.RegNo] = struct{}{}
		matched = append(matched, e)
	}
	return matched
}

// metrics derives the standard/vacant/excess cells for one position row. A
// blank, wildcard, or unparsable standard makes all three the wildcard
// marker; otherwise vacant and excess are the shortfall and surplus floored
// at zero.
func (a *aggregator) metrics(rec position.Record, actual int) (std, vacant, excess report.Metric) {
	raw := strings.TrimSpace(rec.Standard)
	if raw == "" || raw == position.Wildcard || position.IsNA(raw) {
		return report.Wildcard(), report.Wildcard(), report.Wildcard()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"position_code": rec.Code,
			"standard":      raw,
		}).Warn("unparsable standard, degrading to wildcard")
		return report.Wildcard(), report.Wildcard(), report.Wildcard()
	}
	vac := v - float64(actual)
	if vac < 0 {
		vac = 0
	}
	exc := float64(actual) - v
	if exc < 0 {
		exc = 0
	}
	return report.Number(v), report.Number(vac), report.Number(exc)
}

// accumulate folds one position row into every level's running totals and,
// for matched employees, into the breakdown counters of levels whose current
// group name is non-empty. A numeric standard of exactly zero contributes to
// nothing but can still produce excess.
func (a *aggregator) accumulate(std, vacant, excess report.Metric, actual int, matched []employee.Record) {
	for _, ls := range a.levels {
		if std.IsNumber() && std.Value() > 0 {
			ls.standard += std.Value()
		}
		ls.actual += float64(actual)
		if vacant.IsNumber() {
			ls.vacant += vacant.Value()
		}
		if excess.IsNumber() {
			ls.excess += excess.Value()
		}
	}
	if len(matched) == 0 {
		return
	}
	for _, ls := range a.levels {
		if ls.ranks == nil || ls.current == "" {
			continue
		}
		for _, e := range matched {
			ls.ranks.Inc(strings.TrimSpace(e.Rank))
			ls.statuses.Inc(strings.TrimSpace(e.Status))
		}
	}
}

// emitData appends one DATA row per catalog row, plus one continuation row
// per matched employee beyond the first. A position with no incumbent gets a
// single row carrying the no-incumbent marker.
func (a *aggregator) emitData(rec position.Record, std, vacant, excess report.Metric, matched []employee.Record) {
	base := report.Row{
		Kind:         report.KindData,
		PositionCode: rec.Code,
		PositionName: rec.Name,
		Grade:        rec.Grade,
		Rank:         rec.Rank,
		Standard:     std,
		Actual:       report.Number(float64(len(matched))),
		Vacant:       vacant,
		Excess:       excess,
	}
	if len(matched) == 0 {
		base.EmployeeName = report.NoIncumbent
		a.rows = append(a.rows, base)
		return
	}
	for i, e := range matched {
		row := report.Row{Kind: report.KindData}
		if i == 0 {
			row = base
		}
		row.EmployeeName = e.Name
		row.RegNo = e.RegNo
		row.Status = e.Status
		row.Education = e.Education
		row.StartDate = e.StartDate
		row.RetirementDate = e.RetirementDate
		a.rows = append(a.rows, row)
	}
}

// flush closes every still-open group after the last catalog row, innermost
// first, so the trailing groups get their TOTAL and breakdown rows.
func (a *aggregator) flush() {
	for i := len(a.levels) - 1; i >= 0; i-- {
		a.closeLevel(a.levels[i])
	}
}
