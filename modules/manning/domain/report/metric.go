package report

import "strconv"

// WildcardMarker is the display value for metrics derived from an
// unspecified staffing standard.
const WildcardMarker = "*"

type metricKind int

const (
	metricBlank metricKind = iota
	metricWildcard
	metricNumber
)

// Metric is a tri-state report cell: a number, the wildcard marker, or
// blank. The zero value is blank.
type Metric struct {
	kind  metricKind
	value float64
}

// Number returns a numeric metric.
func Number(v float64) Metric { return Metric{kind: metricNumber, value: v} }

// Wildcard returns the non-numeric wildcard metric. Wildcard metrics are
// excluded from all running sums.
func Wildcard() Metric { return Metric{kind: metricWildcard} }

// Blank returns the empty metric.
func Blank() Metric { return Metric{} }

func (m Metric) IsNumber() bool   { return m.kind == metricNumber }
func (m Metric) IsWildcard() bool { return m.kind == metricWildcard }
func (m Metric) IsBlank() bool    { return m.kind == metricBlank }

// Value returns the numeric value, 0 for non-numeric metrics.
func (m Metric) Value() float64 { return m.value }

func (m Metric) String() string {
	switch m.kind {
	case metricNumber:
		return strconv.FormatFloat(m.value, 'f', -1, 64)
	case metricWildcard:
		return WildcardMarker
	}
	return ""
}
