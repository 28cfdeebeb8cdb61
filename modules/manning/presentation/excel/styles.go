package excel

import (
	"github.com/xuri/excelize/v2"

	"github.com/dkusuma/manning/modules/manning/domain/report"
)

// Per-level fill colors. This table is the only place display styling is
// keyed off organizational levels; row data stays style-free.
var levelFills = map[report.Level]string{
	report.DirectorateGroup: "B4C8DC",
	report.Directorate:      "C8DCEB",
	report.Division:         "DCF0D2",
	report.Department:       "FFF5D7",
	report.CostCenter:       "FAEBEB",
}

const (
	titleFill      = "0F4C75"
	columnHeadFill = "E1E6EB"
	breakdownFill  = "F5F5F5"
	dataStripeFill = "FAFAFA"
	defaultFill    = "EBEBEB"
)

// numFmtText keeps position codes as literal text so the spreadsheet never
// reinterprets them as numbers.
const numFmtText = 49

func levelFill(level report.Level) string {
	if c, ok := levelFills[level]; ok {
		return c
	}
	return defaultFill
}

// styleSet holds the style IDs a rendering run needs. Style IDs are scoped
// to one workbook, so a fresh set is built per file.
type styleSet struct {
	title            int
	columnHead       int
	breakdown        int
	data             int
	dataCenter       int
	dataStripe       int
	dataStripeCenter int
	headers          map[report.Level]int
	totalText        map[report.Level]int
	totalSums        map[report.Level]int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	s := &styleSet{
		headers:   make(map[report.Level]int),
		totalText: make(map[report.Level]int),
		totalSums: make(map[report.Level]int),
	}
	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 18, Color: "FFFFFF"},
		Fill:      solid(titleFill),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	s.columnHead, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   solid(columnHeadFill),
		Border: thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	s.breakdown, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Italic: true, Size: 10, Color: "505050"},
		Fill:      solid(breakdownFill),
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	left := &excelize.Alignment{Horizontal: "left", Vertical: "center"}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	s.data, err = f.NewStyle(&excelize.Style{Border: thinBorder(), Alignment: left})
	if err != nil {
		return nil, err
	}
	s.dataCenter, err = f.NewStyle(&excelize.Style{Border: thinBorder(), Alignment: center})
	if err != nil {
		return nil, err
	}
	s.dataStripe, err = f.NewStyle(&excelize.Style{
		Fill:      solid(dataStripeFill),
		Border:    thinBorder(),
		Alignment: left,
	})
	if err != nil {
		return nil, err
	}
	s.dataStripeCenter, err = f.NewStyle(&excelize.Style{
		Fill:      solid(dataStripeFill),
		Border:    thinBorder(),
		Alignment: center,
	})
	if err != nil {
		return nil, err
	}

	for _, level := range report.Levels() {
		fill := levelFill(level)
		s.headers[level], err = f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Fill:      solid(fill),
			Border:    thinBorder(),
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		})
		if err != nil {
			return nil, err
		}
		s.totalText[level], err = f.NewStyle(&excelize.Style{
			Font:   &excelize.Font{Bold: true},
			Fill:   solid(fill),
			Border: thinBorder(),
		})
		if err != nil {
			return nil, err
		}
		// Numeric total cells carry a thick top rule.
		s.totalSums[level], err = f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: solid(fill),
			Border: []excelize.Border{
				{Type: "left", Style: 1, Color: "000000"},
				{Type: "right", Style: 1, Color: "000000"},
				{Type: "top", Style: 5, Color: "000000"},
				{Type: "bottom", Style: 1, Color: "000000"},
			},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		})
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func solid(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}
