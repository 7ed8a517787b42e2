package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

var payFigure = regexp.MustCompile(`(?i)(\d+(?:,\d{3})*(?:\.\d+)?)\s*(k)?`)

// ParseRemuneration extracts normalized yearly pay bounds from a
// free-form display string like "$90k - $120k". A range sets both
// bounds, a single figure sets them equal, and anything unparseable
// yields (0, 0) so numeric filters exclude unknown-pay listings.
func ParseRemuneration(s string) (lower, upper int) {
	var figures []int
	for _, m := range payFigure.FindAllStringSubmatch(s, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if strings.EqualFold(m[2], "k") {
			v *= 1000
		}
		// figures under 1000 without a k suffix are noise (hours,
		// counts), not salaries
		if v < 1000 {
			continue
		}
		figures = append(figures, int(v))
	}

	if len(figures) == 0 {
		return 0, 0
	}

	lower, upper = figures[0], figures[0]
	for _, v := range figures[1:] {
		if v < lower {
			lower = v
		}
		if v > upper {
			upper = v
		}
	}
	return lower, upper
}
