package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRemuneration(t *testing.T) {
	cases := []struct {
		name  string
		input string
		lower int
		upper int
	}{
		{"k range", "$90k - $120k", 90000, 120000},
		{"k range no symbols", "90k to 120k", 90000, 120000},
		{"full figures", "$90,000 - $120,000", 90000, 120000},
		{"single figure", "$100k", 100000, 100000},
		{"single full figure", "85000", 85000, 85000},
		{"reversed range", "$120k - $90k", 90000, 120000},
		{"decimal k", "$7.5k", 7500, 7500},
		{"empty", "", 0, 0},
		{"no figures", "competitive", 0, 0},
		{"small numbers ignored", "up to 40 hrs/week", 0, 0},
		{"mixed noise and salary", "40 hrs, $95k", 95000, 95000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lower, upper := ParseRemuneration(tc.input)
			assert.Equal(t, tc.lower, lower, "lower")
			assert.Equal(t, tc.upper, upper, "upper")
		})
	}
}
