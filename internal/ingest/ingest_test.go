package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"job-hunt/internal/models"
)

func TestNormalizePayBounds(t *testing.T) {
	jobs := []models.Job{
		{Title: "a", Remuneration: "$90k - $120k"},
		{Title: "b", Remuneration: "competitive"},
		{Title: "c", Remuneration: ""},
		{Title: "d", Remuneration: "$100k"},
	}

	Normalize(jobs)

	assert.Equal(t, 90000, jobs[0].RemLower)
	assert.Equal(t, 120000, jobs[0].RemUpper)

	// unknown pay is 0/0, never absent
	assert.Zero(t, jobs[1].RemLower)
	assert.Zero(t, jobs[1].RemUpper)
	assert.Zero(t, jobs[2].RemLower)
	assert.Zero(t, jobs[2].RemUpper)

	assert.Equal(t, 100000, jobs[3].RemLower)
	assert.Equal(t, 100000, jobs[3].RemUpper)
}
