package query

import (
	"sort"
	"strings"

	"job-hunt/internal/models"
)

// Execute filters the snapshot through the query's predicate and
// applies its ordering. Pure function of its inputs: the snapshot is
// never mutated, and without an order clause records keep their input
// order so results are deterministic for a given snapshot.
func Execute(q *Query, jobs []models.Job) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for i := range jobs {
		if q.Where == nil || q.Where.Eval(&jobs[i]) {
			out = append(out, jobs[i])
		}
	}
	if q.OrderBy != nil {
		sortJobs(out, q.OrderBy)
	}
	return out
}

// sortJobs sorts in place with a stable sort so equal keys keep their
// pre-sort relative order.
func sortJobs(jobs []models.Job, ord *Ordering) {
	kind := models.Fields[ord.Field]
	less := func(a, b *models.Job) bool {
		switch kind {
		case models.FieldNumber:
			return a.NumberValue(ord.Field) < b.NumberValue(ord.Field)
		case models.FieldDate:
			return a.DateValue(ord.Field).Before(b.DateValue(ord.Field))
		default:
			return strings.ToLower(a.TextValue(ord.Field)) < strings.ToLower(b.TextValue(ord.Field))
		}
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		if ord.Desc {
			return less(&jobs[j], &jobs[i])
		}
		return less(&jobs[i], &jobs[j])
	})
}
