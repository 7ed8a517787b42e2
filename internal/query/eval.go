package query

import (
	"strings"

	"job-hunt/internal/models"
)

// Eval reports whether one record satisfies the comparison. Text
// matching is case-insensitive; numbers use signed ordering; dates use
// calendar ordering.
func (c *Comparison) Eval(j *models.Job) bool {
	switch c.Kind {
	case models.FieldText:
		v := j.TextValue(c.Field)
		switch c.Op {
		case OpEq:
			return strings.EqualFold(v, c.Text)
		case OpNeq:
			return !strings.EqualFold(v, c.Text)
		case OpLike:
			return likeMatch(v, c.Text)
		}
	case models.FieldNumber:
		v := j.NumberValue(c.Field)
		switch c.Op {
		case OpEq:
			return v == c.Num
		case OpNeq:
			return v != c.Num
		case OpLt:
			return v < c.Num
		case OpLte:
			return v <= c.Num
		case OpGt:
			return v > c.Num
		case OpGte:
			return v >= c.Num
		}
	case models.FieldDate:
		v := j.DateValue(c.Field)
		switch c.Op {
		case OpEq:
			return v.Equal(c.Date)
		case OpNeq:
			return !v.Equal(c.Date)
		case OpLt:
			return v.Before(c.Date)
		case OpLte:
			return !v.After(c.Date)
		case OpGt:
			return v.After(c.Date)
		case OpGte:
			return !v.Before(c.Date)
		}
	}
	return false
}

func (a *And) Eval(j *models.Job) bool {
	return a.Left.Eval(j) && a.Right.Eval(j)
}

func (o *Or) Eval(j *models.Job) bool {
	return o.Left.Eval(j) || o.Right.Eval(j)
}

// likeMatch matches value against pattern whole-string and
// case-insensitively. '%' matches any run of characters, including
// none; everything else matches literally.
func likeMatch(value, pattern string) bool {
	return wildcardMatch(strings.ToLower(value), strings.ToLower(pattern))
}

func wildcardMatch(v, p string) bool {
	vi, pi := 0, 0
	star, mark := -1, 0
	for vi < len(v) {
		switch {
		case pi < len(p) && p[pi] == '%':
			star, mark = pi, vi
			pi++
		case pi < len(p) && p[pi] == v[vi]:
			vi++
			pi++
		case star >= 0:
			// backtrack: let the last '%' swallow one more character
			mark++
			vi = mark
			pi = star + 1
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == '%' {
		pi++
	}
	return pi == len(p)
}
