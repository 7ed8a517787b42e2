package query

import (
	"time"

	"job-hunt/internal/models"
)

// Query is the parsed form of one "select jobs" line. It is built once
// by Parse and never modified afterwards.
type Query struct {
	Where   Predicate // nil matches every record
	OrderBy *Ordering // nil leaves input order untouched
}

// Ordering is a single sort field with direction, ascending by default.
type Ordering struct {
	Field string
	Desc  bool
}

// Predicate is a boolean expression tree over field comparisons.
type Predicate interface {
	Eval(j *models.Job) bool
}

type Op int

const (
	OpEq Op = iota
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpLike
)

// Comparison is a leaf of the predicate tree. Exactly one of Text,
// Num or Date is meaningful, selected by Kind.
type Comparison struct {
	Field string
	Kind  models.FieldKind
	Op    Op
	Text  string
	Num   int
	Date  time.Time
}

type And struct {
	Left, Right Predicate
}

type Or struct {
	Left, Right Predicate
}
