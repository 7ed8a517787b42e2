package models

import "time"

// FieldKind classifies a queryable column for parse-time type checking.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldDate
)

func (k FieldKind) String() string {
	switch k {
	case FieldText:
		return "text"
	case FieldNumber:
		return "numeric"
	case FieldDate:
		return "date"
	default:
		return "unknown"
	}
}

// Fields is the catalog of queryable columns. tags is deliberately
// absent: the list is not queryable by sub-element in v1.
var Fields = map[string]FieldKind{
	"title":        FieldText,
	"company":      FieldText,
	"date_posted":  FieldDate,
	"location":     FieldText,
	"remuneration": FieldText,
	"apply":        FieldText,
	"site":         FieldText,
	"rem_lower":    FieldNumber,
	"rem_upper":    FieldNumber,
}

// TextValue returns the value of a text-kind field. An empty optional
// field participates as the empty string, never as a null.
func (j *Job) TextValue(field string) string {
	switch field {
	case "title":
		return j.Title
	case "company":
		return j.Company
	case "location":
		return j.Location
	case "remuneration":
		return j.Remuneration
	case "apply":
		return j.Apply
	case "site":
		return j.Site
	default:
		return ""
	}
}

// NumberValue returns the value of a numeric-kind field. Unknown pay
// bounds are 0, never absent.
func (j *Job) NumberValue(field string) int {
	switch field {
	case "rem_lower":
		return j.RemLower
	case "rem_upper":
		return j.RemUpper
	default:
		return 0
	}
}

// DateValue returns the value of a date-kind field.
func (j *Job) DateValue(field string) time.Time {
	switch field {
	case "date_posted":
		return j.DatePosted
	default:
		return time.Time{}
	}
}
