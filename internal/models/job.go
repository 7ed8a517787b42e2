package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Job is one normalized posting scraped from a job board.
type Job struct {
	Title        string    `db:"title"`
	Company      string    `db:"company"`
	DatePosted   time.Time `db:"date_posted"`
	Location     string    `db:"location"`
	Remuneration string    `db:"remuneration"`
	Tags         Tags      `db:"tags"`
	Apply        string    `db:"apply"`
	Site         string    `db:"site"`
	RemLower     int       `db:"rem_lower"`
	RemUpper     int       `db:"rem_upper"`
}

// Tags is stored as a JSON array in a text column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(t))
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return string(data), nil
}

func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}

	if err := json.Unmarshal(data, (*[]string)(t)); err != nil {
		return fmt.Errorf("unmarshal tags: %w", err)
	}
	return nil
}
