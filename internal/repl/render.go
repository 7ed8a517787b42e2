package repl

import (
	"fmt"
	"strings"

	"job-hunt/internal/models"
	"job-hunt/internal/query"
)

// renderJob formats one record for the terminal.
func renderJob(j *models.Job) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s — %s", j.Title, j.Company))
	if !j.DatePosted.IsZero() {
		sb.WriteString(fmt.Sprintf("\n  posted:   %s", j.DatePosted.Format("2006-01-02")))
	}
	if j.Location != "" {
		sb.WriteString(fmt.Sprintf("\n  location: %s", j.Location))
	}
	if j.Remuneration != "" {
		sb.WriteString(fmt.Sprintf("\n  pay:      %s", j.Remuneration))
	}
	if len(j.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("\n  tags:     %s", strings.Join(j.Tags, ", ")))
	}
	sb.WriteString(fmt.Sprintf("\n  apply:    %s", j.Apply))
	sb.WriteString(fmt.Sprintf("\n  source:   %s\n", j.Site))

	return sb.String()
}

// renderQueryError prints the error and, when it carries an offset,
// a caret pointing at the offending spot in the line.
func renderQueryError(input string, err error) {
	red.Println(err)
	if pos, ok := err.(query.Positioned); ok {
		off := pos.Offset()
		if off >= 0 && off <= len(input) {
			fmt.Println(input)
			fmt.Println(strings.Repeat(" ", off) + "^")
		}
	}
}
