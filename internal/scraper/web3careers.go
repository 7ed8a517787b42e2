package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"job-hunt/internal/models"
)

// Web3Careers scrapes web3.career, which paginates its listing table.
type Web3Careers struct {
	Pages int
}

func (w *Web3Careers) Name() string {
	return Web3CareersURL
}

func (w *Web3Careers) Scrape(ctx context.Context, g Getter) ([]models.Job, error) {
	var jobs []models.Job
	for page := 1; page <= w.Pages; page++ {
		body, err := g.Fetch(ctx, fmt.Sprintf("%s?page=%d", Web3CareersURL, page))
		if err != nil {
			return nil, err
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("parse web3.career page %d: %w", page, err)
		}

		doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
			title := text(row.Find("td div div div a h2"))
			if title == "" {
				return
			}

			job := models.Job{Title: title, Site: Web3CareersURL}
			job.Company = text(row.Find("td a h3"))
			job.Location = text(row.Find("td:nth-child(4)"))
			job.Remuneration = text(row.Find("td:nth-child(5) p"))

			if onclick, ok := row.Attr("onclick"); ok {
				if path := pathFromOnclick(onclick); path != "" {
					job.Apply = Web3CareersURL + path
				}
			}
			if dt, ok := row.Find("td time").First().Attr("datetime"); ok {
				job.DatePosted = parseISODate(dt)
			}
			row.Find("td div span").Each(func(_ int, tag *goquery.Selection) {
				if t := strings.TrimSpace(tag.Text()); t != "" {
					job.Tags = append(job.Tags, t)
				}
			})

			jobs = append(jobs, job)
		})
	}
	return jobs, nil
}

// pathFromOnclick pulls the job path out of the row's onclick handler,
// e.g. `window.location.href='/remote-jobs/123'`.
func pathFromOnclick(onclick string) string {
	start := strings.IndexByte(onclick, '\'')
	if start < 0 {
		return ""
	}
	rest := onclick[start+1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return ""
	}
	return rest[:end]
}
