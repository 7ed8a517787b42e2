package scraper

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"job-hunt/internal/models"
)

// CryptoJobsList scrapes the engineering listing of cryptojobslist.com.
type CryptoJobsList struct{}

func (c *CryptoJobsList) Name() string {
	return CryptoJobsListURL
}

func (c *CryptoJobsList) Scrape(ctx context.Context, g Getter) ([]models.Job, error) {
	body, err := g.Fetch(ctx, CryptoJobsListURL+"/engineering?sort=recent")
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse cryptojobslist: %w", err)
	}

	var jobs []models.Job
	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("td div a").First()
		title := strings.TrimSpace(link.Text())
		if title == "" {
			return
		}

		job := models.Job{Title: title, Site: CryptoJobsListURL}
		if path, ok := link.Attr("href"); ok {
			job.Apply = CryptoJobsListURL + path
		}
		job.Company = text(row.Find("td a"))
		job.Location = text(row.Find("td span"))
		job.Remuneration = text(row.Find("td span.job-salary-text"))
		job.DatePosted = dateFromAge(text(row.Find("td.job-time-since-creation")), time.Now())

		row.Find("td span").Each(func(i int, tag *goquery.Selection) {
			// first span is the location, not a tag
			if i == 0 {
				return
			}
			if t := strings.TrimSpace(tag.Text()); t != "" {
				job.Tags = append(job.Tags, t)
			}
		})

		jobs = append(jobs, job)
	})
	return jobs, nil
}

// dateFromAge turns the board's relative age ("today", "2d", "3w")
// into a calendar date.
func dateFromAge(raw string, now time.Time) time.Time {
	raw = strings.ToLower(strings.TrimSpace(raw))
	day := now.Truncate(24 * time.Hour)
	if raw == "" {
		return day
	}
	if raw == "today" || strings.HasSuffix(raw, "h") {
		return day
	}

	n, err := strconv.Atoi(raw[:len(raw)-1])
	if err != nil {
		return day
	}
	switch raw[len(raw)-1] {
	case 'd':
		return day.AddDate(0, 0, -n)
	case 'w':
		return day.AddDate(0, 0, -7*n)
	case 'm':
		return day.AddDate(0, -n, 0)
	default:
		return day
	}
}
