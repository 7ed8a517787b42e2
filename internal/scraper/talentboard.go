package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"job-hunt/internal/models"
)

// talentBoard covers the Solana, Substrate and NEAR career sites.
// All three run the same hosted board software, differing only in URL.
type talentBoard struct {
	url string
}

func newTalentBoard(url string) *talentBoard {
	return &talentBoard{url: url}
}

func (b *talentBoard) Name() string {
	return b.url
}

func (b *talentBoard) Scrape(ctx context.Context, g Getter) ([]models.Job, error) {
	body, err := g.Fetch(ctx, fmt.Sprintf("%s?filter=%s", b.url, softwareFilter))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", b.url, err)
	}

	var jobs []models.Job
	doc.Find("[data-testid=job-list-item], div.job-list-item").Each(func(_ int, card *goquery.Selection) {
		title := text(card.Find("h4 a div div"))
		if title == "" {
			title = text(card.Find("h4 a"))
		}
		if title == "" {
			return
		}

		job := models.Job{Title: title, Site: b.url}
		job.Company = text(card.Find("div div a"))

		// structured data lives in meta tags on the card
		if content, ok := card.Find("meta[itemprop=address], meta[itemprop=jobLocation]").First().Attr("content"); ok {
			job.Location = content
		}
		if content, ok := card.Find("meta[itemprop=datePosted]").First().Attr("content"); ok {
			job.DatePosted = parseISODate(content)
		}
		if href, ok := card.Find("a[data-testid=read-more], h4 a").First().Attr("href"); ok {
			if strings.HasPrefix(href, "https") {
				job.Apply = href
			} else {
				job.Apply = b.url + "/" + strings.TrimPrefix(href, "/")
			}
		}

		jobs = append(jobs, job)
	})
	return jobs, nil
}
