package scraper

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"job-hunt/internal/models"
)

// Job board URLs.
const (
	Web3CareersURL    = "https://web3.career"
	CryptoJobsListURL = "https://cryptojobslist.com"
	SolanaJobsURL     = "https://jobs.solana.com/jobs"
	SubstrateJobsURL  = "https://careers.substrate.io/jobs"
	NearJobsURL       = "https://careers.near.org/jobs"
)

// softwareFilter is the filter value the Solana, Substrate and NEAR
// boards share: base64 of {"job_functions":["Software Engineering"]}.
const softwareFilter = "eyJqb2JfZnVuY3Rpb25zIjpbIlNvZnR3YXJlIEVuZ2luZWVyaW5nIl19"

// Board scrapes one job site into Job records. Scrapers fill the
// fields the board exposes; pay bounds are normalized later by the
// ingestion pipeline.
type Board interface {
	Name() string
	Scrape(ctx context.Context, g Getter) ([]models.Job, error)
}

// AllBoards returns every supported board. pages bounds web3.career
// pagination.
func AllBoards(pages int) []Board {
	return []Board{
		&Web3Careers{Pages: pages},
		&CryptoJobsList{},
		newTalentBoard(SolanaJobsURL),
		newTalentBoard(SubstrateJobsURL),
		newTalentBoard(NearJobsURL),
	}
}

// text extracts trimmed text from the first node of a selection.
func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.First().Text())
}

// parseISODate reads the date part of an ISO timestamp attribute.
func parseISODate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 10 {
		raw = raw[:10]
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
