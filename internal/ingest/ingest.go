package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"job-hunt/internal/models"
	"job-hunt/internal/scraper"
	"job-hunt/internal/storage/sqlite"
)

// Refresher rebuilds the local store from the job boards and returns
// the fresh snapshot for querying.
type Refresher struct {
	store   *sqlite.Store
	fetcher scraper.Getter
	boards  []scraper.Board
	logger  *zap.Logger
}

func New(store *sqlite.Store, fetcher scraper.Getter, boards []scraper.Board, logger *zap.Logger) *Refresher {
	return &Refresher{
		store:   store,
		fetcher: fetcher,
		boards:  boards,
		logger:  logger,
	}
}

// Refresh scrapes every board, normalizes pay bounds, replaces the
// store contents and reloads the snapshot. A failing board is logged
// and skipped so one unreachable site does not empty the whole store.
func (r *Refresher) Refresh(ctx context.Context) ([]models.Job, error) {
	var all []models.Job
	for _, b := range r.boards {
		jobs, err := b.Scrape(ctx, r.fetcher)
		if err != nil {
			r.logger.Error("board scrape failed",
				zap.String("board", b.Name()),
				zap.Error(err),
			)
			continue
		}
		r.logger.Info("board scraped",
			zap.String("board", b.Name()),
			zap.Int("jobs", len(jobs)),
		)
		all = append(all, jobs...)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no board produced any jobs")
	}

	Normalize(all)

	if err := r.store.ReplaceJobs(ctx, all); err != nil {
		return nil, fmt.Errorf("replace jobs: %w", err)
	}

	return r.store.LoadJobs(ctx)
}

// Normalize populates the derived pay bounds on every record. Records
// with no parseable remuneration keep both bounds at 0.
func Normalize(jobs []models.Job) {
	for i := range jobs {
		jobs[i].RemLower, jobs[i].RemUpper = scraper.ParseRemuneration(jobs[i].Remuneration)
	}
}
