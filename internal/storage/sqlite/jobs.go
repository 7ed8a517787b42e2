package sqlite

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"job-hunt/internal/models"
)

var jobColumns = []string{
	"title", "company", "date_posted", "location", "remuneration",
	"tags", "apply", "site", "rem_lower", "rem_upper",
}

// ReplaceJobs rebuilds the jobs table from the given records in one
// transaction, so a failed refresh leaves the previous snapshot intact.
func (s *Store) ReplaceJobs(ctx context.Context, jobs []models.Job) error {
	tx, err := s.sess.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.RollbackUnlessCommitted()

	if _, err := tx.DeleteFrom("jobs").ExecContext(ctx); err != nil {
		s.logger.Error("failed to clear jobs table", zap.Error(err))
		return fmt.Errorf("clear jobs: %w", err)
	}

	for i := range jobs {
		j := &jobs[i]
		_, err := tx.
			InsertInto("jobs").
			Columns(jobColumns...).
			Values(j.Title, j.Company, j.DatePosted, j.Location, j.Remuneration,
				j.Tags, j.Apply, j.Site, j.RemLower, j.RemUpper).
			ExecContext(ctx)
		if err != nil {
			s.logger.Error("failed to insert job",
				zap.String("title", j.Title),
				zap.String("site", j.Site),
				zap.Error(err),
			)
			return fmt.Errorf("insert job: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.logger.Info("jobs table rebuilt", zap.Int("count", len(jobs)))
	return nil
}

// LoadJobs returns the full snapshot in a fixed order (date then
// title) so queries without an order clause stay deterministic.
func (s *Store) LoadJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job

	_, err := s.sess.
		Select(jobColumns...).
		From("jobs").
		OrderAsc("date_posted").
		OrderAsc("title").
		LoadContext(ctx, &jobs)

	if err != nil {
		s.logger.Error("failed to load jobs", zap.Error(err))
		return nil, fmt.Errorf("load jobs: %w", err)
	}

	return jobs, nil
}

// CountJobs reports how many postings the store currently holds.
func (s *Store) CountJobs(ctx context.Context) (int, error) {
	var count int

	err := s.sess.
		Select("COUNT(*)").
		From("jobs").
		LoadOneContext(ctx, &count)

	if err != nil {
		s.logger.Error("failed to count jobs", zap.Error(err))
		return 0, fmt.Errorf("count jobs: %w", err)
	}

	return count, nil
}
