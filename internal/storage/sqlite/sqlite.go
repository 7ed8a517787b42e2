package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/gocraft/dbr/v2"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Store is the local jobs database, rebuilt in full on every refresh.
type Store struct {
	conn   *dbr.Connection
	sess   *dbr.Session
	logger *zap.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	date_posted DATETIME NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	remuneration TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '[]',
	apply TEXT NOT NULL,
	site TEXT NOT NULL,
	rem_lower INTEGER NOT NULL DEFAULT 0,
	rem_upper INTEGER NOT NULL DEFAULT 0
)`

func New(path string, logger *zap.Logger) (*Store, error) {
	conn, err := dbr.Open("sqlite3", path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sess := conn.NewSession(nil)

	if _, err := sess.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info("sqlite store ready", zap.String("path", path))

	return &Store{
		conn:   conn,
		sess:   sess,
		logger: logger,
	}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *Store) Session() *dbr.Session {
	return s.sess
}
