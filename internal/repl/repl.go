package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"job-hunt/internal/ingest"
	"job-hunt/internal/models"
	"job-hunt/internal/query"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// Repl drives the interactive prompt. It owns the current record
// snapshot; the query engine only ever sees it read-only, per call.
type Repl struct {
	refresher   *ingest.Refresher
	historyFile string
	jobs        []models.Job
	logger      *zap.Logger
}

func New(refresher *ingest.Refresher, historyFile string, logger *zap.Logger) *Repl {
	return &Repl{
		refresher:   refresher,
		historyFile: historyFile,
		logger:      logger,
	}
}

// Run populates the store, then reads and dispatches lines until the
// user exits.
func (r *Repl) Run(ctx context.Context) error {
	green.Println("Populating local database. This shouldn't take long...")
	jobs, err := r.refresher.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("initial refresh: %w", err)
	}
	r.jobs = jobs
	green.Println("Population completed successfully! Welcome, please begin your job hunt by entering a query.")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(r.historyFile); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			r.logger.Warn("failed to read history", zap.Error(err))
		}
		f.Close()
	}
	defer r.saveHistory(line)

loop:
	for {
		input, err := line.Prompt(">> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println()
				break
			}
			red.Printf("An error has occurred: %v\n", err)
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch {
		case strings.HasPrefix(strings.ToLower(input), "select"):
			r.runQuery(input)
		case strings.EqualFold(input, "refresh"):
			r.refresh(ctx)
		case strings.EqualFold(input, "exit"):
			break loop
		default:
			red.Printf("Does not compute! 🤖 %q is not a valid query/command.\n", input)
		}
	}

	green.Println("Thank you for using Job Hunt. Goodbye!")
	return nil
}

func (r *Repl) runQuery(input string) {
	q, err := query.Parse(input)
	if err != nil {
		r.logger.Debug("query rejected", zap.String("input", input), zap.Error(err))
		renderQueryError(input, err)
		return
	}

	results := query.Execute(q, r.jobs)
	for i := range results {
		fmt.Println(renderJob(&results[i]))
	}
	green.Printf("%d jobs returned.\n", len(results))
}

func (r *Repl) refresh(ctx context.Context) {
	green.Println("Refreshing local database...")
	jobs, err := r.refresher.Refresh(ctx)
	if err != nil {
		r.logger.Error("refresh failed", zap.Error(err))
		red.Printf("Refresh failed: %v\n", err)
		return
	}
	r.jobs = jobs
	green.Printf("Refresh completed successfully at %s\n",
		time.Now().Format("02-01-2006 15:04:05"))
}

func (r *Repl) saveHistory(line *liner.State) {
	f, err := os.Create(r.historyFile)
	if err != nil {
		r.logger.Warn("failed to save history", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		r.logger.Warn("failed to write history", zap.Error(err))
	}
}
