package expand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"namebank/internal/history"
	"namebank/internal/logging"
	"namebank/internal/names"
)

// ErrLocked indicates another namebank process holds the database lock.
var ErrLocked = errors.New("name database is locked by another namebank process")

// Options describes one merge run.
type Options struct {
	DatabasePath string
	LockPath     string
	Candidates   []names.Record
	// Source labels the run in history, e.g. "builtin" or "manual:kai".
	Source  string
	DryRun  bool
	History *history.Store
	Logger  *slog.Logger
}

// Result reports the counts the CLI prints.
type Result struct {
	Before int
	After  int
	Added  int
}

// Run performs the load, merge, sort, persist, record sequence. The database
// file must already exist; a missing or malformed file is fatal. With DryRun
// set nothing is written and no history is recorded.
func Run(ctx context.Context, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "expand")

	if opts.LockPath != "" && !opts.DryRun {
		lock := flock.New(opts.LockPath)
		locked, err := lock.TryLock()
		if err != nil {
			return Result{}, fmt.Errorf("acquire database lock: %w", err)
		}
		if !locked {
			return Result{}, ErrLocked
		}
		defer lock.Unlock()
	}

	catalog, err := names.Load(opts.DatabasePath)
	if err != nil {
		return Result{}, err
	}

	result := Result{Before: catalog.Len()}
	result.Added = catalog.Merge(opts.Candidates)
	result.After = catalog.Len()

	catalog.SortByName()

	if opts.DryRun {
		logger.Debug("dry run, skipping write",
			logging.String("database", opts.DatabasePath),
			logging.Int("would_add", result.Added))
		return result, nil
	}

	if err := catalog.Save(opts.DatabasePath); err != nil {
		return Result{}, err
	}

	logger.Debug("database written",
		logging.String("database", opts.DatabasePath),
		logging.Int("before", result.Before),
		logging.Int("after", result.After),
		logging.Int("added", result.Added))

	if opts.History != nil {
		run := history.Run{
			Source: opts.Source,
			Before: result.Before,
			After:  result.After,
			Added:  result.Added,
		}
		recorded, err := opts.History.Record(ctx, run)
		if err != nil {
			// The merge already reached disk; a history failure is not worth
			// failing the run over.
			logger.Warn("failed to record run history", logging.Error(err))
		} else {
			logger.Debug("run recorded",
				logging.String("run_id", recorded.RunID),
				logging.String("source", recorded.Source))
		}
	}

	return result, nil
}
