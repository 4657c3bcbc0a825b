package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/mapping"
	"github.com/walteh/syncopy/pkg/operation"
	"github.com/walteh/syncopy/pkg/remote"
	"github.com/walteh/syncopy/pkg/state"
	"github.com/walteh/syncopy/pkg/wiki"
)

// 🚀 Run executes the job: it resolves the client, copies the source and
// writes the lock file when one is configured. The lock file is written even
// when the copy fails, recording everything created before the failure.
func Run(ctx context.Context, cfg *Config, reporter operation.Reporter) (*mapping.Mapping, error) {
	logger := zerolog.Ctx(ctx)

	opts, err := cfg.Options(ctx)
	if err != nil {
		return nil, err
	}

	client, err := remote.New(ctx, cfg.Client)
	if err != nil {
		return nil, errors.Errorf("creating client: %w", err)
	}

	lock := state.NewLock(cfg.Source, cfg.Destination)
	rec := &lockReporter{next: reporter, lock: lock}

	op, err := operation.New(operation.Config{Client: client, Reporter: rec})
	if err != nil {
		return nil, errors.Errorf("creating operator: %w", err)
	}

	start := time.Now()
	logger.Info().Str("job", cfg.String()).Msg("starting copy")

	m, copyErr := op.Copy(ctx, cfg.Source, cfg.Destination, opts)

	logger.Info().Dur("elapsed", time.Since(start)).Int("entities", m.Len()).Err(copyErr).Msg("copy finished")

	if cfg.LockFile != "" && m != nil {
		lock.Entities = m
		if err := state.Write(ctx, cfg.LockFile, lock); err != nil {
			if copyErr != nil {
				logger.Error().Err(err).Str("path", cfg.LockFile).Msg("writing lock after failed copy")
				return m, errors.Errorf("copying %s to %s: %w", cfg.Source, cfg.Destination, copyErr)
			}
			return m, errors.Errorf("writing lock: %w", err)
		}
	}

	if copyErr != nil {
		return m, errors.Errorf("copying %s to %s: %w", cfg.Source, cfg.Destination, copyErr)
	}

	return m, nil
}

// lockReporter records replicated wikis into the lock and forwards every
// report to next
type lockReporter struct {
	next operation.Reporter
	lock *state.Lock
}

func (r *lockReporter) Report(ctx context.Context, result operation.Result) {
	if r.next != nil {
		r.next.Report(ctx, result)
	}
}

func (r *lockReporter) ReportWiki(ctx context.Context, sourceID, destinationID string, result *wiki.Result) {
	if !result.NoWiki {
		r.lock.PutWiki(sourceID, result.PageIDs)
	}
	if wr, ok := r.next.(operation.WikiReporter); ok {
		wr.ReportWiki(ctx, sourceID, destinationID, result)
	}
}
