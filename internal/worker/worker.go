// Package worker runs a single collage build in the background.
// Only one build may be in flight at a time.
package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/oukeidos/picsq/internal/logger"
	"github.com/oukeidos/picsq/internal/pipeline"
)

// ErrBusy is returned by Start when a build is already in flight.
var ErrBusy = errors.New("a collage build is already in progress")

// Result is delivered exactly once per started build.
type Result struct {
	Build pipeline.BuildResult
	Err   error
}

// Runner serializes collage builds: one at a time, results over a channel.
// The zero value is ready to use.
type Runner struct {
	mu   sync.Mutex
	busy bool
}

// Busy reports whether a build is currently in flight.
func (r *Runner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

// Start launches a build in a background goroutine. The returned channel
// is buffered and receives exactly one Result. If a build is already
// running, Start returns ErrBusy and no goroutine is launched.
func (r *Runner) Start(ctx context.Context, cfg pipeline.Config) (<-chan Result, error) {
	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return nil, ErrBusy
	}
	r.busy = true
	r.mu.Unlock()

	results := make(chan Result, 1)
	go func() {
		defer func() {
			r.mu.Lock()
			r.busy = false
			r.mu.Unlock()
		}()

		build, err := pipeline.RunBuild(ctx, cfg)
		if err != nil {
			logger.Debug("build finished with error", "session_id", build.SessionID, "error", err)
		}
		results <- Result{Build: build, Err: err}
	}()
	return results, nil
}
