// Package cleanup collects shutdown hooks, such as closing the JSONL
// log file, and runs them once after the command finishes.
package cleanup

import (
	"errors"
	"sync"
)

var (
	mu    sync.Mutex
	hooks []func() error
)

// Register adds a hook. Hooks run in reverse registration order.
func Register(hook func() error) {
	if hook == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	hooks = append(hooks, hook)
}

// RunAll runs every registered hook exactly once, newest first, and
// joins their errors. The hook list is emptied even when some fail.
func RunAll() error {
	mu.Lock()
	pending := hooks
	hooks = nil
	mu.Unlock()

	var errs []error
	for i := len(pending) - 1; i >= 0; i-- {
		if err := pending[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
