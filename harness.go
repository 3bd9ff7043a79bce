package hugoup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
)

// Harness runs tasks sequentially showing a consistent output where the
// task status and timing info are clearly visible. It can be customized with
// pre- and post- execution hooks.
type Harness struct {
	PreExecHook  Task
	PostExecHook Task

	// StopOnError aborts the remaining tasks after the first failure.
	StopOnError bool
}

// New constructs a harness.
func New(opts ...Option) *Harness {
	h := Harness{
		PreExecHook:  func(_ context.Context) error { return nil },
		PostExecHook: func(_ context.Context) error { return nil },
	}

	for _, opt := range opts {
		opt(&h)
	}

	return &h
}

// Execute a list of tasks inside the harness.
// Task errors are joined in the returned error, so callers can still match
// them with [errors.Is].
func (h *Harness) Execute(ctx context.Context, tasks ...Task) error {
	var errs []error
	start := time.Now()

	fmt.Printf("\n")

	if err := h.PreExecHook(ctx); err != nil {
		return fmt.Errorf("failed to run pre exec hook: %w", err)
	}

	for _, task := range tasks {
		if err := task(ctx); err != nil {
			errs = append(errs, err)
			if h.StopOnError {
				break
			}
		}
	}

	if err := h.PostExecHook(ctx); err != nil {
		return fmt.Errorf("failed to run post exec hook: %w", err)
	}

	elapsed := time.Since(start).Round(time.Millisecond)
	color.New(color.FgHiBlack).Printf("------------------------\n\n")

	if len(errs) > 0 {
		color.Red(" ✘ finished with errors after %s", elapsed)
		for _, err := range errs {
			color.Red("   • %s", err)
		}
		fmt.Printf("\n")
		return errors.Join(errs...)
	}

	color.Green(" ✔ all good after %s\n\n", elapsed)
	return nil
}

// Task defines the basic function that the harness executes.
// Additional configuration can be done by using closures which return Tasks.
type Task func(ctx context.Context) error

type Option func(h *Harness)

// WithPreExecFunc allows specifying a task that will be run every execution, before the
// specific execution tasks are run.
func WithPreExecFunc(hook Task) Option {
	return func(h *Harness) {
		h.PreExecHook = hook
	}
}

// WithPostExecFunc allows specifying a task that will be run every execution, after all
// the tasks have finished.
func WithPostExecFunc(hook Task) Option {
	return func(h *Harness) {
		h.PostExecHook = hook
	}
}

// WithStopOnError makes the harness skip the remaining tasks after a failure.
func WithStopOnError() Option {
	return func(h *Harness) {
		h.StopOnError = true
	}
}
