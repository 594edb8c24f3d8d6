package fanout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrNilTask is returned when Join is called without a task function.
var ErrNilTask = errors.New("fanout task cannot be nil")

// Task produces the result for one item. index is the item's position in the
// input slice.
type Task[T, R any] func(ctx context.Context, index int, item T) (R, error)

// ProgressCallback is invoked after each successful task with a snapshot of
// the join's progress. It may be called from several goroutines at once.
type ProgressCallback func(snapshot ProgressSnapshot)

// Joiner runs a Task for every item and joins the results.
type Joiner[T, R any] struct {
	// maxConcurrency bounds in-flight tasks; values < 1 mean unbounded.
	maxConcurrency int

	// onProgress is an optional callback for progress updates.
	onProgress ProgressCallback
}

// NewJoiner creates an unbounded joiner.
func NewJoiner[T, R any]() *Joiner[T, R] {
	return &Joiner[T, R]{}
}

// WithMaxConcurrency bounds the number of tasks in flight.
func (j *Joiner[T, R]) WithMaxConcurrency(n int) *Joiner[T, R] {
	j.maxConcurrency = n
	return j
}

// WithProgressCallback sets a progress callback for the joiner.
func (j *Joiner[T, R]) WithProgressCallback(callback ProgressCallback) *Joiner[T, R] {
	j.onProgress = callback
	return j
}

// Join runs task once per item and returns the results in input order.
// An empty input returns an empty result without starting any goroutine.
func (j *Joiner[T, R]) Join(ctx context.Context, items []T, task Task[T, R]) ([]R, error) {
	if task == nil {
		return nil, ErrNilTask
	}

	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	progress := NewProgress(len(items))

	g, gCtx := errgroup.WithContext(ctx)
	if j.maxConcurrency > 0 {
		g.SetLimit(j.maxConcurrency)
	}

	for i, item := range items {
		g.Go(func() error {
			// Skip work once a sibling has failed or the caller gave up.
			if err := gCtx.Err(); err != nil {
				return err
			}

			r, err := task(gCtx, i, item)
			if err != nil {
				return fmt.Errorf("item %d failed: %w", i, err)
			}

			// Each goroutine owns its slot; no lock needed.
			results[i] = r

			progress.Add(1)
			if j.onProgress != nil {
				j.onProgress(progress.Snapshot())
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Map is shorthand for an unbounded Join without progress reporting.
func Map[T, R any](ctx context.Context, items []T, task Task[T, R]) ([]R, error) {
	return NewJoiner[T, R]().Join(ctx, items, task)
}
