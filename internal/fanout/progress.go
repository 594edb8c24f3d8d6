package fanout

import (
	"sync"
	"time"
)

// percentMultiplier is used to convert a ratio to percentage (0-100).
const percentMultiplier = 100

// Progress tracks how many tasks of a join have completed.
// It is safe for concurrent use.
type Progress struct {
	total     int
	done      int
	startTime time.Time
	lastTime  time.Time

	mu sync.RWMutex
}

// NewProgress creates a progress tracker for total tasks.
func NewProgress(total int) *Progress {
	now := time.Now()
	return &Progress{
		total:     total,
		startTime: now,
		lastTime:  now,
	}
}

// Add records n completed tasks.
func (p *Progress) Add(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done += n
	p.lastTime = time.Now()
}

// PercentComplete returns the completion percentage (0-100).
func (p *Progress) PercentComplete() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.percentCompleteUnsafe()
}

// IsComplete returns true if all tasks have completed.
func (p *Progress) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.done >= p.total
}

// ElapsedTime returns the time elapsed since the join started.
func (p *Progress) ElapsedTime() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return time.Since(p.startTime)
}

// Snapshot returns a copy of the current progress state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return ProgressSnapshot{
		Total:           p.total,
		Done:            p.done,
		StartTime:       p.startTime,
		LastUpdateTime:  p.lastTime,
		PercentComplete: p.percentCompleteUnsafe(),
		ElapsedTime:     time.Since(p.startTime),
	}
}

// ProgressSnapshot is an immutable snapshot of progress state.
type ProgressSnapshot struct {
	Total           int
	Done            int
	StartTime       time.Time
	LastUpdateTime  time.Time
	PercentComplete float64
	ElapsedTime     time.Duration
}

// percentCompleteUnsafe must be called with the lock held.
func (p *Progress) percentCompleteUnsafe() float64 {
	if p.total == 0 {
		return 0
	}
	return (float64(p.done) / float64(p.total)) * percentMultiplier
}
