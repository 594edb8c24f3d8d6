// Package view holds the transient state of the catalog view and the rules
// for moving between Idle and Loading.
//
// State is a plain value owned by a single event loop; it is not safe for
// concurrent use. Fetch cycles are tagged with a generation number so that a
// superseded cycle finishing late cannot overwrite newer results.
package view

import (
	"strings"

	"github.com/rshade/pokecatch/internal/catalog"
)

// Outcome reports what Complete did with a finished cycle.
type Outcome int

const (
	// OutcomeApplied means the cycle's records replaced the collection.
	OutcomeApplied Outcome = iota
	// OutcomeFailed means the cycle failed; the previous records were kept.
	OutcomeFailed
	// OutcomeStale means a newer cycle had started; the result was discarded.
	OutcomeStale
)

// String returns a short label for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeFailed:
		return "failed"
	case OutcomeStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Cycle identifies one fetch cycle.
type Cycle struct {
	Generation uint64
	Limit      int
}

// State is the catalog view state: the current records, the loading flag,
// the page-size limit and the lower-cased search query.
type State struct {
	records    []catalog.Pokemon
	loading    bool
	limit      int
	query      string
	generation uint64
}

// New returns an idle state with no records and the given starting limit.
// Negative limits are clamped to zero.
func New(limit int) State {
	return State{limit: max(limit, 0)}
}

// Begin starts a new cycle at the current limit and marks the state loading.
// Any cycle still outstanding becomes stale.
func (s *State) Begin() Cycle {
	s.generation++
	s.loading = true
	return Cycle{Generation: s.generation, Limit: s.limit}
}

// LoadMore grows the limit by step and begins a cycle for the whole new
// limit. The records fetched so far are fetched again. Non-positive steps
// leave the limit unchanged.
func (s *State) LoadMore(step int) Cycle {
	if step > 0 {
		s.limit += step
	}
	return s.Begin()
}

// Complete applies the result of cycle generation gen.
//
// Results of a superseded cycle are discarded and leave the loading flag
// untouched, since the newer cycle is still outstanding. For the latest
// cycle the loading flag is always cleared; on error the previous records
// are retained.
func (s *State) Complete(gen uint64, records []catalog.Pokemon, err error) Outcome {
	if gen != s.generation {
		return OutcomeStale
	}

	s.loading = false
	if err != nil {
		return OutcomeFailed
	}

	s.records = records
	return OutcomeApplied
}

// SetQuery stores the search query, lower-cased.
func (s *State) SetQuery(q string) {
	s.query = strings.ToLower(q)
}

// Visible returns the records matching the current query.
func (s State) Visible() []catalog.Pokemon {
	return Filter(s.records, s.query)
}

// Records returns the full current collection.
func (s State) Records() []catalog.Pokemon {
	return s.records
}

// Loading reports whether the latest cycle is outstanding.
func (s State) Loading() bool {
	return s.loading
}

// Limit returns the current page-size limit.
func (s State) Limit() int {
	return s.limit
}

// Query returns the lower-cased search query.
func (s State) Query() string {
	return s.query
}

// Generation returns the generation of the most recently begun cycle.
func (s State) Generation() uint64 {
	return s.generation
}
