package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pokecatch/internal/catalog"
	"github.com/rshade/pokecatch/internal/catalog/catalogtest"
)

func TestNew(t *testing.T) {
	s := New(10)
	assert.Equal(t, 10, s.Limit())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Records())
	assert.Empty(t, s.Query())

	assert.Equal(t, 0, New(-5).Limit())
}

func TestBeginComplete_Applied(t *testing.T) {
	s := New(10)
	c := s.Begin()
	assert.True(t, s.Loading())
	assert.Equal(t, 10, c.Limit)

	outcome := s.Complete(c.Generation, catalogtest.Roster(10), nil)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.False(t, s.Loading())
	assert.Len(t, s.Records(), 10)
}

func TestComplete_FailureKeepsPreviousRecords(t *testing.T) {
	s := New(3)
	c := s.Begin()
	s.Complete(c.Generation, catalogtest.Roster(3), nil)
	before := s.Records()

	c = s.LoadMore(20)
	outcome := s.Complete(c.Generation, nil, errors.New("detail 7 failed"))

	assert.Equal(t, OutcomeFailed, outcome)
	assert.False(t, s.Loading(), "loading is cleared on failure")
	assert.Equal(t, before, s.Records())
	assert.Equal(t, 23, s.Limit())
}

func TestComplete_StaleCycleDiscarded(t *testing.T) {
	s := New(10)
	first := s.Begin()
	second := s.LoadMore(20)
	require.NotEqual(t, first.Generation, second.Generation)

	// The newer cycle finishes first.
	assert.Equal(t, OutcomeApplied, s.Complete(second.Generation, catalogtest.Roster(30), nil))

	// The older one finishing late must not overwrite it.
	assert.Equal(t, OutcomeStale, s.Complete(first.Generation, catalogtest.Roster(10), nil))
	assert.Len(t, s.Records(), 30)
	assert.False(t, s.Loading())
}

func TestComplete_StaleDoesNotClearLoading(t *testing.T) {
	s := New(10)
	first := s.Begin()
	s.LoadMore(20)

	assert.Equal(t, OutcomeStale, s.Complete(first.Generation, nil, errors.New("late failure")))
	assert.True(t, s.Loading(), "latest cycle is still outstanding")
}

func TestLoadMore_FullRefetch(t *testing.T) {
	s := New(10)
	c := s.Begin()
	s.Complete(c.Generation, catalogtest.Roster(10), nil)

	c = s.LoadMore(20)
	assert.Equal(t, 30, c.Limit, "the whole new limit is fetched, not the delta")

	c = s.LoadMore(0)
	assert.Equal(t, 30, c.Limit)
}

func TestSetQuery_LowerCases(t *testing.T) {
	s := New(1)
	s.SetQuery("PiKa")
	assert.Equal(t, "pika", s.Query())
}

func TestVisible(t *testing.T) {
	s := New(3)
	c := s.Begin()
	s.Complete(c.Generation, []catalog.Pokemon{
		{Name: "pikachu"}, {Name: "raichu"}, {Name: "bulbasaur"},
	}, nil)

	assert.Len(t, s.Visible(), 3)

	s.SetQuery("CHU")
	got := s.Visible()
	require.Len(t, got, 2)
	assert.Equal(t, "pikachu", got[0].Name)
	assert.Equal(t, "raichu", got[1].Name)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "applied", OutcomeApplied.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "stale", OutcomeStale.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}
