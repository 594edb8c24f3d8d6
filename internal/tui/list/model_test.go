package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(item int, selected bool) string {
	if selected {
		return fmt.Sprintf("> %d", item)
	}
	return fmt.Sprintf("  %d", item)
}

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestNew_Empty(t *testing.T) {
	m := New[int](nil, 3, render)
	assert.Equal(t, 0, m.ItemCount())
	assert.Empty(t, m.View())
	assert.Equal(t, 0, m.Selected())
}

func TestView_RendersWindowOnly(t *testing.T) {
	m := New(ints(10), 3, render)
	lines := strings.Split(m.View(), "\n")
	assert.Equal(t, []string{"> 0", "  1", "  2"}, lines)
}

func TestNavigation_ScrollsMinimally(t *testing.T) {
	m := New(ints(10), 3, render)

	for range 3 {
		m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 3, m.Selected())
	assert.Equal(t, 1, m.offset)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 2, m.Selected())
	assert.Equal(t, 1, m.offset)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 9, m.Selected())
	assert.Equal(t, 7, m.offset)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 6, m.Selected())

	m.HandleKey(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.offset)
}

func TestNavigation_Bounds(t *testing.T) {
	m := New(ints(4), 2, render)
	m.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected())

	m.HandleKey(tea.KeyMsg{Type: tea.KeyPgDown})
	m.HandleKey(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 3, m.Selected())
}

func TestHandleKey_ReportsConsumption(t *testing.T) {
	m := New(ints(4), 2, render)
	assert.True(t, m.HandleKey(tea.KeyMsg{Type: tea.KeyDown}))
	assert.False(t, m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}))
}

func TestSetItems_ClampsSelection(t *testing.T) {
	m := New(ints(10), 3, render)
	m.SetSelected(8)
	require.Equal(t, 8, m.Selected())

	m.SetItems(ints(4))
	assert.Equal(t, 3, m.Selected())
	assert.Equal(t, 1, m.offset)
	assert.Equal(t, 3, m.items[m.Selected()])

	m.SetItems(nil)
	assert.Equal(t, 0, m.Selected())
	assert.Empty(t, m.View())
}

func TestSetSize(t *testing.T) {
	m := New(ints(10), 5, render)
	m.SetSelected(4)
	m.SetSize(2)
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, 3, m.offset)

	m.SetSize(0)
	assert.Equal(t, 1, m.Size())
}
