package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one item. selected is true for the item under the cursor.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a windowed list over items of type T.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// selected is the index of the item under the cursor (0-based).
	selected int

	// offset is the index of the first item in the window.
	offset int

	// size is the number of items the window shows at once.
	size int
}

// New creates a list showing size items at a time.
func New[T any](items []T, size int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		size:       max(size, 1),
	}
	m.clamp()
	return m
}

// HandleKey moves the selection for the navigation keys it knows.
// It reports whether the key was consumed.
func (m *Model[T]) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		m.SetSelected(m.selected - 1)
	case "down", "j":
		m.SetSelected(m.selected + 1)
	case "pgup":
		m.SetSelected(m.selected - m.size)
	case "pgdown":
		m.SetSelected(m.selected + m.size)
	case "home", "g":
		m.SetSelected(0)
	case "end", "G":
		m.SetSelected(len(m.items) - 1)
	default:
		return false
	}
	return true
}

// View renders the items inside the window, one after another.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	end := min(m.offset+m.size, len(m.items))
	parts := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		parts = append(parts, m.renderFunc(m.items[i], i == m.selected))
	}
	return strings.Join(parts, "\n")
}

// SetItems replaces the items, keeping the selection index where possible.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.clamp()
}

// SetSize changes how many items the window shows.
func (m *Model[T]) SetSize(size int) {
	m.size = max(size, 1)
	m.clamp()
}

// SetSelected moves the cursor, capping to valid bounds, and scrolls the
// window so the cursor stays visible.
func (m *Model[T]) SetSelected(index int) {
	m.selected = index
	m.clamp()
}

// clamp restores the invariants offset <= selected < offset+size and
// 0 <= selected < len(items).
func (m *Model[T]) clamp() {
	if len(m.items) == 0 {
		m.selected, m.offset = 0, 0
		return
	}

	m.selected = min(max(m.selected, 0), len(m.items)-1)

	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+m.size {
		m.offset = m.selected - m.size + 1
	}
	// Do not leave empty space at the bottom when items were removed.
	m.offset = max(min(m.offset, len(m.items)-m.size), 0)
}

// ItemCount returns the total number of items in the list.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the selected item index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// Size returns the number of items the window shows.
func (m *Model[T]) Size() int {
	return m.size
}
