package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	titleText   = "Let's Catch Pokémon"
	loadingText = "Loading Pokémon..."
	emptyText   = "No Pokémon match your search."
)

// View renders the current screen (Bubble Tea interface).
func (m CatalogModel) View() string {
	switch m.viewState {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return m.renderLoadingView()
	case ViewStateGrid:
		return m.renderGridView()
	default:
		return ""
	}
}

// renderLoadingView renders the spinner centered on screen.
func (m CatalogModel) renderLoadingView() string {
	lines := []string{m.spinner.View() + " " + HeaderStyle.Render(loadingText)}
	if label := m.progressLabel(); label != "" {
		lines = append(lines, SubtleStyle.Render(label))
	}
	lines = append(lines, SubtleStyle.Render("q: quit  m: load more"))

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// renderGridView renders title, search box, cards, load more and status bar.
func (m CatalogModel) renderGridView() string {
	sections := []string{
		TitleStyle.Width(m.width).Render(titleText),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, SearchStyle.Render(m.search.View())),
	}

	if m.grid.ItemCount() == 0 {
		sections = append(sections, SubtleStyle.Render(emptyText))
	} else {
		sections = append(sections, m.grid.View())
	}

	sections = append(sections,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			LoadMoreStyle.Render(fmt.Sprintf("Load More (+%d)", m.step))),
		m.renderStatusBar(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatusBar displays counts and key hints.
func (m CatalogModel) renderStatusBar() string {
	var parts []string

	showing := fmt.Sprintf("Showing %d of %d", m.VisibleCount(), len(m.state.Records()))
	if q := m.state.Query(); q != "" {
		showing += fmt.Sprintf(" matching %q", q)
	}
	parts = append(parts, showing, fmt.Sprintf("limit %d", m.state.Limit()))

	if rows := m.grid.ItemCount(); rows > m.grid.Size() {
		parts = append(parts, fmt.Sprintf("row %d/%d", m.grid.Selected()+1, rows))
	}

	hints := "/: search  m: load more  r: reload  ↑/↓: scroll  q: quit"
	if m.searching {
		hints = "type to filter  enter/esc: done"
	}
	parts = append(parts, hints)

	return SubtleStyle.Render(strings.Join(parts, " | "))
}
