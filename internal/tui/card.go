package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pokecatch/internal/catalog"
)

// Layout constants.
const (
	cardWidth      = 34
	cardGap        = 1
	cardFrameWidth = 4 // border + horizontal padding
	truncateSuffix = "..."
	missingValue   = "-"
)

// GridRow is one horizontal row of cards.
type GridRow struct {
	Records []catalog.Pokemon
}

// ColumnsFor returns how many cards fit side by side in width columns.
// At least one column is always returned.
func ColumnsFor(width int) int {
	cols := (width + cardGap) / (cardWidth + cardGap)
	return max(cols, 1)
}

// BuildGrid splits records into rows of cols cards, preserving order.
func BuildGrid(records []catalog.Pokemon, cols int) []GridRow {
	if cols < 1 {
		cols = 1
	}
	rows := make([]GridRow, 0, (len(records)+cols-1)/cols)
	for start := 0; start < len(records); start += cols {
		end := min(start+cols, len(records))
		rows = append(rows, GridRow{Records: records[start:end]})
	}
	return rows
}

// RenderGridRow renders the cards of row side by side.
func RenderGridRow(row GridRow, selected bool) string {
	cards := make([]string, 0, len(row.Records)*2)
	for i, p := range row.Records {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		cards = append(cards, RenderCard(p, selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// RenderCard renders a single record as a bordered card: name, height,
// weight, attack, first ability, base experience, type badges and artwork URL.
func RenderCard(p catalog.Pokemon, selected bool) string {
	inner := cardWidth - cardFrameWidth

	attack := missingValue
	if v, ok := p.Attack(); ok {
		attack = strconv.Itoa(v)
	}
	ability := missingValue
	if v, ok := p.PrimaryAbility(); ok {
		ability = v
	}
	artwork := missingValue
	if v, ok := p.Artwork(); ok {
		artwork = v
	}

	lines := []string{
		CardNameStyle.Render(truncate(DisplayName(p.Name), inner)),
		"",
		statLine("Height", FormatNumber(p.Height)),
		statLine("Weight", FormatNumber(p.Weight)),
		statLine("Attack", attack),
		statLine("Ability", truncate(ability, inner-len("Ability : ")-2)),
		statLine("Experience", FormatNumber(p.BaseExperience)),
		"",
		renderTypeBadges(p.TypeNames()),
		SubtleStyle.Render(truncate(artwork, inner)),
	}

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.Width(cardWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func statLine(label, value string) string {
	return StatBoxStyle.Render(label + " : " + value)
}

func renderTypeBadges(types []string) string {
	badges := make([]string, 0, len(types)*2)
	for i, t := range types {
		if i > 0 {
			badges = append(badges, " ")
		}
		badges = append(badges, TypeBadgeStyle(t).Render(t))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

// CardHeight returns the rendered height of one card row.
func CardHeight() int {
	return lipgloss.Height(RenderCard(catalog.Pokemon{}, false))
}

// RenderGrid renders all records as a static grid for width columns.
func RenderGrid(records []catalog.Pokemon, width int) string {
	rows := BuildGrid(records, ColumnsFor(width))
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = RenderGridRow(row, false)
	}
	return strings.Join(parts, "\n")
}
