package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("15")  // White
	ColorValue     = lipgloss.Color("15")  // White
	ColorMuted     = lipgloss.Color("240") // Dark gray
	ColorHighlight = lipgloss.Color("220") // Yellow
	ColorAccent    = lipgloss.Color("33")  // Blue
	ColorBorder    = lipgloss.Color("238")
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are immutable values shared by all views.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorHeader).
			Bold(true).
			Align(lipgloss.Center)

	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorAccent)

	SearchStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorHighlight).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			Align(lipgloss.Center)

	SelectedCardStyle = CardStyle.BorderForeground(ColorHighlight)

	CardNameStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)

	StatBoxStyle = lipgloss.NewStyle().
			Foreground(ColorValue).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	LoadMoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 2)
)

// TypeBadge names the background and foreground used for one type.
type TypeBadge struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
}

// Known type badges. Anything else uses defaultTypeBadge.
const (
	typeElectric = "electric"
	typeFire     = "fire"
	typeWater    = "water"
	typeGrass    = "grass"
	typePoison   = "poison"
	typeNormal   = "normal"
)

//nolint:gochecknoglobals // Immutable lookup value.
var defaultTypeBadge = TypeBadge{Background: lipgloss.Color("244"), Foreground: lipgloss.Color("15")}

// TypeBadgeFor returns the badge colors for a type name.
func TypeBadgeFor(typeName string) TypeBadge {
	switch typeName {
	case typeElectric:
		return TypeBadge{Background: lipgloss.Color("226"), Foreground: lipgloss.Color("0")}
	case typeFire:
		return TypeBadge{Background: lipgloss.Color("196"), Foreground: lipgloss.Color("15")}
	case typeWater:
		return TypeBadge{Background: lipgloss.Color("27"), Foreground: lipgloss.Color("15")}
	case typeGrass:
		return TypeBadge{Background: lipgloss.Color("34"), Foreground: lipgloss.Color("15")}
	case typePoison:
		return TypeBadge{Background: lipgloss.Color("91"), Foreground: lipgloss.Color("15")}
	case typeNormal:
		return TypeBadge{Background: lipgloss.Color("250"), Foreground: lipgloss.Color("0")}
	default:
		return defaultTypeBadge
	}
}

// TypeBadgeStyle returns the rendered style for a type badge.
func TypeBadgeStyle(typeName string) lipgloss.Style {
	b := TypeBadgeFor(typeName)
	return lipgloss.NewStyle().
		Background(b.Background).
		Foreground(b.Foreground).
		Bold(true).
		Padding(0, 1)
}
