package tui

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// DisplayName capitalises each hyphen- or space-separated word of a catalog
// name: "mr-mime" becomes "Mr-Mime".
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

// truncate shortens s to maxLen runes, ending in an ellipsis.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 || len(r) <= maxLen {
		return s
	}
	if maxLen <= len(truncateSuffix) {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-len(truncateSuffix)]) + truncateSuffix
}
