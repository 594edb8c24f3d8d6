package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain prints an unstyled table (pipes, CI, NO_COLOR).
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints a lipgloss-styled card grid once.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen TUI.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks a mode for the current process.
// forcePlain and noColor come from flags; NO_COLOR and TERM=dumb are honoured
// too. The interactive TUI needs both stdin and stdout to be terminals.
func DetectOutputMode(forcePlain, noColor, noInteractive bool) OutputMode {
	return detectOutputMode(forcePlain, noColor, noInteractive,
		isTerminal(os.Stdin), isTerminal(os.Stdout), os.LookupEnv)
}

func detectOutputMode(
	forcePlain, noColor, noInteractive bool,
	stdinTTY, stdoutTTY bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if forcePlain || !stdoutTTY {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok || noColor {
		return OutputModePlain
	}
	if v, _ := lookupEnv("TERM"); v == "dumb" {
		return OutputModePlain
	}
	if noInteractive || !stdinTTY {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
