package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style used for a status everywhere in the CLI.
func StatusStyle(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusWorking:
		return StyleGreen
	case domain.StatusOnBreak:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored pill such as "● WORKING".
func StatusIndicator(s domain.Status) string {
	label := strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
	if label == "" {
		label = "UNKNOWN"
	}
	return StatusStyle(s).Render("● " + label)
}

// KindLabel renders an event kind in its own color.
func KindLabel(k domain.EventKind) string {
	switch k {
	case domain.EventWorkStart:
		return StyleGreen.Render(string(k))
	case domain.EventWorkEnd:
		return StyleBlue.Render(string(k))
	case domain.EventBreakStart, domain.EventBreakEnd:
		return StyleYellow.Render(string(k))
	default:
		return StyleRed.Render(string(k) + "?")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
