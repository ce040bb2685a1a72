package cli

import (
	"strings"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func punchclockHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

var kindTitles = map[domain.EventKind]string{
	domain.EventWorkStart:  "Start working",
	domain.EventWorkEnd:    "Stop working",
	domain.EventBreakStart: "Start a break",
	domain.EventBreakEnd:   "End the break",
}

func kindOptions(kinds []domain.EventKind) []huh.Option[domain.EventKind] {
	opts := make([]huh.Option[domain.EventKind], 0, len(kinds))
	for _, k := range kinds {
		title, ok := kindTitles[k]
		if !ok {
			title = strings.ReplaceAll(string(k), "_", " ")
		}
		opts = append(opts, huh.NewOption(title, k))
	}
	return opts
}

// punchForm asks which of the next well-formed events to record. kind is
// preselected to the first option.
func punchForm(status domain.Status, next []domain.EventKind, kind *domain.EventKind, note *string) *huh.Form {
	if len(next) > 0 && *kind == "" {
		*kind = next[0]
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.EventKind]().
				Title("Punch").
				Description("Currently " + strings.ReplaceAll(string(status), "_", " ")).
				Options(kindOptions(next)...).
				Value(kind),
			huh.NewInput().
				Title("Note").
				Placeholder("optional").
				Value(note),
		),
	).WithTheme(punchclockHuhTheme()).WithShowHelp(false)
}
