package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/contract"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type watchKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var watchKeys = watchKeyMap{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type watchLoadedMsg struct {
	status  *contract.StatusResponse
	summary *contract.SummaryResponse
	err     error
}

type watchTickMsg time.Time

// watchModel polls the status and summary services on a fixed interval.
type watchModel struct {
	app   *App
	every time.Duration

	status  *contract.StatusResponse
	summary *contract.SummaryResponse
	err     error
	loaded  int

	help  help.Model
	width int
}

func newWatchModel(app *App, every time.Duration) *watchModel {
	return &watchModel{app: app, every: every, help: help.New()}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

func (m *watchModel) tick() tea.Cmd {
	return tea.Tick(m.every, func(t time.Time) tea.Msg { return watchTickMsg(t) })
}

func (m *watchModel) load() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		status, err := app.Status.GetStatus(ctx, statusRequest(app))
		if err != nil {
			return watchLoadedMsg{err: err}
		}
		req := contract.NewSummaryRequest(app.Subject)
		req.Now = &status.GeneratedAt
		summary, err := app.Summary.GetSummary(ctx, req)
		if err != nil {
			return watchLoadedMsg{err: err}
		}
		return watchLoadedMsg{status: status, summary: summary}
	}
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case watchLoadedMsg:
		m.loaded++
		m.err = msg.err
		if msg.err == nil {
			m.status = msg.status
			m.summary = msg.summary
		}
		return m, nil
	case watchTickMsg:
		return m, tea.Batch(m.load(), m.tick())
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, watchKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, watchKeys.Refresh):
			return m, m.load()
		}
	}
	return m, nil
}

func (m *watchModel) View() string {
	var b strings.Builder

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.status == nil:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	default:
		b.WriteString(m.renderBody())
	}

	b.WriteString("\n" + m.help.View(watchKeys))
	return b.String()
}

func (m *watchModel) renderBody() string {
	var b strings.Builder
	status := m.status
	loc := m.app.location()

	b.WriteString(formatter.KeyValue("Subject", formatter.Bold(status.Subject)))
	b.WriteString(formatter.KeyValue("Status", formatter.StatusIndicator(status.Status)))
	if status.OpenSince != nil {
		b.WriteString(formatter.KeyValue("Since", formatter.Clock(*status.OpenSince, loc)))
	}

	now := status.GeneratedAt
	report := m.summary.Report
	b.WriteString(formatter.KeyValue("Today", formatter.FormatDuration(status.ActiveToday)))
	b.WriteString(formatter.KeyValue("This week", formatter.FormatDuration(currentBucket(report.Weekly, now))))
	b.WriteString(formatter.KeyValue("This month", formatter.FormatDuration(currentBucket(report.Monthly, now))))
	b.WriteString(formatter.KeyValue("Updated", formatter.Dim(fmt.Sprintf("%s, every %s", formatter.Clock(now, loc), m.every))))

	return formatter.RenderBox("Punchclock", b.String()) + "\n"
}

// currentBucket returns the total of the bucket containing now, or zero.
func currentBucket(buckets []domain.BucketTotal, now time.Time) time.Duration {
	for _, bucket := range buckets {
		if !now.Before(bucket.Start) && now.Before(bucket.End) {
			return bucket.Total
		}
	}
	return 0
}
