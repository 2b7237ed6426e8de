package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/focushub/internal/logtail"
)

const (
	logRefreshInterval = 2 * time.Second
	logLineLimit       = 500
)

// logState holds the log pane state.
type logState struct {
	viewport viewport.Model
	lines    []string
	err      error
	follow   bool
	ticking  bool
}

type logLinesMsg struct {
	lines []string
	err   error
}

func (m *Model) initLogViewport() {
	m.logs.viewport = viewport.New(0, 0)
}

func (m *Model) resizeLogViewport() {
	m.logs.viewport.Width = m.width
	height := m.height - 4 // header, tabs, footer
	if height < 1 {
		height = 1
	}
	m.logs.viewport.Height = height
	m.renderLogContent()
}

func (m Model) refreshLogs() tea.Cmd {
	path := m.logPath
	if strings.TrimSpace(path) == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, logLineLimit)
		return logLinesMsg{lines: lines, err: err}
	}
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	m.logs.err = msg.err
	if msg.err == nil {
		m.logs.lines = msg.lines
	}
	m.renderLogContent()
}

func (m *Model) renderLogContent() {
	styles := m.theme.Styles()
	var b strings.Builder
	switch {
	case m.logs.err != nil:
		b.WriteString(styles.DangerText.Render("Error reading log: " + m.logs.err.Error()))
	case len(m.logs.lines) == 0:
		b.WriteString(styles.MutedText.Render("No log entries yet."))
	default:
		for i, line := range m.logs.lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(formatLogLine(styles, line))
		}
	}
	m.logs.viewport.SetContent(b.String())
	if m.logs.follow {
		m.logs.viewport.GotoBottom()
	}
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Bottom):
		m.logs.follow = true
		m.logs.viewport.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.logs.follow = false
		m.logs.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Up, m.keys.PageUp):
		m.logs.follow = false
	}
	var cmd tea.Cmd
	m.logs.viewport, cmd = m.logs.viewport.Update(msg)
	if m.logs.viewport.AtBottom() {
		m.logs.follow = true
	}
	return m, cmd
}

// formatLogLine renders one slog text record: short time, level, message,
// then faint key=value fields.
func formatLogLine(styles Styles, line string) string {
	entry := logtail.Parse(line)
	if entry.Level == "" && entry.Message == "" {
		return styles.MutedText.Render(line)
	}

	var b strings.Builder
	if ts := shortTime(entry.Time); ts != "" {
		b.WriteString(styles.FaintText.Render(ts))
		b.WriteByte(' ')
	}
	b.WriteString(styles.LevelStyle(entry.Level).Render(padRight(entry.Level, 5)))
	b.WriteByte(' ')
	b.WriteString(styles.Text.Render(entry.Message))
	for _, f := range entry.Fields {
		b.WriteByte(' ')
		b.WriteString(styles.MutedText.Render(f.Key + "=" + f.Value))
	}
	return b.String()
}

// shortTime trims an RFC 3339 timestamp to HH:MM:SS.
func shortTime(ts string) string {
	if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		return t.Format("15:04:05")
	}
	return ts
}
