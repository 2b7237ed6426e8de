package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/focushub/internal/pomodoro"
	"github.com/five82/focushub/internal/quote"
	"github.com/five82/focushub/internal/resource"
	"github.com/five82/focushub/internal/tasks"
	"github.com/five82/focushub/internal/weather"
)

const logo = "◉ FocusHub"

// renderMain renders the header, the active screen and the footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	left := styles.Logo.Render(logo)
	right := ""
	if m.timer != nil {
		s := m.timer.Snapshot()
		right = m.modeStyle(s.Mode).Render(s.Mode.Label()+" "+s.Clock()) + " " + runningLabel(styles, s)
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	tabs := make([]string, 0, len(screenTitles))
	for i := range screenTitles {
		screen := Screen(i)
		label := fmt.Sprintf("%d %s", i+1, screen.Title())
		if screen == m.screen {
			tabs = append(tabs, styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.Render(m.help.View(m.keys))
}

func (m Model) renderContent() string {
	switch m.screen {
	case ScreenTasks:
		return m.renderTasks()
	case ScreenPomodoro:
		return m.renderPomodoro()
	case ScreenMotivation:
		return m.renderMotivation()
	case ScreenWeather:
		return m.renderWeather()
	case ScreenLogs:
		return m.logs.viewport.View()
	default:
		return m.renderOverview()
	}
}

func (m Model) renderOverview() string {
	styles := m.theme.Styles()

	var timer strings.Builder
	timer.WriteString(styles.Title.Render("Session"))
	timer.WriteString("\n")
	if m.timer != nil {
		s := m.timer.Snapshot()
		timer.WriteString(m.modeStyle(s.Mode).Bold(true).Render(s.Clock()))
		timer.WriteString("  ")
		timer.WriteString(styles.MutedText.Render(s.Mode.Label()))
		timer.WriteString("  ")
		timer.WriteString(runningLabel(styles, s))
	}

	var top strings.Builder
	top.WriteString(styles.Title.Render("Up next"))
	top.WriteString("\n")
	if m.tasks != nil {
		next := m.tasks.Top(overviewTaskCount)
		if len(next) == 0 {
			top.WriteString(styles.MutedText.Render("Nothing pending."))
		}
		for i, t := range next {
			if i > 0 {
				top.WriteString("\n")
			}
			top.WriteString(styles.Text.Render("• " + truncate(t.Title, m.titleLimit())))
		}
		top.WriteString("\n")
		top.WriteString(m.renderTaskProgress())
	}

	sections := []string{
		styles.Panel.Render(timer.String()),
		styles.Panel.Render(top.String()),
		styles.Panel.Render(styles.Title.Render("Motivation") + "\n" + m.quoteBody()),
		styles.Panel.Render(styles.Title.Render("Weather") + "\n" + m.weatherBody()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTasks() string {
	styles := m.theme.Styles()
	if m.tasks == nil {
		return styles.MutedText.Render("Tasks unavailable.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Tasks"))
	b.WriteString("\n")
	b.WriteString(m.renderTaskProgress())
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	items := m.tasks.Tasks()
	if len(items) == 0 {
		b.WriteString(styles.MutedText.Render("No tasks yet. Press a to add one."))
		return b.String()
	}
	for i, t := range items {
		line := taskLine(t, m.titleLimit())
		switch {
		case i == m.cursor && !m.editing:
			line = styles.Selected.Render(line)
		case t.Completed:
			line = styles.FaintText.Strikethrough(true).Render(line)
		default:
			line = styles.Text.Render(line)
		}
		b.WriteString(line)
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func taskLine(t tasks.Task, limit int) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	return box + " " + truncate(t.Title, limit)
}

func (m Model) titleLimit() int {
	if m.width <= 12 {
		return 0
	}
	return m.width - 8
}

func (m Model) renderTaskProgress() string {
	styles := m.theme.Styles()
	done, total := m.tasks.Counts()
	pct := m.tasks.Progress()
	return m.bar.ViewAs(float64(pct)/100) + " " +
		styles.MutedText.Render(fmt.Sprintf("%d%% (%d/%d)", pct, done, total))
}

func (m Model) renderPomodoro() string {
	styles := m.theme.Styles()
	if m.timer == nil {
		return styles.MutedText.Render("Timer unavailable.")
	}
	s := m.timer.Snapshot()

	clock := styles.Clock.
		Foreground(lipgloss.Color(m.modeColor(s.Mode))).
		BorderForeground(lipgloss.Color(m.modeColor(s.Mode))).
		Render(s.Clock())

	var b strings.Builder
	b.WriteString(styles.Title.Render(s.Mode.Label() + " session"))
	b.WriteString("  ")
	b.WriteString(runningLabel(styles, s))
	b.WriteString("\n")
	b.WriteString(clock)
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.timer.Progress()))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("space start/pause · R reset · f focus · b break"))
	return b.String()
}

func (m Model) renderMotivation() string {
	styles := m.theme.Styles()
	return styles.Panel.Render(styles.Title.Render("Motivation") + "\n\n" + m.quoteBody() + "\n\n" +
		styles.MutedText.Render("r for another quote"))
}

func (m Model) renderWeather() string {
	styles := m.theme.Styles()
	return styles.Panel.Render(styles.Title.Render("Weather") + "\n\n" + m.weatherBody() + "\n\n" +
		styles.MutedText.Render("r to refresh"))
}

func (m Model) quoteBody() string {
	styles := m.theme.Styles()
	if m.quote == nil {
		return styles.MutedText.Render("Quotes unavailable.")
	}
	return renderResource(styles, m.spinner.View(), m.quote.Snapshot(), func(q quote.Quote) string {
		return styles.Text.Italic(true).Render("“"+q.Content+"”") + "\n" +
			styles.MutedText.Render("— "+q.Author)
	})
}

func (m Model) weatherBody() string {
	styles := m.theme.Styles()
	if m.weather == nil {
		return styles.MutedText.Render("Weather unavailable.")
	}
	return renderResource(styles, m.spinner.View(), m.weather.Snapshot(), func(r weather.Report) string {
		return styles.Text.Bold(true).Render(r.Temp()) + " " +
			styles.Text.Render(r.Condition.String()) + "\n" +
			styles.MutedText.Render(r.City)
	})
}

// renderResource shows the last value when there is one, a spinner while a
// fetch runs and the error message after a failure.
func renderResource[T any](styles Styles, spin string, s resource.State[T], render func(T) string) string {
	var parts []string
	if s.HasValue {
		parts = append(parts, render(s.Value))
		if !s.UpdatedAt.IsZero() && !s.IsLoading {
			parts = append(parts, styles.FaintText.Render("updated "+humanizeAge(time.Since(s.UpdatedAt))))
		}
	}
	if s.IsLoading {
		label := "Loading..."
		if s.HasValue {
			label = "Refreshing..."
		}
		parts = append(parts, spin+" "+styles.MutedText.Render(label))
	}
	if s.Err != "" {
		parts = append(parts, styles.DangerText.Render(s.Err))
	}
	if len(parts) == 0 {
		return styles.MutedText.Render("Press r to load.")
	}
	return strings.Join(parts, "\n")
}

func (m Model) modeColor(mode pomodoro.Mode) string {
	if mode == pomodoro.Break {
		return m.theme.BreakMode
	}
	return m.theme.FocusMode
}

func (m Model) modeStyle(mode pomodoro.Mode) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.modeColor(mode)))
}

func runningLabel(styles Styles, s pomodoro.State) string {
	if s.IsRunning {
		return styles.SuccessText.Render("▶ running")
	}
	return styles.MutedText.Render("⏸ paused")
}
