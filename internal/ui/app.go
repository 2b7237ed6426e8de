package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/focushub/internal/pomodoro"
	"github.com/five82/focushub/internal/prefs"
	"github.com/five82/focushub/internal/quote"
	"github.com/five82/focushub/internal/resource"
	"github.com/five82/focushub/internal/tasks"
	"github.com/five82/focushub/internal/weather"
)

// Screen is one of the top-level tabs.
type Screen int

const (
	ScreenOverview Screen = iota
	ScreenTasks
	ScreenPomodoro
	ScreenMotivation
	ScreenWeather
	ScreenLogs
)

var screenNames = []string{"overview", "tasks", "pomodoro", "motivation", "weather", "logs"}

var screenTitles = []string{"Overview", "Tasks", "Pomodoro", "Motivation", "Weather", "Logs"}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return screenNames[0]
	}
	return screenNames[s]
}

// Title is the tab label.
func (s Screen) Title() string {
	if s < 0 || int(s) >= len(screenTitles) {
		return screenTitles[0]
	}
	return screenTitles[s]
}

// ParseScreen resolves a stored screen name, defaulting to the overview.
func ParseScreen(name string) Screen {
	for i, n := range screenNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Screen(i)
		}
	}
	return ScreenOverview
}

const overviewTaskCount = 3

// Options configures the UI.
type Options struct {
	Context context.Context
	Timer   *pomodoro.Timer
	Tasks   *tasks.List
	Quote   *resource.Resource[quote.Quote]
	Weather *resource.Resource[weather.Report]

	LogPath   string
	ThemeName string
	Screen    string
	PrefsPath string
	Logger    *slog.Logger
}

// Model is the root application state for Bubble Tea. Store contents are
// never copied into the model; views read the stores directly.
type Model struct {
	ctx       context.Context
	timer     *pomodoro.Timer
	tasks     *tasks.List
	quote     *resource.Resource[quote.Quote]
	weather   *resource.Resource[weather.Report]
	logPath   string
	prefsPath string
	logger    *slog.Logger

	keys   keyMap
	theme  Theme
	screen Screen
	width  int
	height int
	ready  bool

	showHelp bool

	// Tasks screen
	cursor  int
	editing bool
	input   textinput.Model

	spinner spinner.Model
	bar     progress.Model
	help    help.Model

	logs logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 200
	input.Prompt = "> "

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	theme := GetTheme(opts.ThemeName)
	m := Model{
		ctx:       ctx,
		timer:     opts.Timer,
		tasks:     opts.Tasks,
		quote:     opts.Quote,
		weather:   opts.Weather,
		logPath:   opts.LogPath,
		prefsPath: prefsPath,
		logger:    logger,
		keys:      DefaultKeyMap(),
		theme:     theme,
		screen:    ParseScreen(opts.Screen),
		input:     input,
		spinner:   spin,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:      help.New(),
		logs:      logState{follow: true},
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.screen == ScreenLogs {
		cmds = append(cmds, m.refreshLogs(), logTickCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initLogViewport()
		}
		m.ready = true
		m.resize()
		return m, nil

	case storeChangedMsg:
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logTickMsg:
		if m.screen != ScreenLogs {
			m.logs.ticking = false
			return m, nil
		}
		return m, tea.Batch(m.refreshLogs(), logTickCmd())

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

func (m *Model) resize() {
	barWidth := m.width - 12
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}
	m.bar.Width = barWidth
	m.input.Width = barWidth
	m.help.Width = m.width
	m.resizeLogViewport()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleInputKey(msg)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		return m.setScreen((m.screen + 1) % Screen(len(screenNames)))
	case key.Matches(msg, m.keys.ShiftTab):
		return m.setScreen((m.screen + Screen(len(screenNames)) - 1) % Screen(len(screenNames)))
	case key.Matches(msg, m.keys.ViewOverview):
		return m.setScreen(ScreenOverview)
	case key.Matches(msg, m.keys.ViewTasks):
		return m.setScreen(ScreenTasks)
	case key.Matches(msg, m.keys.ViewPomodoro):
		return m.setScreen(ScreenPomodoro)
	case key.Matches(msg, m.keys.ViewMotivation):
		return m.setScreen(ScreenMotivation)
	case key.Matches(msg, m.keys.ViewWeather):
		return m.setScreen(ScreenWeather)
	case key.Matches(msg, m.keys.ViewLogs):
		return m.setScreen(ScreenLogs)
	case key.Matches(msg, m.keys.Refresh):
		m.refreshResources()
		return m, nil
	}

	switch m.screen {
	case ScreenTasks:
		return m.handleTasksKey(msg)
	case ScreenPomodoro, ScreenOverview:
		return m.handlePomodoroKey(msg)
	case ScreenLogs:
		return m.handleLogsKey(msg)
	}
	return m, nil
}

func (m Model) setScreen(screen Screen) (tea.Model, tea.Cmd) {
	m.screen = screen
	if screen != ScreenLogs || m.logs.ticking {
		return m, nil
	}
	m.logs.ticking = true
	return m, tea.Batch(m.refreshLogs(), logTickCmd())
}

// refreshResources re-fetches whatever the current screen shows.
func (m Model) refreshResources() {
	switch m.screen {
	case ScreenMotivation:
		if m.quote != nil {
			m.quote.Refresh(m.ctx)
		}
	case ScreenWeather:
		if m.weather != nil {
			m.weather.Refresh(m.ctx)
		}
	case ScreenOverview:
		if m.quote != nil {
			m.quote.Refresh(m.ctx)
		}
		if m.weather != nil {
			m.weather.Refresh(m.ctx)
		}
	}
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.tasks != nil && m.tasks.Add(m.input.Value()) {
			m.cursor = len(m.tasks.Tasks()) - 1
		}
		m.stopEditing()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		m.savePrefs()
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Reset()
	m.input.Blur()
}

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tasks == nil {
		return m, nil
	}
	items := m.tasks.Tasks()
	switch {
	case key.Matches(msg, m.keys.NewTask):
		m.editing = true
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(items) - 1
	case key.Matches(msg, m.keys.ToggleTask):
		if m.cursor >= 0 && m.cursor < len(items) {
			m.tasks.Toggle(items[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.DeleteTask):
		if m.cursor >= 0 && m.cursor < len(items) {
			m.tasks.Delete(items[m.cursor].ID)
		}
	}
	m.clampCursor()
	return m, nil
}

func (m Model) handlePomodoroKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.timer == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.StartPause):
		m.timer.StartPause()
	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()
	case key.Matches(msg, m.keys.FocusMode):
		m.timer.SetMode(pomodoro.Focus)
	case key.Matches(msg, m.keys.BreakMode):
		m.timer.SetMode(pomodoro.Break)
	}
	return m, nil
}

func (m *Model) clampCursor() {
	if m.tasks == nil {
		m.cursor = 0
		return
	}
	n := len(m.tasks.Tasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Screen: m.screen.String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

// Messages

type storeChangedMsg struct{}

type logTickMsg time.Time

// Commands

func logTickCmd() tea.Cmd {
	return tea.Tick(logRefreshInterval, func(t time.Time) tea.Msg {
		return logTickMsg(t)
	})
}

// Run starts the Bubble Tea program and keeps it in sync with the stores
// until the user quits or ctx is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))

	b := newBridge(p.Send)
	defer b.close()
	if opts.Timer != nil {
		defer opts.Timer.Subscribe(b.notify)()
	}
	if opts.Tasks != nil {
		defer opts.Tasks.Subscribe(b.notify)()
	}
	if opts.Quote != nil {
		defer opts.Quote.Subscribe(b.notify)()
	}
	if opts.Weather != nil {
		defer opts.Weather.Subscribe(b.notify)()
	}

	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}
