package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Refresh    key.Binding

	// Screen switching
	ViewOverview   key.Binding
	ViewTasks      key.Binding
	ViewPomodoro   key.Binding
	ViewMotivation key.Binding
	ViewWeather    key.Binding
	ViewLogs       key.Binding

	// Tasks
	NewTask    key.Binding
	ToggleTask key.Binding
	DeleteTask key.Binding
	Confirm    key.Binding
	Cancel     key.Binding

	// Pomodoro
	StartPause key.Binding
	Reset      key.Binding
	FocusMode  key.Binding
	BreakMode  key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next screen"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous screen"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh quote/weather"),
		),

		ViewOverview: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Overview"),
		),
		ViewTasks: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Tasks"),
		),
		ViewPomodoro: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Pomodoro"),
		),
		ViewMotivation: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Motivation"),
		),
		ViewWeather: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "Weather"),
		),
		ViewLogs: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "Logs"),
		),

		NewTask: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "Add task"),
		),
		ToggleTask: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "Toggle done"),
		),
		DeleteTask: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "Delete task"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),

		StartPause: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space/s", "Start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reset session"),
		),
		FocusMode: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Focus mode"),
		),
		BreakMode: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Break mode"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.ViewOverview, k.ViewTasks, k.ViewPomodoro, k.ViewMotivation, k.ViewWeather, k.ViewLogs},
		{k.NewTask, k.ToggleTask, k.DeleteTask, k.Up, k.Down},
		{k.StartPause, k.Reset, k.FocusMode, k.BreakMode},
		{k.Refresh, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
