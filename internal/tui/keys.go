package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab        key.Binding
	ShiftTab   key.Binding
	Quit       key.Binding
	Help       key.Binding
	StartPause key.Binding
	Reset      key.Binding
	Focus      key.Binding
	ShortBreak key.Binding
	LongBreak  key.Binding
	Settings   key.Binding

	AddGoal      key.Binding
	CompleteGoal key.Binding
	GoalUp       key.Binding
	GoalDown     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		StartPause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Focus: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "focus"),
		),
		ShortBreak: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "short break"),
		),
		LongBreak: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "long break"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		AddGoal: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "add goal"),
		),
		CompleteGoal: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "complete goal"),
		),
		GoalUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "prev goal"),
		),
		GoalDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next goal"),
		),
	}
}
