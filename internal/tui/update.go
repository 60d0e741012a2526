package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/tui/components/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-8, 10), 60)
		m.taskList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tickMsg:
		return m, m.handleTick(msg)

	case tasklist.ToggleTaskMsg:
		m.toggleTask(msg.ID)
		return m, nil

	case tasklist.PostponeTaskMsg:
		m.postponeTask(msg.ID)
		return m, nil
	}

	if m.state == StateSettings {
		return m.updateSettings(msg)
	}
	if m.addingGoal {
		return m.updateGoalInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || (m.state == StateTasks && m.taskList.Filtering()) {
		if m.state == StateTasks {
			var cmd tea.Cmd
			m.taskList, cmd = m.taskList.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		m.machine.Close()
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		return m, nil
	}

	if m.state == StateTasks {
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(keyMsg)
		return m, cmd
	}
	return m.updateTimer(keyMsg)
}

func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.StartPause):
		return m, m.startOrPause()
	case key.Matches(msg, m.keys.Reset):
		m.machine.Reset()
	case key.Matches(msg, m.keys.Focus):
		m.machine.SwitchMode(models.ModeFocus)
	case key.Matches(msg, m.keys.ShortBreak):
		m.machine.SwitchMode(models.ModeShortBreak)
	case key.Matches(msg, m.keys.LongBreak):
		m.machine.SwitchMode(models.ModeLongBreak)
	case key.Matches(msg, m.keys.Settings):
		return m, m.openSettings()
	case key.Matches(msg, m.keys.AddGoal):
		return m, m.startGoal()
	case key.Matches(msg, m.keys.CompleteGoal):
		m.completeGoal(m.goalCursor)
	case key.Matches(msg, m.keys.GoalUp):
		m.moveGoalCursor(-1)
	case key.Matches(msg, m.keys.GoalDown):
		m.moveGoalCursor(1)
	}
	return m, nil
}

// updateGoalInput owns every key while a goal is being typed, so letters
// bound elsewhere reach the input.
func (m Model) updateGoalInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.addGoal(m.goalInput.Value())
			m.stopGoal()
			return m, nil
		case tea.KeyEsc:
			m.stopGoal()
			return m, nil
		case tea.KeyCtrlC:
			m.quitting = true
			m.machine.Close()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.goalInput, cmd = m.goalInput.Update(msg)
	return m, cmd
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applySettings()
		m.state = StateTimer
		m.form = nil
	case huh.StateAborted:
		m.state = StateTimer
		m.form = nil
	}
	return m, cmd
}
