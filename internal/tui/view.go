package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/timer"
)

var modeTitles = map[string]string{
	"focus":      "Focus",
	"shortBreak": "Short Break",
	"longBreak":  "Long Break",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateTimer:
		content = m.viewTimer()
	case StateTasks:
		content = docStyle.Render(m.taskList.View())
	case StateSettings:
		content = docStyle.Render(m.form.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Timer", "Tasks"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTimer() string {
	state := m.machine.State()
	mode := string(state.Mode)

	var b strings.Builder
	b.WriteString(modeStyles[mode].Render(modeTitles[mode]))
	b.WriteString("\n")
	b.WriteString(clockStyle.Render(timer.FormatRemaining(state.RemainingSeconds)))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.machine.Progress()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s · %d session(s) completed", state.Status, state.SessionsCompleted)))
	b.WriteString("\n")

	b.WriteString("\n" + m.viewGoals())

	if m.banner != "" {
		b.WriteString("\n" + bannerStyle.Render(m.banner) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	if m.checkin == nil {
		b.WriteString(mutedStyle.Render("Check in with 'flowmind checkin' to get task suggestions."))
	} else if len(m.recommended) == 0 {
		b.WriteString(mutedStyle.Render("No pending tasks. Enjoy the focus time."))
	} else {
		b.WriteString(fmt.Sprintf("Recommended (feeling %s, %s energy):\n", m.checkin.Emotion, m.checkin.Energy))
		for i, t := range m.recommended {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, cli.FormatTask(t)))
		}
	}

	return docStyle.Render(b.String())
}

func (m Model) viewGoals() string {
	var b strings.Builder
	b.WriteString("Session goals:\n")
	if len(m.goals) == 0 && !m.addingGoal {
		b.WriteString(mutedStyle.Render("  No goals yet. Press g to add one."))
		b.WriteString("\n")
	}
	for i, g := range m.goals {
		cursor := "  "
		if i == m.goalCursor && !m.addingGoal {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s[ ] %s\n", cursor, g))
	}
	if m.addingGoal {
		b.WriteString("  " + m.goalInput.View() + "\n")
	}
	return b.String()
}
