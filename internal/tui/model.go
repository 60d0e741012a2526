package tui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/flowmind/internal/constants"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/recommender"
	"github.com/julianstephens/flowmind/internal/storage"
	"github.com/julianstephens/flowmind/internal/timer"
	"github.com/julianstephens/flowmind/internal/tui/components/tasklist"
)

type SessionState int

const (
	StateTimer SessionState = iota
	StateTasks
	StateSettings
)

// tabCount is the number of states reachable with tab.
const tabCount = 2

// Options wires the focus screen to the rest of the application.
type Options struct {
	Store       storage.Provider
	Recommender *recommender.Recommender
	// Notify delivers a desktop notification. It is called off the UI loop.
	Notify    func(text string)
	Now       func() time.Time
	Mode      models.TimerMode
	AutoStart bool
}

type tickMsg struct {
	id int
}

// completionLog buffers timer completions until Update renders them.
type completionLog struct {
	mu     sync.Mutex
	events []timer.Completion
}

func (l *completionLog) add(c timer.Completion) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, c)
}

func (l *completionLog) drain() []timer.Completion {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.events
	l.events = nil
	return out
}

type SettingsFormModel struct {
	Focus                  string
	ShortBreak             string
	LongBreak              string
	SessionsUntilLongBreak string
}

type Model struct {
	store       storage.Provider
	recommender *recommender.Recommender
	notify      func(string)
	now         func() time.Time

	machine     *timer.Machine
	ticker      *timer.ManualTicker
	completions *completionLog
	tickID      int
	tick        func(id int) tea.Cmd

	state        SessionState
	keys         KeyMap
	help         help.Model
	progress     progress.Model
	taskList     tasklist.Model
	form         *huh.Form
	settingsForm *SettingsFormModel

	// goals live only as long as the focus session screen.
	goals      []string
	goalCursor int
	goalInput  textinput.Model
	addingGoal bool

	checkin     *models.Checkin
	recommended []models.Task
	banner      string
	err         error
	quitting    bool
	width       int
	height      int
}

func NewModel(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rec := opts.Recommender
	if rec == nil {
		rec = recommender.New()
	}

	ticker := timer.NewManualTicker()
	events := &completionLog{}
	machine := timer.New(ticker, storage.NewSettingsStore(opts.Store))
	machine.OnComplete(events.add)
	if opts.Mode != "" {
		machine.SwitchMode(opts.Mode)
	}

	m := Model{
		store:       opts.Store,
		recommender: rec,
		notify:      opts.Notify,
		now:         now,
		machine:     machine,
		ticker:      ticker,
		completions: events,
		tick:        defaultTick,
		state:       StateTimer,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		taskList:    tasklist.New(nil, 0, 0),
		goalInput:   newGoalInput(),
	}
	m.refresh()

	if opts.AutoStart {
		machine.Start()
		m.tickID++
	}
	return m
}

func defaultTick(id int) tea.Cmd {
	return tea.Tick(constants.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// Machine exposes the underlying timer.
func (m Model) Machine() *timer.Machine {
	return m.machine
}

func (m Model) Init() tea.Cmd {
	if m.machine.State().Status == models.StatusRunning {
		return m.tick(m.tickID)
	}
	return nil
}

// refresh reloads tasks, today's check-in and the recommendations.
func (m *Model) refresh() {
	tasks, err := m.store.GetAllTasks()
	if err != nil {
		m.err = fmt.Errorf("failed to load tasks: %w", err)
		return
	}
	m.taskList.SetTasks(tasks)

	today := m.now().Format(constants.DateFormat)
	checkin, err := m.store.GetCheckin(today)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		m.checkin = nil
		m.recommended = nil
	case err != nil:
		m.err = fmt.Errorf("failed to load today's check-in: %w", err)
	default:
		m.checkin = &checkin
		m.recommended = m.recommender.Recommend(tasks, checkin.Emotion, checkin.Energy, constants.DefaultRecommendationLimit)
	}
}

// startOrPause toggles the timer and, when it starts running, begins a new
// tick chain. Ticks from earlier chains carry an old id and are dropped.
func (m *Model) startOrPause() tea.Cmd {
	switch m.machine.State().Status {
	case models.StatusRunning:
		m.machine.Pause()
		return nil
	case models.StatusPaused:
		m.machine.Resume()
	default:
		m.banner = ""
		m.machine.Start()
	}
	m.tickID++
	return m.tick(m.tickID)
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.id != m.tickID {
		return nil
	}
	m.ticker.Fire()

	var cmds []tea.Cmd
	for _, c := range m.completions.drain() {
		text := CompletionMessage(c)
		m.banner = text
		cmds = append(cmds, m.notifyCmd(text))
	}
	if m.machine.State().Status == models.StatusRunning {
		cmds = append(cmds, m.tick(m.tickID))
	}
	return tea.Batch(cmds...)
}

func (m Model) notifyCmd(text string) tea.Cmd {
	if m.notify == nil {
		return nil
	}
	notify := m.notify
	return func() tea.Msg {
		notify(text)
		return nil
	}
}

// CompletionMessage is the banner and notification text for c.
func CompletionMessage(c timer.Completion) string {
	if c.Mode != models.ModeFocus {
		return "Break is over. Ready to focus?"
	}
	if c.NextMode == models.ModeLongBreak {
		return fmt.Sprintf("Focus session %d complete. Time for a long break!", c.SessionsCompleted)
	}
	return fmt.Sprintf("Focus session %d complete. Time for a short break.", c.SessionsCompleted)
}

func (m *Model) toggleTask(id string) {
	task, err := m.store.GetTask(id)
	if err != nil {
		m.err = err
		return
	}
	task.ToggleComplete()
	if err := m.store.UpdateTask(task); err != nil {
		m.err = fmt.Errorf("failed to update task: %w", err)
		return
	}
	m.refresh()
}

func (m *Model) postponeTask(id string) {
	task, err := m.store.GetTask(id)
	if err != nil {
		m.err = err
		return
	}
	task.Postpone(m.now())
	if err := m.store.UpdateTask(task); err != nil {
		m.err = fmt.Errorf("failed to update task: %w", err)
		return
	}
	if task.PostponedCount > constants.PostponeWarningThreshold {
		m.banner = fmt.Sprintf("%q has been postponed %d times. Consider splitting it into smaller steps.", task.Title, task.PostponedCount)
	}
	m.refresh()
}

func newGoalInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "What do you want to get done?"
	in.Prompt = "Goal: "
	in.CharLimit = 120
	return in
}

func (m *Model) startGoal() tea.Cmd {
	m.addingGoal = true
	m.goalInput.Reset()
	return m.goalInput.Focus()
}

func (m *Model) stopGoal() {
	m.addingGoal = false
	m.goalInput.Blur()
	m.goalInput.Reset()
}

// addGoal appends a trimmed goal. Blank input is ignored.
func (m *Model) addGoal(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	m.goals = append(m.goals, text)
	return true
}

// completeGoal drops goal i, keeping the cursor on a valid row.
func (m *Model) completeGoal(i int) {
	if i < 0 || i >= len(m.goals) {
		return
	}
	m.goals = slices.Concat(m.goals[:i], m.goals[i+1:])
	m.goalCursor = min(m.goalCursor, max(len(m.goals)-1, 0))
}

func (m *Model) moveGoalCursor(delta int) {
	if len(m.goals) == 0 {
		return
	}
	m.goalCursor = min(max(m.goalCursor+delta, 0), len(m.goals)-1)
}

// Goals returns the open session goals in the order they were added.
func (m Model) Goals() []string {
	return slices.Clone(m.goals)
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return errors.New("enter a positive whole number")
	}
	return nil
}

func (m *Model) openSettings() tea.Cmd {
	s := m.machine.Settings()
	m.settingsForm = &SettingsFormModel{
		Focus:                  strconv.Itoa(s.FocusDuration),
		ShortBreak:             strconv.Itoa(s.ShortBreakDuration),
		LongBreak:              strconv.Itoa(s.LongBreakDuration),
		SessionsUntilLongBreak: strconv.Itoa(s.SessionsUntilLongBreak),
	}
	f := m.settingsForm
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Focus (minutes)").Value(&f.Focus).Validate(positiveInt),
			huh.NewInput().Title("Short break (minutes)").Value(&f.ShortBreak).Validate(positiveInt),
			huh.NewInput().Title("Long break (minutes)").Value(&f.LongBreak).Validate(positiveInt),
			huh.NewInput().Title("Sessions until long break").Value(&f.SessionsUntilLongBreak).Validate(positiveInt),
		),
	).WithTheme(huh.ThemeDracula())
	m.state = StateSettings
	return m.form.Init()
}

// applySettings saves the submitted form through the timer so an idle
// countdown picks up the new length at once.
func (m *Model) applySettings() {
	f := m.settingsForm
	parse := func(s string) *int {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil
		}
		return &n
	}
	err := m.machine.UpdateSettings(timer.SettingsUpdate{
		FocusDuration:          parse(f.Focus),
		ShortBreakDuration:     parse(f.ShortBreak),
		LongBreakDuration:      parse(f.LongBreak),
		SessionsUntilLongBreak: parse(f.SessionsUntilLongBreak),
	})
	if err != nil {
		m.err = err
		return
	}
	m.banner = "Settings saved."
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateTimer {
		keys = append(keys, m.keys.StartPause, m.keys.Reset, m.keys.AddGoal)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	if m.state != StateTimer {
		return [][]key.Binding{global}
	}
	timerKeys := []key.Binding{m.keys.StartPause, m.keys.Reset, m.keys.Settings}
	modes := []key.Binding{m.keys.Focus, m.keys.ShortBreak, m.keys.LongBreak}
	goals := []key.Binding{m.keys.AddGoal, m.keys.CompleteGoal, m.keys.GoalUp, m.keys.GoalDown}
	return [][]key.Binding{global, timerKeys, modes, goals}
}
