// Package ui provides optional terminal interfaces.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nibzard/schedule-go/internal/config"
	"github.com/nibzard/schedule-go/internal/hooks"
	"github.com/nibzard/schedule-go/internal/logging"
	"github.com/nibzard/schedule-go/internal/scheddir"
	"github.com/nibzard/schedule-go/internal/schedule"
	"github.com/nibzard/schedule-go/internal/task"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

type tuiConfig struct {
	now      func() time.Time
	logger   *log.Logger
	interval time.Duration
}

// WithClock sets the clock used for overdue and due-today markers.
func WithClock(now func() time.Time) TUIOption {
	return func(c *tuiConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger handed to the schedule.
func WithLogger(logger *log.Logger) TUIOption {
	return func(c *tuiConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRefreshInterval sets how often the file is re-read.
func WithRefreshInterval(d time.Duration) TUIOption {
	return func(c *tuiConfig) {
		if d > 0 {
			c.interval = d
		}
	}
}

// RunTUI starts the schedule viewer on the file at path.
func RunTUI(ctx context.Context, cfg *config.Config, path string, opts ...TUIOption) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(ctx, cfg, path, opts...)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// filter selects which tasks the list shows.
type filter int

const (
	filterAll filter = iota
	filterPending
	filterOverdue
	filterToday
	filterCompleted
	filterRecurring
)

var filterNames = [...]string{"all", "pending", "overdue", "due today", "completed", "recurring"}

func (f filter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return "unknown"
	}
	return filterNames[f]
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	todayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	doneStyle    = lipgloss.NewStyle().Faint(true)
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

type tuiModel struct {
	ctx      context.Context
	cfg      *config.Config
	path     string
	opts     tuiConfig
	sched    *schedule.Schedule
	loadErr  error
	filter   filter
	cursor   int
	showHelp bool
	message  string
}

type tickMsg time.Time

func newTUIModel(ctx context.Context, cfg *config.Config, path string, opts ...TUIOption) *tuiModel {
	c := tuiConfig{
		now:      time.Now,
		logger:   logging.Discard(),
		interval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if cfg == nil {
		cfg = &config.Config{Validate: config.DefaultValidate}
	}
	if !filepath.IsAbs(path) && cfg.ProjectRoot != "" {
		path = filepath.Join(cfg.ProjectRoot, path)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &tuiModel{
		ctx:  ctx,
		cfg:  cfg,
		path: path,
		opts: c,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.opts.interval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			m.message = "Reloaded"
		case "h", "?":
			m.showHelp = !m.showHelp
		case "up", "k":
			m.cursor--
			m.clampCursor()
		case "down", "j":
			m.cursor++
			m.clampCursor()
		case "x", " ":
			m.completeSelected()
		case "0", "1", "2", "3", "4", "5":
			m.filter = filter(msg.String()[0] - '0')
			m.cursor = 0
			m.clampCursor()
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.opts.interval)
	}
	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Schedule") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, m.opts.interval)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error loading schedule file:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b, m.opts.interval)
		return b.String()
	}
	if m.sched == nil {
		b.WriteString("Loading...\n\n")
		writeFooter(&b, m.opts.interval)
		return b.String()
	}

	today := m.today()
	writeOverview(&b, m.sched)
	if m.filter != filterAll {
		fmt.Fprintf(&b, "Filter: %s (0 to clear)\n\n", m.filter)
	}
	writeTasks(&b, m.visible(), m.cursor, today)

	if m.message != "" {
		b.WriteString(m.message + "\n\n")
	}
	b.WriteString(mutedStyle.Render("File: "+m.path) + "\n")
	writeFooter(&b, m.opts.interval)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *tuiModel) today() task.Date {
	return task.DateOf(m.opts.now())
}

func (m *tuiModel) refresh() {
	s, err := schedule.Open(m.path,
		schedule.WithClock(m.opts.now),
		schedule.WithLogger(m.opts.logger),
		schedule.WithValidation(m.cfg.Validate),
	)
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.sched = s
	m.clampCursor()
}

// visible returns the tasks the current filter selects, ordered by due date.
func (m *tuiModel) visible() []*task.Task {
	if m.sched == nil {
		return nil
	}
	var tasks []*task.Task
	switch m.filter {
	case filterPending:
		tasks = slices.DeleteFunc(m.sched.ListAllTasks(), (*task.Task).IsCompleted)
	case filterOverdue:
		tasks = m.sched.ListOverdueTasks()
	case filterToday:
		tasks = m.sched.ListTasksDueToday()
	case filterCompleted:
		tasks = m.sched.ListCompletedTasks()
	case filterRecurring:
		tasks = m.sched.ListRecurringTasks()
	default:
		tasks = m.sched.ListAllTasks()
	}
	slices.SortStableFunc(tasks, func(a, b *task.Task) int {
		return a.DueDate.Compare(b.DueDate)
	})
	return tasks
}

func (m *tuiModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// completeSelected marks the task under the cursor completed, saves, and
// runs the configured hook.
func (m *tuiModel) completeSelected() {
	if m.sched == nil || m.loadErr != nil {
		return
	}
	tasks := m.visible()
	if len(tasks) == 0 {
		return
	}
	selected := tasks[m.cursor]
	if selected.IsCompleted() {
		m.message = fmt.Sprintf("%q is already completed", selected.Title)
		return
	}
	if !m.sched.MarkAsCompletedByID(selected.ID) {
		return
	}
	if err := scheddir.EnsureParent(m.path); err != nil {
		m.message = "Save failed: " + err.Error()
		return
	}
	if err := m.sched.SaveToFile(m.path); err != nil {
		m.message = "Save failed: " + err.Error()
		return
	}
	m.message = fmt.Sprintf("Completed %q", selected.Title)

	if _, err := hooks.Invoke(m.ctx, hooks.Options{
		Command: m.cfg.HookCommand,
		Action:  schedule.ActionCompleted,
		Title:   selected.Title,
		Path:    m.path,
		WorkDir: m.cfg.ProjectRoot,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}); err != nil {
		m.message += " (hook: " + err.Error() + ")"
	}
	m.clampCursor()
}

func writeOverview(b *strings.Builder, s *schedule.Schedule) {
	total := s.Len()
	completed := len(s.ListCompletedTasks())
	b.WriteString(headingStyle.Render("Overview") + "\n\n")
	fmt.Fprintf(b, "  Total: %d  Pending: %d  Completed: %d  Overdue: %d  Due today: %d  Due tomorrow: %d\n",
		total,
		total-completed,
		completed,
		len(s.ListOverdueTasks()),
		len(s.ListTasksDueToday()),
		len(s.CheckDeadlines()),
	)
	fmt.Fprintf(b, "  Done: %.1f%%\n\n", s.CompletionPercentage())
}

func writeTasks(b *strings.Builder, tasks []*task.Task, cursor int, today task.Date) {
	b.WriteString(headingStyle.Render("Tasks") + "\n\n")
	if len(tasks) == 0 {
		b.WriteString("  No tasks.\n\n")
		return
	}
	for i, t := range tasks {
		b.WriteString(formatRow(t, i == cursor, today))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func formatRow(t *task.Task, selected bool, today task.Date) string {
	pointer := " "
	if selected {
		pointer = cursorStyle.Render(">")
	}

	marker, style := " ", lipgloss.NewStyle()
	switch {
	case t.IsCompleted():
		marker, style = "x", doneStyle
	case t.IsOverdueOn(today):
		marker, style = "!", overdueStyle
	case t.IsDueOn(today):
		marker, style = "*", todayStyle
	}

	line := fmt.Sprintf("%s [%s] %s (%s)", marker, t.DueDate, t.Title, t.Priority)
	if t.IsRecurring() {
		line += " every " + t.Recurrence
	}
	if t.ReminderDate != nil {
		line += " remind " + t.ReminderDate.String()
	}
	return fmt.Sprintf("%s %s", pointer, style.Render(line))
}

func writeHelp(b *strings.Builder) {
	b.WriteString(headingStyle.Render("Keyboard Shortcuts") + "\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Reload file\n")
	b.WriteString("  up/k down/j  Move selection\n")
	b.WriteString("  x, space     Mark selected task completed\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  1            Filter pending\n")
	b.WriteString("  2            Filter overdue\n")
	b.WriteString("  3            Filter due today\n")
	b.WriteString("  4            Filter completed\n")
	b.WriteString("  5            Filter recurring\n")
	b.WriteString("  0            Clear filter\n\n")
}

func writeFooter(b *strings.Builder, interval time.Duration) {
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Press h for help | q to quit | Refreshing every %s", interval)) + "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
