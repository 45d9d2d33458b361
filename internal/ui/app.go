package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pinmon/internal/category"
	"github.com/five82/pinmon/internal/monitor"
	"github.com/five82/pinmon/internal/prefs"
	"github.com/five82/pinmon/internal/state"
	"github.com/five82/pinmon/internal/window"
)

// Controller is the part of monitor.Monitor the dashboard drives.
type Controller interface {
	Configure(monitor.Settings) error
	Start(ctx context.Context) error
	Stop()
	State() monitor.State
	Settings() monitor.Settings
	Health() state.Snapshot
}

// Options configures the UI.
type Options struct {
	Context      context.Context
	Monitor      Controller
	Batches      <-chan monitor.Batch
	Prefs        prefs.Prefs
	PrefsPath    string
	AutoStart    bool // start monitoring as soon as the program runs
	RefreshEvery time.Duration
}

const (
	defaultRefresh = time.Second
	maxValueStep   = 5.0
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	ctl          Controller
	batches      <-chan monitor.Batch
	prefs        prefs.Prefs
	prefsPath    string
	refreshEvery time.Duration
	autoStart    bool

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	running  bool
	starting bool
	batch    monitor.Batch
	hasBatch bool
	health   state.Snapshot
	notice   string // blocking error, dismissed by any key
	status   string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	refresh := opts.RefreshEvery
	if refresh <= 0 {
		refresh = defaultRefresh
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:          ctx,
		ctl:          opts.Monitor,
		batches:      opts.Batches,
		prefs:        opts.Prefs,
		prefsPath:    prefsPath,
		refreshEvery: refresh,
		autoStart:    opts.AutoStart,
		starting:     opts.AutoStart && opts.Monitor != nil,
		theme:        GetTheme(opts.Prefs.Theme),
		keys:         DefaultKeyMap(),
		help:         help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refreshEvery)}
	if m.batches != nil {
		cmds = append(cmds, waitForBatch(m.batches))
	}
	if m.autoStart && m.ctl != nil {
		cmds = append(cmds, startCmd(m.ctx, m.ctl, m.ctl.Settings()))
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
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case batchMsg:
		m.batch = monitor.Batch(msg)
		m.hasBatch = true
		return m, waitForBatch(m.batches)

	case tickMsg:
		m.refresh()
		return m, tickCmd(m.refreshEvery)

	case startedMsg:
		m.starting = false
		if msg.err != nil {
			m.running = false
			m.notice = describeStartError(msg.err)
			return m, nil
		}
		m.running = true
		m.status = "monitoring " + msg.settings.SourcePath
		m.prefs.Session = prefs.SessionFrom(msg.settings)
		return m, savePrefsCmd(m.prefsPath, m.prefs)

	case prefsSavedMsg:
		if msg.err != nil {
			m.status = "could not save preferences: " + msg.err.Error()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) refresh() {
	if m.ctl == nil {
		return
	}
	m.health = m.ctl.Health()
	if !m.starting {
		m.running = m.ctl.State() == monitor.Running
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.notice != "" {
		return m.renderNotice()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	// Overlays swallow the next key.
	if m.notice != "" {
		m.notice = ""
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.prefs.Theme = NextTheme(m.theme.Name)
		m.theme = GetTheme(m.prefs.Theme)
		return m, savePrefsCmd(m.prefsPath, m.prefs)
	}

	if m.ctl == nil || m.starting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		if m.ctl.State() == monitor.Running {
			m.ctl.Stop()
			m.running = false
			m.status = "monitoring stopped"
			return m, nil
		}
		m.starting = true
		return m, startCmd(m.ctx, m.ctl, m.ctl.Settings())

	case key.Matches(msg, m.keys.WindowUp):
		s := m.ctl.Settings()
		s.WindowSize++
		return m.apply(s)

	case key.Matches(msg, m.keys.WindowDown):
		s := m.ctl.Settings()
		if s.WindowSize <= window.MinSize {
			return m, nil
		}
		s.WindowSize--
		return m.apply(s)

	case key.Matches(msg, m.keys.MaxUp):
		s := m.ctl.Settings()
		s.MaxValue += maxValueStep
		return m.apply(s)

	case key.Matches(msg, m.keys.MaxDown):
		s := m.ctl.Settings()
		if s.MaxValue <= maxValueStep {
			return m, nil
		}
		s.MaxValue -= maxValueStep
		return m.apply(s)

	case key.Matches(msg, m.keys.Category):
		s := m.ctl.Settings()
		idx := int(msg.String()[0] - '1')
		keys, ok := toggleCategory(s.Categories, idx)
		if !ok {
			m.status = "at least one category must stay selected"
			return m, nil
		}
		s.Categories = keys
		return m.apply(s)
	}

	return m, nil
}

// apply hands new settings to the monitor. A running monitor is restarted
// so the change takes effect at once.
func (m Model) apply(s monitor.Settings) (tea.Model, tea.Cmd) {
	if m.ctl.State() == monitor.Running {
		m.starting = true
		return m, restartCmd(m.ctx, m.ctl, s)
	}
	if err := m.ctl.Configure(s); err != nil {
		m.notice = describeStartError(err)
		return m, nil
	}
	m.status = fmt.Sprintf("window %d, max %g, %s (applies on start)",
		s.WindowSize, s.MaxValue, strings.Join(category.Labels(s.Categories), " "))
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.ctl != nil {
		m.ctl.Stop()
	}
	return m, tea.Quit
}

// toggleCategory flips the idx-th known category in keys, keeping display
// order. It refuses to deselect the last category.
func toggleCategory(keys []category.Key, idx int) ([]category.Key, bool) {
	all := category.All()
	if idx < 0 || idx >= len(all) {
		return keys, false
	}
	selected := make(map[category.Key]bool, len(keys))
	for _, k := range keys {
		selected[k] = true
	}
	target := all[idx].Key
	selected[target] = !selected[target]

	out := make([]category.Key, 0, len(all))
	for _, c := range all {
		if selected[c.Key] {
			out = append(out, c.Key)
		}
	}
	if len(out) == 0 {
		return keys, false
	}
	return out, true
}

func describeStartError(err error) string {
	switch {
	case errors.Is(err, monitor.ErrNotConfigured):
		return "No source file configured. Pass --file or set source in the config file."
	case errors.Is(err, monitor.ErrLoad):
		return "Could not read the source file: " + err.Error()
	default:
		return err.Error()
	}
}

// renderMain renders the full dashboard.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderPanels())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Styles().FaintText.Render(truncate(m.status, m.width)))
	}

	return b.String()
}

// views returns what to draw: the latest batch, or empty placeholders for
// the configured categories before the first batch arrives.
func (m Model) views() ([]window.View, float64) {
	if m.hasBatch {
		return m.batch.Views, m.batch.MaxValue
	}
	if m.ctl == nil {
		return nil, monitor.DefaultMaxValue
	}
	s := m.ctl.Settings()
	views := make([]window.View, 0, len(s.Categories))
	for _, k := range s.Categories {
		c, ok := category.ForKey(k)
		if !ok {
			continue
		}
		views = append(views, window.View{Category: c, Size: s.WindowSize})
	}
	return views, s.MaxValue
}

// pending describes settings changed while idle that the displayed batch
// does not reflect yet. It is empty when nothing is pending.
func (m Model) pending() string {
	if !m.hasBatch || m.ctl == nil || m.starting || m.ctl.State() != monitor.Idle {
		return ""
	}
	s := m.ctl.Settings()
	shown := make([]category.Key, 0, len(m.batch.Views))
	for _, v := range m.batch.Views {
		shown = append(shown, v.Category.Key)
	}
	if s.WindowSize == m.batch.WindowSize && s.MaxValue == m.batch.MaxValue && slices.Equal(s.Categories, shown) {
		return ""
	}
	return fmt.Sprintf("Showing last run (window %d, max %g). Pending: window %d, max %g, %s. Press s to apply.",
		m.batch.WindowSize, m.batch.MaxValue,
		s.WindowSize, s.MaxValue, strings.Join(category.Labels(s.Categories), " "))
}

// renderPanels lays the category panels out in a grid.
func (m Model) renderPanels() string {
	views, maxValue := m.views()
	if len(views) == 0 {
		return m.theme.Styles().MutedText.Render("No categories selected")
	}

	avail := m.height - 3 // header, command bar, status
	var banner string
	if p := m.pending(); p != "" {
		banner = m.theme.Styles().WarningText.Render(truncate(p, m.width))
		avail--
	}

	cols := 1
	if m.width >= LayoutTwoColumnWidth && len(views) > 1 {
		cols = 2
	}
	rows := (len(views) + cols - 1) / cols
	panelHeight := max(avail/rows, MinPanelHeight)
	panelWidth := m.width / cols

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		var row []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(views) {
				break
			}
			row = append(row, m.renderPanel(views[i], i, maxValue, panelWidth, panelHeight))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	if banner != "" {
		lines = append([]string{banner}, lines...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Messages

type tickMsg time.Time

type batchMsg monitor.Batch

type startedMsg struct {
	settings monitor.Settings
	err      error
}

type prefsSavedMsg struct{ err error }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForBatch blocks on the monitor channel. It is re-issued after every
// batch, so exactly one receive is pending at a time.
func waitForBatch(ch <-chan monitor.Batch) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		b, ok := <-ch
		if !ok {
			return nil
		}
		return batchMsg(b)
	}
}

func startCmd(ctx context.Context, ctl Controller, s monitor.Settings) tea.Cmd {
	return func() tea.Msg {
		if err := ctl.Configure(s); err != nil {
			return startedMsg{settings: s, err: err}
		}
		err := ctl.Start(ctx)
		return startedMsg{settings: ctl.Settings(), err: err}
	}
}

func restartCmd(ctx context.Context, ctl Controller, s monitor.Settings) tea.Cmd {
	return func() tea.Msg {
		ctl.Stop()
		return startCmd(ctx, ctl, s)()
	}
}

func savePrefsCmd(path string, p prefs.Prefs) tea.Cmd {
	return func() tea.Msg {
		return prefsSavedMsg{err: prefs.Save(path, p)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
