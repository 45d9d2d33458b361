package ui

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pinmon/internal/category"
	"github.com/five82/pinmon/internal/monitor"
	"github.com/five82/pinmon/internal/prefs"
	"github.com/five82/pinmon/internal/state"
	"github.com/five82/pinmon/internal/window"
)

type fakeController struct {
	mu       sync.Mutex
	settings monitor.Settings
	state    monitor.State
	startErr error
	health   state.Snapshot
	starts   int
	stops    int
}

func (f *fakeController) Configure(s monitor.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == monitor.Running {
		return monitor.ErrAlreadyRunning
	}
	f.settings = s
	return nil
}

func (f *fakeController) Start(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	f.starts++
	f.state = monitor.Running
	return nil
}

func (f *fakeController) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	f.state = monitor.Idle
}

func (f *fakeController) State() monitor.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeController) Settings() monitor.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings
}

func (f *fakeController) Health() state.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.health
}

func newFake() *fakeController {
	return &fakeController{settings: monitor.Settings{
		SourcePath: "/data/pins.txt",
		WindowSize: 10,
		MaxValue:   20,
		Categories: []category.Key{10},
	}}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestToggleStartsMonitorAndSavesSession(t *testing.T) {
	fc := newFake()
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{Monitor: fc, PrefsPath: prefsPath})

	m, cmd := update(t, m, keyPress("s"))
	if cmd == nil || !m.starting {
		t.Fatalf("pressing s while idle should start monitoring")
	}
	started, ok := cmd().(startedMsg)
	if !ok || started.err != nil {
		t.Fatalf("start cmd = %+v, want successful startedMsg", started)
	}
	if fc.starts != 1 {
		t.Fatalf("starts = %d, want 1", fc.starts)
	}

	m, cmd = update(t, m, started)
	if !m.running || m.starting {
		t.Fatalf("running = %v starting = %v, want running", m.running, m.starting)
	}
	if cmd == nil {
		t.Fatalf("successful start should save prefs")
	}
	if saved := cmd().(prefsSavedMsg); saved.err != nil {
		t.Fatalf("save prefs: %v", saved.err)
	}

	p, err := prefs.Load(prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Session.Source != "/data/pins.txt" || p.Session.WindowSize != 10 {
		t.Fatalf("saved session = %+v, want the started settings", p.Session)
	}
	if !reflect.DeepEqual(p.Session.Categories, []string{"0%"}) {
		t.Fatalf("saved categories = %v, want [0%%]", p.Session.Categories)
	}

	m, _ = update(t, m, keyPress("s"))
	if m.running || fc.stops != 1 {
		t.Fatalf("pressing s while running should stop (running=%v stops=%d)", m.running, fc.stops)
	}
}

func TestStartErrorShowsBlockingNotice(t *testing.T) {
	fc := newFake()
	fc.startErr = monitor.ErrNotConfigured
	m := New(Options{Monitor: fc, PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	m, cmd := update(t, m, keyPress("s"))
	m, _ = update(t, m, cmd())

	if m.running {
		t.Fatalf("running = true after failed start")
	}
	if !strings.Contains(m.notice, "No source file configured") {
		t.Fatalf("notice = %q, want not-configured message", m.notice)
	}
	if view := m.View(); !strings.Contains(view, "Cannot start monitoring") {
		t.Fatalf("View does not show the notice:\n%s", view)
	}

	// The notice swallows the next key.
	m, _ = update(t, m, keyPress("+"))
	if m.notice != "" {
		t.Fatalf("notice = %q, want dismissed", m.notice)
	}
	if fc.settings.WindowSize != 10 {
		t.Fatalf("WindowSize = %d, dismissing key must not act", fc.settings.WindowSize)
	}
}

func TestDescribeStartError_Load(t *testing.T) {
	err := &monitor.LoadError{Path: "/nope", Err: errors.New("no such file")}
	if got := describeStartError(err); !strings.HasPrefix(got, "Could not read the source file") {
		t.Fatalf("describeStartError = %q", got)
	}
}

func TestWindowAndMaxKeysWhileIdleReconfigure(t *testing.T) {
	fc := newFake()
	m := New(Options{Monitor: fc})

	m, _ = update(t, m, keyPress("+"))
	if fc.settings.WindowSize != 11 {
		t.Fatalf("WindowSize = %d, want 11", fc.settings.WindowSize)
	}
	m, _ = update(t, m, keyPress("-"))
	m, _ = update(t, m, keyPress("-"))
	if fc.settings.WindowSize != 9 {
		t.Fatalf("WindowSize = %d, want 9", fc.settings.WindowSize)
	}
	m, _ = update(t, m, keyPress("]"))
	if fc.settings.MaxValue != 25 {
		t.Fatalf("MaxValue = %v, want 25", fc.settings.MaxValue)
	}
	m, _ = update(t, m, keyPress("["))
	m, _ = update(t, m, keyPress("["))
	m, _ = update(t, m, keyPress("["))
	m, _ = update(t, m, keyPress("["))
	if fc.settings.MaxValue != 5 {
		t.Fatalf("MaxValue = %v, want floor 5", fc.settings.MaxValue)
	}
	if !strings.Contains(m.status, "applies on start") {
		t.Fatalf("status = %q, want idle hint", m.status)
	}

	fc.settings.WindowSize = 1
	_, _ = update(t, m, keyPress("-"))
	if fc.settings.WindowSize != 1 {
		t.Fatalf("WindowSize = %d, want to stay at 1", fc.settings.WindowSize)
	}
}

func TestWindowKeyWhileRunningRestarts(t *testing.T) {
	fc := newFake()
	fc.state = monitor.Running
	m := New(Options{Monitor: fc})

	m, cmd := update(t, m, keyPress("+"))
	if cmd == nil || !m.starting {
		t.Fatalf("changing the window while running should restart")
	}
	started := cmd().(startedMsg)
	if started.err != nil {
		t.Fatalf("restart error: %v", started.err)
	}
	if fc.stops != 1 || fc.starts != 1 {
		t.Fatalf("stops = %d starts = %d, want 1 and 1", fc.stops, fc.starts)
	}
	if started.settings.WindowSize != 11 {
		t.Fatalf("restarted WindowSize = %d, want 11", started.settings.WindowSize)
	}
}

func TestToggleCategory(t *testing.T) {
	tests := []struct {
		name string
		keys []category.Key
		idx  int
		want []category.Key
		ok   bool
	}{
		{name: "add keeps display order", keys: []category.Key{10, 9}, idx: 1, want: []category.Key{10, 2, 9}, ok: true},
		{name: "remove", keys: []category.Key{10, 2}, idx: 0, want: []category.Key{2}, ok: true},
		{name: "last stays", keys: []category.Key{10}, idx: 0, want: []category.Key{10}, ok: false},
		{name: "out of range", keys: []category.Key{10}, idx: 9, want: []category.Key{10}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toggleCategory(tt.keys, tt.idx)
			if ok != tt.ok || !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("toggleCategory(%v, %d) = %v, %v, want %v, %v", tt.keys, tt.idx, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCategoryKeyReconfigures(t *testing.T) {
	fc := newFake()
	m := New(Options{Monitor: fc})

	m, _ = update(t, m, keyPress("3"))
	if !reflect.DeepEqual(fc.settings.Categories, []category.Key{10, 3}) {
		t.Fatalf("Categories = %v, want [10 3]", fc.settings.Categories)
	}
	m, _ = update(t, m, keyPress("3"))
	_, _ = update(t, m, keyPress("1"))
	if !reflect.DeepEqual(fc.settings.Categories, []category.Key{10}) {
		t.Fatalf("Categories = %v, want [10] kept", fc.settings.Categories)
	}
}

func TestBatchRendersPanels(t *testing.T) {
	fc := newFake()
	m := New(Options{Monitor: fc})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	zero, _ := category.Lookup("0%")
	half, _ := category.Lookup("50%")
	batch := monitor.Batch{
		Views: []window.View{
			{Category: zero, Values: []float64{1, 2, 3}, Start: 0, End: 3, Size: 5},
			{Category: half, Size: 5},
		},
		WindowSize: 5,
		MaxValue:   20,
		Total:      3,
		Rejected:   2,
	}
	m, _ = update(t, m, batchMsg(batch))

	view := m.View()
	for _, want := range []string{"TestCount range of 5", "[1–3]", "No data for 50%", "[1–5]", "Rejected:"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q:\n%s", want, view)
		}
	}
}

func TestIdleSettingChangeShowsPending(t *testing.T) {
	fc := newFake()
	m := New(Options{Monitor: fc})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})

	zero, _ := category.Lookup("0%")
	batch := monitor.Batch{
		Views:      []window.View{{Category: zero, Values: []float64{1, 2}, Start: 0, End: 2, Size: 10}},
		WindowSize: 10,
		MaxValue:   20,
		Total:      2,
	}
	m, _ = update(t, m, batchMsg(batch))
	if view := m.View(); strings.Contains(view, "Pending:") {
		t.Fatalf("View shows pending settings before any change:\n%s", view)
	}

	m, _ = update(t, m, keyPress("+"))
	m, _ = update(t, m, keyPress("]"))
	view := m.View()
	for _, want := range []string{"Showing last run (window 10, max 20)", "Pending: window 11, max 25"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q:\n%s", want, view)
		}
	}

	fc.state = monitor.Running
	if view := m.View(); strings.Contains(view, "Pending:") {
		t.Fatalf("View shows pending settings while running:\n%s", view)
	}
}

func TestPlaceholdersBeforeFirstBatch(t *testing.T) {
	fc := newFake()
	m := New(Options{Monitor: fc})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if view := m.View(); !strings.Contains(view, "No data for 0%") {
		t.Fatalf("View missing placeholder:\n%s", view)
	}
}

func TestTickReadsHealth(t *testing.T) {
	fc := newFake()
	fc.health = state.Snapshot{LastError: errors.New("stat source: gone"), ConsecutiveFailures: 3}
	m := New(Options{Monitor: fc})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 30})

	m, cmd := update(t, m, tickMsg{})
	if cmd == nil {
		t.Fatalf("tick should schedule the next tick")
	}
	if header := m.renderHeader(); !strings.Contains(header, "SOURCE UNREADABLE (3 failed polls)") {
		t.Fatalf("header = %q, want stale warning", header)
	}
}

func TestQuitStopsMonitor(t *testing.T) {
	fc := newFake()
	m := New(Options{Monitor: fc})

	_, cmd := update(t, m, keyPress("q"))
	if fc.stops != 1 {
		t.Fatalf("stops = %d, want 1", fc.stops)
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q should quit")
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("/very/long/path/to/data.txt", 15); got != "/ver...data.txt" {
		t.Fatalf("truncateMiddle = %q", got)
	}
	if got := truncateMiddle("short", 15); got != "short" {
		t.Fatalf("truncateMiddle = %q, want unchanged", got)
	}
}
