package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/memberadmin/internal/prefs"
	"github.com/five82/memberadmin/internal/roster"
	"github.com/five82/memberadmin/internal/state"
)

// mode is what keystrokes currently drive.
type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeEdit
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Load        func(context.Context) error
	Logger      *zap.Logger
	SourceURL   string
	ThemeName   string
	HideHelpBar bool
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	load      func(context.Context) error
	log       *zap.Logger
	source    string
	prefsPath string
	keys      keyMap

	// UI state
	theme       Theme
	width       int
	height      int
	ready       bool
	hideHelpBar bool

	// Data state
	snapshot state.Snapshot

	// Interaction state
	mode     mode
	cursor   int // row index on the current page
	search   textinput.Model
	edit     editState
	modal    Modal
	showHelp bool
	notice   string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search any field"
	search.CharLimit = 128

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		load:        opts.Load,
		log:         log,
		source:      opts.SourceURL,
		prefsPath:   prefsPath,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		hideHelpBar: opts.HideHelpBar,
		search:      search,
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.load == nil {
		return nil
	}
	return loadCmd(m.ctx, m.load)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = max(m.width-8, 10)
		m.syncEditWidths()
		return m, nil

	case loadedMsg:
		if m.store != nil {
			m.snapshot = m.store.Snapshot()
		}
		m.cursor = 0
		m.clampCursor()
		if msg.err == nil && m.snapshot.Skipped > 0 {
			m.notice = pluralize(m.snapshot.Skipped, "entry", "entries") + " without a usable id skipped"
		}
		return m, nil

	case deleteSelectedMsg:
		m.deleteSelected()
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs forwards non-key messages (cursor blink) to the focused input.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	case modeEdit:
		if in := m.edit.focused(); in != nil {
			*in, cmd = in.Update(msg)
		}
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey routes a key press to the overlay or mode that owns it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, done := m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeEdit:
		return m.handleEditKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// apply runs op through the store and refreshes the local snapshot. When
// follow names a record still in the filtered view, the table moves to its
// page and the cursor lands on it.
func (m *Model) apply(op func(roster.State) roster.State, follow string) {
	if m.store == nil {
		return
	}
	m.store.Apply(func(st roster.State) roster.State {
		st = op(st)
		if follow != "" {
			if page := st.PageOf(follow); page > 0 {
				st = st.GoToPage(page)
			}
		}
		return st
	})
	m.snapshot = m.store.Snapshot()
	m.placeCursor(follow)
}

// placeCursor puts the cursor on id when it is visible.
func (m *Model) placeCursor(id string) {
	if id != "" {
		for i, rec := range m.snapshot.Roster.Visible() {
			if rec.ID() == id {
				m.cursor = i
				return
			}
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.snapshot.Roster.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// cursorRecord returns the record under the cursor.
func (m Model) cursorRecord() (roster.Record, bool) {
	visible := m.snapshot.Roster.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return roster.Record{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, HideHelpBar: m.hideHelpBar}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn("save preferences failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	top := []string{m.renderHeader()}
	if !m.hideHelpBar {
		top = append(top, m.renderCommandBar())
	}
	top = append(top, m.renderSearchLine())
	footer := m.renderFooter()

	tableHeight := max(m.height-len(top)-1, 3)

	var b strings.Builder
	for _, line := range top {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.renderTable(m.width, tableHeight))
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

// Messages

type loadedMsg struct{ err error }

type deleteSelectedMsg struct{}

// Commands

func loadCmd(ctx context.Context, load func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: load(ctx)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Cancelled by signal; not a failure.
		return nil
	}
	return err
}
