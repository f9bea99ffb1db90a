package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"quotefinder/internal/domain"
	"quotefinder/internal/eventbus"
	"quotefinder/internal/search"
	"quotefinder/internal/ui/input"
	inputtypes "quotefinder/internal/ui/input/types"
	"quotefinder/internal/ui/state"
	"quotefinder/internal/ui/views"
)

// statusTimeout is how long transient status lines stay visible
const statusTimeout = 3 * time.Second

// lines taken by everything around the result list, and per result card
const (
	chromeLines = 14
	cardLines   = 6
)

// Copier puts text on the clipboard
type Copier interface {
	Copy(text string) error
}

// StatsLoader fetches archive statistics and publishes the outcome
type StatsLoader interface {
	Load(ctx context.Context)
}

// Options carries the collaborators of a Model
type Options struct {
	Session      *search.Session
	Bus          eventbus.EventBus
	Stats        StatsLoader // nil disables the stats header
	Copier       Copier
	Pager        Pager
	Logger       *zap.Logger
	InitialQuery string
}

// Model represents the UI state
type Model struct {
	ctx     context.Context
	session *search.Session
	bus     eventbus.EventBus
	stats   StatsLoader
	copier  Copier
	pager   Pager
	logger  *zap.Logger
	state   *state.AppState

	width   int
	height  int
	help    help.Model
	keys    keyMap
	spinner spinner.Model

	inPagerMode  bool
	initialQuery string

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		ctx:          ctx,
		session:      opts.Session,
		bus:          opts.Bus,
		stats:        opts.Stats,
		copier:       opts.Copier,
		pager:        opts.Pager,
		logger:       logger,
		state:        state.NewAppState(),
		help:         help.New(),
		keys:         newKeyMap(),
		spinner:      sp,
		initialQuery: opts.InitialQuery,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if ops, ok := m.pager.(*PagerOps); ok {
		ops.SetProgram(p)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.stats != nil {
		cmds = append(cmds, m.loadStats())
	}
	if m.initialQuery != "" {
		if cmd := m.session.Submit(m.initialQuery); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case search.ResultMsg:
		if m.session.Apply(msg) {
			m.state.ResetCursor()
		}
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case spinner.TickMsg:
		// Ticks stop while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			m.logger.Warn("pager failed", zap.Error(msg.err))
		}
		return m, m.spinner.Tick

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil
	}

	// Cursor blink and other text input messages
	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.state.ShowHelp {
		switch msg.String() {
		case "esc", "?", "q":
			m.state.ShowHelp = false
			m.state.HelpScrollOffset = 0
		case "j", "down":
			m.state.ScrollHelp(1)
		case "k", "up":
			m.state.ScrollHelp(-1)
		}
		return m, nil
	}

	if m.state.ShowPrivacy {
		switch msg.String() {
		case "esc", "p", "q", "H":
			m.state.ShowPrivacy = false
		}
		return m, nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	m.syncClearToken()

	return m, tea.Batch(cmds...)
}

// processAction executes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.state.Navigate(a.Direction, len(m.session.Results()))

	case inputtypes.SubmitTextAction:
		if a.Mode != inputtypes.ModeSearch {
			return nil
		}
		cmd := m.session.Submit(a.Text)
		if cmd != nil {
			m.state.ResetCursor()
		}
		return cmd

	case inputtypes.CycleSpeakerAction:
		next := m.session.Speaker().Next()
		if a.Delta < 0 {
			next = m.session.Speaker().Prev()
		}
		return m.setSpeaker(next)

	case inputtypes.SetSpeakerAction:
		return m.setSpeaker(a.Speaker)

	case inputtypes.SelectSuggestionAction:
		cmd := m.session.SelectSuggestion()
		if cmd != nil {
			m.state.ResetCursor()
		}
		return cmd

	case inputtypes.ResetAction:
		m.session.Reset()
		m.state.ResetCursor()
		m.state.StatusMessage = ""

	case inputtypes.DismissErrorAction:
		m.session.DismissError()

	case inputtypes.CopyLinkAction:
		return m.copyLink(a.URL)

	case inputtypes.OpenPagerAction:
		return m.openPager()

	case inputtypes.TogglePrivacyAction:
		m.state.ShowPrivacy = !m.state.ShowPrivacy

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) setSpeaker(sp domain.Speaker) tea.Cmd {
	cmd := m.session.SetSpeaker(sp)
	if cmd != nil {
		m.state.ResetCursor()
	}
	return cmd
}

// syncClearToken drops uncommitted search text after a reset
func (m *Model) syncClearToken() {
	if token := m.session.ClearToken(); token != m.state.ClearToken {
		m.state.ClearToken = token
		m.inputHandler.Reset()
	}
}

// handleEvent processes auxiliary domain events. None of them touch the
// search state.
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.StatsLoadedEvent:
		stats := e.Stats
		m.state.Stats = &stats

	case domain.StatsFailedEvent:
		// Already logged by the stats service; the header stays empty

	case domain.LinkCopiedEvent:
		m.state.StatusMessage = "Link copied to clipboard"
		return clearStatusAfter(statusTimeout)

	case domain.CopyFailedEvent:
		m.logger.Warn("copy to clipboard failed", zap.String("url", e.URL), zap.Error(e.Err))
	}
	return nil
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// loadStats returns a command that fetches stats in the background
func (m *Model) loadStats() tea.Cmd {
	ctx, loader := m.ctx, m.stats
	return func() tea.Msg {
		loader.Load(ctx)
		return nil
	}
}

// copyLink returns a command that copies url and publishes the outcome
func (m *Model) copyLink(url string) tea.Cmd {
	if m.copier == nil {
		return nil
	}
	copier, bus := m.copier, m.bus
	return func() tea.Msg {
		if err := copier.Copy(url); err != nil {
			if bus != nil {
				bus.Publish(domain.CopyFailedEvent{URL: url, Err: err})
				return nil
			}
			return EventMsg{Event: domain.CopyFailedEvent{URL: url, Err: err}}
		}
		if bus != nil {
			bus.Publish(domain.LinkCopiedEvent{URL: url})
			return nil
		}
		return EventMsg{Event: domain.LinkCopiedEvent{URL: url}}
	}
}

// openPager returns a command that shows the current results in the pager
func (m *Model) openPager() tea.Cmd {
	if m.pager == nil {
		return nil
	}
	content := views.PlainResults(m.session.Query(), m.session.Response())
	if content == "" {
		return nil
	}
	pager, program := m.pager, m.program
	return func() tea.Msg {
		if program != nil {
			program.Send(pauseRenderingMsg{})
		}
		err := pager.Show(content)
		return pagerMsg{err: err}
	}
}

func (m *Model) updateViewportHeight() {
	available := m.height - chromeLines
	if available < cardLines {
		available = cardLines
	}
	m.state.ViewportHeight = available / cardLines
	m.state.Clamp(len(m.session.Results()))
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		State:          m.session.State(),
		Query:          m.session.Query(),
		Speaker:        m.session.Speaker(),
		Toast:          m.session.Toast(),
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Spinner:        m.spinner.View(),
		Stats:          m.state.Stats,
		StatusMessage:  m.state.StatusMessage,
		ShowPrivacy:    m.state.ShowPrivacy,
		ShowHelp:       m.state.ShowHelp,
		HelpModel:      m.help,
		KeyMap:         m.keys,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.InputActive = true
		vs.TextInput = ti.View()
	}
	if m.state.ShowHelp {
		vs.HelpContent = m.helpRenderer.renderHelpContent(m.height, m.state.HelpScrollOffset)
	}

	return m.renderer.Render(vs)
}

// modelContext implements the input Context over the model
type modelContext struct {
	m *Model
}

func (c *modelContext) CurrentIndex() int {
	return c.m.state.SelectedIndex
}

func (c *modelContext) ResultCount() int {
	return len(c.m.session.Results())
}

func (c *modelContext) Query() string {
	return c.m.session.Query()
}

func (c *modelContext) CurrentLink() string {
	results := c.m.session.Results()
	idx := c.m.state.SelectedIndex
	if idx < 0 || idx >= len(results) {
		return ""
	}
	return results[idx].SpotifyURL
}

func (c *modelContext) CanSelectSuggestion() bool {
	empty, ok := c.m.session.State().(search.Empty)
	return ok && empty.Response.HasSuggestion()
}

func (c *modelContext) HasToast() bool {
	return c.m.session.Toast() != ""
}
