// Package passmetertui is a terminal password strength meter built on
// Bubble Tea.
//
// Every keystroke in the input runs the password through a
// passmeterview.Presenter, which renders into the model's screen.
package passmetertui

import (
	"cmp"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.inout.gg/foundations/debug"

	"go.inout.gg/passmeter"
	"go.inout.gg/passmeter/passmeterview"
)

//nolint:gochecknoglobals
var d = debug.Debuglog("passmeter/passmetertui")

var (
	_ tea.Model              = Model{}
	_ passmeterview.Renderer = (*screen)(nil)
)

const (
	DefaultBarWidth = 40
	inputWidth      = 32
	maxInputLength  = 128
)

// Config is the configuration for the terminal meter.
type Config struct {
	Logger *slog.Logger

	// Presenter configures scoring and the weak password feedback.
	Presenter *passmeterview.Config

	Theme    *Theme
	BarWidth int // optional (default: DefaultBarWidth)
}

func (c *Config) defaults() {
	c.Logger = cmp.Or(c.Logger, passmeter.DefaultLogger)
	c.BarWidth = cmp.Or(c.BarWidth, DefaultBarWidth)

	if c.Presenter == nil {
		c.Presenter = passmeterview.NewConfig(passmeterview.WithLogger(c.Logger))
	}

	if c.Theme == nil {
		theme := DarkTheme()
		c.Theme = &theme
	}
}

func (c *Config) assert() {
	debug.Assert(c.Logger != nil, "expected Logger to be defined")
	debug.Assert(c.Presenter != nil, "expected Presenter to be defined")
	debug.Assert(c.Theme != nil, "expected Theme to be defined")
	debug.Assert(c.BarWidth > 0, "expected BarWidth to be positive")
}

// NewConfig creates a new Config with defaults.
func NewConfig(opts ...func(*Config)) *Config {
	//nolint:exhaustruct
	config := &Config{}
	for _, opt := range opts {
		opt(config)
	}

	config.defaults()
	config.assert()

	return config
}

func WithLogger(logger *slog.Logger) func(*Config) {
	return func(c *Config) { c.Logger = logger }
}

func WithPresenter(presenter *passmeterview.Config) func(*Config) {
	return func(c *Config) { c.Presenter = presenter }
}

func WithTheme(theme Theme) func(*Config) {
	return func(c *Config) { c.Theme = &theme }
}

func WithBarWidth(width int) func(*Config) {
	return func(c *Config) { c.BarWidth = width }
}

// refreshMsg asks the program to redraw after the screen changed outside
// of Update.
type refreshMsg struct{}

// screen is the Renderer the presenter draws into. SetShaking may be
// called from a timer goroutine, so access is guarded.
type screen struct {
	mu      sync.Mutex
	state   passmeterview.State
	shaking bool
	notify  func()
}

func (s *screen) Render(state passmeterview.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
}

func (s *screen) SetShaking(v bool) {
	s.mu.Lock()
	s.shaking = v
	notify := s.notify
	s.mu.Unlock()

	// Turning the shake on happens inside Update, which redraws anyway.
	if !v && notify != nil {
		notify()
	}
}

func (s *screen) snapshot() (passmeterview.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state, s.shaking
}

func (s *screen) setNotify(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notify = fn
}

// Model is the Bubble Tea model of the meter.
type Model struct {
	config    *Config
	input     textinput.Model
	bar       progress.Model
	help      help.Model
	keys      keyMap
	styles    Styles
	presenter *passmeterview.Presenter
	screen    *screen
}

// New creates a new Model and renders the initial, empty state.
//
// If config is nil, the default config is used.
func New(config *Config) Model {
	if config == nil {
		config = NewConfig()
	}

	config.assert()

	scr := &screen{}
	presenter := passmeterview.New(scr, config.Presenter)

	input := textinput.New()
	input.Placeholder = "Enter password"
	input.CharLimit = maxInputLength
	input.Width = inputWidth
	input.EchoCharacter = '•'
	input.Focus()

	m := Model{
		config:    config,
		input:     input,
		bar:       progress.New(progress.WithoutPercentage(), progress.WithWidth(config.BarWidth)),
		help:      help.New(),
		keys:      defaultKeyMap(),
		styles:    NewStyles(*config.Theme),
		presenter: presenter,
		screen:    scr,
	}

	m.applyVisibility()
	presenter.Update(input.Value())

	return m
}

// Attach lets the model redraw p when the shake feedback ends.
func (m Model) Attach(p *tea.Program) {
	m.screen.setNotify(func() { p.Send(refreshMsg{}) })
}

// Close stops the pending shake feedback.
func (m Model) Close() {
	m.presenter.Close()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = max(1, min(m.config.BarWidth, msg.Width-8))
		m.help.Width = msg.Width

		return m, nil
	case refreshMsg:
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			visible := m.presenter.ToggleVisibility()
			m.applyVisibility()
			d("visibility toggled: %v", visible)

			return m, nil
		}
	}

	prev := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != prev {
		m.presenter.Update(value)
	}

	return m, cmd
}

func (m *Model) applyVisibility() {
	if m.presenter.Visible() {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}
}

// View implements tea.Model.
func (m Model) View() string {
	state, shaking := m.screen.snapshot()
	theme := m.styles.theme

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Password strength"))
	b.WriteString("\n\n")

	inputStyle := m.styles.Input
	if shaking {
		inputStyle = m.styles.Shaking
	}

	visibility := "hidden"
	if m.presenter.Visible() {
		visibility = "shown"
	}

	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString(" ")
	b.WriteString(m.styles.Label.Render(visibility))
	b.WriteString("\n\n")

	bar := m.bar
	bar.FullColor = string(theme.BandColor(state.Band))
	bar.EmptyColor = string(theme.Empty)
	b.WriteString(bar.ViewAs(state.Percent / 100))
	b.WriteString("\n")

	if state.Empty {
		b.WriteString(m.styles.Hint.Render(state.Text))
	} else {
		b.WriteString(m.styles.Verdict.Foreground(theme.BandColor(state.Band)).Render(state.Text))
	}

	b.WriteString("\n\n")

	for _, c := range state.Criteria {
		if c.Met {
			b.WriteString(m.styles.Met.Render("✓ " + c.Description))
		} else {
			b.WriteString(m.styles.NotMet.Render("✗ " + c.Description))
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.Frame.Render(b.String())
}
