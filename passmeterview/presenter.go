// Package passmeterview maps a strength result to what the user sees and
// applies it to a Renderer.
package passmeterview

import (
	"cmp"
	"log/slog"
	"time"

	"go.inout.gg/foundations/debug"

	"go.inout.gg/passmeter"
	"go.inout.gg/passmeter/internal/delay"
	"go.inout.gg/passmeter/passmeterscore"
)

//nolint:gochecknoglobals
var d = debug.Debuglog("passmeter/passmeterview")

// DefaultShakeDuration is how long the weak password feedback lasts.
const DefaultShakeDuration = 500 * time.Millisecond

var _ Renderer = (*RendererFuncs)(nil)

// Renderer applies a display state to a UI.
//
// SetShaking(false) is called from a timer goroutine.
type Renderer interface {
	Render(State)
	SetShaking(bool)
}

// RendererFuncs adapts plain functions to a Renderer. Nil fields are skipped.
type RendererFuncs struct {
	RenderFunc     func(State)
	SetShakingFunc func(bool)
}

func (r *RendererFuncs) Render(s State) {
	if r.RenderFunc != nil {
		r.RenderFunc(s)
	}
}

func (r *RendererFuncs) SetShaking(v bool) {
	if r.SetShakingFunc != nil {
		r.SetShakingFunc(v)
	}
}

// Config is the configuration for the Presenter.
type Config struct {
	Logger *slog.Logger

	// ShakeDuration is how long the weak password feedback stays on.
	ShakeDuration time.Duration // optional (default: DefaultShakeDuration)

	// Evaluate scores a password.
	Evaluate func(string) passmeterscore.Result // optional (default: passmeterscore.Evaluate)

	// Visible controls whether the password starts unmasked.
	Visible bool
}

func (c *Config) defaults() {
	c.Logger = cmp.Or(c.Logger, passmeter.DefaultLogger)
	c.ShakeDuration = cmp.Or(c.ShakeDuration, DefaultShakeDuration)

	if c.Evaluate == nil {
		c.Evaluate = passmeterscore.Evaluate
	}
}

func (c *Config) assert() {
	debug.Assert(c.Logger != nil, "expected Logger to be defined")
	debug.Assert(c.Evaluate != nil, "expected Evaluate to be defined")
	debug.Assert(c.ShakeDuration > 0, "expected ShakeDuration to be positive")
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

func WithShakeDuration(duration time.Duration) func(*Config) {
	return func(c *Config) { c.ShakeDuration = duration }
}

// WithEvaluate replaces the scoring function.
func WithEvaluate(evaluate func(string) passmeterscore.Result) func(*Config) {
	return func(c *Config) { c.Evaluate = evaluate }
}

// WithVisible starts the presenter with the password unmasked.
func WithVisible() func(*Config) {
	return func(c *Config) { c.Visible = true }
}

// Presenter runs a password through the scorer and renders the outcome.
//
// Update and ToggleVisibility are expected to be called from a single
// goroutine, typically the UI event loop.
type Presenter struct {
	config   *Config
	renderer Renderer
	shake    delay.Action
	visible  bool
	band     Band
	closed   bool
}

// New creates a new Presenter rendering to renderer.
//
// If config is nil, the default config is used.
func New(renderer Renderer, config *Config) *Presenter {
	if config == nil {
		config = NewConfig()
	}

	config.assert()
	debug.Assert(renderer != nil, "expected renderer to be defined")

	return &Presenter{
		config:   config,
		renderer: renderer,
		visible:  config.Visible,
	}
}

// Update evaluates password, renders the resulting state and returns it.
//
// A very weak, non-empty password turns the shake feedback on and
// schedules it to turn off after the configured duration. A new trigger
// replaces the pending one.
func (p *Presenter) Update(password string) State {
	result := p.config.Evaluate(password)
	state := NewState(result)

	if state.Band != p.band {
		p.config.Logger.Debug(
			"passmeter: strength band changed",
			slog.String("band", state.Band.String()),
			slog.Float64("score", result.Score),
			slog.Int("length", result.Length),
		)

		p.band = state.Band
	}

	p.renderer.Render(state)

	if state.Shake && !p.closed {
		d("shaking for %s", p.config.ShakeDuration)

		p.renderer.SetShaking(true)
		p.shake.Replace(p.config.ShakeDuration, func() {
			p.renderer.SetShaking(false)
		})
	}

	return state
}

// ToggleVisibility flips whether the password is shown and returns the
// new visibility. It does not affect scoring.
func (p *Presenter) ToggleVisibility() bool {
	p.visible = !p.visible

	return p.visible
}

// Visible reports whether the password is shown unmasked.
func (p *Presenter) Visible() bool { return p.visible }

// Shaking reports whether a shake clear is pending.
func (p *Presenter) Shaking() bool { return p.shake.Pending() }

// Close cancels the pending shake and turns the feedback off. Later
// updates still render but no longer shake.
func (p *Presenter) Close() {
	p.closed = true

	if p.shake.Pending() {
		p.shake.Cancel()
		p.renderer.SetShaking(false)
	}
}
