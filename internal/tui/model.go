package tui

import (
	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/algorithm/catalog"
	"github.com/Iron-Ham/algoviz/internal/config"
	"github.com/Iron-Ham/algoviz/internal/event"
	"github.com/Iron-Ham/algoviz/internal/logging"
	"github.com/Iron-Ham/algoviz/internal/playback"
	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/status"
	"github.com/Iron-Ham/algoviz/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
)

// Options configures a player model.
type Options struct {
	Registry *catalog.Registry
	Config   *config.Config
	Logger   *logging.Logger

	// Algorithm is the first algorithm shown.
	Algorithm string
	// Input is the user-supplied instance. Parts it leaves empty are
	// synthesized from Seed.
	Input algorithm.Input
	// Seed seeds instance synthesis. Each new-input request advances it.
	Seed uint64

	// Width and Height are the terminal size before the first resize.
	Width  int
	Height int
}

// Model holds the TUI application state.
type Model struct {
	// Core components
	registry *catalog.Registry
	engine   *playback.Engine[render.Handle]
	sched    *tickScheduler
	bus      *event.Bus
	status   *status.Line
	logger   *logging.Logger

	// Presentation
	styles *styles.Styles
	keys   keyMap
	help   help.Model

	// Current run
	algorithm string
	info      algorithm.Info
	input     algorithm.Input
	synth     algorithm.Synthesis
	seed      uint64

	// Playback settings
	speed      int
	minDelayMs int
	maxDelayMs int
	autoPlay   bool

	// UI state
	width        int
	height       int
	maxBarHeight int
	quitting     bool
}

// NewModel creates a player model and loads the first run.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	reg := opts.Registry
	if reg == nil {
		reg = catalog.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	logger = logger.WithComponent("tui")

	bus := event.NewBus(logger)
	sched := newTickScheduler()
	engine := playback.New(render.Render, playback.Options{
		Scheduler: sched,
		Bus:       bus,
		Logger:    logger,
	})

	h := help.New()
	st := styles.ForTheme(cfg.TUI.Theme)
	h.Styles.ShortKey = st.HelpKey
	h.Styles.FullKey = st.HelpKey
	h.Styles.ShortDesc = st.HelpDesc
	h.Styles.FullDesc = st.HelpDesc
	h.Styles.ShortSeparator = st.HelpSep
	h.Styles.FullSeparator = st.HelpSep
	h.ShowAll = cfg.TUI.ShowHelp

	m := Model{
		registry: reg,
		engine:   engine,
		sched:    sched,
		bus:      bus,
		status:   status.NewLine(bus),
		logger:   logger,

		styles: st,
		keys:   defaultKeyMap(),
		help:   h,

		input: opts.Input,
		synth: algorithm.Synthesis{
			Size:  cfg.Input.Size,
			Min:   cfg.Input.MinValue,
			Max:   cfg.Input.MaxValue,
			Nodes: cfg.Input.Nodes,
		},
		seed: opts.Seed,

		speed:      config.ClampSpeed(cfg.Playback.Speed),
		minDelayMs: cfg.Playback.MinDelayMs,
		maxDelayMs: cfg.Playback.MaxDelayMs,
		autoPlay:   cfg.Playback.AutoPlay,

		width:        opts.Width,
		height:       opts.Height,
		maxBarHeight: cfg.TUI.MaxBarHeight,
	}
	engine.SetInterval(m.interval())

	name := opts.Algorithm
	if name == "" {
		name = cfg.Input.Algorithm
	}
	m.load(name)
	return m
}

// Engine returns the playback engine.
func (m Model) Engine() *playback.Engine[render.Handle] {
	return m.engine
}

// Algorithm returns the name of the algorithm on screen.
func (m Model) Algorithm() string {
	return m.algorithm
}

// Speed returns the playback speed setting.
func (m Model) Speed() int {
	return m.speed
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status.Text()
}
