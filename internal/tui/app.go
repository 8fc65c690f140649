package tui

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/config"
	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/Iron-Ham/algoviz/internal/event"
	"github.com/Iron-Ham/algoviz/internal/playback"
	"github.com/Iron-Ham/algoviz/internal/status"
	"github.com/Iron-Ham/algoviz/internal/tui/view"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Run starts the player and blocks until the user quits.
func Run(opts Options) error {
	if opts.Width == 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			opts.Width, opts.Height = w, h
		}
	}

	m := NewModel(opts)
	program := tea.NewProgram(m, tea.WithAltScreen())

	// Leave the alternate screen cleanly when terminated.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		if _, ok := <-sigChan; ok {
			program.Send(tea.Quit())
		}
	}()
	defer func() {
		signal.Stop(sigChan)
		close(sigChan)
	}()

	_, err := program.Run()
	return err
}

// Layout constants
const (
	// header (3) + box border (2) + bar labels (4) + status (1) + help (1)
	chromeHeight = 11
	// box border and padding on both sides
	chromeWidth   = 4
	minBarsHeight = 3
)

// Init starts automatic playback when configured.
func (m Model) Init() tea.Cmd {
	return m.sched.Drain()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.sched.Fire(msg)
		return m, m.sched.Drain()

	case tea.KeyMsg:
		return m.handleKeypress(msg)
	}
	return m, nil
}

// handleKeypress processes keyboard input.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.engine.Pause()
		m.status.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.PlayPause):
		if m.requireRun() {
			m.togglePlayback()
		}

	case key.Matches(msg, m.keys.Forward):
		if m.requireRun() {
			m.engine.StepForward()
		}

	case key.Matches(msg, m.keys.Back):
		if m.requireRun() {
			m.engine.StepBackward()
		}

	case key.Matches(msg, m.keys.First):
		if m.requireRun() {
			m.engine.Seek(0)
		}

	case key.Matches(msg, m.keys.Last):
		if m.requireRun() {
			m.engine.Seek(m.engine.Len() - 1)
		}

	case key.Matches(msg, m.keys.Reset):
		m.load(m.algorithm)

	case key.Matches(msg, m.keys.NewInput):
		m.input = algorithm.Input{}
		m.seed++
		m.load(m.algorithm)

	case key.Matches(msg, m.keys.NextAlgo):
		m.load(m.registry.Next(m.algorithm, 1))

	case key.Matches(msg, m.keys.PrevAlgo):
		m.load(m.registry.Next(m.algorithm, -1))

	case key.Matches(msg, m.keys.Faster):
		m.setSpeed(m.speed + 1)

	case key.Matches(msg, m.keys.Slower):
		m.setSpeed(m.speed - 1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, m.sched.Drain()
}

// requireRun reports whether a run is loaded. Without one the status line
// says so.
func (m *Model) requireRun() bool {
	if _, err := m.engine.Current(); err != nil {
		m.status.SetError(err.Error() + "; press tab to pick an algorithm")
		return false
	}
	return true
}

// togglePlayback pauses, or plays from the cursor. At the last step it
// replays from the start.
func (m *Model) togglePlayback() {
	if m.engine.State() == playback.StatePlaying {
		m.engine.Pause()
		return
	}
	if m.engine.AtEnd() {
		m.engine.Seek(0)
	}
	m.engine.Play(m.interval())
}

// load generates a fresh run of name and hands it to the engine. On failure
// the current run stays on screen and the status line shows the error.
func (m *Model) load(name string) {
	run, err := m.registry.Generate(name, m.instance())
	if err != nil {
		m.logger.Error("generate failed", "algorithm", name, "error", err.Error())
		if errors.IsUserFacing(err) {
			m.status.SetError(err.Error())
		} else {
			m.status.SetError(fmt.Sprintf("%s failed internally; see `algoviz logs`", name))
		}
		return
	}
	if _, err := m.engine.LoadRun(name, run.Steps, run.Handle); err != nil {
		m.logger.Error("load failed", "algorithm", name, "error", err.Error())
		m.status.SetError(err.Error())
		return
	}
	m.algorithm = name
	m.info = run.Info
	if m.autoPlay {
		m.engine.Play(m.interval())
	}
}

// instance builds the problem instance for the next run.
func (m Model) instance() algorithm.Input {
	in := m.input
	in.Rand = datasource.New(m.seed)
	in.Synth = m.synth
	return in
}

func (m Model) interval() time.Duration {
	return config.SpeedDelay(m.speed, m.minDelayMs, m.maxDelayMs)
}

// setSpeed changes the speed; a running playback picks it up on its next
// step.
func (m *Model) setSpeed(speed int) {
	speed = config.ClampSpeed(speed)
	if speed == m.speed {
		return
	}
	m.speed = speed
	interval := m.interval()
	m.engine.SetInterval(interval)
	m.bus.Publish(event.NewSpeedChangedEvent(speed, interval))
	m.logger.Debug("speed changed", "speed", speed, "interval", interval)
}

// View renders the player.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	st := m.styles

	title := m.info.Title
	if title == "" {
		title = "algoviz"
	}
	header := view.Header(view.HeaderState{
		Title:     title,
		Algorithm: m.algorithm,
		State:     m.engine.State().String(),
		Index:     m.engine.Cursor(),
		Total:     m.engine.Len(),
		Speed:     m.speed,
		MaxSpeed:  config.MaxSpeed,
		Width:     m.width,
	}, st)
	if m.info.Description != "" {
		header = lipgloss.JoinVertical(lipgloss.Left, header, st.Subtitle.Render(m.info.Description))
	}

	body := view.Visualization(m.engine.Handle(), st, m.contentWidth(), m.barHeight())
	statusLine := view.StatusBar(m.status.Text(), m.status.Note(), m.status.Level() == status.LevelError, st)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		st.ContentBox.Render(body),
		statusLine,
		m.help.View(m.keys),
	)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-chromeWidth, 1)
}

// barHeight is the chart height that fits the terminal, capped by the
// configured maximum.
func (m Model) barHeight() int {
	h := m.height - chromeHeight
	if m.help.ShowAll {
		h -= len(m.keys.FullHelp())
	}
	if m.maxBarHeight > 0 {
		h = min(h, m.maxBarHeight)
	}
	return max(h, minBarsHeight)
}

// String describes the model for debugging.
func (m Model) String() string {
	return fmt.Sprintf("algorithm=%s step=%d/%d state=%s speed=%d",
		m.algorithm, m.engine.Cursor()+1, m.engine.Len(), m.engine.State(), m.speed)
}
