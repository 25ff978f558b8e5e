package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/catch"
	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/loop"
)

// Minimum terminal size that still shows a playable field.
const (
	minWidth  = 20
	minHeight = 8
)

// Options configures a game session.
type Options struct {
	Game      config.CatchConfig
	Runtime   core.RuntimeConfig // Initial screen size and seed
	Autopilot bool
	Logger    *log.Logger
	ID        string          // Session identifier for logs
	Context   context.Context // Ends the game when done; defaults to Background
}

// Model is the Bubble Tea model for one game of catch. The game itself runs
// in a loop.Driver; the model forwards keys and draws the frames it publishes.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	driver   *loop.Driver
	sink     *loop.FrameSink
	renderer *catch.Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	frame        catch.Snapshot
	releaseAfter time.Duration
	seq          uint64 // Press counter
	leftSeq      uint64 // Press that last refreshed Left
	rightSeq     uint64 // Press that last refreshed Right

	width, height int
	quitting      bool
}

// NewModel creates a model and its driver. The driver starts in Init.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	cfg := catch.NewConfig(opts.Game)
	sink := loop.NewFrameSink(4)

	var input loop.InputSource
	if opts.Autopilot {
		input = catch.NewAutopilot(cfg)
	}

	driver := loop.New(loop.Options{
		Config:   cfg,
		Seed:     opts.Runtime.Seed,
		Input:    input,
		Renderer: sink,
		Logger:   opts.Logger,
		ID:       opts.ID,
	})

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		ctx:          ctx,
		cancel:       cancel,
		driver:       driver,
		sink:         sink,
		renderer:     catch.NewRenderer(),
		screen:       core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		keys:         DefaultKeyMap(),
		help:         h,
		logger:       opts.Logger,
		frame:        driver.Snapshot(),
		releaseAfter: opts.Game.ReleaseAfter(),
		width:        opts.Runtime.ScreenW,
		height:       opts.Runtime.ScreenH,
	}
}

// Init starts the driver and waits for its first frame.
func (m Model) Init() tea.Cmd {
	m.driver.Start()
	go func() {
		if err := m.driver.Run(m.ctx); err != nil && m.ctx.Err() == nil {
			m.logger.Error("driver stopped", "error", err)
		}
		m.sink.Close()
	}()
	return waitForFrame(m.sink)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		m.frame = catch.Snapshot(msg)
		m.renderer.Draw(m.frame, m.screen)
		return m, waitForFrame(m.sink)

	case releaseMsg:
		return m.handleRelease(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		return m.quit()

	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case core.ActionLeft:
		return m.press(core.IntentLeft)

	case core.ActionRight:
		return m.press(core.IntentRight)

	case core.ActionStop:
		m.leftSeq, m.rightSeq = 0, 0
		m.driver.StopMoving()

	case core.ActionPause:
		m.driver.TogglePause()

	case core.ActionRestart:
		if m.frame.GameOver() {
			m.driver.Restart()
		}
	}

	return m, nil
}

// press holds a direction. Terminals send no key-up events, so every press or
// repeat schedules a release that only applies if no newer press arrives first.
func (m Model) press(dir core.Intent) (tea.Model, tea.Cmd) {
	m.seq++
	if dir == core.IntentLeft {
		m.leftSeq = m.seq
	} else {
		m.rightSeq = m.seq
	}
	m.driver.Press(dir)

	if m.releaseAfter <= 0 {
		return m, nil
	}
	return m, releaseCmd(dir, m.seq, m.releaseAfter)
}

// handleRelease releases a direction whose key stopped repeating.
func (m Model) handleRelease(msg releaseMsg) (tea.Model, tea.Cmd) {
	current := m.rightSeq
	if msg.dir == core.IntentLeft {
		current = m.leftSeq
	}
	if msg.seq != current {
		return m, nil // Stale: the key repeated or was stopped
	}

	if msg.dir == core.IntentLeft {
		m.leftSeq = 0
	} else {
		m.rightSeq = 0
	}
	m.driver.Release(msg.dir)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.renderer.Draw(m.frame, m.screen)
	return m, nil
}

// quit stops the driver and exits the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	m.driver.Stop()

	stats := m.driver.Stats()
	m.logger.Info("session finished",
		"score", m.frame.Score,
		"best", max(stats.BestScore, m.frame.Score),
		"games", stats.Games,
		"caught", stats.Caught,
		"missed", stats.Missed)

	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("catch_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return smallStyle.Render(fmt.Sprintf("Terminal too small (%dx%d), need %dx%d",
			m.width, m.height, minWidth, minHeight))
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
