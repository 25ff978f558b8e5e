package loop

import (
	"context"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-catch/internal/catch"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// InputSource provides the movement intent sampled at every tick.
// *core.Controller and *catch.Autopilot implement it.
type InputSource interface {
	CurrentIntent() core.Intent
}

// Renderer receives a snapshot after every tick, at start and after a restart.
// It must not block for long; the driver waits for it.
type Renderer interface {
	Draw(snap catch.Snapshot)
}

// Observer is an optional interface for input sources that steer by watching
// frames. The driver shows it each frame before the renderer.
type Observer interface {
	Observe(snap catch.Snapshot)
}

// Options configures a Driver.
type Options struct {
	Config    catch.Config
	Seed      int64
	Clock     Clock       // Defaults to a TickerClock
	Input     InputSource // Defaults to the driver's own keyboard Controller
	Renderer  Renderer    // Optional
	Logger    *log.Logger // Optional
	ID        string      // Run identifier for logs; generated when empty
}

// Stats summarizes everything a driver has played.
type Stats struct {
	Games     int // Finished games
	Restarts  int
	Caught    int
	Missed    int
	BestScore int
	Ticks     uint64 // Ticks that advanced a game
}

// Driver runs one game. Tick and spawn timers, key events and restart
// requests are queued as messages and applied one at a time, so the game
// state is only ever touched by the goroutine processing the queue.
type Driver struct {
	id       string
	cfg      catch.Config
	clock    Clock
	input    InputSource
	renderer Renderer
	logger   *log.Logger

	// Owned by the processing goroutine
	state      *catch.State
	spawner    *catch.Spawner
	controller *core.Controller
	paused     bool

	mu    sync.Mutex
	last  catch.Snapshot
	stats Stats

	spawnGen    uint64 // Owned by the processing goroutine
	cancelTick  func() // Guarded by mu
	cancelSpawn func() // Guarded by mu

	mailMu  sync.Mutex
	mailbox []Message     // Guarded by mailMu; unbounded so senders never block
	notify  chan struct{} // Wakes Run when the mailbox goes non-empty

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a driver. Call Start to arm its timers and then either Run or Process.
func New(opts Options) *Driver {
	if opts.Clock == nil {
		opts.Clock = NewTickerClock()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}

	d := &Driver{
		id:         opts.ID,
		cfg:        opts.Config,
		clock:      opts.Clock,
		renderer:   opts.Renderer,
		logger:     opts.Logger.With("run", opts.ID),
		state:      catch.NewState(opts.Config),
		spawner:    catch.NewSpawner(opts.Config, rand.New(rand.NewSource(opts.Seed))), //#nosec G404 -- gameplay randomness
		controller: core.NewController(),
		notify:     make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	d.input = opts.Input
	if d.input == nil {
		d.input = d.controller
	}
	d.last = d.state.Snapshot()
	return d
}

// ID returns the run identifier.
func (d *Driver) ID() string {
	return d.id
}

// Start queues the first frame and arms the tick and spawn timers.
func (d *Driver) Start() {
	d.Send(redrawMsg{})

	cancel := d.clock.ScheduleRepeating(d.cfg.TickInterval, func() { d.Send(TickMsg{}) })
	d.mu.Lock()
	d.cancelTick = cancel
	d.mu.Unlock()
	d.armSpawner()

	d.logger.Info("game started",
		"tick", d.cfg.TickInterval,
		"spawn", d.cfg.SpawnInterval,
		"lives", d.cfg.Lives)
}

// Stop cancels the timers and ends Run. It is safe to call more than once.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		for _, cancel := range []func(){d.cancelTick, d.cancelSpawn} {
			if cancel != nil {
				cancel()
			}
		}
		d.cancelTick, d.cancelSpawn = nil, nil
		close(d.done)
		d.mu.Unlock()
	})
}

// armSpawner (re)starts the spawn timer. Messages from earlier timers carry an
// older generation and are ignored.
func (d *Driver) armSpawner() {
	d.spawnGen++
	gen := d.spawnGen

	d.mu.Lock()
	defer d.mu.Unlock()
	select {
	case <-d.done:
		return
	default:
	}
	if d.cancelSpawn != nil {
		d.cancelSpawn()
	}
	d.cancelSpawn = d.clock.ScheduleRepeating(d.cfg.SpawnInterval, func() { d.Send(SpawnMsg{Gen: gen}) })
}

// Done is closed once the driver is stopped.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// Run processes messages until ctx is cancelled or Stop is called.
func (d *Driver) Run(ctx context.Context) error {
	defer d.Stop()
	for {
		for _, msg := range d.take() {
			d.handleMessage(msg)
		}
		select {
		case <-d.notify:
		case <-ctx.Done():
			return ctx.Err()
		case <-d.done:
			return nil
		}
	}
}

// Process handles every queued message without blocking and returns how many
// it handled. It is the single-goroutine alternative to Run.
func (d *Driver) Process() int {
	n := 0
	for {
		msgs := d.take()
		if len(msgs) == 0 {
			return n
		}
		for _, msg := range msgs {
			d.handleMessage(msg)
		}
		n += len(msgs)
	}
}

// take empties the mailbox and returns its messages in arrival order.
func (d *Driver) take() []Message {
	d.mailMu.Lock()
	defer d.mailMu.Unlock()
	msgs := d.mailbox
	d.mailbox = nil
	return msgs
}

// Send queues a message without blocking. Clock callbacks call it from
// inside ManualClock.Advance, before anyone can drain the queue.
// Messages sent after Stop are dropped.
func (d *Driver) Send(msg Message) {
	select {
	case <-d.done:
		return
	default:
	}

	d.mailMu.Lock()
	d.mailbox = append(d.mailbox, msg)
	d.mailMu.Unlock()

	select {
	case d.notify <- struct{}{}:
	default:
	}
}

// Press queues a direction key press.
func (d *Driver) Press(dir core.Intent) { d.Send(PressMsg{Dir: dir}) }

// Release queues a direction key release.
func (d *Driver) Release(dir core.Intent) { d.Send(ReleaseMsg{Dir: dir}) }

// StopMoving queues a request to clear the held direction.
func (d *Driver) StopMoving() { d.Send(StopMsg{}) }

// Restart queues a restart request; it only takes effect after game over.
func (d *Driver) Restart() { d.Send(RestartMsg{}) }

// TogglePause queues a pause toggle.
func (d *Driver) TogglePause() { d.Send(PauseMsg{}) }

// Snapshot returns the most recently drawn frame.
func (d *Driver) Snapshot() catch.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Stats returns the play totals so far.
func (d *Driver) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

func (d *Driver) handleMessage(msg Message) {
	switch m := msg.(type) {
	case TickMsg:
		d.handleTick()
	case SpawnMsg:
		if m.Gen == d.spawnGen {
			d.handleSpawn()
		}
	case PressMsg:
		d.controller.Press(m.Dir)
	case ReleaseMsg:
		d.controller.Release(m.Dir)
	case StopMsg:
		d.controller.Reset()
	case RestartMsg:
		d.handleRestart()
	case PauseMsg:
		d.handlePause()
	case redrawMsg:
		d.draw()
	}
}

func (d *Driver) handleTick() {
	if d.paused {
		d.draw()
		return
	}

	playing := d.state.Phase() == catch.PhasePlaying
	res := d.state.Tick(d.input.CurrentIntent(), 1)

	for _, id := range res.Caught {
		d.logger.Debug("caught", "id", id, "score", d.state.Score())
	}
	for _, id := range res.Missed {
		d.logger.Debug("missed", "id", id, "lives", d.state.Lives())
	}

	d.mu.Lock()
	if playing {
		d.stats.Ticks++
	}
	d.stats.Caught += len(res.Caught)
	d.stats.Missed += len(res.Missed)
	if res.GameOver {
		d.stats.Games++
		d.stats.BestScore = max(d.stats.BestScore, d.state.Score())
	}
	d.mu.Unlock()

	if res.GameOver {
		d.logger.Info("game over",
			"score", d.state.Score(),
			"ticks", d.state.TickCount(),
			"falling", d.state.EntityCount())
	}

	d.draw()
}

func (d *Driver) handleSpawn() {
	if d.paused {
		return
	}
	e, ok := d.spawner.TrySpawn(d.cfg.SpawnInterval, d.state.Phase())
	if !ok {
		return
	}
	if d.state.AddEntity(e) {
		d.logger.Debug("spawned", "id", e.ID, "x", e.X)
	}
}

func (d *Driver) handleRestart() {
	if d.state.Phase() != catch.PhaseGameOver {
		d.logger.Debug("restart ignored", "phase", d.state.Phase())
		return
	}

	prev := d.state.Score()
	d.state.Restart()
	d.spawner.Reset()
	d.armSpawner()
	d.controller.Reset()
	d.paused = false

	d.mu.Lock()
	d.stats.Restarts++
	d.mu.Unlock()

	d.logger.Info("game restarted", "previous_score", prev)
	d.draw()
}

func (d *Driver) handlePause() {
	if d.state.Phase() == catch.PhaseGameOver {
		return
	}
	d.paused = !d.paused
	d.controller.Reset()
	d.logger.Debug("pause toggled", "paused", d.paused)
	d.draw()
}

// draw publishes the current state to the observer and renderer.
func (d *Driver) draw() {
	snap := d.state.Snapshot()
	snap.Paused = d.paused

	d.mu.Lock()
	d.last = snap
	d.mu.Unlock()

	if obs, ok := d.input.(Observer); ok {
		obs.Observe(snap)
	}
	if d.renderer != nil {
		d.renderer.Draw(snap)
	}
}
