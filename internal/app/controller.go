package app

import (
	"fmt"
	"time"

	"agelife/internal/core"
	pkgcore "agelife/pkg/core"
	"agelife/pkg/life"
)

// HUD parameter keys.
const (
	keyInterval = "interval_ms"
	keyFill     = "fill_ratio"
)

// Controller owns the simulation state and the play/pause, stepping and
// painting rules. It has no GUI dependency; the ebiten Game forwards input to it.
type Controller struct {
	state    life.State
	rng      *pkgcore.RNG
	seedMode string
	fill     float64
	workers  int
	timer    *core.Interval
	now      func() time.Time

	running    bool
	painting   bool
	paintValue uint32
}

// NewController validates cfg and returns a paused controller on an empty grid.
func NewController(cfg *Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Controller{
		state:    life.NewState(cfg.Rows, cfg.Cols),
		rng:      pkgcore.NewRNG(cfg.Seed),
		seedMode: cfg.SeedMode,
		fill:     cfg.Fill,
		workers:  cfg.Workers,
		timer:    core.NewInterval(cfg.Interval),
		now:      time.Now,
	}, nil
}

// State returns the current simulation state.
func (c *Controller) State() life.State { return c.state }

// Grid returns the grid currently held by the controller.
func (c *Controller) Grid() *life.Grid { return c.state.Grid }

// Generation returns the number of steps since the last clear or randomize.
func (c *Controller) Generation() int { return c.state.Generation }

// Running reports whether the simulation is playing.
func (c *Controller) Running() bool { return c.running }

// Interval returns the delay between generations while playing.
func (c *Controller) Interval() time.Duration { return c.timer.Delay() }

// Start begins playing. It is a no-op when already running.
func (c *Controller) Start() {
	if c.running {
		return
	}
	c.running = true
	c.timer.Restart(c.now())
}

// Stop pauses the simulation.
func (c *Controller) Stop() { c.running = false }

// Toggle flips between playing and paused.
func (c *Controller) Toggle() {
	if c.running {
		c.Stop()
		return
	}
	c.Start()
}

// StepOnce advances a single generation. It only acts while paused.
func (c *Controller) StepOnce() bool {
	if c.running {
		return false
	}
	c.advance()
	return true
}

// Tick advances one generation when playing and the interval has elapsed.
func (c *Controller) Tick() bool {
	if !c.running || !c.timer.Due(c.now()) {
		return false
	}
	c.advance()
	return true
}

func (c *Controller) advance() {
	if c.workers > 1 {
		c.state = c.state.StepParallel(c.workers)
		return
	}
	c.state = c.state.Step()
}

// Clear stops the simulation and empties the grid.
func (c *Controller) Clear() {
	c.Stop()
	c.state = c.state.Clear()
}

// Randomize stops the simulation and seeds a new soup using the configured
// seed mode and fill ratio.
func (c *Controller) Randomize() error {
	c.Stop()
	if c.seedMode == SeedNoise {
		g, err := life.NoiseGrid(c.state.Grid.Rows, c.state.Grid.Cols, c.fill, c.rng.Int64())
		if err != nil {
			return fmt.Errorf("randomize: %w", err)
		}
		c.state = life.State{Grid: g}
		return nil
	}
	c.state = c.state.Randomize(c.fill, c.rng)
	return nil
}

// SetInterval changes the play speed, clamped to [MinInterval, MaxInterval].
// While playing the pending wait restarts.
func (c *Controller) SetInterval(d time.Duration) {
	c.timer.SetDelay(min(max(d, MinInterval), MaxInterval))
	if c.running {
		c.timer.Restart(c.now())
	}
}

// BeginPaint starts a drag at (r, c). Pressing on a live cell erases,
// pressing on a dead one draws, and the same value is kept for the rest of
// the drag. It reports whether (r, c) lies on the grid.
func (c *Controller) BeginPaint(r, col int) bool {
	g := c.state.Grid
	if !inBounds(g, r, col) {
		return false
	}
	c.painting = true
	c.paintValue = 1
	if g.Alive(r, col) {
		c.paintValue = 0
	}
	g.Set(r, col, c.paintValue)
	return true
}

// ContinuePaint applies the drag's value to (r, c).
func (c *Controller) ContinuePaint(r, col int) bool {
	g := c.state.Grid
	if !c.painting || !inBounds(g, r, col) {
		return false
	}
	g.Set(r, col, c.paintValue)
	return true
}

// EndPaint finishes the current drag.
func (c *Controller) EndPaint() { c.painting = false }

// Painting reports whether a drag is in progress.
func (c *Controller) Painting() bool { return c.painting }

func inBounds(g *life.Grid, r, col int) bool {
	return r >= 0 && r < g.Rows && col >= 0 && col < g.Cols
}

// ParameterControls lists the HUD-adjustable settings.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key: keyInterval, Label: "Speed (ms)", Type: core.ParamTypeInt,
			Step: float64(IntervalStep.Milliseconds()),
			Min:  float64(MinInterval.Milliseconds()),
			Max:  float64(MaxInterval.Milliseconds()),
		},
		{Key: keyFill, Label: "Fill", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
	}
}

// Parameters reports the current values of the HUD settings.
func (c *Controller) Parameters() []core.Parameter {
	return []core.Parameter{
		core.IntParam(keyInterval, "Speed (ms)", int(c.Interval().Milliseconds())),
		core.FloatParam(keyFill, "Fill", c.fill),
	}
}

// SetIntParameter implements core.IntParameterSetter.
func (c *Controller) SetIntParameter(key string, value int) bool {
	if key != keyInterval {
		return false
	}
	c.SetInterval(time.Duration(value) * time.Millisecond)
	return true
}

// SetFloatParameter implements core.FloatParameterSetter.
func (c *Controller) SetFloatParameter(key string, value float64) bool {
	if key != keyFill || value < 0 || value > 1 {
		return false
	}
	c.fill = value
	return true
}
