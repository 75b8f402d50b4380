package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"agelife/pkg/life"
)

// Seed modes accepted by -seed-mode.
const (
	SeedUniform = "uniform"
	SeedNoise   = "noise"
)

// Speed bounds for the step interval.
const (
	MinInterval  = 10 * time.Millisecond
	MaxInterval  = 1000 * time.Millisecond
	IntervalStep = 10 * time.Millisecond
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Cols     int
	Fill     float64
	Interval time.Duration
	Seed     int64
	SeedMode string
	Width    int
	Height   int
	Workers  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:     life.Rows,
		Cols:     life.Cols,
		Fill:     life.FillRatio,
		Interval: 100 * time.Millisecond,
		Seed:     time.Now().UnixNano(),
		SeedMode: SeedUniform,
		Width:    820,
		Height:   670,
		Workers:  1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "live cell probability for randomize")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations while playing")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "randomize mode: uniform or noise")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation step")
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols))
	}
	if c.Fill < 0 || c.Fill > 1 {
		errs = append(errs, fmt.Errorf("fill %v outside [0, 1]", c.Fill))
	}
	if c.Interval < MinInterval || c.Interval > MaxInterval {
		errs = append(errs, fmt.Errorf("interval %v outside [%v, %v]", c.Interval, MinInterval, MaxInterval))
	}
	if c.SeedMode != SeedUniform && c.SeedMode != SeedNoise {
		errs = append(errs, fmt.Errorf("unknown seed mode %q", c.SeedMode))
	}
	if c.Width <= life.PaddingX || c.Height <= life.PaddingY {
		errs = append(errs, fmt.Errorf("window %dx%d leaves no room for the grid", c.Width, c.Height))
	}
	return errors.Join(errs...)
}
