package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"agelife/internal/app"
	"agelife/pkg/core"
	"agelife/pkg/life"
)

type fillList []float64

func (l *fillList) String() string {
	parts := make([]string, len(*l))
	for i, f := range *l {
		parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *fillList) Set(value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse fill %q: %w", value, err)
	}
	if f < 0 || f > 1 {
		return fmt.Errorf("fill %v outside [0, 1]", f)
	}
	*l = append(*l, f)
	return nil
}

type scenario struct {
	fill float64
	seed int64
}

type scenarioResult struct {
	scenario
	finalPop   int
	peakPop    int
	maxAge     uint32
	settleStep int
	err        error
}

func (r scenarioResult) String() string {
	c, _ := life.AgeToColor(r.maxAge)
	return fmt.Sprintf("fill=%.2f seed=%d final=%d peak=%d maxAge=%d color=#%02x%02x%02x settled=%d",
		r.fill, r.seed, r.finalPop, r.peakPop, r.maxAge, c.R, c.G, c.B, r.settleStep)
}

func main() {
	rows := flag.Int("rows", life.Rows, "grid rows")
	cols := flag.Int("cols", life.Cols, "grid columns")
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 16, "seeds per fill ratio")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	mode := flag.String("seed-mode", app.SeedUniform, "soup mode: uniform or noise")
	var fills fillList
	flag.Var(&fills, "fill", "fill ratio to sweep (repeatable)")
	flag.Parse()

	if len(fills) == 0 {
		fills = fillList{0.15, life.FillRatio, 0.35, 0.5}
	}
	if *mode != app.SeedUniform && *mode != app.SeedNoise {
		log.Fatalf("unknown seed mode %q", *mode)
	}
	if *rows <= 0 || *cols <= 0 || *steps < 0 || *seeds <= 0 || *workers <= 0 {
		log.Fatal("rows, cols, seeds and workers must be positive")
	}

	var sets []scenario
	for _, f := range fills {
		for s := 1; s <= *seeds; s++ {
			sets = append(sets, scenario{fill: f, seed: int64(s)})
		}
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d steps, %s)\n", len(sets), *rows, *cols, *workers, *steps, *mode)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *rows, *cols, *steps, *mode)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Fatalf("fill %.2f seed %d: %v", res.fill, res.seed, res.err)
		}
		all = append(all, res)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].maxAge != all[j].maxAge {
			return all[i].maxAge > all[j].maxAge
		}
		return all[i].finalPop > all[j].finalPop
	})

	fmt.Printf("\nTop 5 by oldest cell (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}

	fmt.Println("\nMean final population per fill:")
	for _, f := range fills {
		total, n := 0, 0
		for _, res := range all {
			if res.fill == f {
				total += res.finalPop
				n++
			}
		}
		if n > 0 {
			fmt.Printf("  fill=%.2f mean=%.1f\n", f, float64(total)/float64(n))
		}
	}
}

func runScenario(sc scenario, rows, cols, steps int, mode string) scenarioResult {
	res := scenarioResult{scenario: sc}
	var g *life.Grid
	if mode == app.SeedNoise {
		g, res.err = life.NoiseGrid(rows, cols, sc.fill, sc.seed)
		if res.err != nil {
			return res
		}
	} else {
		g = life.RandomGrid(rows, cols, sc.fill, core.NewRNG(sc.seed))
	}

	state := life.State{Grid: g}
	res.peakPop = g.Population()
	prev := res.peakPop
	for state.Generation < steps {
		state = state.Step()
		pop := state.Grid.Population()
		if pop != prev {
			res.settleStep = state.Generation
			prev = pop
		}
		res.peakPop = max(res.peakPop, pop)
	}
	res.finalPop = state.Grid.Population()
	res.maxAge = state.Grid.MaxAge()
	return res
}
