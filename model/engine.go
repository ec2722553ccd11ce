package model

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rifqialf/gameoflife/utils"
)

// Step calculates the next generation over the whole grid on the calling goroutine
func (g *Grid) Step(pool *GridPool) *Grid {
	next := newNext(g, pool)
	for y := range g.height {
		for x := range g.width {
			if g.nextState(y, x) {
				next.cells[y][x] = true
			}
		}
	}
	return next
}

// StepBounded calculates the next generation only around the live region.
// Cells more than one step away from every live cell have no live neighbors
// and stay dead, so the result matches Step.
func (g *Grid) StepBounded(pool *GridPool) *Grid {
	next := newNext(g, pool)

	b := g.liveBounds()
	if !b.valid {
		return next
	}

	// Process only the live region + 1 margin
	minRow := max(0, b.minRow-1)
	maxRow := min(g.height-1, b.maxRow+1)
	minCol := max(0, b.minCol-1)
	maxCol := min(g.width-1, b.maxCol+1)

	for y := minRow; y <= maxRow; y++ {
		for x := minCol; x <= maxCol; x++ {
			if g.nextState(y, x) {
				next.cells[y][x] = true
			}
		}
	}
	return next
}

// StepPartitioned calculates the next generation chunk by chunk, running up to
// workers chunks at once (all CPUs when workers <= 0). Each chunk reads
// neighbors from the whole of g and writes only its own cells of the result,
// so chunks never share output cells and the result matches Step.
func (g *Grid) StepPartitioned(spec ChunkSpec, workers int, pool *GridPool) (*Grid, error) {
	chunks, err := Partition(g.height, g.width, spec)
	if err != nil {
		return nil, errors.Wrap(err, "[StepPartitioned] failed to partition grid")
	}

	next := newNext(g, pool)

	var eg errgroup.Group
	eg.SetLimit(workerCount(workers))
	for _, chunk := range chunks {
		eg.Go(func() error {
			g.stepChunk(next, chunk)
			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		GridToPool(next, pool)
		return nil, errors.Wrap(err, "[StepPartitioned] chunk evaluation failed")
	}

	return next, nil
}

// stepChunk writes the next state of every cell in chunk into next
func (g *Grid) stepChunk(next *Grid, chunk Chunk) {
	for y := chunk.Row0; y < chunk.Row0+chunk.Height; y++ {
		for x := chunk.Col0; x < chunk.Col0+chunk.Width; x++ {
			next.cells[y][x] = g.nextState(y, x)
		}
	}
}

func workerCount(workers int) int {
	if workers <= 0 {
		return runtime.NumCPU()
	}
	return workers
}

// stepper advances a grid by one generation
type stepper func(g *Grid, pool *GridPool) (*Grid, error)

// stepperFor picks the generation function for config
func stepperFor(config utils.Config) (stepper, error) {
	if config.Partitioned() {
		spec := ChunkSpec{Height: config.ChunkHeight, Width: config.ChunkWidth}
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		return func(g *Grid, pool *GridPool) (*Grid, error) {
			return g.StepPartitioned(spec, config.Workers, pool)
		}, nil
	}
	if config.UseBoundedGrid {
		return func(g *Grid, pool *GridPool) (*Grid, error) {
			return g.StepBounded(pool), nil
		}, nil
	}
	return func(g *Grid, pool *GridPool) (*Grid, error) {
		return g.Step(pool), nil
	}, nil
}

// Run advances g by exactly generations generations using the mode selected by
// config and returns the final grid. g itself is never modified or recycled;
// generations == 0 returns a copy of g. The context is checked between
// generations.
func Run(ctx context.Context, g *Grid, generations int, config utils.Config, pool *GridPool) (*Grid, error) {
	if generations < 0 {
		return nil, errors.Errorf("[Run] generations must not be negative, got %d", generations)
	}

	step, err := stepperFor(config)
	if err != nil {
		return nil, errors.Wrap(err, "[Run] invalid configuration")
	}

	if generations == 0 {
		return g.Clone(), nil
	}

	h := newHistory(g, pool, config.FastForward)
	cur := g
	for gen := 1; gen <= generations; gen++ {
		if err = ctx.Err(); err != nil {
			h.releaseAll()
			return nil, errors.Wrapf(err, "[Run] stopped before generation %d", gen)
		}

		if cur, err = step(cur, pool); err != nil {
			h.releaseAll()
			return nil, errors.Wrapf(err, "[Run] generation %d", gen)
		}

		if final := h.record(cur, generations-gen); final != nil {
			return final, nil
		}
	}

	return h.finish(cur), nil
}
