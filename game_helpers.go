package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/rifqialf/gameoflife/codec"
	"github.com/rifqialf/gameoflife/model"
	"github.com/rifqialf/gameoflife/utils"
)

// loadConfig reads the optional config file and applies the command line on
// top of it. A missing file means defaults.
func loadConfig(filename string, args utils.Args) utils.Config {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Using default configuration (%v)\n", err)
		}
		config = utils.DefaultConfig()
	}

	// Chunk sizes on the command line select partitioned mode
	if args.Chunked {
		config.Chunked = true
		config.ChunkHeight = args.ChunkHeight
		config.ChunkWidth = args.ChunkWidth
	}

	return config
}

// runSimulation decodes the input, runs every generation and writes the result
func runSimulation(ctx context.Context, args utils.Args, config utils.Config) (*utils.Stats, error) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	// Timing covers decode and encode as well as the generations
	stats := utils.NewStats()

	grid, err := codec.ReadFile(args.Input)
	if err != nil {
		return nil, err
	}

	final, err := model.Run(ctx, grid, args.Generations, config, pool)
	if err != nil {
		return nil, err
	}

	if err = codec.WriteFile(args.Output, final); err != nil {
		return nil, err
	}
	stats.Finish(args.Generations, final.CountLivingCells(), final.GetBoundingBoxSize())

	return stats, nil
}

// exitMessage maps err to the line shown to the user
func exitMessage(err error) string {
	switch {
	case errors.Is(err, codec.ErrFileNotFound):
		return utils.ErrInputNotFound.Error()
	case errors.Is(err, model.ErrInvalidChunkSpec):
		return fmt.Sprintf("%v (%v)", utils.ErrInvalidChunkSize, err)
	case errors.Is(err, codec.ErrMalformedInput):
		return fmt.Sprintf("Malformed input file: %v", err)
	case errors.Is(err, context.Canceled):
		return "Interrupted."
	}
	return err.Error()
}
