package utils

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// User-facing messages for a bad command line, printed verbatim before exiting
var (
	ErrNoInput           = errors.New("No input filename.")
	ErrNoOutput          = errors.New("No output filename.")
	ErrInputNotFound     = errors.New("Input file not found.")
	ErrNoGenerations     = errors.New("No number of generations.")
	ErrInvalidGeneration = errors.New("Invalid number of generations.")
	ErrNoChunkSize       = errors.New("No chunksize.")
	ErrInvalidChunkSize  = errors.New("Invalid chunksize.")
)

// Args is the parsed command line
type Args struct {
	Input       string
	Output      string
	Generations int

	// Chunked is set when both chunk sizes were given
	Chunked     bool
	ChunkHeight int
	ChunkWidth  int
}

// ParseArgs parses <input> <output> <generations> [<chunkHeight> <chunkWidth>],
// args excluding the program name. Fields are checked in order and the first
// problem is returned.
func ParseArgs(args []string) (Args, error) {
	var parsed Args

	if len(args) < 1 || args[0] == "" {
		return parsed, ErrNoInput
	}
	parsed.Input = args[0]

	if len(args) < 2 || args[1] == "" {
		return parsed, ErrNoOutput
	}
	parsed.Output = args[1]

	if _, err := os.Stat(parsed.Input); err != nil {
		return parsed, ErrInputNotFound
	}

	if len(args) < 3 {
		return parsed, ErrNoGenerations
	}
	generations, err := strconv.Atoi(args[2])
	if err != nil || generations < 0 {
		return parsed, ErrInvalidGeneration
	}
	parsed.Generations = generations

	if len(args) == 3 {
		return parsed, nil
	}

	if parsed.ChunkHeight, err = parseChunkSize(args, 3); err != nil {
		return parsed, err
	}
	if parsed.ChunkWidth, err = parseChunkSize(args, 4); err != nil {
		return parsed, err
	}
	parsed.Chunked = true

	return parsed, nil
}

// parseChunkSize reads a chunk dimension. Non-positive values are accepted
// here and rejected by the engine.
func parseChunkSize(args []string, i int) (int, error) {
	if len(args) <= i {
		return 0, ErrNoChunkSize
	}
	size, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, ErrInvalidChunkSize
	}
	return size, nil
}
