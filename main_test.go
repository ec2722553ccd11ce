package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/rifqialf/gameoflife/codec"
	"github.com/rifqialf/gameoflife/model"
	"github.com/rifqialf/gameoflife/utils"
)

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunSimulationModesAgree(t *testing.T) {
	// Glider near the top left of a 10x8 board
	input := writeInput(t, "10 8\n0 1\n1 2\n2 0\n2 1\n2 2\n")
	dir := t.TempDir()

	var outputs []string
	for i, chunked := range []bool{false, true} {
		args := utils.Args{
			Input:       input,
			Output:      filepath.Join(dir, []string{"whole.txt", "chunked.txt"}[i]),
			Generations: 9,
			Chunked:     chunked,
			ChunkHeight: 3,
			ChunkWidth:  4,
		}
		config := loadConfig(filepath.Join(dir, "absent.json"), args)
		if config.Partitioned() != chunked {
			t.Fatalf("chunked=%v produced config %+v", chunked, config)
		}
		stats, err := runSimulation(context.Background(), args, config)
		if err != nil {
			t.Fatalf("chunked=%v: %v", chunked, err)
		}
		// A glider always fits a 3x3 box
		if stats.Generations != 9 || stats.Population != 5 || stats.BoundingBoxSize != 9 {
			t.Errorf("chunked=%v: unexpected stats %+v", chunked, stats)
		}
		data, err := os.ReadFile(args.Output)
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, string(data))
	}

	if outputs[0] != outputs[1] {
		t.Fatalf("whole grid output %q differs from chunked %q", outputs[0], outputs[1])
	}
	if !strings.HasPrefix(outputs[0], "10 8\n") {
		t.Errorf("output header wrong: %q", outputs[0])
	}
}

func TestRunSimulationErrors(t *testing.T) {
	dir := t.TempDir()
	config := utils.DefaultConfig()

	_, err := runSimulation(context.Background(), utils.Args{Input: filepath.Join(dir, "missing"), Output: filepath.Join(dir, "out")}, config)
	if !errors.Is(err, codec.ErrFileNotFound) {
		t.Errorf("got %v, want ErrFileNotFound", err)
	}

	bad := writeInput(t, "3 3\n5 5\n")
	_, err = runSimulation(context.Background(), utils.Args{Input: bad, Output: filepath.Join(dir, "out")}, config)
	if !errors.Is(err, codec.ErrMalformedInput) {
		t.Errorf("got %v, want ErrMalformedInput", err)
	}

	good := writeInput(t, "3 3\n")
	config.Chunked, config.ChunkHeight, config.ChunkWidth = true, 0, 2
	_, err = runSimulation(context.Background(), utils.Args{Input: good, Output: filepath.Join(dir, "out"), Generations: 1}, config)
	if !errors.Is(err, model.ErrInvalidChunkSpec) {
		t.Errorf("got %v, want ErrInvalidChunkSpec", err)
	}
}

func TestRunSimulationRejectsZeroChunks(t *testing.T) {
	input := writeInput(t, "4 4\n1 1\n")
	output := filepath.Join(t.TempDir(), "out.txt")

	for _, sizes := range [][2]string{{"0", "0"}, {"0", "3"}, {"3", "0"}, {"-2", "-2"}} {
		args, err := utils.ParseArgs([]string{input, output, "1", sizes[0], sizes[1]})
		if err != nil {
			t.Fatalf("ParseArgs %v: %v", sizes, err)
		}
		config := loadConfig(filepath.Join(t.TempDir(), "absent.json"), args)
		if !config.Partitioned() {
			t.Fatalf("chunk sizes %v on the command line did not select partitioned mode", sizes)
		}
		if _, err = runSimulation(context.Background(), args, config); !errors.Is(err, model.ErrInvalidChunkSpec) {
			t.Errorf("chunk sizes %v: got %v, want ErrInvalidChunkSpec", sizes, err)
		}
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("rejected run still wrote an output file")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"use_bounded_grid": true, "chunked": true, "chunk_height": 8, "chunk_width": 8}`), 0o644); err != nil {
		t.Fatal(err)
	}

	config := loadConfig(path, utils.Args{})
	if !config.UseBoundedGrid || !config.Partitioned() || config.ChunkHeight != 8 {
		t.Errorf("file settings not applied: %+v", config)
	}

	config = loadConfig(path, utils.Args{Chunked: true, ChunkHeight: 2, ChunkWidth: 3})
	if config.ChunkHeight != 2 || config.ChunkWidth != 3 {
		t.Errorf("command line chunk sizes should win: %+v", config)
	}
}

func TestExitMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{utils.ErrNoInput, "No input filename."},
		{utils.ErrNoChunkSize, "No chunksize."},
		{errors.Wrap(codec.ErrFileNotFound, "x"), "Input file not found."},
		{errors.Wrap(model.ErrInvalidChunkSpec, "x"), "Invalid chunksize."},
		{errors.Wrap(codec.ErrMalformedInput, "x"), "Malformed input file:"},
	}
	for _, tt := range tests {
		if got := exitMessage(tt.err); !strings.HasPrefix(got, tt.want) {
			t.Errorf("exitMessage(%v) = %q, want prefix %q", tt.err, got, tt.want)
		}
	}
}
