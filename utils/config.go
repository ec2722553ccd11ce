package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds the tunables for a simulation run
type Config struct {
	// Chunked selects partitioned mode with ChunkHeight x ChunkWidth chunks
	Chunked        bool `json:"chunked"`
	ChunkHeight    int  `json:"chunk_height"`
	ChunkWidth     int  `json:"chunk_width"`
	Workers        int  `json:"workers"` // <= 0 means runtime.NumCPU()
	UseMemoryPool  bool `json:"use_memory_pool"`
	UseBoundedGrid bool `json:"use_bounded_grid"`
	FastForward    bool `json:"fast_forward"`
	ReportTiming   bool `json:"report_timing"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		UseMemoryPool:  true,
		UseBoundedGrid: false,
		FastForward:    true,
		ReportTiming:   true,
	}
}

// Partitioned reports whether the run should use chunked evaluation
func (c Config) Partitioned() bool {
	return c.Chunked
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
