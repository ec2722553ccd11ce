package utils

import (
	"fmt"
	"io"
	"time"
)

// Stats records wall-clock and CPU time for a run
type Stats struct {
	Generations     int
	Population      int
	BoundingBoxSize int
	StartTime       time.Time
	WallTime    time.Duration
	CPUTime     time.Duration

	startCPU time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now(), startCPU: processCPUTime()}
}

// Finish stops the clocks and records the final generation count, population
// and size of the live region
func (s *Stats) Finish(generations, population, boundingBoxSize int) {
	s.Generations = generations
	s.Population = population
	s.BoundingBoxSize = boundingBoxSize
	s.WallTime = time.Since(s.StartTime)
	s.CPUTime = processCPUTime() - s.startCPU
}

// Report writes the timing summary
func (s *Stats) Report(w io.Writer) {
	fmt.Fprintf(w, "Gen: %d | Living: %d | Bounding box: %d cells\n",
		s.Generations, s.Population, s.BoundingBoxSize)
	fmt.Fprintf(w, "Wall Time: %v seconds\n", s.WallTime.Seconds())
	fmt.Fprintf(w, "CPU Time: %v seconds\n", s.CPUTime.Seconds())
	fmt.Fprintln(w)
}
