package model

import "github.com/pkg/errors"

// ErrInvalidChunkSpec is returned for chunk dimensions that are not positive
var ErrInvalidChunkSpec = errors.New("invalid chunk spec")

// ChunkSpec is the requested chunk extent in cells
type ChunkSpec struct {
	Height int
	Width  int
}

// Validate checks that both chunk dimensions are positive
func (s ChunkSpec) Validate() error {
	if s.Height <= 0 || s.Width <= 0 {
		return errors.Wrapf(ErrInvalidChunkSpec, "[ChunkSpec] dimensions must be positive, got %dx%d", s.Height, s.Width)
	}
	return nil
}

// Chunk is a rectangular region of a grid: rows [Row0, Row0+Height) and
// columns [Col0, Col0+Width)
type Chunk struct {
	Row0   int
	Col0   int
	Height int
	Width  int
}

// Partition splits a height x width grid into chunks of spec's size in
// row-major order. Chunks on the bottom and right edges are cut short when the
// grid does not divide evenly, so every cell lands in exactly one chunk.
func Partition(height, width int, spec ChunkSpec) ([]Chunk, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var (
		rowChunks = (height + spec.Height - 1) / spec.Height
		colChunks = (width + spec.Width - 1) / spec.Width
		chunks    = make([]Chunk, 0, max(rowChunks*colChunks, 0))
	)
	for row0 := 0; row0 < height; row0 += spec.Height {
		for col0 := 0; col0 < width; col0 += spec.Width {
			chunks = append(chunks, Chunk{
				Row0:   row0,
				Col0:   col0,
				Height: min(spec.Height, height-row0),
				Width:  min(spec.Width, width-col0),
			})
		}
	}
	return chunks, nil
}
