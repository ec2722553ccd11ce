// Package codec converts between the sparse text form of a board and a dense
// model.Grid.
//
// The text form is a "<width> <height>" header line followed by one
// "<row> <col>" line per live cell.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rifqialf/gameoflife/model"
)

// ErrMalformedInput is returned when a header or cell line cannot be parsed or
// names a cell outside the grid
var ErrMalformedInput = errors.New("malformed input")

// Coordinate names one live cell in the sparse form
type Coordinate struct {
	Row int
	Col int
}

// Decode reads a board. Duplicate cell lines are harmless and blank lines are
// skipped. Nothing is returned unless the whole input is valid.
func Decode(r io.Reader) (*model.Grid, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "[Decode] failed to read header")
		}
		return nil, malformed(1, "missing header")
	}
	width, height, err := parsePair(scanner.Text())
	if err != nil {
		return nil, malformed(1, "header: %v", err)
	}
	if width < 0 || height < 0 {
		return nil, malformed(1, "header: negative dimensions %d %d", width, height)
	}

	var coords []Coordinate
	for line := 2; scanner.Scan(); line++ {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		row, col, err := parsePair(text)
		if err != nil {
			return nil, malformed(line, "cell: %v", err)
		}
		c := Coordinate{Row: row, Col: col}
		if !c.within(width, height) {
			return nil, malformed(line, "cell %d %d outside %dx%d grid", row, col, width, height)
		}
		coords = append(coords, c)
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[Decode] failed to read cells")
	}

	return FromCoordinates(width, height, coords)
}

// Encode writes the header from the grid's dimensions and then each live cell
// in row-major order
func Encode(w io.Writer, grid *model.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", grid.GetWidth(), grid.GetHeight())
	for _, c := range Coordinates(grid) {
		fmt.Fprintf(bw, "%d %d\n", c.Row, c.Col)
	}
	return errors.Wrap(bw.Flush(), "[Encode] failed to write grid")
}

// Coordinates lists the live cells of grid in row-major order
func Coordinates(grid *model.Grid) []Coordinate {
	var coords []Coordinate
	for row := range grid.GetHeight() {
		for col := range grid.GetWidth() {
			if grid.Get(row, col) {
				coords = append(coords, Coordinate{Row: row, Col: col})
			}
		}
	}
	return coords
}

// FromCoordinates builds a width x height grid with the given cells alive
func FromCoordinates(width, height int, coords []Coordinate) (*model.Grid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "[FromCoordinates] negative dimensions %d %d", width, height)
	}
	grid := model.NewGrid(width, height)
	for _, c := range coords {
		if !c.within(width, height) {
			return nil, errors.Wrapf(ErrMalformedInput, "[FromCoordinates] cell %d %d outside %dx%d grid", c.Row, c.Col, width, height)
		}
		grid.Set(c.Row, c.Col, true)
	}
	return grid, nil
}

func (c Coordinate) within(width, height int) bool {
	return c.Row >= 0 && c.Row < height && c.Col >= 0 && c.Col < width
}

// parsePair parses a line holding exactly two integers
func parsePair(text string) (int, int, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, errors.Errorf("want 2 integers, got %d fields in %q", len(fields), text)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errors.Errorf("%q is not an integer", fields[0])
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Errorf("%q is not an integer", fields[1])
	}
	return a, b, nil
}

func malformed(line int, format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedInput, "[Decode] line %d: %s", line, fmt.Sprintf(format, args...))
}
