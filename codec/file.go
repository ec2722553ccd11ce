package codec

import (
	"os"

	"github.com/pkg/errors"

	"github.com/rifqialf/gameoflife/model"
)

// ErrFileNotFound is returned by ReadFile when the input path does not exist
var ErrFileNotFound = errors.New("input file not found")

// ReadFile decodes the board stored at path
func ReadFile(path string) (*model.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrFileNotFound, "[ReadFile] %s", path)
		}
		return nil, errors.Wrapf(err, "[ReadFile] failed to open file: %+v", path)
	}
	defer f.Close()

	grid, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] failed to decode file: %+v", path)
	}
	return grid, nil
}

// WriteFile encodes grid to path, replacing any existing file
func WriteFile(path string, grid *model.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[WriteFile] failed to create file: %+v", path)
	}

	if err = Encode(f, grid); err != nil {
		f.Close()
		return errors.Wrapf(err, "[WriteFile] failed to write file: %+v", path)
	}
	return errors.Wrapf(f.Close(), "[WriteFile] failed to close file: %+v", path)
}
