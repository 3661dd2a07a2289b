// Package transfers persists and owns the nine "transfer" flags shown on the
// transfers screen.
package transfers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/model"
	"github.com/spf13/afero"
)

// StateFileName is the name of the persisted record inside the data directory.
const StateFileName = "transfers_state.txt"

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// Store reads and writes the single persisted toggle record.
type Store interface {
	Load(ctx context.Context) (model.ToggleVector, error)
	Save(ctx context.Context, v model.ToggleVector) error
}

// FileStore keeps the record as one line of text on an afero filesystem.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore returns a store for dir/transfers_state.txt on fs.
func NewFileStore(fs afero.Fs, dir string) *FileStore {
	return &FileStore{
		fs:   fs,
		path: filepath.Join(dir, StateFileName),
	}
}

// Path returns the location of the record.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the record. A missing record is the first-run state: it yields
// the all-false vector and no error. A malformed record wraps
// common.ErrCorruptState; any other failure is a *common.IOError.
func (s *FileStore) Load(ctx context.Context) (model.ToggleVector, error) {
	if err := ctx.Err(); err != nil {
		return model.ToggleVector{}, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.ToggleVector{}, nil
		}
		return model.ToggleVector{}, &common.IOError{Op: "read", Path: s.path, Err: err}
	}

	v, err := model.ParseToggleVector(string(data))
	if err != nil {
		return model.ToggleVector{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return v, nil
}

// Save overwrites the record with v.
func (s *FileStore) Save(ctx context.Context, v model.ToggleVector) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return &common.IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(v.String()), filePerm); err != nil {
		return &common.IOError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// Ensure FileStore implements Store interface.
var _ Store = (*FileStore)(nil)
