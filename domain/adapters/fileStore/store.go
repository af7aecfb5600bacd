package fileStore

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Store writes downloads into local directories. Directories must already exist.
type Store struct{}

func New() *Store {
	return &Store{}
}

// Save creates or truncates dir/name and streams body into it.
// A partially written file is left behind on failure.
func (s *Store) Save(_ context.Context, dir, name string, body io.Reader) (string, error) {
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return path, err
	}

	if _, err := io.Copy(file, body); err != nil {
		file.Close()
		return path, errors.Wrap(err, "copying contents")
	}

	if err := file.Close(); err != nil {
		return path, errors.Wrap(err, "closing file")
	}
	return path, nil
}
