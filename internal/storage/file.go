package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps each collection in <Dir>/<name>.json.
type FileBackend struct {
	Dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileBackend{Dir: dir}, nil
}

func (b *FileBackend) Path(name string) string {
	return filepath.Join(b.Dir, name+".json")
}

func (b *FileBackend) Ensure(_ context.Context, name string) error {
	_, err := os.Stat(b.Path(name))
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return b.Write(context.Background(), name, []byte("[]"))
}

func (b *FileBackend) Read(_ context.Context, name string) ([]byte, error) {
	doc, err := os.ReadFile(b.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingCollection)
	}
	return doc, err
}

// Write goes through a temp file and a rename so the previous document stays
// intact until the new one is complete.
func (b *FileBackend) Write(_ context.Context, name string, doc []byte) error {
	tmp, err := os.CreateTemp(b.Dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), b.Path(name))
}
