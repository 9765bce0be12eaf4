package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/mapyourmemory/memorymap/pkg/apperr"
)

// LocalStore writes uploads to a directory served statically under
// publicPrefix.
type LocalStore struct {
	dir          string
	publicPrefix string
	namer        *namer
}

func NewLocalStore(dir, publicPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.Storage("failed to prepare upload directory", err)
	}
	n, err := newNamer()
	if err != nil {
		return nil, apperr.Storage("failed to init upload naming", err)
	}
	return &LocalStore{dir: dir, publicPrefix: publicPrefix, namer: n}, nil
}

func (s *LocalStore) Store(ctx context.Context, r io.Reader, originalName string) (string, error) {
	name := s.namer.next(originalName)
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", apperr.Storage("failed to store file", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", apperr.Storage("failed to store file", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", apperr.Storage("failed to store file", err)
	}
	return path.Join(s.publicPrefix, name), nil
}

// Dir exposes the upload directory so the router can mount it for static
// serving.
func (s *LocalStore) Dir() string {
	return s.dir
}
