package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/kv"
)

type kvStore struct {
	dir string
}

// NewKVStore persiste cada documento como <dir>/<key>.json. Es el backend
// default: el equivalente de localStorage para un proceso local (sobrevive
// reinicios, no se comparte entre nodos).
func NewKVStore(dir string) (kv.Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("file store: dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: mkdir: %w", err)
	}
	return &kvStore{dir: dir}, nil
}

func (s *kvStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *kvStore) Load(ctx context.Context, key string) ([]byte, error) {
	doc, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("file store: read %s: %w", key, err)
	}
	return doc, nil
}

func (s *kvStore) Save(ctx context.Context, key string, doc []byte) error {
	// write + rename para no dejar un archivo a medio escribir
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, doc, 0o644); err != nil {
		return fmt.Errorf("file store: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("file store: rename %s: %w", key, err)
	}
	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("file store: remove %s: %w", key, err)
	}
	return nil
}
