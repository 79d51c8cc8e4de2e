package memory

import (
	"context"
	"sync"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/kv"
)

type kvStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewKVStore devuelve un kv.Store en memoria (dev/tests).
func NewKVStore() kv.Store {
	return &kvStore{
		docs: make(map[string][]byte),
	}
}

func (s *kvStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, kv.ErrNotFound
	}

	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *kvStore) Save(ctx context.Context, key string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(doc))
	copy(cp, doc)
	s.docs[key] = cp
	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, key)
	return nil
}
