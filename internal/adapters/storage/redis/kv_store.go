package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/kv"
)

const keyPrefix = "petclinic:"

type kvStore struct {
	client *goredis.Client
}

// NewKVStore guarda los documentos como strings en Redis. El TTL de las
// asociaciones lo maneja el dominio (poda por timestamp), no Redis: así los
// cuatro backends se comportan igual.
func NewKVStore(addr, password string) kv.Store {
	return &kvStore{
		client: goredis.NewClient(&goredis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (s *kvStore) Load(ctx context.Context, key string) ([]byte, error) {
	doc, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, kv.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *kvStore) Save(ctx context.Context, key string, doc []byte) error {
	return s.client.Set(ctx, keyPrefix+key, doc, 0).Err()
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
