package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/kv"
)

type kvStore struct {
	db *sql.DB
}

// NewKVStore guarda los documentos en una tabla clave->jsonb. Útil cuando el
// gateway ya corre junto a un Postgres y se quiere persistencia compartida.
func NewKVStore(db *sql.DB) kv.Store {
	return &kvStore{db: db}
}

// EnsureSchema crea la tabla si no existe. Se llama una vez desde main.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_documents (
			key        text PRIMARY KEY,
			doc        jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("kv schema: %w", err)
	}
	return nil
}

func (s *kvStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT doc FROM kv_documents WHERE key = $1
	`, key).Scan(&doc)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, kv.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *kvStore) Save(ctx context.Context, key string, doc []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_documents (key, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET doc = EXCLUDED.doc, updated_at = now()
	`, key, doc)
	return err
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM kv_documents WHERE key = $1
	`, key)
	return err
}
