package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kv: not found")

// Store es el colaborador de persistencia clave-valor: documentos JSON
// completos bajo una clave fija (el análogo de localStorage). Los adapters
// viven en internal/adapters/storage.
type Store interface {
	// Load devuelve el documento o ErrNotFound si la clave no existe.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, doc []byte) error
	// Delete es idempotente: borrar una clave inexistente no es error.
	Delete(ctx context.Context, key string) error
}
