package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/kv"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewKVStore(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := store.Load(ctx, "missing"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	doc := []byte(`{"hello":"world"}`)
	if err := store.Save(ctx, "auth-store", doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx, "auth-store")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(doc) {
		t.Fatalf("expected %s, got %s", doc, got)
	}

	if err := store.Delete(ctx, "auth-store"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Load(ctx, "auth-store"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Borrar lo que no existe no es error.
	if err := store.Delete(ctx, "auth-store"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewKVStore(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := store.Save(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := store.Load(ctx, "k")
	if err != nil || string(got) != "v2" {
		t.Fatalf("expected v2, got %s err=%v", got, err)
	}

	// Sin temporales colgando después del rename.
	if _, err := os.Stat(filepath.Join(dir, "k.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("tmp file left behind: %v", err)
	}
}

func TestFileStoreRequiresDir(t *testing.T) {
	if _, err := NewKVStore("  "); err == nil {
		t.Fatal("expected error for empty dir")
	}
}
