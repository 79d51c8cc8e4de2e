package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/adapters/petapi"
	filekv "github.com/ducnguyenbiarea/PetClinicSystem/internal/adapters/storage/file"
	memkv "github.com/ducnguyenbiarea/PetClinicSystem/internal/adapters/storage/memory"
	pg "github.com/ducnguyenbiarea/PetClinicSystem/internal/adapters/storage/postgres"
	rediskv "github.com/ducnguyenbiarea/PetClinicSystem/internal/adapters/storage/redis"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/config"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/analytics"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/assoccache"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/dashboard"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/session"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/platform/logger"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/kv"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/router"
)

func main() {
	cfg := config.Load()
	logg := logger.NewFromEnv()

	client, err := petapi.NewClient(petapi.Config{
		BaseURL: cfg.UpstreamBaseURL,
		Timeout: cfg.UpstreamTimeout,
	}, logg)
	if err != nil {
		log.Fatalf("upstream client: %v", err)
	}

	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("storage (%s): %v", cfg.Storage, err)
	}

	sessions := session.NewStore(client, store, logg)
	cache := assoccache.NewCache(store, logg)
	analyticsSvc := analytics.NewService(client)
	dashboardSvc := dashboard.NewService(client)

	// Si el snapshot no dejó sesión, probamos contra el upstream por si
	// el jar todavía tiene cookie válida de una corrida anterior.
	if !sessions.State().IsAuthenticated {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.UpstreamTimeout)
		if err := sessions.RestoreSession(ctx); err != nil {
			logg.Info("no active session at boot", map[string]any{"reason": err.Error()})
		}
		cancel()
	}

	r := router.NewRouter(router.Options{
		Store:     sessions,
		Cache:     cache,
		Analytics: analyticsSvc,
		Dashboard: dashboardSvc,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("starting server on %s (storage=%s)", cfg.Addr, cfg.Storage)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func openStorage(cfg config.Config) (kv.Store, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return memkv.NewKVStore(), nil
	case config.StoragePostgres:
		db, err := pg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pg.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		return pg.NewKVStore(db), nil
	case config.StorageRedis:
		return rediskv.NewKVStore(cfg.RedisAddr, cfg.RedisPassword), nil
	default:
		return filekv.NewKVStore(cfg.StorageDir)
	}
}
