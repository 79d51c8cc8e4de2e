// Package assoccache guarda qué mascota originó cada reserva. La API
// upstream no devuelve ese vínculo, así que se registra al crear la
// reserva y se conserva durante treinta días.
package assoccache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/platform/logger"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/kv"
)

const (
	storageKey = "pet_booking_associations"
	retention  = 30 * 24 * time.Hour
)

// Cache es tolerante a fallos del almacenamiento: una lectura fallida
// se trata como lista vacía y una escritura fallida solo se loguea.
type Cache struct {
	mu    sync.Mutex
	store kv.Store
	log   logger.Logger
	now   func() time.Time
}

func NewCache(store kv.Store, log logger.Logger) *Cache {
	return &Cache{
		store: store,
		log:   log.With(map[string]any{"component": "assoccache"}),
		now:   time.Now,
	}
}

// Save registra el vínculo reserva->mascota. Si ya había un registro
// para la misma reserva se reemplaza. Ids en cero se ignoran.
func (c *Cache) Save(ctx context.Context, bookingID, petID int64, petName, petSpecies string) {
	if bookingID == 0 || petID == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Toda carga pasa por la poda: una escritura no debe re-persistir
	// entradas ya vencidas.
	assocs := c.pruneLocked(ctx)

	kept := assocs[:0]
	for _, a := range assocs {
		if a.BookingID != bookingID {
			kept = append(kept, a)
		}
	}
	kept = append(kept, Association{
		BookingID:  bookingID,
		PetID:      petID,
		PetName:    petName,
		PetSpecies: petSpecies,
		Timestamp:  c.now(),
	})

	c.persistLocked(ctx, kept)
}

// Get devuelve la mascota asociada a la reserva, si el registro existe
// y sigue vigente. Las entradas vencidas se podan en la misma lectura.
func (c *Cache) Get(ctx context.Context, bookingID int64) (PetRef, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	assocs := c.pruneLocked(ctx)

	for _, a := range assocs {
		if a.BookingID == bookingID {
			return PetRef{Name: a.PetName, Species: a.PetSpecies}, true
		}
	}
	return PetRef{}, false
}

// GetAll devuelve las asociaciones vigentes.
func (c *Cache) GetAll(ctx context.Context) []Association {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pruneLocked(ctx)
}

// Remove elimina el registro de una reserva puntual.
func (c *Cache) Remove(ctx context.Context, bookingID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	assocs := c.pruneLocked(ctx)

	kept := assocs[:0]
	for _, a := range assocs {
		if a.BookingID != bookingID {
			kept = append(kept, a)
		}
	}

	c.persistLocked(ctx, kept)
}

// ClearAll borra el documento completo.
func (c *Cache) ClearAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Delete(ctx, storageKey); err != nil {
		c.log.Warn("association cache clear failed", map[string]any{"err": err.Error()})
	}
}

// pruneLocked carga, descarta lo vencido y re-persiste solo si hubo
// poda, para no reescribir el documento en cada lectura.
func (c *Cache) pruneLocked(ctx context.Context) []Association {
	assocs := c.loadLocked(ctx)

	cutoff := c.now().Add(-retention)
	fresh := make([]Association, 0, len(assocs))
	for _, a := range assocs {
		if a.Timestamp.After(cutoff) {
			fresh = append(fresh, a)
		}
	}

	if len(fresh) != len(assocs) {
		c.persistLocked(ctx, fresh)
	}
	return fresh
}

func (c *Cache) loadLocked(ctx context.Context) []Association {
	doc, err := c.store.Load(ctx, storageKey)
	if err != nil {
		if err != kv.ErrNotFound {
			c.log.Warn("association cache load failed", map[string]any{"err": err.Error()})
		}
		return nil
	}

	var assocs []Association
	if err := json.Unmarshal(doc, &assocs); err != nil {
		c.log.Warn("association cache corrupt, ignoring", map[string]any{"err": err.Error()})
		return nil
	}
	return assocs
}

func (c *Cache) persistLocked(ctx context.Context, assocs []Association) {
	doc, err := json.Marshal(assocs)
	if err != nil {
		c.log.Warn("association cache marshal failed", map[string]any{"err": err.Error()})
		return
	}
	if err := c.store.Save(ctx, storageKey, doc); err != nil {
		c.log.Warn("association cache save failed", map[string]any{"err": err.Error()})
	}
}
