package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/clinic"
)

// Service obtiene el dataset del colaborador y lo agrega. La carga es
// todo-o-nada: si falla cualquiera de las cinco consultas, no hay
// snapshot parcial.
type Service struct {
	data clinic.Source
	now  func() time.Time
}

func NewService(data clinic.Source) *Service {
	return &Service{data: data, now: time.Now}
}

func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	var in Inputs

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if in.Bookings, err = s.data.ListBookings(gctx); err != nil {
			return fmt.Errorf("bookings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if in.Services, err = s.data.ListServices(gctx); err != nil {
			return fmt.Errorf("services: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if in.Pets, err = s.data.ListPets(gctx); err != nil {
			return fmt.Errorf("pets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if in.Users, err = s.data.ListUsers(gctx); err != nil {
			return fmt.Errorf("users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if in.Records, err = s.data.ListMedicalRecords(gctx); err != nil {
			return fmt.Errorf("records: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	return Compute(in, s.now()), nil
}
