// Package dashboard arma las tarjetas de resumen de la pantalla
// principal. Las tarjetas dependen del rol: un dueño ve sus propios
// números, el staff y los doctores los de la clínica, y el admin
// además el total de usuarios.
package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/clinic"
)

type Card struct {
	Title string `json:"title"`
	Value int    `json:"value"`
}

type Stats struct {
	Cards []Card `json:"cards"`
}

type Service struct {
	data clinic.Source
}

func NewService(data clinic.Source) *Service {
	return &Service{data: data}
}

func (s *Service) Load(ctx context.Context, user *auth.User) (Stats, error) {
	if user == nil {
		return Stats{}, fmt.Errorf("no authenticated user")
	}

	switch user.Roles {
	case auth.RoleOwner:
		return s.ownerStats(ctx)
	case auth.RoleAdmin:
		return s.adminStats(ctx)
	default:
		return s.clinicStats(ctx)
	}
}

// ownerStats cuenta solo lo del usuario en sesión. Los registros
// médicos se suman mascota por mascota porque el backend no expone un
// listado "mis registros".
func (s *Service) ownerStats(ctx context.Context) (Stats, error) {
	var (
		pets     []clinic.Pet
		bookings []clinic.ServiceBooking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pets, err = s.data.MyPets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.data.MyBookings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	records := 0
	for _, p := range pets {
		rs, err := s.data.MedicalRecordsByPet(ctx, p.ID)
		if err != nil {
			return Stats{}, err
		}
		records += len(rs)
	}

	return Stats{Cards: []Card{
		{Title: "My Pets", Value: len(pets)},
		{Title: "My Bookings", Value: len(bookings)},
		{Title: "Medical Records", Value: records},
	}}, nil
}

func (s *Service) adminStats(ctx context.Context) (Stats, error) {
	var (
		users    []auth.User
		pets     []clinic.Pet
		bookings []clinic.ServiceBooking
		records  []clinic.MedicalRecord
		cages    []clinic.Cage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.data.ListUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pets, err = s.data.ListPets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.data.ListBookings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.data.ListMedicalRecords(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cages, err = s.data.ListCages(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	available := 0
	for _, c := range cages {
		if c.Status == clinic.CageAvailable {
			available++
		}
	}

	return Stats{Cards: []Card{
		{Title: "Total Users", Value: len(users)},
		{Title: "Total Pets", Value: len(pets)},
		{Title: "All Bookings", Value: len(bookings)},
		{Title: "Medical Records", Value: len(records)},
		{Title: "Available Cages", Value: available},
	}}, nil
}

func (s *Service) clinicStats(ctx context.Context) (Stats, error) {
	var (
		pets     []clinic.Pet
		bookings []clinic.ServiceBooking
		records  []clinic.MedicalRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pets, err = s.data.ListPets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.data.ListBookings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.data.ListMedicalRecords(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	return Stats{Cards: []Card{
		{Title: "All Bookings", Value: len(bookings)},
		{Title: "Total Pets", Value: len(pets)},
		{Title: "Medical Records", Value: len(records)},
	}}, nil
}
