package petapi

import (
	"context"
	"fmt"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/clinic"
)

// Client implementa clinic.Source (colecciones de solo-lectura).
var _ clinic.Source = (*Client)(nil)

func (c *Client) ListBookings(ctx context.Context) ([]clinic.ServiceBooking, error) {
	var out []clinic.ServiceBooking
	if err := c.getJSON(ctx, "/bookings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListServices(ctx context.Context) ([]clinic.Service, error) {
	var out []clinic.Service
	if err := c.getJSON(ctx, "/services", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPets(ctx context.Context) ([]clinic.Pet, error) {
	var out []clinic.Pet
	if err := c.getJSON(ctx, "/pets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]auth.User, error) {
	var out []auth.User
	if err := c.getJSON(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMedicalRecords(ctx context.Context) ([]clinic.MedicalRecord, error) {
	var out []clinic.MedicalRecord
	if err := c.getJSON(ctx, "/records", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCages(ctx context.Context) ([]clinic.Cage, error) {
	var out []clinic.Cage
	if err := c.getJSON(ctx, "/cages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MyPets(ctx context.Context) ([]clinic.Pet, error) {
	var out []clinic.Pet
	if err := c.getJSON(ctx, "/pets/my-pets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MyBookings(ctx context.Context) ([]clinic.ServiceBooking, error) {
	var out []clinic.ServiceBooking
	if err := c.getJSON(ctx, "/bookings/my-bookings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MedicalRecordsByPet(ctx context.Context, petID int64) ([]clinic.MedicalRecord, error) {
	var out []clinic.MedicalRecord
	if err := c.getJSON(ctx, fmt.Sprintf("/records/pet/%d", petID), &out); err != nil {
		return nil, err
	}
	return out, nil
}
