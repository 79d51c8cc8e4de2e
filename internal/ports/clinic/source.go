package clinic

import (
	"context"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"
)

// Source es el colaborador de datos (REST upstream, opaco). Solo se lista
// la superficie de lectura que el core consume; el resto del contrato
// (escrituras CRUD) pertenece a las pantallas, fuera de este repo.
type Source interface {
	ListBookings(ctx context.Context) ([]ServiceBooking, error)
	ListServices(ctx context.Context) ([]Service, error)
	ListPets(ctx context.Context) ([]Pet, error)
	ListUsers(ctx context.Context) ([]auth.User, error)
	ListMedicalRecords(ctx context.Context) ([]MedicalRecord, error)
	ListCages(ctx context.Context) ([]Cage, error)

	// Vistas por-usuario para el dashboard de OWNER.
	MyPets(ctx context.Context) ([]Pet, error)
	MyBookings(ctx context.Context) ([]ServiceBooking, error)
	MedicalRecordsByPet(ctx context.Context, petID int64) ([]MedicalRecord, error)
}
