package assoccache

import "time"

// Association vincula una reserva con la mascota que la originó, con
// el nombre y la especie desnormalizados para mostrarlos sin otra
// consulta.
type Association struct {
	BookingID  int64     `json:"booking_id"`
	PetID      int64     `json:"pet_id"`
	PetName    string    `json:"pet_name"`
	PetSpecies string    `json:"pet_species"`
	Timestamp  time.Time `json:"timestamp"`
}

// PetRef es la vista mínima que consumen los listados de reservas.
type PetRef struct {
	Name    string `json:"name"`
	Species string `json:"species"`
}
