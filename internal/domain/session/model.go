package session

import "github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"

// State es el estado de sesión visible para el resto del sistema.
// Invariante: IsAuthenticated == true si y solo si User != nil y fue
// seteado por un login/registro/restauración exitoso.
type State struct {
	User            *auth.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string // "" = sin error
}

// Identity es lo único que se persiste entre reinicios: usuario + flag.
// IsLoading y Error son runtime-only y siempre arrancan frescos.
type Identity struct {
	User            *auth.User `json:"user"`
	IsAuthenticated bool       `json:"is_authenticated"`
}
