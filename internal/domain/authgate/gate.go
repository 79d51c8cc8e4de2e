// Package authgate decide el acceso a rutas protegidas a partir del
// estado de sesión, sin tocar HTTP: el middleware traduce la decisión
// a códigos de respuesta.
package authgate

import (
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/session"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"
)

type Outcome string

const (
	OutcomePending Outcome = "pending"
	OutcomeAllow   Outcome = "allow"
	OutcomeSignIn  Outcome = "sign_in"
	OutcomeDenied  Outcome = "denied"
)

// Rutas canónicas de la aplicación.
const (
	PathSignIn       = "/login"
	PathRegister     = "/register"
	PathDashboard    = "/dashboard"
	PathAccessDenied = "/access-denied"
)

// Requirement describe qué exige una ruta protegida.
type Requirement struct {
	RequireAuth bool
	Role        auth.Role // vacío = cualquier usuario autenticado
}

// Authenticated exige sesión activa sin restricción de rol.
func Authenticated() Requirement {
	return Requirement{RequireAuth: true}
}

// RequireRole exige sesión activa y un rol exacto.
func RequireRole(role auth.Role) Requirement {
	return Requirement{RequireAuth: true, Role: role}
}

type Decision struct {
	Outcome    Outcome
	RedirectTo string
	From       string // ruta original, para volver después del login
}

// Decide evalúa las reglas en orden: primero la carga en curso, luego
// la autenticación, luego el rol. Un usuario nil con rol exigido se
// niega: sin usuario no hay rol que acredite el acceso.
func Decide(st session.State, req Requirement, from string) Decision {
	if st.IsLoading {
		return Decision{Outcome: OutcomePending}
	}

	if req.RequireAuth && !st.IsAuthenticated {
		return Decision{
			Outcome:    OutcomeSignIn,
			RedirectTo: PathSignIn,
			From:       from,
		}
	}

	if req.Role != "" && (st.User == nil || st.User.Roles != req.Role) {
		return Decision{
			Outcome:    OutcomeDenied,
			RedirectTo: PathAccessDenied,
		}
	}

	return Decision{Outcome: OutcomeAllow}
}

// EntryRedirect resuelve a dónde mandar una visita a las rutas de
// entrada (raíz, login, registro o una ruta desconocida): los
// autenticados van al dashboard, el resto al login.
func EntryRedirect(st session.State, path string) string {
	if st.IsAuthenticated {
		return PathDashboard
	}
	if path == PathSignIn || path == PathRegister {
		return "" // ya está donde debe
	}
	return PathSignIn
}
