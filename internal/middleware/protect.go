// Package middleware contiene los middlewares HTTP propios de la
// aplicación; los genéricos (RequestID, Recoverer) vienen de chi.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/authgate"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/session"
)

// Protect aplica la decisión del gate antes de dejar pasar la request.
// Mapeo de resultados: pending -> 202, sign_in -> 401, denied -> 403.
func Protect(store *session.Store, req authgate.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := authgate.Decide(store.State(), req, r.URL.Path)

			switch decision.Outcome {
			case authgate.OutcomePending:
				writeJSON(w, http.StatusAccepted, map[string]string{
					"status": "pending",
				})
			case authgate.OutcomeSignIn:
				writeJSON(w, http.StatusUnauthorized, map[string]string{
					"redirect_to": decision.RedirectTo,
					"from":        decision.From,
				})
			case authgate.OutcomeDenied:
				writeJSON(w, http.StatusForbidden, map[string]string{
					"redirect_to": decision.RedirectTo,
				})
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
