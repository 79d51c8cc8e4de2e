package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler(store))
		ar.Post("/register", registerHandler(store))
		ar.Post("/logout", logoutHandler(store))
		ar.Get("/me", meHandler(store))

		// El front descarta el error inline sin tocar la sesión.
		ar.Post("/clear-error", func(w http.ResponseWriter, _ *http.Request) {
			store.ClearError()
			w.WriteHeader(http.StatusNoContent)
		})
	})
}

type stateResponse struct {
	User            *auth.User `json:"user"`
	IsAuthenticated bool       `json:"is_authenticated"`
	IsLoading       bool       `json:"is_loading"`
	Error           string     `json:"error,omitempty"`

	// Flags de rol para la UI (un solo rol por usuario).
	IsOwner  bool `json:"is_owner"`
	IsStaff  bool `json:"is_staff"`
	IsDoctor bool `json:"is_doctor"`
	IsAdmin  bool `json:"is_admin"`
}

func toStateResponse(store *Store) stateResponse {
	st := store.State()
	return stateResponse{
		User:            st.User,
		IsAuthenticated: st.IsAuthenticated,
		IsLoading:       st.IsLoading,
		Error:           st.Error,
		IsOwner:         store.IsOwner(),
		IsStaff:         store.IsStaff(),
		IsDoctor:        store.IsDoctor(),
		IsAdmin:         store.IsAdmin(),
	}
}

func loginHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds auth.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := store.Login(r.Context(), creds); err != nil {
			writeAuthError(w, err, http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, toStateResponse(store))
	}
}

func registerHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reg auth.Registration
		if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := store.Register(r.Context(), reg); err != nil {
			writeAuthError(w, err, http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toStateResponse(store))
	}
}

func logoutHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// logout nunca falla localmente
		store.Logout(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

func meHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toStateResponse(store))
	}
}

// writeAuthError respeta el status del colaborador si vino uno.
func writeAuthError(w http.ResponseWriter, err error, fallback int) {
	status := fallback
	msg := err.Error()

	var authErr *auth.Error
	if errors.As(err, &authErr) {
		msg = authErr.Message
		if authErr.Status > 0 {
			status = authErr.Status
		}
	}

	writeJSON(w, status, map[string]string{"message": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
