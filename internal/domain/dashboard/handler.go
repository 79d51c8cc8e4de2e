package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/session"
)

func RegisterRoutes(r chi.Router, svc *Service, store *session.Store) {
	r.Get("/dashboard", func(w http.ResponseWriter, req *http.Request) {
		stats, err := svc.Load(req.Context(), store.State().User)
		if err != nil {
			writeJSON(w, http.StatusBadGateway, map[string]string{"message": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
