package assoccache

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, cache *Cache) {
	r.Route("/bookings/{bookingID}/pet", func(br chi.Router) {
		br.Put("/", saveHandler(cache))
		br.Get("/", getHandler(cache))
		br.Delete("/", removeHandler(cache))
	})
	r.Get("/pet-associations", listHandler(cache))
	r.Delete("/pet-associations", clearHandler(cache))
}

type saveRequest struct {
	PetID      int64  `json:"pet_id"`
	PetName    string `json:"pet_name"`
	PetSpecies string `json:"pet_species"`
}

func saveHandler(cache *Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, err := bookingIDParam(r)
		if err != nil {
			http.Error(w, "invalid booking id", http.StatusBadRequest)
			return
		}

		var req saveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		cache.Save(r.Context(), bookingID, req.PetID, req.PetName, req.PetSpecies)
		w.WriteHeader(http.StatusNoContent)
	}
}

func getHandler(cache *Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, err := bookingIDParam(r)
		if err != nil {
			http.Error(w, "invalid booking id", http.StatusBadRequest)
			return
		}

		ref, ok := cache.Get(r.Context(), bookingID)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"message": "no association for booking",
			})
			return
		}

		writeJSON(w, http.StatusOK, ref)
	}
}

func removeHandler(cache *Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, err := bookingIDParam(r)
		if err != nil {
			http.Error(w, "invalid booking id", http.StatusBadRequest)
			return
		}

		cache.Remove(r.Context(), bookingID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func listHandler(cache *Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assocs := cache.GetAll(r.Context())
		if assocs == nil {
			assocs = []Association{}
		}
		writeJSON(w, http.StatusOK, assocs)
	}
}

func clearHandler(cache *Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cache.ClearAll(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

func bookingIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "bookingID"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
