package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/analytics"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/assoccache"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/authgate"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/dashboard"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/domain/session"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/middleware"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"
)

type Options struct {
	Store     *session.Store
	Cache     *assoccache.Cache
	Analytics *analytics.Service
	Dashboard *dashboard.Service
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Sesión: login, registro, logout y estado actual.
	session.RegisterRoutes(r, opts.Store)

	// Rutas de entrada: deciden a dónde mandar al visitante según su
	// estado de sesión.
	entry := entryHandler(opts.Store)
	r.Get("/", entry)
	r.Get(authgate.PathSignIn, entry)
	r.Get(authgate.PathRegister, entry)
	r.NotFound(entry)

	// Rutas protegidas: cualquier usuario autenticado.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.Protect(opts.Store, authgate.Authenticated()))

		dashboard.RegisterRoutes(pr, opts.Dashboard, opts.Store)
		assoccache.RegisterRoutes(pr, opts.Cache)
	})

	// Rutas protegidas: solo admin.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.Protect(opts.Store, authgate.RequireRole(auth.RoleAdmin)))

		analytics.RegisterRoutes(pr, opts.Analytics)
	})

	return r
}

// entryHandler redirige según el estado de sesión: autenticados al
// dashboard, anónimos al login. Si ya está donde debe, 204.
func entryHandler(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := authgate.EntryRedirect(store.State(), r.URL.Path)
		if target == "" || target == r.URL.Path {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Redirect(w, r, target, http.StatusFound)
	}
}
