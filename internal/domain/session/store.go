package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/platform/logger"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/kv"
)

const snapshotKey = "auth-store"

// Store es el dueño único del estado de autenticación del proceso.
// Se construye una sola vez en main y se pasa por referencia: singleton
// explícito, no global de módulo. Todas las transiciones van bajo un mutex
// ("last write wins, sin lecturas rotas"); llamadas concurrentes de
// login/logout son un error del caller, no una carrera soportada.
type Store struct {
	mu    sync.Mutex
	state State

	authn     auth.Authenticator
	snapshots kv.Store
	log       logger.Logger
}

func NewStore(authn auth.Authenticator, snapshots kv.Store, log logger.Logger) *Store {
	s := &Store{
		authn:     authn,
		snapshots: snapshots,
		log:       log.With(map[string]any{"component": "session"}),
	}

	// Arranca en loading: queda pendiente la restauración inicial,
	// salvo que haya snapshot persistido (rehidratar corta el loading).
	s.state = State{IsLoading: true}
	s.rehydrate()

	return s
}

// rehydrate carga el snapshot {user, isAuthenticated} persistido.
// Un snapshot corrupto o ilegible se trata como "no hay snapshot".
func (s *Store) rehydrate() {
	raw, err := s.snapshots.Load(context.Background(), snapshotKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.log.Warn("snapshot load failed", map[string]any{"err": err.Error()})
		}
		return
	}

	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		s.log.Warn("snapshot corrupt, ignoring", map[string]any{"err": err.Error()})
		return
	}

	s.mu.Lock()
	s.state.User = id.User
	s.state.IsAuthenticated = id.IsAuthenticated && id.User != nil
	s.state.IsLoading = false
	s.mu.Unlock()
}

// State devuelve una copia del estado (el User se copia para que el caller
// no pueda mutar el estado interno).
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.state
	if s.state.User != nil {
		u := *s.state.User
		out.User = &u
	}
	return out
}

// Login: delega en el colaborador y luego pide el usuario actual.
// Falla => estado deslogueado + Error seteado + el error se propaga.
func (s *Store) Login(ctx context.Context, creds auth.Credentials) error {
	s.beginOp()

	if err := s.authn.Login(ctx, creds); err != nil {
		s.failOp(err)
		return err
	}

	u, err := s.authn.CurrentUser(ctx)
	if err != nil {
		s.failOp(err)
		return err
	}

	s.establish(u)
	return nil
}

// Register: el backend deja la sesión establecida al registrar, así que el
// usuario devuelto se trata como sesión autenticada (comportamiento del
// contrato upstream).
func (s *Store) Register(ctx context.Context, reg auth.Registration) error {
	s.beginOp()

	u, err := s.authn.Register(ctx, reg)
	if err != nil {
		s.failOp(err)
		return err
	}

	s.establish(u)
	return nil
}

// Logout: best-effort contra el upstream; el reset local ocurre siempre.
// Nunca falla hacia el caller.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.state.IsLoading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = State{}
		s.persistLocked(context.Background())
		s.mu.Unlock()
	}()

	if err := s.authn.Logout(ctx); err != nil {
		s.log.Warn("upstream logout failed, continuing", map[string]any{"err": err.Error()})
	}
}

// RestoreSession pregunta al colaborador quién está autenticado (la sesión
// vive en su cookie). Falla => baseline deslogueado SIN Error (una
// restauración fallida al boot no es un error visible) pero el error se
// propaga para que el caller distinga "sin sesión" de "ok".
func (s *Store) RestoreSession(ctx context.Context) error {
	s.beginOp()

	u, err := s.authn.CurrentUser(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = State{}
		s.persistLocked(ctx)
		s.mu.Unlock()
		return err
	}

	s.establish(u)
	return nil
}

func (s *Store) ClearError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.state.IsLoading = loading
	s.mu.Unlock()
}

// HasRole compara contra el rol único del usuario (match exacto, sin
// jerarquía: ADMIN no pasa un check de STAFF).
func (s *Store) HasRole(role auth.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return false
	}
	return s.state.User.Roles == role
}

func (s *Store) IsOwner() bool  { return s.HasRole(auth.RoleOwner) }
func (s *Store) IsStaff() bool  { return s.HasRole(auth.RoleStaff) }
func (s *Store) IsDoctor() bool { return s.HasRole(auth.RoleDoctor) }
func (s *Store) IsAdmin() bool  { return s.HasRole(auth.RoleAdmin) }

func (s *Store) beginOp() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Error = ""
	s.mu.Unlock()
}

func (s *Store) failOp(err error) {
	s.mu.Lock()
	s.state = State{Error: errMessage(err)}
	s.persistLocked(context.Background())
	s.mu.Unlock()
}

func (s *Store) establish(u auth.User) {
	s.mu.Lock()
	s.state = State{User: &u, IsAuthenticated: true}
	s.persistLocked(context.Background())
	s.mu.Unlock()
}

// persistLocked guarda el snapshot de identidad. Best-effort: una falla de
// persistencia no rompe la operación de auth, solo se loguea.
func (s *Store) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(Identity{
		User:            s.state.User,
		IsAuthenticated: s.state.IsAuthenticated,
	})
	if err != nil {
		s.log.Warn("snapshot marshal failed", map[string]any{"err": err.Error()})
		return
	}
	if err := s.snapshots.Save(ctx, snapshotKey, raw); err != nil {
		s.log.Warn("snapshot save failed", map[string]any{"err": err.Error()})
	}
}

func errMessage(err error) string {
	var authErr *auth.Error
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	return err.Error()
}
