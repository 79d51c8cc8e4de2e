package auth

import "context"

// Authenticator es el colaborador de autenticación (opaco para el core).
// La sesión vive del lado del colaborador (cookie); el core solo pregunta.
type Authenticator interface {
	// Login establece la sesión. No devuelve el usuario: tras un login
	// exitoso hay que pedirlo con CurrentUser.
	Login(ctx context.Context, creds Credentials) error

	// Register crea la cuenta. El backend deja la sesión establecida,
	// por eso devuelve el usuario directamente.
	Register(ctx context.Context, reg Registration) (User, error)

	// Logout termina la sesión del lado del servidor.
	Logout(ctx context.Context) error

	// CurrentUser responde "quién está autenticado" usando la sesión
	// que el colaborador ya tiene (restauración al boot).
	CurrentUser(ctx context.Context) (User, error)
}
