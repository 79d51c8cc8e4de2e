package auth

// Role es el discriminador único de un usuario. Un usuario tiene exactamente
// un rol (no es un set).
// @Enum OWNER, STAFF, DOCTOR, ADMIN
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleStaff  Role = "STAFF"
	RoleDoctor Role = "DOCTOR"
	RoleAdmin  Role = "ADMIN"
)

// User según el contrato del backend. Los nombres de campo vienen del wire
// (snake_case) y no se deben "arreglar".
type User struct {
	ID        int64  `json:"id"`
	UserName  string `json:"user_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Roles     Role   `json:"roles"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Error de colaborador: mensaje + status HTTP opcional (0 = desconocido).
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}
