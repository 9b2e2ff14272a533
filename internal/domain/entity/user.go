package entity

import (
	"strings"
	"time"
)

// UserRole rol de un usuario. Enumeración cerrada con ordinales fijos en BD.
// El modelo no impone jerarquía entre roles; la autorización vive fuera de
// este núcleo.
type UserRole int

const (
	RoleViewer  UserRole = 1
	RoleUser    UserRole = 2
	RoleManager UserRole = 3
	RoleAdmin   UserRole = 4
)

// IsValid indica si el valor pertenece a la enumeración.
func (r UserRole) IsValid() bool {
	return r >= RoleViewer && r <= RoleAdmin
}

// String nombre legible del rol.
func (r UserRole) String() string {
	switch r {
	case RoleViewer:
		return "viewer"
	case RoleUser:
		return "user"
	case RoleManager:
		return "manager"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// User representa una identidad del sistema: quien crea facturas.
// Username y Email son únicos a nivel global (índices en BD).
// UpdatedAt es nil hasta la primera modificación; lo estampa el gateway
// de persistencia, nunca el llamador.
type User struct {
	ID           string
	Username     string // único, máx 100
	Email        string // único, máx 255
	PasswordHash string // hash opaco, máx 255; nunca texto plano
	FirstName    string
	LastName     string
	Role         UserRole
	IsActive     bool // visibilidad de negocio, no borrado lógico
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// FullName nombre completo derivado (nunca se persiste).
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
