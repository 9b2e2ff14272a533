package dto

import "time"

// CreateUserRequest entrada para crear un usuario. PasswordHash llega ya
// hasheado: este núcleo trata la credencial como opaca.
type CreateUserRequest struct {
	Username     string `json:"username" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,max=255"`
	PasswordHash string `json:"password_hash" validate:"required,max=255"`
	FirstName    string `json:"first_name" validate:"max=100"`
	LastName     string `json:"last_name" validate:"max=100"`
	Role         int    `json:"role" validate:"required"`
	IsActive     *bool  `json:"is_active"`
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
type UpdateUserRequest struct {
	Username     *string `json:"username" validate:"omitempty,max=100"`
	Email        *string `json:"email" validate:"omitempty,max=255"`
	PasswordHash *string `json:"password_hash" validate:"omitempty,max=255"`
	FirstName    *string `json:"first_name" validate:"omitempty,max=100"`
	LastName     *string `json:"last_name" validate:"omitempty,max=100"`
	Role         *int    `json:"role"`
	IsActive     *bool   `json:"is_active"`
}

// UserResponse salida de un usuario. FullName es derivado, nunca persistido.
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	FullName  string     `json:"full_name"`
	Role      int        `json:"role"`
	RoleName  string     `json:"role_name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
