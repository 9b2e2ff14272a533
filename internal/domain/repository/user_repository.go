package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// UserFilter filtros de listado de usuarios.
type UserFilter struct {
	OnlyActive *bool
}

// UserRepository define el puerto de persistencia para User (DIP).
// El gateway asigna ID y CreatedAt en Create, estampa UpdatedAt en Update como
// parte de la misma escritura, y traduce fallos del store a errores de dominio:
// domain.ErrNotFound, domain.ErrConstraintViolation, domain.ErrReferentialBlock.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Delete falla con ErrReferentialBlock si el usuario creó alguna factura.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter UserFilter, limit, offset int) ([]*entity.User, error)
}
