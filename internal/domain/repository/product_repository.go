package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	OnlyActive *bool
	Category   *entity.ProductCategory
	// LowStock limita a productos con stock en o bajo su mínimo. El predicado
	// se evalúa en SQL sobre los mismos campos que deriva IsLowStock.
	LowStock bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Delete falla con ErrReferentialBlock si alguna línea de factura referencia el producto.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
}
