package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Un SKU duplicado no se
// pre-consulta: dos escritores compitiendo deben resolverse en el índice único
// del store, no con check-then-act.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Unit en cero toma el defecto Piece.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	unit := entity.ProductUnit(in.Unit)
	if in.Unit == 0 {
		unit = entity.UnitPiece
	}
	product := &entity.Product{
		Name:              in.Name,
		Description:       in.Description,
		SKU:               in.SKU,
		Price:             in.Price,
		Cost:              in.Cost,
		StockQuantity:     in.StockQuantity,
		MinimumStockLevel: in.MinimumStockLevel,
		Category:          entity.ProductCategory(in.Category),
		Brand:             in.Brand,
		Unit:              unit,
		IsActive:          true,
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, con derivados calculados.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetBySKU obtiene un producto por SKU.
func (uc *ProductUseCase) GetBySKU(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto aplicando solo los campos presentes.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.StockQuantity != nil {
		product.StockQuantity = *in.StockQuantity
	}
	if in.MinimumStockLevel != nil {
		product.MinimumStockLevel = *in.MinimumStockLevel
	}
	if in.Category != nil {
		product.Category = entity.ProductCategory(*in.Category)
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Unit != nil {
		product.Unit = entity.ProductUnit(*in.Unit)
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Si alguna línea de factura lo referencia, el
// store lo bloquea con ErrReferentialBlock; is_active no influye en ese chequeo.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List lista productos con filtros de actividad, categoría y stock bajo.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Los topes de longitud son en caracteres (VARCHAR(n) cuenta runas, no bytes).
func validateProduct(p *entity.Product) error {
	if p.Name == "" || utf8.RuneCountInString(p.Name) > 100 {
		return domain.ErrValidation
	}
	if utf8.RuneCountInString(p.Description) > 500 {
		return domain.ErrValidation
	}
	if p.SKU == "" || utf8.RuneCountInString(p.SKU) > 50 {
		return domain.ErrValidation
	}
	if p.Price.IsNegative() || p.Cost.IsNegative() {
		return domain.ErrValidation
	}
	if !p.Category.IsValid() {
		return domain.ErrValidation
	}
	if utf8.RuneCountInString(p.Brand) > 100 {
		return domain.ErrValidation
	}
	if !p.Unit.IsValid() {
		return domain.ErrValidation
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		SKU:               p.SKU,
		Price:             p.Price,
		Cost:              p.Cost,
		StockQuantity:     p.StockQuantity,
		MinimumStockLevel: p.MinimumStockLevel,
		Category:          int(p.Category),
		CategoryName:      p.Category.String(),
		Brand:             p.Brand,
		Unit:              int(p.Unit),
		UnitName:          p.Unit.String(),
		IsActive:          p.IsActive,
		IsLowStock:        p.IsLowStock(),
		ProfitMargin:      p.ProfitMargin(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
