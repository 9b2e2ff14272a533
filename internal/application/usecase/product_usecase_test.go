package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/usecase"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProductUseCase_Create(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:              "Wireless Mouse",
		SKU:               "TECH-MOUSE-001",
		Price:             dec("25.99"),
		Cost:              dec("15.99"),
		StockQuantity:     2,
		MinimumStockLevel: 5,
		Category:          int(entity.CategoryElectronics),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "el gateway debe asignar el ID")
	assert.Equal(t, int(entity.UnitPiece), out.Unit, "unidad en cero toma el defecto Piece")
	assert.True(t, out.IsActive, "activo por defecto")
	assert.Nil(t, out.UpdatedAt, "updated_at queda nulo en inserciones")

	// Derivados materializados en la respuesta, nunca leídos de la BD
	assert.True(t, out.IsLowStock, "stock 2 con mínimo 5 es stock bajo")
	assert.False(t, out.ProfitMargin.IsZero())
}

// TestProductUseCase_Create_SinPreConsultaDeSKU dos escritores compitiendo por
// el mismo SKU deben resolverse en el constraint del store; el caso de uso no
// hace check-then-act.
func TestProductUseCase_Create_SinPreConsultaDeSKU(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Yoga Mat", SKU: "SPORT-YOGA-001", Price: dec("29.99"), Cost: dec("14.99"),
	})
	require.NoError(t, err)
	assert.Zero(t, repo.skuLookups, "crear no debe pre-consultar el SKU")
}

func TestProductUseCase_Create_Validacion(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"sin nombre", dto.CreateProductRequest{SKU: "X-001"}},
		{"sin SKU", dto.CreateProductRequest{Name: "X"}},
		{"precio negativo", dto.CreateProductRequest{Name: "X", SKU: "X-001", Price: dec("-1.00")}},
		{"costo negativo", dto.CreateProductRequest{Name: "X", SKU: "X-001", Cost: dec("-0.01")}},
		{"categoría fuera de rango", dto.CreateProductRequest{Name: "X", SKU: "X-001", Category: 8}},
		{"unidad fuera de rango", dto.CreateProductRequest{Name: "X", SKU: "X-001", Unit: 9}},
		{"nombre de más de 100 caracteres", dto.CreateProductRequest{Name: strings.Repeat("ó", 101), SKU: "X-001"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	// 80 caracteres acentuados son 160 bytes: el tope cuenta caracteres, como
	// VARCHAR(100) en el store.
	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: strings.Repeat("ó", 80), SKU: "X-002"})
	assert.NoError(t, err)
}

// El escenario de extremo a extremo del margen: crear con precio 100 y costo
// 60 da 40%%; dejar el precio en cero da margen cero sin división por cero.
func TestProductUseCase_MargenTrasActualizacion(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Test Product", SKU: "TEST-001", Price: dec("100.00"), Cost: dec("60.00"),
	})
	require.NoError(t, err)
	assert.True(t, out.ProfitMargin.Equal(decimal.NewFromInt(40)),
		"margen esperado 40, se obtuvo %s", out.ProfitMargin)

	zero := decimal.Zero
	updated, err := uc.Update(ctx, out.ID, dto.UpdateProductRequest{Price: &zero})
	require.NoError(t, err)
	assert.True(t, updated.ProfitMargin.IsZero(), "con precio cero el margen es cero")
	assert.NotNil(t, updated.UpdatedAt, "actualizar estampa updated_at")
}

func TestProductUseCase_Update_NoEncontrado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	n := "Nuevo"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Name: &n})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_List_FiltroStockBajo(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Normal", SKU: "N-001", Price: dec("10.00"), StockQuantity: 50, MinimumStockLevel: 5,
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{
		Name: "Bajo", SKU: "B-001", Price: dec("10.00"), StockQuantity: 3, MinimumStockLevel: 5,
	})
	require.NoError(t, err)

	out, err := uc.List(ctx, repository.ProductFilter{LowStock: true}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "B-001", out.Items[0].SKU)
	assert.True(t, out.Items[0].IsLowStock)
}
