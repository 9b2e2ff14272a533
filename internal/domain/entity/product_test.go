package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Derivados de Product: IsLowStock y ProfitMargin son funciones puras del
// estado almacenado; se recalculan en cada lectura y nunca se persisten.
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_IsLowStock(t *testing.T) {
	cases := []struct {
		name    string
		stock   int
		minimum int
		want    bool
	}{
		{"stock sobre el mínimo", 10, 5, false},
		{"stock igual al mínimo", 5, 5, true},
		{"stock bajo el mínimo", 2, 5, true},
		{"stock cero con mínimo cero", 0, 0, true},
		{"stock negativo", -1, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &entity.Product{StockQuantity: tc.stock, MinimumStockLevel: tc.minimum}
			assert.Equal(t, tc.want, p.IsLowStock())
		})
	}
}

// TestProduct_IsLowStock_TrasActualizacion el derivado refleja el estado actual
// inmediatamente después de mutar cualquiera de los dos campos.
func TestProduct_IsLowStock_TrasActualizacion(t *testing.T) {
	p := &entity.Product{StockQuantity: 10, MinimumStockLevel: 5}
	assert.False(t, p.IsLowStock())

	p.StockQuantity = 3
	assert.True(t, p.IsLowStock(), "bajar el stock debe reflejarse en la siguiente lectura")

	p.MinimumStockLevel = 2
	assert.False(t, p.IsLowStock(), "subir el umbral también debe reflejarse")
}

func TestProduct_ProfitMargin(t *testing.T) {
	p := &entity.Product{
		Price: decimal.RequireFromString("100.00"),
		Cost:  decimal.RequireFromString("60.00"),
	}
	assert.True(t, p.ProfitMargin().Equal(decimal.NewFromInt(40)),
		"precio 100 y costo 60 deben dar margen 40%%, se obtuvo %s", p.ProfitMargin())
}

// TestProduct_ProfitMargin_PrecioCero sin precio no hay margen: cero, nunca
// división por cero.
func TestProduct_ProfitMargin_PrecioCero(t *testing.T) {
	p := &entity.Product{Price: decimal.Zero, Cost: decimal.RequireFromString("60.00")}
	assert.True(t, p.ProfitMargin().IsZero())

	p.Price = decimal.RequireFromString("-10.00")
	assert.True(t, p.ProfitMargin().IsZero(), "precio negativo también devuelve margen cero")
}

func TestProduct_ProfitMargin_CostoMayorQuePrecio(t *testing.T) {
	p := &entity.Product{
		Price: decimal.RequireFromString("50.00"),
		Cost:  decimal.RequireFromString("75.00"),
	}
	assert.True(t, p.ProfitMargin().Equal(decimal.NewFromInt(-50)),
		"vender bajo costo produce margen negativo, se obtuvo %s", p.ProfitMargin())
}

func TestProductCategory_IsValid(t *testing.T) {
	assert.True(t, entity.CategoryOther.IsValid())
	assert.True(t, entity.CategoryAutomotive.IsValid())
	assert.False(t, entity.ProductCategory(8).IsValid())
	assert.False(t, entity.ProductCategory(-1).IsValid())
}

func TestProductUnit_IsValid(t *testing.T) {
	assert.True(t, entity.UnitPiece.IsValid())
	assert.True(t, entity.UnitPack.IsValid())
	assert.False(t, entity.ProductUnit(0).IsValid())
	assert.False(t, entity.ProductUnit(9).IsValid())
}
