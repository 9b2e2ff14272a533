package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory categoría de producto (enumeración cerrada).
type ProductCategory int

const (
	CategoryOther             ProductCategory = 0
	CategoryElectronics       ProductCategory = 1
	CategoryClothing          ProductCategory = 2
	CategoryBooks             ProductCategory = 3
	CategoryHomeAndGarden     ProductCategory = 4
	CategorySportsAndOutdoors ProductCategory = 5
	CategoryHealthAndBeauty   ProductCategory = 6
	CategoryAutomotive        ProductCategory = 7
)

// IsValid indica si el valor pertenece a la enumeración.
func (c ProductCategory) IsValid() bool {
	return c >= CategoryOther && c <= CategoryAutomotive
}

// String nombre legible de la categoría.
func (c ProductCategory) String() string {
	switch c {
	case CategoryOther:
		return "other"
	case CategoryElectronics:
		return "electronics"
	case CategoryClothing:
		return "clothing"
	case CategoryBooks:
		return "books"
	case CategoryHomeAndGarden:
		return "home_and_garden"
	case CategorySportsAndOutdoors:
		return "sports_and_outdoors"
	case CategoryHealthAndBeauty:
		return "health_and_beauty"
	case CategoryAutomotive:
		return "automotive"
	default:
		return "unknown"
	}
}

// ProductUnit unidad de medida del producto (enumeración cerrada).
type ProductUnit int

const (
	UnitPiece      ProductUnit = 1 // valor por defecto
	UnitKilogram   ProductUnit = 2
	UnitGram       ProductUnit = 3
	UnitLiter      ProductUnit = 4
	UnitMeter      ProductUnit = 5
	UnitCentimeter ProductUnit = 6
	UnitBox        ProductUnit = 7
	UnitPack       ProductUnit = 8
)

// IsValid indica si el valor pertenece a la enumeración.
func (u ProductUnit) IsValid() bool {
	return u >= UnitPiece && u <= UnitPack
}

// String nombre legible de la unidad.
func (u ProductUnit) String() string {
	switch u {
	case UnitPiece:
		return "piece"
	case UnitKilogram:
		return "kilogram"
	case UnitGram:
		return "gram"
	case UnitLiter:
		return "liter"
	case UnitMeter:
		return "meter"
	case UnitCentimeter:
		return "centimeter"
	case UnitBox:
		return "box"
	case UnitPack:
		return "pack"
	default:
		return "unknown"
	}
}

// Product representa una unidad vendible del inventario.
// Price y Cost son moneda con 2 decimales (decimal, nunca float).
// StockQuantity no se restringe a negativo en el modelo; el SKU es único global.
type Product struct {
	ID                string
	Name              string // requerido, máx 100
	Description       string // máx 500
	SKU               string // único, requerido, máx 50
	Price             decimal.Decimal
	Cost              decimal.Decimal
	StockQuantity     int
	MinimumStockLevel int // por defecto 0
	Category          ProductCategory
	Brand             string // máx 100, texto libre
	Unit              ProductUnit
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// IsLowStock indica si el stock está en o bajo el mínimo configurado.
// Derivado puro: se recalcula en cada lectura, nunca se persiste.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinimumStockLevel
}

// ProfitMargin margen de ganancia porcentual: (Price-Cost)/Price*100.
// Con Price en cero devuelve cero (sin división por cero).
func (p *Product) ProfitMargin() decimal.Decimal {
	if !p.Price.IsPositive() {
		return decimal.Zero
	}
	return p.Price.Sub(p.Cost).Div(p.Price).Mul(decimal.NewFromInt(100))
}
