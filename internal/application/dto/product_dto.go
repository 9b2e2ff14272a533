package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,max=100"`
	Description       string          `json:"description" validate:"max=500"`
	SKU               string          `json:"sku" validate:"required,max=50"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	StockQuantity     int             `json:"stock_quantity"`
	MinimumStockLevel int             `json:"minimum_stock_level"`
	Category          int             `json:"category"`
	Brand             string          `json:"brand" validate:"max=100"`
	Unit              int             `json:"unit"`
	IsActive          *bool           `json:"is_active"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,max=100"`
	Description       *string          `json:"description" validate:"omitempty,max=500"`
	SKU               *string          `json:"sku" validate:"omitempty,max=50"`
	Price             *decimal.Decimal `json:"price"`
	Cost              *decimal.Decimal `json:"cost"`
	StockQuantity     *int             `json:"stock_quantity"`
	MinimumStockLevel *int             `json:"minimum_stock_level"`
	Category          *int             `json:"category"`
	Brand             *string          `json:"brand" validate:"omitempty,max=100"`
	Unit              *int             `json:"unit"`
	IsActive          *bool            `json:"is_active"`
}

// ProductResponse salida de un producto. IsLowStock y ProfitMargin se calculan
// al materializar la respuesta, nunca vienen de la BD.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	SKU               string          `json:"sku"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	StockQuantity     int             `json:"stock_quantity"`
	MinimumStockLevel int             `json:"minimum_stock_level"`
	Category          int             `json:"category"`
	CategoryName      string          `json:"category_name"`
	Brand             string          `json:"brand"`
	Unit              int             `json:"unit"`
	UnitName          string          `json:"unit_name"`
	IsActive          bool            `json:"is_active"`
	IsLowStock        bool            `json:"is_low_stock"`
	ProfitMargin      decimal.Decimal `json:"profit_margin"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
