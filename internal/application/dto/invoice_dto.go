package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceItemRequest línea de factura dentro de una creación.
type CreateInvoiceItemRequest struct {
	ProductID      string          `json:"product_id" validate:"required"`
	Quantity       int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Description    string          `json:"description" validate:"max=500"`
}

// CreateInvoiceRequest entrada para crear una factura con sus líneas.
// Los montos (sub_total, tax, discount, total) son resultados de negocio del
// llamador y se guardan como instantáneas.
type CreateInvoiceRequest struct {
	InvoiceNumber   string                     `json:"invoice_number" validate:"required,max=50"`
	InvoiceDate     time.Time                  `json:"invoice_date" validate:"required"`
	DueDate         *time.Time                 `json:"due_date"`
	CustomerName    string                     `json:"customer_name" validate:"required,max=200"`
	CustomerEmail   string                     `json:"customer_email" validate:"max=255"`
	CustomerPhone   string                     `json:"customer_phone" validate:"max=20"`
	CustomerAddress string                     `json:"customer_address" validate:"max=500"`
	Status          int                        `json:"status"`
	SubTotal        decimal.Decimal            `json:"sub_total"`
	TaxAmount       decimal.Decimal            `json:"tax_amount"`
	DiscountAmount  decimal.Decimal            `json:"discount_amount"`
	TotalAmount     decimal.Decimal            `json:"total_amount"`
	Notes           string                     `json:"notes" validate:"max=1000"`
	CreatedByUserID string                     `json:"created_by_user_id" validate:"required"`
	Items           []CreateInvoiceItemRequest `json:"items"`
}

// UpdateInvoiceRequest entrada para actualizar la cabecera de una factura
// (campos opcionales; las líneas no se editan por esta vía).
type UpdateInvoiceRequest struct {
	InvoiceNumber   *string          `json:"invoice_number" validate:"omitempty,max=50"`
	InvoiceDate     *time.Time       `json:"invoice_date"`
	DueDate         *time.Time       `json:"due_date"`
	CustomerName    *string          `json:"customer_name" validate:"omitempty,max=200"`
	CustomerEmail   *string          `json:"customer_email" validate:"omitempty,max=255"`
	CustomerPhone   *string          `json:"customer_phone" validate:"omitempty,max=20"`
	CustomerAddress *string          `json:"customer_address" validate:"omitempty,max=500"`
	Status          *int             `json:"status"`
	SubTotal        *decimal.Decimal `json:"sub_total"`
	TaxAmount       *decimal.Decimal `json:"tax_amount"`
	DiscountAmount  *decimal.Decimal `json:"discount_amount"`
	TotalAmount     *decimal.Decimal `json:"total_amount"`
	Notes           *string          `json:"notes" validate:"omitempty,max=1000"`
}

// InvoiceItemResponse salida de una línea. LineTotal es derivado.
type InvoiceItemResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Description    string          `json:"description"`
	LineTotal      decimal.Decimal `json:"line_total"`
	CreatedAt      time.Time       `json:"created_at"`
}

// InvoiceResponse salida de una factura. IsOverdue e ItemCount se derivan al
// materializar la respuesta con el reloj del caso de uso.
type InvoiceResponse struct {
	ID              string                `json:"id"`
	InvoiceNumber   string                `json:"invoice_number"`
	InvoiceDate     time.Time             `json:"invoice_date"`
	DueDate         *time.Time            `json:"due_date,omitempty"`
	CustomerName    string                `json:"customer_name"`
	CustomerEmail   string                `json:"customer_email"`
	CustomerPhone   string                `json:"customer_phone"`
	CustomerAddress string                `json:"customer_address"`
	Status          int                   `json:"status"`
	StatusName      string                `json:"status_name"`
	SubTotal        decimal.Decimal       `json:"sub_total"`
	TaxAmount       decimal.Decimal       `json:"tax_amount"`
	DiscountAmount  decimal.Decimal       `json:"discount_amount"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	Notes           string                `json:"notes"`
	CreatedByUserID string                `json:"created_by_user_id"`
	IsOverdue       bool                  `json:"is_overdue"`
	ItemCount       int                   `json:"item_count"`
	Items           []InvoiceItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       *time.Time            `json:"updated_at,omitempty"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
