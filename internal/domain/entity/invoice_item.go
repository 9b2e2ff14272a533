package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem representa una línea con precio dentro de una factura.
// Pertenece a exactamente una Invoice (CASCADE al borrar la factura) y
// referencia exactamente un Product (RESTRICT al borrar el producto).
// No lleva updated_at: las líneas se reemplazan, no se editan en el tiempo.
type InvoiceItem struct {
	ID             string
	Quantity       int // requerido; se espera positivo
	UnitPrice      decimal.Decimal
	DiscountAmount decimal.Decimal
	Description    string // máx 500
	CreatedAt      time.Time
	InvoiceID      string
	ProductID      string
}

// LineTotal total de la línea: Quantity*UnitPrice - DiscountAmount.
// La fórmula admite resultados negativos; un total negativo es un error de
// captura que el llamador debe señalar, no un cargo negativo a persistir en
// silencio.
func (it *InvoiceItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(int64(it.Quantity)).Mul(it.UnitPrice).Sub(it.DiscountAmount)
}
