package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de una factura (enumeración cerrada, ordinales fijos en BD).
// El modelo no impone un grafo de transiciones: cualquier estado puede asignarse
// desde cualquier otro.
type InvoiceStatus int

const (
	StatusDraft     InvoiceStatus = 1 // valor por defecto
	StatusPending   InvoiceStatus = 2
	StatusSent      InvoiceStatus = 3
	StatusPaid      InvoiceStatus = 4
	StatusOverdue   InvoiceStatus = 5
	StatusCancelled InvoiceStatus = 6
)

// IsValid indica si el valor pertenece a la enumeración.
func (s InvoiceStatus) IsValid() bool {
	return s >= StatusDraft && s <= StatusCancelled
}

// String nombre legible del estado.
func (s InvoiceStatus) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusPending:
		return "pending"
	case StatusSent:
		return "sent"
	case StatusPaid:
		return "paid"
	case StatusOverdue:
		return "overdue"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Invoice representa una factura emitida a un cliente.
//
// SubTotal, TaxAmount, DiscountAmount y TotalAmount son instantáneas de negocio
// suministradas por el llamador (p. ej. calculadas al finalizar la factura);
// la capa de lectura las confía tal cual y nunca las recalcula desde los ítems.
// ItemsSubtotal existe para que la conciliación sea explícita.
//
// Ojo: Status puede fijarse manualmente en StatusOverdue mientras IsOverdue se
// deriva aparte de DueDate y el reloj; ambos pueden discrepar y eso es
// comportamiento esperado del modelo, no un bug a "corregir" aquí.
type Invoice struct {
	ID              string
	InvoiceNumber   string // único, requerido, máx 50
	InvoiceDate     time.Time
	DueDate         *time.Time
	CustomerName    string // requerido, máx 200
	CustomerEmail   string // máx 255
	CustomerPhone   string // máx 20
	CustomerAddress string // máx 500
	Status          InvoiceStatus
	SubTotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	DiscountAmount  decimal.Decimal
	TotalAmount     decimal.Decimal
	Notes           string // máx 1000
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	CreatedByUserID string // FK a users, RESTRICT al borrar

	// Items se carga bajo demanda con consulta inversa por invoice_id;
	// no hay grafo bidireccional en memoria.
	Items []InvoiceItem
}

// IsOverdue indica si la factura está vencida al instante dado: tiene fecha de
// vencimiento, ya pasó, y no está pagada. El reloj se inyecta para que los
// tests sean deterministas.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.DueDate != nil && i.DueDate.Before(now) && i.Status != StatusPaid
}

// ItemCount cantidad de líneas cargadas.
func (i *Invoice) ItemCount() int {
	return len(i.Items)
}

// ItemsSubtotal suma de los LineTotal de los ítems cargados. Sirve para
// conciliar contra la instantánea SubTotal almacenada; el modelo no lo hace
// automáticamente.
func (i *Invoice) ItemsSubtotal() decimal.Decimal {
	sum := decimal.Zero
	for idx := range i.Items {
		sum = sum.Add(i.Items[idx].LineTotal())
	}
	return sum
}
