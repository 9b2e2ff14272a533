package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// InvoiceFilter filtros de listado de facturas.
type InvoiceFilter struct {
	Status          *entity.InvoiceStatus
	DateFrom        *time.Time // sobre invoice_date, inclusivo
	DateTo          *time.Time // sobre invoice_date, inclusivo
	CreatedByUserID string
}

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// La factura con sus ítems es el único agregado que se guarda en una sola
// transacción (vía TxRunner); aquí Create y CreateItem son pasos componibles.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	CreateItem(ctx context.Context, item *entity.InvoiceItem) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	// ListItems consulta inversa por invoice_id (sin grafo bidireccional).
	ListItems(ctx context.Context, invoiceID string) ([]entity.InvoiceItem, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete elimina la factura y arrastra sus líneas (CASCADE en BD).
	Delete(ctx context.Context, id string) error
	// List devuelve las facturas con sus líneas cargadas: los derivados
	// (item_count) se calculan sobre el agregado completo, nunca sobre uno a
	// medio cargar.
	List(ctx context.Context, filter InvoiceFilter, limit, offset int) ([]*entity.Invoice, error)
}
