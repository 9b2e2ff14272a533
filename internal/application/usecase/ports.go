package usecase

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción
// del store. Se usa para el único guardado multi-fila del modelo: factura con
// sus líneas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		products repository.ProductRepository,
		invoices repository.InvoiceRepository,
	) error) error
}
