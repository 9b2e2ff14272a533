package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, invoice_number, invoice_date, due_date, customer_name, customer_email, customer_phone, customer_address, status, sub_total, tax_amount, discount_amount, total_amount, notes, created_at, updated_at, created_by_user_id`

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de una factura. El gateway asigna ID y CreatedAt.
// Un created_by_user_id inexistente o un número duplicado fallan en el
// constraint con ErrConstraintViolation.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	invoice.CreatedAt = time.Now().UTC()
	invoice.UpdatedAt = nil

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NULL, $16)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.InvoiceNumber, invoice.InvoiceDate, invoice.DueDate,
		invoice.CustomerName, invoice.CustomerEmail, invoice.CustomerPhone, invoice.CustomerAddress,
		invoice.Status, invoice.SubTotal, invoice.TaxAmount, invoice.DiscountAmount,
		invoice.TotalAmount, invoice.Notes, invoice.CreatedAt, invoice.CreatedByUserID,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return domain.ErrConstraintViolation
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de factura. Referencias a factura o producto
// inexistentes fallan en el FK con ErrConstraintViolation. Las líneas no
// llevan updated_at.
func (r *InvoiceRepo) CreateItem(ctx context.Context, item *entity.InvoiceItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO invoice_items (id, quantity, unit_price, discount_amount, description, created_at, invoice_id, product_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Quantity, item.UnitPrice, item.DiscountAmount,
		item.Description, item.CreatedAt, item.InvoiceID, item.ProductID,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return domain.ErrConstraintViolation
		}
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID (sin líneas; usar ListItems).
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetByNumber obtiene una factura por número.
func (r *InvoiceRepo) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = $1`, number)
}

func (r *InvoiceRepo) getOne(ctx context.Context, query string, arg any) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.InvoiceDate, &inv.DueDate,
		&inv.CustomerName, &inv.CustomerEmail, &inv.CustomerPhone, &inv.CustomerAddress,
		&inv.Status, &inv.SubTotal, &inv.TaxAmount, &inv.DiscountAmount,
		&inv.TotalAmount, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt, &inv.CreatedByUserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListItems devuelve las líneas de una factura en orden de creación.
func (r *InvoiceRepo) ListItems(ctx context.Context, invoiceID string) ([]entity.InvoiceItem, error) {
	query := `
		SELECT id, quantity, unit_price, discount_amount, description, created_at, invoice_id, product_id
		FROM invoice_items WHERE invoice_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()

	var items []entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.Quantity, &it.UnitPrice, &it.DiscountAmount,
			&it.Description, &it.CreatedAt, &it.InvoiceID, &it.ProductID); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Update actualiza la cabecera de una factura; updated_at se estampa con now()
// en la misma sentencia. Los montos (sub_total, tax, discount, total) se
// guardan tal cual los entrega el llamador: son instantáneas de negocio, el
// modelo no las recalcula desde las líneas.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET invoice_number = $2, invoice_date = $3, due_date = $4, customer_name = $5,
		    customer_email = $6, customer_phone = $7, customer_address = $8, status = $9,
		    sub_total = $10, tax_amount = $11, discount_amount = $12, total_amount = $13,
		    notes = $14, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		invoice.ID, invoice.InvoiceNumber, invoice.InvoiceDate, invoice.DueDate,
		invoice.CustomerName, invoice.CustomerEmail, invoice.CustomerPhone, invoice.CustomerAddress,
		invoice.Status, invoice.SubTotal, invoice.TaxAmount, invoice.DiscountAmount,
		invoice.TotalAmount, invoice.Notes,
	).Scan(&invoice.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isConstraintViolation(err) {
			return domain.ErrConstraintViolation
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID; el CASCADE de la BD arrastra sus líneas.
// Los productos referenciados por esas líneas no se tocan.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista facturas con filtros (estado, rango de fechas, creador) y paginación.
func (r *InvoiceRepo) List(ctx context.Context, filter repository.InvoiceFilter, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE 1=1`
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += fmt.Sprintf(` AND invoice_date >= $%d`, len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += fmt.Sprintf(` AND invoice_date <= $%d`, len(args))
	}
	if filter.CreatedByUserID != "" {
		args = append(args, filter.CreatedByUserID)
		query += fmt.Sprintf(` AND created_by_user_id = $%d`, len(args))
	}
	query += fmt.Sprintf(` ORDER BY invoice_date DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.InvoiceDate, &inv.DueDate,
			&inv.CustomerName, &inv.CustomerEmail, &inv.CustomerPhone, &inv.CustomerAddress,
			&inv.Status, &inv.SubTotal, &inv.TaxAmount, &inv.DiscountAmount,
			&inv.TotalAmount, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt, &inv.CreatedByUserID); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// attachItems carga en un solo viaje las líneas de las facturas listadas, para
// que los derivados (item_count) salgan del estado real y no de un agregado a
// medio cargar.
func (r *InvoiceRepo) attachItems(ctx context.Context, list []*entity.Invoice) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]string, 0, len(list))
	byID := make(map[string]*entity.Invoice, len(list))
	for _, inv := range list {
		ids = append(ids, inv.ID)
		byID[inv.ID] = inv
	}
	query := `
		SELECT id, quantity, unit_price, discount_amount, description, created_at, invoice_id, product_id
		FROM invoice_items WHERE invoice_id = ANY($1) ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.Quantity, &it.UnitPrice, &it.DiscountAmount,
			&it.Description, &it.CreatedAt, &it.InvoiceID, &it.ProductID); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		if inv, ok := byID[it.InvoiceID]; ok {
			inv.Items = append(inv.Items, it)
		}
	}
	return rows.Err()
}
