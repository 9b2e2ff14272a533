package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso para facturas y sus líneas. La creación guarda
// cabecera y líneas en una sola transacción (TxRunner). El reloj se inyecta
// para que IsOverdue sea determinista en tests.
type InvoiceUseCase struct {
	repo   repository.InvoiceRepository
	runner TxRunner
	now    func() time.Time
}

// NewInvoiceUseCase construye el caso de uso con el reloj de sistema.
func NewInvoiceUseCase(repo repository.InvoiceRepository, runner TxRunner) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, runner: runner, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock reemplaza el reloj (para tests).
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

// Create crea una factura con sus líneas de forma atómica. Los montos de la
// cabecera son instantáneas del llamador; no se recalculan desde las líneas.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	status := entity.InvoiceStatus(in.Status)
	if in.Status == 0 {
		status = entity.StatusDraft
	}
	invoice := &entity.Invoice{
		InvoiceNumber:   in.InvoiceNumber,
		InvoiceDate:     in.InvoiceDate,
		DueDate:         in.DueDate,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Status:          status,
		SubTotal:        in.SubTotal,
		TaxAmount:       in.TaxAmount,
		DiscountAmount:  in.DiscountAmount,
		TotalAmount:     in.TotalAmount,
		Notes:           in.Notes,
		CreatedByUserID: in.CreatedByUserID,
	}
	if err := validateInvoice(invoice); err != nil {
		return nil, err
	}
	items := make([]entity.InvoiceItem, 0, len(in.Items))
	for _, it := range in.Items {
		item := entity.InvoiceItem{
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			DiscountAmount: it.DiscountAmount,
			Description:    it.Description,
			ProductID:      it.ProductID,
		}
		if err := validateInvoiceItem(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	err := uc.runner.Run(ctx, func(_ repository.UserRepository, _ repository.ProductRepository, invoices repository.InvoiceRepository) error {
		if err := invoices.Create(ctx, invoice); err != nil {
			return err
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
			if err := invoices.CreateItem(ctx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return uc.toInvoiceResponse(invoice, true), nil
}

// GetByID obtiene una factura con sus líneas y derivados calculados.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return uc.toInvoiceResponse(invoice, true), nil
}

// GetByNumber obtiene una factura por número, con sus líneas.
func (uc *InvoiceUseCase) GetByNumber(ctx context.Context, number string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.ListItems(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return uc.toInvoiceResponse(invoice, true), nil
}

// Update actualiza la cabecera aplicando solo los campos presentes. El estado
// puede fijarse en cualquier valor de la enumeración: el modelo no impone un
// grafo de transiciones, incluso Overdue a mano con fecha futura.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.InvoiceNumber != nil {
		invoice.InvoiceNumber = *in.InvoiceNumber
	}
	if in.InvoiceDate != nil {
		invoice.InvoiceDate = *in.InvoiceDate
	}
	if in.DueDate != nil {
		invoice.DueDate = in.DueDate
	}
	if in.CustomerName != nil {
		invoice.CustomerName = *in.CustomerName
	}
	if in.CustomerEmail != nil {
		invoice.CustomerEmail = *in.CustomerEmail
	}
	if in.CustomerPhone != nil {
		invoice.CustomerPhone = *in.CustomerPhone
	}
	if in.CustomerAddress != nil {
		invoice.CustomerAddress = *in.CustomerAddress
	}
	if in.Status != nil {
		invoice.Status = entity.InvoiceStatus(*in.Status)
	}
	if in.SubTotal != nil {
		invoice.SubTotal = *in.SubTotal
	}
	if in.TaxAmount != nil {
		invoice.TaxAmount = *in.TaxAmount
	}
	if in.DiscountAmount != nil {
		invoice.DiscountAmount = *in.DiscountAmount
	}
	if in.Notes != nil {
		invoice.Notes = *in.Notes
	}
	if in.TotalAmount != nil {
		invoice.TotalAmount = *in.TotalAmount
	}
	if err := validateInvoice(invoice); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	// Las líneas se recargan para que item_count salga del estado real.
	items, err := uc.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return uc.toInvoiceResponse(invoice, false), nil
}

// Delete elimina una factura; el store arrastra sus líneas (CASCADE) y deja
// intactos los productos referenciados.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List lista facturas con filtros de estado, rango de fechas y creador.
func (uc *InvoiceUseCase) List(ctx context.Context, filter repository.InvoiceFilter, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *uc.toInvoiceResponse(inv, false))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Los topes de longitud son en caracteres (VARCHAR(n) cuenta runas, no bytes).
func validateInvoice(inv *entity.Invoice) error {
	if inv.InvoiceNumber == "" || utf8.RuneCountInString(inv.InvoiceNumber) > 50 {
		return domain.ErrValidation
	}
	if inv.InvoiceDate.IsZero() {
		return domain.ErrValidation
	}
	if inv.CustomerName == "" || utf8.RuneCountInString(inv.CustomerName) > 200 {
		return domain.ErrValidation
	}
	if utf8.RuneCountInString(inv.CustomerEmail) > 255 ||
		utf8.RuneCountInString(inv.CustomerPhone) > 20 ||
		utf8.RuneCountInString(inv.CustomerAddress) > 500 {
		return domain.ErrValidation
	}
	if !inv.Status.IsValid() {
		return domain.ErrValidation
	}
	if inv.SubTotal.IsNegative() || inv.TaxAmount.IsNegative() ||
		inv.DiscountAmount.IsNegative() || inv.TotalAmount.IsNegative() {
		return domain.ErrValidation
	}
	if utf8.RuneCountInString(inv.Notes) > 1000 {
		return domain.ErrValidation
	}
	if inv.CreatedByUserID == "" {
		return domain.ErrValidation
	}
	return nil
}

func validateInvoiceItem(it *entity.InvoiceItem) error {
	if it.ProductID == "" {
		return domain.ErrValidation
	}
	if it.Quantity <= 0 {
		return domain.ErrValidation
	}
	if it.UnitPrice.IsNegative() || it.DiscountAmount.IsNegative() {
		return domain.ErrValidation
	}
	if utf8.RuneCountInString(it.Description) > 500 {
		return domain.ErrValidation
	}
	// La fórmula admite totales negativos, pero un descuento mayor que el
	// bruto es un error de captura que se señala aquí, no se persiste.
	if it.LineTotal().IsNegative() {
		return domain.ErrValidation
	}
	return nil
}

func (uc *InvoiceUseCase) toInvoiceResponse(inv *entity.Invoice, withItems bool) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	resp := &dto.InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		InvoiceDate:     inv.InvoiceDate,
		DueDate:         inv.DueDate,
		CustomerName:    inv.CustomerName,
		CustomerEmail:   inv.CustomerEmail,
		CustomerPhone:   inv.CustomerPhone,
		CustomerAddress: inv.CustomerAddress,
		Status:          int(inv.Status),
		StatusName:      inv.Status.String(),
		SubTotal:        inv.SubTotal,
		TaxAmount:       inv.TaxAmount,
		DiscountAmount:  inv.DiscountAmount,
		TotalAmount:     inv.TotalAmount,
		Notes:           inv.Notes,
		CreatedByUserID: inv.CreatedByUserID,
		IsOverdue:       inv.IsOverdue(uc.now()),
		ItemCount:       inv.ItemCount(),
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
	if withItems {
		resp.Items = make([]dto.InvoiceItemResponse, 0, len(inv.Items))
		for idx := range inv.Items {
			it := &inv.Items[idx]
			resp.Items = append(resp.Items, dto.InvoiceItemResponse{
				ID:             it.ID,
				ProductID:      it.ProductID,
				Quantity:       it.Quantity,
				UnitPrice:      it.UnitPrice,
				DiscountAmount: it.DiscountAmount,
				Description:    it.Description,
				LineTotal:      it.LineTotal(),
				CreatedAt:      it.CreatedAt,
			})
		}
	}
	return resp
}
