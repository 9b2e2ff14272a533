package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Imitan el contrato del
// gateway (asignar ID y CreatedAt al insertar, estampar UpdatedAt al
// actualizar, ErrNotFound al no existir) sin evaluar constraints: la
// unicidad y los FKs se prueban contra la BD real en los tests de
// integración del paquete postgres.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
	seq  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.seq++
	u.ID = fmt.Sprintf("user-%d", f.seq)
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = nil
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	now := time.Now().UTC()
	u.UpdatedAt = &now
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, filter repository.UserFilter, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byID {
		if filter.OnlyActive != nil && u.IsActive != *filter.OnlyActive {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

type fakeProductRepo struct {
	byID map[string]*entity.Product
	seq  int
	// skuLookups cuenta lecturas por SKU: el caso de uso no debe pre-consultar
	// unicidad antes de escribir.
	skuLookups int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.seq++
	p.ID = fmt.Sprintf("product-%d", f.seq)
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = nil
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	f.skuLookups++
	for _, p := range f.byID {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	now := time.Now().UTC()
	p.UpdatedAt = &now
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		if filter.OnlyActive != nil && p.IsActive != *filter.OnlyActive {
			continue
		}
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.LowStock && !p.IsLowStock() {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	byID  map[string]*entity.Invoice
	items map[string][]entity.InvoiceItem // por invoice_id
	seq   int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{byID: map[string]*entity.Invoice{}, items: map[string][]entity.InvoiceItem{}}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.seq++
	inv.ID = fmt.Sprintf("invoice-%d", f.seq)
	inv.CreatedAt = time.Now().UTC()
	inv.UpdatedAt = nil
	cp := *inv
	cp.Items = nil
	f.byID[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) CreateItem(_ context.Context, it *entity.InvoiceItem) error {
	if _, ok := f.byID[it.InvoiceID]; !ok {
		return domain.ErrConstraintViolation
	}
	f.seq++
	it.ID = fmt.Sprintf("item-%d", f.seq)
	it.CreatedAt = time.Now().UTC()
	f.items[it.InvoiceID] = append(f.items[it.InvoiceID], *it)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	inv, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) GetByNumber(_ context.Context, number string) (*entity.Invoice, error) {
	for _, inv := range f.byID {
		if inv.InvoiceNumber == number {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInvoiceRepo) ListItems(_ context.Context, invoiceID string) ([]entity.InvoiceItem, error) {
	return append([]entity.InvoiceItem(nil), f.items[invoiceID]...), nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	if _, ok := f.byID[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	now := time.Now().UTC()
	inv.UpdatedAt = &now
	cp := *inv
	cp.Items = nil
	f.byID[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	delete(f.items, id) // cascade
	return nil
}

func (f *fakeInvoiceRepo) List(_ context.Context, filter repository.InvoiceFilter, _, _ int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.byID {
		if filter.Status != nil && inv.Status != *filter.Status {
			continue
		}
		if filter.DateFrom != nil && inv.InvoiceDate.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && inv.InvoiceDate.After(*filter.DateTo) {
			continue
		}
		if filter.CreatedByUserID != "" && inv.CreatedByUserID != filter.CreatedByUserID {
			continue
		}
		cp := *inv
		// Mismo contrato que el gateway: el listado trae las líneas cargadas.
		cp.Items = append([]entity.InvoiceItem(nil), f.items[inv.ID]...)
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes; registra si
// el callback devolvió error para verificar que nada quede a medias.
type fakeTxRunner struct {
	users    *fakeUserRepo
	products *fakeProductRepo
	invoices *fakeInvoiceRepo
	runs     int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	users repository.UserRepository,
	products repository.ProductRepository,
	invoices repository.InvoiceRepository,
) error) error {
	f.runs++
	return fn(f.users, f.products, f.invoices)
}
