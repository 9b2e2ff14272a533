package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/usecase"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// Reloj fijo: los tests de IsOverdue jamás dependen del reloj vivo.
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newInvoiceUC() (*usecase.InvoiceUseCase, *fakeInvoiceRepo, *fakeTxRunner) {
	invoices := newFakeInvoiceRepo()
	runner := &fakeTxRunner{users: newFakeUserRepo(), products: newFakeProductRepo(), invoices: invoices}
	uc := usecase.NewInvoiceUseCase(invoices, runner).WithClock(func() time.Time { return fixedNow })
	return uc, invoices, runner
}

func validCreateRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceNumber:   "INV-2025-100",
		InvoiceDate:     fixedNow.AddDate(0, 0, -10),
		CustomerName:    "ABC Corporation",
		CreatedByUserID: "user-1",
		SubTotal:        dec("54.97"),
		TotalAmount:     dec("54.97"),
		Items: []dto.CreateInvoiceItemRequest{
			{ProductID: "product-1", Quantity: 3, UnitPrice: dec("19.99"), DiscountAmount: dec("5.00"), Description: "Demo"},
		},
	}
}

func TestInvoiceUseCase_Create_ConLineas(t *testing.T) {
	uc, repo, runner := newInvoiceUC()

	out, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 1, runner.runs, "cabecera y líneas se guardan en una sola transacción")
	assert.Equal(t, int(entity.StatusDraft), out.Status, "estado en cero toma el defecto Draft")
	assert.Equal(t, 1, out.ItemCount)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].LineTotal.Equal(dec("54.97")),
		"3*19.99-5.00 debe dar 54.97, se obtuvo %s", out.Items[0].LineTotal)

	stored, err := repo.ListItems(context.Background(), out.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, out.ID, stored[0].InvoiceID, "la línea queda atada a su factura")
}

func TestInvoiceUseCase_Create_Validacion(t *testing.T) {
	uc, _, _ := newInvoiceUC()
	ctx := context.Background()

	t.Run("sin número de factura", func(t *testing.T) {
		in := validCreateRequest()
		in.InvoiceNumber = ""
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("sin cliente", func(t *testing.T) {
		in := validCreateRequest()
		in.CustomerName = ""
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("sin usuario creador", func(t *testing.T) {
		in := validCreateRequest()
		in.CreatedByUserID = ""
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("cantidad cero", func(t *testing.T) {
		in := validCreateRequest()
		in.Items[0].Quantity = 0
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("cliente acentuado dentro del tope de caracteres", func(t *testing.T) {
		// 150 caracteres acentuados son 300 bytes; el tope de 200 cuenta
		// caracteres, como VARCHAR(200) en el store.
		in := validCreateRequest()
		in.CustomerName = strings.Repeat("á", 150)
		_, err := uc.Create(ctx, in)
		assert.NoError(t, err)
	})
	t.Run("cliente de más de 200 caracteres", func(t *testing.T) {
		in := validCreateRequest()
		in.CustomerName = strings.Repeat("á", 201)
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("total de línea negativo", func(t *testing.T) {
		// La fórmula lo permite pero es un error de captura: se señala, no se
		// persiste como cargo negativo.
		in := validCreateRequest()
		in.Items[0].DiscountAmount = dec("100.00")
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestInvoiceUseCase_GetByID_DerivadosConRelojInyectado(t *testing.T) {
	uc, _, _ := newInvoiceUC()
	ctx := context.Background()

	in := validCreateRequest()
	due := fixedNow.AddDate(0, 0, -1)
	in.DueDate = &due
	in.Status = int(entity.StatusSent)
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)

	out, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, out.IsOverdue, "vencida ayer y enviada debe derivar vencida")
	assert.Equal(t, 1, out.ItemCount)

	// La misma factura pagada deja de derivar vencida aunque la fecha siga en
	// el pasado.
	paid := int(entity.StatusPaid)
	_, err = uc.Update(ctx, created.ID, dto.UpdateInvoiceRequest{Status: &paid})
	require.NoError(t, err)
	out, err = uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, out.IsOverdue)
}

// TestInvoiceUseCase_EstadoOverdueManualDiscrepante el modelo no impone grafo
// de transiciones: Overdue a mano con fecha futura es válido y el derivado
// discrepa a propósito.
func TestInvoiceUseCase_EstadoOverdueManualDiscrepante(t *testing.T) {
	uc, _, _ := newInvoiceUC()
	ctx := context.Background()

	in := validCreateRequest()
	due := fixedNow.AddDate(0, 0, 30)
	in.DueDate = &due
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)

	manual := int(entity.StatusOverdue)
	out, err := uc.Update(ctx, created.ID, dto.UpdateInvoiceRequest{Status: &manual})
	require.NoError(t, err)
	assert.Equal(t, int(entity.StatusOverdue), out.Status)
	assert.False(t, out.IsOverdue, "el derivado sigue a DueDate y al reloj, no al estado manual")
}

func TestInvoiceUseCase_List_DerivadosSobreAgregadoCompleto(t *testing.T) {
	uc, _, _ := newInvoiceUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	out, err := uc.List(ctx, repository.InvoiceFilter{}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, created.ID, out.Items[0].ID)
	assert.Equal(t, 1, out.Items[0].ItemCount,
		"la factura tiene 1 línea en el store y el listado debe derivar item_count=1")
	assert.Empty(t, out.Items[0].Items, "el listado no serializa las líneas, solo sus derivados")
}

func TestInvoiceUseCase_Update_InstantaneasSinRecalculo(t *testing.T) {
	uc, _, _ := newInvoiceUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// El llamador puede guardar una instantánea que no cuadra con las líneas;
	// el modelo la confía tal cual.
	subtotal := dec("999.99")
	out, err := uc.Update(ctx, created.ID, dto.UpdateInvoiceRequest{SubTotal: &subtotal})
	require.NoError(t, err)
	assert.True(t, out.SubTotal.Equal(subtotal))
	assert.NotNil(t, out.UpdatedAt, "actualizar estampa updated_at")
	assert.Equal(t, 1, out.ItemCount, "la respuesta de actualización deriva item_count del estado real")
}

func TestInvoiceUseCase_Delete_CascadaDeLineas(t *testing.T) {
	uc, repo, _ := newInvoiceUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	items, err := repo.ListItems(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, items, "borrar la factura arrastra sus líneas")
}
