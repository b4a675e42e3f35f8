package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Establo-api/internal/application/dto"
	"github.com/jhoicas/Establo-api/internal/application/usecase"
	"github.com/jhoicas/Establo-api/internal/domain"
	"github.com/jhoicas/Establo-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newStockUC() *usecase.StockItemUseCase {
	return usecase.NewStockItemUseCase(memory.NewStockItemRepository())
}

func haferDraft() dto.StockItemDraft {
	return dto.StockItemDraft{
		Name:          "Hafer",
		Type:          "Feed",
		AmountInStock: decimal.NewFromInt(130),
		PricePerKilo:  decimal.NewFromFloat(0.5),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create / List
// ──────────────────────────────────────────────────────────────────────────────

func TestStockCreate_AsignaIDYApareceEnLista(t *testing.T) {
	uc := newStockUC()

	created, err := uc.Create(haferDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "el ID lo asigna el caso de uso, no el caller")
	assert.Equal(t, "Hafer", created.Name)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list.Items, 1, "tras un Create la lista contiene exactamente un artículo")
	assert.Equal(t, created.ID, list.Items[0].ID)
	assert.True(t, list.Items[0].AmountInStock.Equal(decimal.NewFromInt(130)))
}

func TestStockCreate_NombreVacio_Validation(t *testing.T) {
	uc := newStockUC()
	draft := haferDraft()
	draft.Name = ""
	_, err := uc.Create(draft)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockCreate_TipoDesconocido_Validation(t *testing.T) {
	uc := newStockUC()
	draft := haferDraft()
	draft.Type = "Medicine"
	_, err := uc.Create(draft)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el tipo está restringido a Feed|Bedding")
}

func TestStockCreate_CantidadNegativa_Validation(t *testing.T) {
	uc := newStockUC()
	draft := haferDraft()
	draft.AmountInStock = decimal.NewFromInt(-1)
	_, err := uc.Create(draft)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockCreate_PrecioNegativo_Validation(t *testing.T) {
	uc := newStockUC()
	draft := haferDraft()
	draft.PricePerKilo = decimal.NewFromFloat(-0.5)
	_, err := uc.Create(draft)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockCreate_NombreDuplicado_Conflict(t *testing.T) {
	uc := newStockUC()
	_, err := uc.Create(haferDraft())
	require.NoError(t, err)

	_, err = uc.Create(haferDraft())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStockCreate_NombreDuplicadoCaseless_Conflict(t *testing.T) {
	uc := newStockUC()
	_, err := uc.Create(haferDraft())
	require.NoError(t, err)

	draft := haferDraft()
	draft.Name = "hafer"
	_, err = uc.Create(draft)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "\"hafer\" y \"Hafer\" deben colisionar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Replace
// ──────────────────────────────────────────────────────────────────────────────

func TestStockReplace_ReemplazaDocumentoCompleto(t *testing.T) {
	uc := newStockUC()
	created, err := uc.Create(haferDraft())
	require.NoError(t, err)

	draft := haferDraft()
	draft.AmountInStock = decimal.NewFromInt(80)
	updated, err := uc.Replace(created.ID, draft)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.AmountInStock.Equal(decimal.NewFromInt(80)))

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list.Items, 1, "Replace nunca crea un artículo nuevo")
}

func TestStockReplace_IDDesconocido_NotFound(t *testing.T) {
	uc := newStockUC()
	_, err := uc.Replace("no-existe", haferDraft())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list.Items, "un Replace fallido no debe mutar el estado")
}

func TestStockReplace_MismoNombrePropio_Permitido(t *testing.T) {
	uc := newStockUC()
	created, err := uc.Create(haferDraft())
	require.NoError(t, err)

	// Reemplazar sin cambiar el nombre no es un duplicado contra sí mismo.
	_, err = uc.Replace(created.ID, haferDraft())
	assert.NoError(t, err)
}

func TestStockReplace_NombreDeOtro_Conflict(t *testing.T) {
	uc := newStockUC()
	_, err := uc.Create(haferDraft())
	require.NoError(t, err)

	stroh := dto.StockItemDraft{Name: "Stroh", Type: "Bedding",
		AmountInStock: decimal.NewFromInt(50), PricePerKilo: decimal.NewFromFloat(0.2)}
	created, err := uc.Create(stroh)
	require.NoError(t, err)

	stroh.Name = "Hafer"
	_, err = uc.Replace(created.ID, stroh)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestStockDelete_SegundoDelete_NotFound(t *testing.T) {
	uc := newStockUC()
	created, err := uc.Create(haferDraft())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "Delete no es idempotente: el segundo debe fallar")
}

func TestStockDelete_IDDesconocido_NotFound(t *testing.T) {
	uc := newStockUC()
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
