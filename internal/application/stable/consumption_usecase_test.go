package stable_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Establo-api/internal/application/dto"
	"github.com/jhoicas/Establo-api/internal/application/stable"
	"github.com/jhoicas/Establo-api/internal/domain"
	"github.com/jhoicas/Establo-api/internal/domain/entity"
	"github.com/jhoicas/Establo-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type linkFixture struct {
	stockRepo *memory.StockItemRepo
	horseRepo *memory.HorseRepo
	uc        *stable.ConsumptionUseCase
}

func newLinkFixture(t *testing.T) *linkFixture {
	t.Helper()
	stockRepo := memory.NewStockItemRepository()
	horseRepo := memory.NewHorseRepository()
	return &linkFixture{
		stockRepo: stockRepo,
		horseRepo: horseRepo,
		uc:        stable.NewConsumptionUseCase(horseRepo, stockRepo),
	}
}

func (f *linkFixture) seedStockItem(t *testing.T, name string, amount int64) *entity.StockItem {
	t.Helper()
	now := time.Now()
	item := &entity.StockItem{
		ID: uuid.New().String(), Name: name, Type: entity.StockTypeFeed,
		AmountInStock: decimal.NewFromInt(amount), PricePerKilo: decimal.NewFromFloat(0.5),
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, f.stockRepo.Create(item))
	return item
}

func (f *linkFixture) seedHorse(t *testing.T, name, owner string) *entity.Horse {
	t.Helper()
	now := time.Now()
	horse := &entity.Horse{
		ID: uuid.New().String(), Name: name, Owner: owner,
		ConsumptionList: []entity.Consumption{},
		CreatedAt:       now, UpdatedAt: now,
	}
	require.NoError(t, f.horseRepo.Create(horse))
	return horse
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_AgregaExactamenteUnVinculo(t *testing.T) {
	f := newLinkFixture(t)
	item := f.seedStockItem(t, "Hafer", 130)
	horse := f.seedHorse(t, "Bella", "Anna")

	out, err := f.uc.Add(horse.ID, dto.AddConsumptionRequest{
		StockItemID: item.ID, DailyConsumption: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	require.Len(t, out.ConsumptionList, 1, "la lista crece exactamente en uno")
	link := out.ConsumptionList[0]
	assert.NotEmpty(t, link.ID, "cada vínculo recibe un ID fresco")
	assert.Equal(t, item.ID, link.StockItemID)
	assert.Equal(t, "Hafer", link.Name, "copia del nombre al momento del vínculo")
	assert.True(t, link.DailyConsumption.Equal(decimal.NewFromInt(5)))
}

func TestAdd_TasaNoPositiva_Validation(t *testing.T) {
	f := newLinkFixture(t)
	item := f.seedStockItem(t, "Hafer", 130)
	horse := f.seedHorse(t, "Bella", "Anna")

	_, err := f.uc.Add(horse.ID, dto.AddConsumptionRequest{
		StockItemID: item.ID, DailyConsumption: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Add(horse.ID, dto.AddConsumptionRequest{
		StockItemID: item.ID, DailyConsumption: decimal.NewFromInt(-2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdd_CaballoDesconocido_NotFound(t *testing.T) {
	f := newLinkFixture(t)
	item := f.seedStockItem(t, "Hafer", 130)

	_, err := f.uc.Add("no-existe", dto.AddConsumptionRequest{
		StockItemID: item.ID, DailyConsumption: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdd_ArticuloDesconocido_NotFound(t *testing.T) {
	f := newLinkFixture(t)
	horse := f.seedHorse(t, "Bella", "Anna")

	_, err := f.uc.Add(horse.ID, dto.AddConsumptionRequest{
		StockItemID: "no-existe", DailyConsumption: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "la referencia debe resolver a un artículo existente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Remove — eliminación por identidad
// ──────────────────────────────────────────────────────────────────────────────

// Dos vínculos con el mismo nombre y la misma tasa siguen siendo distintos:
// Remove borra exactamente el del ID dado, nunca un gemelo por valor.
func TestRemove_PorIdentidadNoPorValor(t *testing.T) {
	f := newLinkFixture(t)
	item := f.seedStockItem(t, "Hafer", 130)
	horse := f.seedHorse(t, "Bella", "Anna")

	first, err := f.uc.Add(horse.ID, dto.AddConsumptionRequest{
		StockItemID: item.ID, DailyConsumption: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	second, err := f.uc.Add(horse.ID, dto.AddConsumptionRequest{
		StockItemID: item.ID, DailyConsumption: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	require.Len(t, second.ConsumptionList, 2)

	firstID := first.ConsumptionList[0].ID
	out, err := f.uc.Remove(horse.ID, firstID)
	require.NoError(t, err)
	require.Len(t, out.ConsumptionList, 1)
	assert.NotEqual(t, firstID, out.ConsumptionList[0].ID,
		"debe sobrevivir el gemelo, no el vínculo eliminado")
}

func TestRemove_DosVeces_SegundaNotFound(t *testing.T) {
	f := newLinkFixture(t)
	item := f.seedStockItem(t, "Hafer", 130)
	horse := f.seedHorse(t, "Bella", "Anna")

	out, err := f.uc.Add(horse.ID, dto.AddConsumptionRequest{
		StockItemID: item.ID, DailyConsumption: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	linkID := out.ConsumptionList[0].ID

	_, err = f.uc.Remove(horse.ID, linkID)
	require.NoError(t, err)

	// La ausencia indica una edición concurrente; no puede pasar en silencio.
	_, err = f.uc.Remove(horse.ID, linkID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemove_CaballoDesconocido_NotFound(t *testing.T) {
	f := newLinkFixture(t)
	_, err := f.uc.Remove("no-existe", "da-igual")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
