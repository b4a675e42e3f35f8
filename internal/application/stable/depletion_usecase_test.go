package stable_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Establo-api/internal/application/dto"
	"github.com/jhoicas/Establo-api/internal/application/stable"
	"github.com/jhoicas/Establo-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Project — agregado entre caballos
// ──────────────────────────────────────────────────────────────────────────────

func TestProject_AgregaConsumoDeVariosCaballos(t *testing.T) {
	f := newLinkFixture(t)
	item := f.seedStockItem(t, "Hafer", 130)
	bella := f.seedHorse(t, "Bella", "Anna")
	hansi := f.seedHorse(t, "Hansi", "Peter Pan")

	uc := stable.NewDepletionUseCase(f.stockRepo, f.horseRepo)

	_, err := f.uc.Add(bella.ID, dto.AddConsumptionRequest{
		StockItemID: item.ID, DailyConsumption: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	_, err = f.uc.Add(hansi.ID, dto.AddConsumptionRequest{
		StockItemID: item.ID, DailyConsumption: decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	// 130 kg / (5 + 8) kg/día = 10 días
	out, err := uc.Project(item.ID)
	require.NoError(t, err)
	require.NotNil(t, out.DaysRemaining)
	assert.Equal(t, int64(10), *out.DaysRemaining)
	assert.False(t, out.Unbounded)
}

func TestProject_SinConsumidores_Unbounded(t *testing.T) {
	f := newLinkFixture(t)
	item := f.seedStockItem(t, "Stroh", 250)

	uc := stable.NewDepletionUseCase(f.stockRepo, f.horseRepo)
	out, err := uc.Project(item.ID)
	require.NoError(t, err)
	assert.True(t, out.Unbounded, "sin consumidores el artículo nunca se agota")
	assert.Nil(t, out.DaysRemaining)
}

func TestProject_ArticuloDesconocido_NotFound(t *testing.T) {
	f := newLinkFixture(t)
	uc := stable.NewDepletionUseCase(f.stockRepo, f.horseRepo)
	_, err := uc.Project("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProject_RedondeaAlEnteroMasCercano(t *testing.T) {
	f := newLinkFixture(t)
	item := f.seedStockItem(t, "Heu", 10)
	horse := f.seedHorse(t, "Bella", "Anna")
	uc := stable.NewDepletionUseCase(f.stockRepo, f.horseRepo)

	_, err := f.uc.Add(horse.ID, dto.AddConsumptionRequest{
		StockItemID: item.ID, DailyConsumption: decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	// 10 / 3 = 3.33 → 3 días
	out, err := uc.Project(item.ID)
	require.NoError(t, err)
	require.NotNil(t, out.DaysRemaining)
	assert.Equal(t, int64(3), *out.DaysRemaining)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProjectAll
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectAll_UnaFilaPorArticulo(t *testing.T) {
	f := newLinkFixture(t)
	hafer := f.seedStockItem(t, "Hafer", 130)
	stroh := f.seedStockItem(t, "Stroh", 250)
	horse := f.seedHorse(t, "Bella", "Anna")
	uc := stable.NewDepletionUseCase(f.stockRepo, f.horseRepo)

	_, err := f.uc.Add(horse.ID, dto.AddConsumptionRequest{
		StockItemID: hafer.ID, DailyConsumption: decimal.NewFromInt(13),
	})
	require.NoError(t, err)

	out, err := uc.ProjectAll()
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	byID := map[string]dto.DepletionResponse{}
	for _, p := range out.Items {
		byID[p.StockItemID] = p
	}
	require.NotNil(t, byID[hafer.ID].DaysRemaining)
	assert.Equal(t, int64(10), *byID[hafer.ID].DaysRemaining)
	assert.True(t, byID[stroh.ID].Unbounded)
}

// El borrado del caballo arrastra sus consumos: la proyección vuelve a ser
// no acotada sin que nadie tenga que limpiar nada.
func TestProject_TrasBorrarCaballo_Unbounded(t *testing.T) {
	f := newLinkFixture(t)
	item := f.seedStockItem(t, "Hafer", 100)
	horse := f.seedHorse(t, "Bella", "Anna")
	uc := stable.NewDepletionUseCase(f.stockRepo, f.horseRepo)

	_, err := f.uc.Add(horse.ID, dto.AddConsumptionRequest{
		StockItemID: item.ID, DailyConsumption: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	deleted, err := f.horseRepo.Delete(horse.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	out, err := uc.Project(item.ID)
	require.NoError(t, err)
	assert.True(t, out.Unbounded)
}
