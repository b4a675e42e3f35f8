package stable

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Establo-api/internal/application/dto"
	"github.com/jhoicas/Establo-api/internal/domain"
	"github.com/jhoicas/Establo-api/internal/domain/entity"
	"github.com/jhoicas/Establo-api/internal/domain/repository"
	domstable "github.com/jhoicas/Establo-api/internal/domain/stable"
)

// DepletionUseCase calcula cuántos días de existencias quedan por artículo.
// El agregado se recalcula del estado actual en cada consulta; no hay
// proyección cacheada que invalidar.
type DepletionUseCase struct {
	stockRepo repository.StockItemRepository
	horseRepo repository.HorseRepository
}

// NewDepletionUseCase construye el caso de uso.
func NewDepletionUseCase(stockRepo repository.StockItemRepository, horseRepo repository.HorseRepository) *DepletionUseCase {
	return &DepletionUseCase{stockRepo: stockRepo, horseRepo: horseRepo}
}

// Project proyecta el agotamiento de un artículo concreto.
func (uc *DepletionUseCase) Project(stockItemID string) (*dto.DepletionResponse, error) {
	item, err := uc.stockRepo.GetByID(stockItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	aggregates, err := uc.aggregateByStockItem()
	if err != nil {
		return nil, err
	}
	resp := project(item, aggregates[item.ID])
	return &resp, nil
}

// ProjectAll proyecta el agotamiento de todos los artículos (una pasada
// sobre los caballos, como la tabla de la vista de almacén).
func (uc *DepletionUseCase) ProjectAll() (*dto.DepletionListResponse, error) {
	items, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	aggregates, err := uc.aggregateByStockItem()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepletionResponse, 0, len(items))
	for _, it := range items {
		out = append(out, project(it, aggregates[it.ID]))
	}
	return &dto.DepletionListResponse{Items: out}, nil
}

// aggregateByStockItem suma el consumo diario de todos los vínculos de
// todos los caballos, agrupado por artículo referenciado. El artículo no
// sabe quién lo consume: la relación solo es visible recorriendo caballos.
func (uc *DepletionUseCase) aggregateByStockItem() (map[string]decimal.Decimal, error) {
	horses, err := uc.horseRepo.List()
	if err != nil {
		return nil, err
	}
	sums := make(map[string]decimal.Decimal)
	for _, h := range horses {
		for _, c := range h.ConsumptionList {
			sums[c.StockItemID] = sums[c.StockItemID].Add(c.DailyConsumption)
		}
	}
	return sums, nil
}

func project(item *entity.StockItem, aggregate decimal.Decimal) dto.DepletionResponse {
	days, ok := domstable.DaysRemaining(item.AmountInStock, aggregate)
	if !ok {
		return dto.DepletionResponse{StockItemID: item.ID, Unbounded: true}
	}
	return dto.DepletionResponse{StockItemID: item.ID, DaysRemaining: &days}
}
