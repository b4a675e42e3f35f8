package stable

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Establo-api/internal/application/dto"
	"github.com/jhoicas/Establo-api/internal/application/usecase"
	"github.com/jhoicas/Establo-api/internal/domain"
	"github.com/jhoicas/Establo-api/internal/domain/entity"
	"github.com/jhoicas/Establo-api/internal/domain/repository"
)

// ConsumptionUseCase vincula y desvincula consumos de un caballo.
// Cada mutación es un reemplazo del documento del caballo únicamente; la
// existencia del artículo es una precondición, no una transacción a dos
// entidades. Se asume el riesgo de que el artículo sea borrado entre la
// verificación y el Update (consistencia best-effort del modelo original).
type ConsumptionUseCase struct {
	horseRepo repository.HorseRepository
	stockRepo repository.StockItemRepository
}

// NewConsumptionUseCase construye el caso de uso.
func NewConsumptionUseCase(horseRepo repository.HorseRepository, stockRepo repository.StockItemRepository) *ConsumptionUseCase {
	return &ConsumptionUseCase{horseRepo: horseRepo, stockRepo: stockRepo}
}

// Add crea un vínculo nuevo (ID fresco, copia del nombre del artículo al
// momento de la llamada) y lo agrega al final de la lista del caballo.
func (uc *ConsumptionUseCase) Add(horseID string, in dto.AddConsumptionRequest) (*dto.HorseResponse, error) {
	if in.DailyConsumption.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	horse, err := uc.horseRepo.GetByID(horseID)
	if err != nil {
		return nil, err
	}
	if horse == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.stockRepo.GetByID(in.StockItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	horse.ConsumptionList = append(horse.ConsumptionList, entity.Consumption{
		ID:               uuid.New().String(),
		StockItemID:      item.ID,
		Name:             item.Name,
		DailyConsumption: in.DailyConsumption,
	})
	horse.UpdatedAt = time.Now()
	if err := uc.horseRepo.Update(horse); err != nil {
		return nil, err
	}
	return uc.respond(horse)
}

// Remove elimina exactamente el vínculo con el ID dado. Un ID ausente es
// NotFound: la UI siempre borra un vínculo que acaba de mostrar, así que
// la ausencia indica una edición concurrente y no debe pasar en silencio.
func (uc *ConsumptionUseCase) Remove(horseID, assignmentID string) (*dto.HorseResponse, error) {
	horse, err := uc.horseRepo.GetByID(horseID)
	if err != nil {
		return nil, err
	}
	if horse == nil {
		return nil, domain.ErrNotFound
	}
	idx := horse.FindConsumption(assignmentID)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	horse.ConsumptionList = append(horse.ConsumptionList[:idx], horse.ConsumptionList[idx+1:]...)
	horse.UpdatedAt = time.Now()
	if err := uc.horseRepo.Update(horse); err != nil {
		return nil, err
	}
	return uc.respond(horse)
}

func (uc *ConsumptionUseCase) respond(horse *entity.Horse) (*dto.HorseResponse, error) {
	items, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	existing := make(map[string]struct{}, len(items))
	for _, it := range items {
		existing[it.ID] = struct{}{}
	}
	return usecase.ToHorseResponse(horse, existing), nil
}
