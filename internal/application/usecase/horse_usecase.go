package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Establo-api/internal/application/dto"
	"github.com/jhoicas/Establo-api/internal/domain"
	"github.com/jhoicas/Establo-api/internal/domain/entity"
	"github.com/jhoicas/Establo-api/internal/domain/repository"
)

// HorseUseCase casos de uso CRUD para caballos. La lista de consumos se
// muta normalmente vía el vinculador (application/stable); Replace la
// acepta completa porque toda edición es un reemplazo de documento entero.
type HorseUseCase struct {
	horseRepo repository.HorseRepository
	stockRepo repository.StockItemRepository
}

// NewHorseUseCase construye el caso de uso.
func NewHorseUseCase(horseRepo repository.HorseRepository, stockRepo repository.StockItemRepository) *HorseUseCase {
	return &HorseUseCase{horseRepo: horseRepo, stockRepo: stockRepo}
}

// List devuelve todos los caballos. Cada consumo cuya referencia ya no
// resuelve a un artículo existente se marca como inconsistente en lugar
// de fallar o descartarse (referencia débil, sin cascada de borrado).
func (uc *HorseUseCase) List() (*dto.HorseListResponse, error) {
	horses, err := uc.horseRepo.List()
	if err != nil {
		return nil, err
	}
	existing, err := existingStockIDs(uc.stockRepo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HorseResponse, 0, len(horses))
	for _, h := range horses {
		items = append(items, *ToHorseResponse(h, existing))
	}
	return &dto.HorseListResponse{Items: items}, nil
}

// Create crea un caballo con lista de consumos vacía.
func (uc *HorseUseCase) Create(in dto.HorseDraft) (*dto.HorseResponse, error) {
	if in.Name == "" || in.Owner == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	horse := &entity.Horse{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Owner:           in.Owner,
		ConsumptionList: []entity.Consumption{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.horseRepo.Create(horse); err != nil {
		return nil, err
	}
	return ToHorseResponse(horse, nil), nil
}

// Replace reemplaza el documento completo del caballo, lista de consumos
// incluida. Un ID desconocido es NotFound: la creación solo pasa por Create.
func (uc *HorseUseCase) Replace(id string, in dto.HorseDraft) (*dto.HorseResponse, error) {
	if in.Name == "" || in.Owner == "" {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.horseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	consumptions := make([]entity.Consumption, 0, len(in.ConsumptionList))
	for _, c := range in.ConsumptionList {
		if c.DailyConsumption.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		consumptions = append(consumptions, entity.Consumption{
			ID:               c.ID,
			StockItemID:      c.StockItemID,
			Name:             c.Name,
			DailyConsumption: c.DailyConsumption,
		})
	}
	horse := &entity.Horse{
		ID:              id,
		Name:            in.Name,
		Owner:           in.Owner,
		ConsumptionList: consumptions,
		CreatedAt:       current.CreatedAt,
		UpdatedAt:       time.Now(),
	}
	if err := uc.horseRepo.Update(horse); err != nil {
		return nil, err
	}
	existing, err := existingStockIDs(uc.stockRepo)
	if err != nil {
		return nil, err
	}
	return ToHorseResponse(horse, existing), nil
}

// Delete elimina un caballo y con él su lista de consumos.
func (uc *HorseUseCase) Delete(id string) error {
	deleted, err := uc.horseRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// existingStockIDs devuelve el conjunto de IDs de artículos existentes,
// usado para marcar referencias colgantes en la lectura.
func existingStockIDs(repo repository.StockItemRepository) (map[string]struct{}, error) {
	items, err := repo.List()
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(items))
	for _, it := range items {
		ids[it.ID] = struct{}{}
	}
	return ids, nil
}

// ToHorseResponse mapea un caballo a su DTO. existing puede ser nil cuando
// se sabe que no hay consumos que verificar (caballo recién creado).
func ToHorseResponse(h *entity.Horse, existing map[string]struct{}) *dto.HorseResponse {
	if h == nil {
		return nil
	}
	consumptions := make([]dto.ConsumptionResponse, 0, len(h.ConsumptionList))
	for _, c := range h.ConsumptionList {
		stale := false
		if existing != nil {
			_, ok := existing[c.StockItemID]
			stale = !ok
		}
		consumptions = append(consumptions, dto.ConsumptionResponse{
			ID:               c.ID,
			StockItemID:      c.StockItemID,
			Name:             c.Name,
			DailyConsumption: c.DailyConsumption,
			Inconsistent:     stale,
		})
	}
	return &dto.HorseResponse{
		ID:              h.ID,
		Name:            h.Name,
		Owner:           h.Owner,
		ConsumptionList: consumptions,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
}
