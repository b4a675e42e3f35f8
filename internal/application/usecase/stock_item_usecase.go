package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Establo-api/internal/application/dto"
	"github.com/jhoicas/Establo-api/internal/domain"
	"github.com/jhoicas/Establo-api/internal/domain/entity"
	"github.com/jhoicas/Establo-api/internal/domain/repository"
)

// StockItemUseCase casos de uso CRUD para artículos del almacén.
// No conoce a los caballos: borrar un artículo referenciado está permitido
// y la referencia colgante se señala en la lectura de caballos.
type StockItemUseCase struct {
	repo repository.StockItemRepository
}

// NewStockItemUseCase construye el caso de uso.
func NewStockItemUseCase(repo repository.StockItemRepository) *StockItemUseCase {
	return &StockItemUseCase{repo: repo}
}

// nameFold normaliza un nombre para la comparación de duplicados
// (case folding Unicode: "hafer" y "Hafer" colisionan).
var nameFold = cases.Fold()

func validateStockDraft(in dto.StockItemDraft) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidStockType(in.Type) {
		return domain.ErrInvalidInput
	}
	if in.AmountInStock.LessThan(decimal.Zero) || in.PricePerKilo.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// List devuelve todos los artículos del almacén.
func (uc *StockItemUseCase) List() (*dto.StockListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toStockItemResponse(it))
	}
	return &dto.StockListResponse{Items: items}, nil
}

// Create crea un artículo nuevo. El nombre debe ser único en el almacén.
func (uc *StockItemUseCase) Create(in dto.StockItemDraft) (*dto.StockItemResponse, error) {
	if err := validateStockDraft(in); err != nil {
		return nil, err
	}
	taken, err := uc.nameTaken(in.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Type:          in.Type,
		AmountInStock: in.AmountInStock,
		PricePerKilo:  in.PricePerKilo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// Replace reemplaza el artículo completo (no hay patch por campo).
// Renombrar el artículo NO reescribe los consumos existentes: estos
// conservan la copia del nombre tomada al crear el vínculo.
func (uc *StockItemUseCase) Replace(id string, in dto.StockItemDraft) (*dto.StockItemResponse, error) {
	if err := validateStockDraft(in); err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	taken, err := uc.nameTaken(in.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}
	item := &entity.StockItem{
		ID:            id,
		Name:          in.Name,
		Type:          in.Type,
		AmountInStock: in.AmountInStock,
		PricePerKilo:  in.PricePerKilo,
		CreatedAt:     current.CreatedAt,
		UpdatedAt:     time.Now(),
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// Delete elimina un artículo por ID. Un segundo Delete del mismo ID es
// NotFound, no un no-op.
func (uc *StockItemUseCase) Delete(id string) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// nameTaken verifica si otro artículo (distinto de excludeID) ya usa el
// nombre, con comparación caseless.
func (uc *StockItemUseCase) nameTaken(name, excludeID string) (bool, error) {
	list, err := uc.repo.List()
	if err != nil {
		return false, err
	}
	folded := nameFold.String(name)
	for _, it := range list {
		if it.ID != excludeID && nameFold.String(it.Name) == folded {
			return true, nil
		}
	}
	return false, nil
}

func toStockItemResponse(it *entity.StockItem) *dto.StockItemResponse {
	if it == nil {
		return nil
	}
	return &dto.StockItemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Type:          it.Type,
		AmountInStock: it.AmountInStock,
		PricePerKilo:  it.PricePerKilo,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
