package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HorseDraft entrada para crear o reemplazar un caballo.
// En la creación la lista de consumos siempre inicia vacía; en el
// reemplazo se acepta la lista completa (documento entero).
type HorseDraft struct {
	Name            string                `json:"name" validate:"required,min=1,max=200"`
	Owner           string                `json:"owner" validate:"required,min=1,max=200"`
	ConsumptionList []ConsumptionResponse `json:"consumptionList"`
}

// AddConsumptionRequest entrada para vincular un consumo a un caballo.
type AddConsumptionRequest struct {
	StockItemID      string          `json:"stockItemId" validate:"required"`
	DailyConsumption decimal.Decimal `json:"dailyConsumption"`
}

// ConsumptionResponse un vínculo de consumo dentro de un caballo.
// Name es la copia del nombre del artículo tomada al crear el vínculo.
// Inconsistent=true señala que StockItemID ya no resuelve a un artículo
// existente (referencia colgante); la fila se reporta, no se descarta.
type ConsumptionResponse struct {
	ID               string          `json:"id"`
	StockItemID      string          `json:"stockItemId"`
	Name             string          `json:"name"`
	DailyConsumption decimal.Decimal `json:"dailyConsumption"`
	Inconsistent     bool            `json:"inconsistent,omitempty"`
}

// HorseResponse salida de un caballo.
type HorseResponse struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Owner           string                `json:"owner"`
	ConsumptionList []ConsumptionResponse `json:"consumptionList"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// HorseListResponse lista completa de caballos.
type HorseListResponse struct {
	Items []HorseResponse `json:"items"`
}
