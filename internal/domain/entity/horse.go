package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consumption vincula un caballo con un artículo del almacén y su consumo
// diario en kilogramos. StockItemID es una referencia débil: no impide que
// el artículo sea borrado. Name es una copia del nombre del artículo tomada
// al momento de crear el vínculo (caché de visualización; no se actualiza
// si el artículo cambia de nombre).
type Consumption struct {
	ID               string          `json:"id"`
	StockItemID      string          `json:"stockItemId"`
	Name             string          `json:"name"`
	DailyConsumption decimal.Decimal `json:"dailyConsumption"`
}

// Horse representa un caballo del establo con su lista de consumos.
// La lista pertenece exclusivamente al caballo; borrar el caballo la borra.
type Horse struct {
	ID              string
	Name            string
	Owner           string
	ConsumptionList []Consumption
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FindConsumption devuelve el índice del consumo con el ID dado, o -1.
// La búsqueda es por identidad del vínculo, nunca por valor: dos consumos
// con el mismo nombre y la misma tasa siguen siendo distintos.
func (h *Horse) FindConsumption(assignmentID string) int {
	for i, c := range h.ConsumptionList {
		if c.ID == assignmentID {
			return i
		}
	}
	return -1
}
