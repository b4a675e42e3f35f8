package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItemDraft entrada para crear o reemplazar un artículo del almacén.
// Cantidades en kilogramos. Type debe ser "Feed" o "Bedding".
type StockItemDraft struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Type          string          `json:"type" validate:"required,oneof=Feed Bedding"`
	AmountInStock decimal.Decimal `json:"amountInStock"`
	PricePerKilo  decimal.Decimal `json:"pricePerKilo"`
}

// StockItemResponse salida de un artículo del almacén.
type StockItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	AmountInStock decimal.Decimal `json:"amountInStock"`
	PricePerKilo  decimal.Decimal `json:"pricePerKilo"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// StockListResponse lista completa de artículos (la UI recarga todo tras
// cada mutación; no hay paginación ni actualizaciones incrementales).
type StockListResponse struct {
	Items []StockItemResponse `json:"items"`
}

// DepletionResponse proyección de agotamiento de un artículo.
// Unbounded=true significa que nadie consume el artículo y nunca se agota;
// en ese caso DaysRemaining se omite.
type DepletionResponse struct {
	StockItemID   string `json:"stockItemId"`
	DaysRemaining *int64 `json:"daysRemaining,omitempty"`
	Unbounded     bool   `json:"unbounded"`
}

// DepletionListResponse proyección de agotamiento de todos los artículos.
type DepletionListResponse struct {
	Items []DepletionResponse `json:"items"`
}
