package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de artículo de almacén (enumeración cerrada).
const (
	StockTypeFeed    = "Feed"    // alimento
	StockTypeBedding = "Bedding" // cama/lecho
)

// ValidStockType verifica que el tipo pertenezca a la enumeración.
func ValidStockType(t string) bool {
	return t == StockTypeFeed || t == StockTypeBedding
}

// StockItem representa un artículo del almacén del establo (alimento o cama).
// AmountInStock y PricePerKilo son decimales no negativos; las cantidades
// están en kilogramos.
type StockItem struct {
	ID            string
	Name          string
	Type          string // Feed | Bedding
	AmountInStock decimal.Decimal
	PricePerKilo  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
