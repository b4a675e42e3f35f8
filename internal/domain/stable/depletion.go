package stable

import "github.com/shopspring/decimal"

// DaysRemaining implementa la proyección de agotamiento (servicio de dominio).
// Días = round(AmountInStock / consumoDiarioAgregado), redondeo al entero
// más cercano. Con agregado cero (ningún consumidor) el artículo nunca se
// agota: se devuelve ok=false en lugar de propagar una división por cero,
// porque cero consumidores es un estado válido y frecuente.
func DaysRemaining(amountInStock, aggregateDaily decimal.Decimal) (days int64, ok bool) {
	if aggregateDaily.LessThanOrEqual(decimal.Zero) {
		return 0, false
	}
	return amountInStock.DivRound(aggregateDaily, 0).IntPart(), true
}
