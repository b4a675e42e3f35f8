package stable

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Establo-api/internal/domain/entity"
)

// ReportLine una fila del informe de almacén: el artículo, su consumo
// diario agregado y los días restantes (nil = nadie lo consume).
type ReportLine struct {
	Item           *entity.StockItem
	AggregateDaily decimal.Decimal
	DaysRemaining  *int64
}

// StockReportGenerator genera el documento del informe de almacén.
// La implementación vive en infraestructura (Maroto).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, lines []ReportLine) ([]byte, error)
}
