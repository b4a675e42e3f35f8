package stable

import (
	"context"
	"fmt"

	domstable "github.com/jhoicas/Establo-api/internal/domain/stable"
	"github.com/jhoicas/Establo-api/internal/domain/repository"
)

// ReportUseCase genera el informe PDF del almacén: cada artículo con su
// existencia, precio, consumo diario agregado y proyección de agotamiento.
type ReportUseCase struct {
	stockRepo repository.StockItemRepository
	depletion *DepletionUseCase
	generator StockReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(stockRepo repository.StockItemRepository, depletion *DepletionUseCase, generator StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{stockRepo: stockRepo, depletion: depletion, generator: generator}
}

// StockReport arma las filas del informe y delega en el generador.
func (uc *ReportUseCase) StockReport(ctx context.Context) ([]byte, error) {
	items, err := uc.stockRepo.List()
	if err != nil {
		return nil, fmt.Errorf("informe: listar artículos: %w", err)
	}
	aggregates, err := uc.depletion.aggregateByStockItem()
	if err != nil {
		return nil, fmt.Errorf("informe: agregar consumos: %w", err)
	}
	lines := make([]ReportLine, 0, len(items))
	for _, it := range items {
		line := ReportLine{Item: it, AggregateDaily: aggregates[it.ID]}
		if days, ok := domstable.DaysRemaining(it.AmountInStock, line.AggregateDaily); ok {
			line.DaysRemaining = &days
		}
		lines = append(lines, line)
	}
	pdf, err := uc.generator.GenerateStockReport(ctx, lines)
	if err != nil {
		return nil, fmt.Errorf("informe: generar PDF: %w", err)
	}
	return pdf, nil
}
