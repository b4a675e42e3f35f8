// seed puebla la base de datos con un almacén y caballos de ejemplo para
// desarrollo local. Idempotencia no garantizada: pensado para una BD vacía.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Establo-api/internal/domain/entity"
	"github.com/jhoicas/Establo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Establo-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	stockRepo := postgres.NewStockItemRepository(pool)
	horseRepo := postgres.NewHorseRepository(pool)

	now := time.Now()
	hafer := &entity.StockItem{
		ID: uuid.New().String(), Name: "Hafer", Type: entity.StockTypeFeed,
		AmountInStock: decimal.NewFromInt(130), PricePerKilo: decimal.NewFromFloat(0.5),
		CreatedAt: now, UpdatedAt: now,
	}
	heu := &entity.StockItem{
		ID: uuid.New().String(), Name: "Heu", Type: entity.StockTypeFeed,
		AmountInStock: decimal.NewFromInt(400), PricePerKilo: decimal.NewFromFloat(0.35),
		CreatedAt: now, UpdatedAt: now,
	}
	stroh := &entity.StockItem{
		ID: uuid.New().String(), Name: "Stroh", Type: entity.StockTypeBedding,
		AmountInStock: decimal.NewFromInt(250), PricePerKilo: decimal.NewFromFloat(0.2),
		CreatedAt: now, UpdatedAt: now,
	}
	for _, it := range []*entity.StockItem{hafer, heu, stroh} {
		if err := stockRepo.Create(it); err != nil {
			fmt.Fprintf(os.Stderr, "insertar artículo %s: %v\n", it.Name, err)
			os.Exit(1)
		}
	}

	horses := []*entity.Horse{
		{
			ID: uuid.New().String(), Name: "Bella", Owner: "Anna",
			ConsumptionList: []entity.Consumption{
				{ID: uuid.New().String(), StockItemID: hafer.ID, Name: hafer.Name, DailyConsumption: decimal.NewFromInt(5)},
				{ID: uuid.New().String(), StockItemID: heu.ID, Name: heu.Name, DailyConsumption: decimal.NewFromInt(8)},
			},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Hansi", Owner: "Peter Pan",
			ConsumptionList: []entity.Consumption{
				{ID: uuid.New().String(), StockItemID: hafer.ID, Name: hafer.Name, DailyConsumption: decimal.NewFromInt(8)},
				{ID: uuid.New().String(), StockItemID: stroh.ID, Name: stroh.Name, DailyConsumption: decimal.NewFromInt(4)},
			},
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, h := range horses {
		if err := horseRepo.Create(h); err != nil {
			fmt.Fprintf(os.Stderr, "insertar caballo %s: %v\n", h.Name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seed completado: %d artículos, %d caballos\n", 3, len(horses))
}
