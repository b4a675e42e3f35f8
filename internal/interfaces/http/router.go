package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Establo-api/internal/application/stable"
	"github.com/jhoicas/Establo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC       *usecase.StockItemUseCase
	HorseUC       *usecase.HorseUseCase
	ConsumptionUC *stable.ConsumptionUseCase
	DepletionUC   *stable.DepletionUseCase
	ReportUC      *stable.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Almacén (artículos, proyecciones e informe)
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.DepletionUC, deps.ReportUC)
	stock.Get("/", stockHandler.List)
	stock.Post("/", stockHandler.Create)
	stock.Get("/depletion", stockHandler.ProjectAll)
	stock.Get("/report", stockHandler.Report)
	stock.Put("/:id", stockHandler.Replace)
	stock.Delete("/:id", stockHandler.Delete)
	stock.Get("/:id/depletion", stockHandler.Project)

	// Caballos (CRUD y vínculos de consumo)
	horses := api.Group("/horses")
	horseHandler := NewHorseHandler(deps.HorseUC, deps.ConsumptionUC)
	horses.Get("/", horseHandler.List)
	horses.Post("/", horseHandler.Create)
	horses.Put("/:id", horseHandler.Replace)
	horses.Delete("/:id", horseHandler.Delete)
	horses.Post("/:id/consumption", horseHandler.AddConsumption)
	horses.Delete("/:id/consumption/:assignmentId", horseHandler.RemoveConsumption)
}
