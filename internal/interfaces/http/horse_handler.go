package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Establo-api/internal/application/dto"
	"github.com/jhoicas/Establo-api/internal/application/stable"
	"github.com/jhoicas/Establo-api/internal/application/usecase"
	"github.com/jhoicas/Establo-api/internal/domain"
)

// HorseHandler maneja las peticiones HTTP de caballos y sus consumos.
type HorseHandler struct {
	uc          *usecase.HorseUseCase
	consumption *stable.ConsumptionUseCase
}

// NewHorseHandler construye el handler.
func NewHorseHandler(uc *usecase.HorseUseCase, consumption *stable.ConsumptionUseCase) *HorseHandler {
	return &HorseHandler{uc: uc, consumption: consumption}
}

// List godoc
// @Summary      Listar caballos
// @Tags         horses
// @Produce      json
// @Success      200  {object}  dto.HorseListResponse
// @Router       /api/horses [get]
func (h *HorseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear caballo (lista de consumos vacía)
// @Tags         horses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.HorseDraft  true  "Datos del caballo"
// @Success      201   {object}  dto.HorseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/horses [post]
func (h *HorseHandler) Create(c *fiber.Ctx) error {
	var in dto.HorseDraft
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y owner son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Replace godoc
// @Summary      Reemplazar caballo (documento completo)
// @Tags         horses
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del caballo"
// @Param        body  body  dto.HorseDraft  true  "Datos del caballo"
// @Success      200   {object}  dto.HorseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/horses/{id} [put]
func (h *HorseHandler) Replace(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.HorseDraft
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Replace(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y owner son requeridos; dailyConsumption debe ser mayor que 0"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caballo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar caballo
// @Tags         horses
// @Param        id  path  string  true  "ID del caballo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/horses/{id} [delete]
func (h *HorseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caballo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddConsumption godoc
// @Summary      Vincular un consumo a un caballo
// @Tags         horses
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del caballo"
// @Param        body  body  dto.AddConsumptionRequest  true  "Artículo y tasa diaria"
// @Success      200   {object}  dto.HorseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/horses/{id}/consumption [post]
func (h *HorseHandler) AddConsumption(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AddConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.consumption.Add(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dailyConsumption debe ser mayor que 0"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caballo o artículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoveConsumption godoc
// @Summary      Desvincular un consumo de un caballo
// @Tags         horses
// @Produce      json
// @Param        id            path  string  true  "ID del caballo"
// @Param        assignmentId  path  string  true  "ID del vínculo"
// @Success      200  {object}  dto.HorseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/horses/{id}/consumption/{assignmentId} [delete]
func (h *HorseHandler) RemoveConsumption(c *fiber.Ctx) error {
	out, err := h.consumption.Remove(c.Params("id"), c.Params("assignmentId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caballo o vínculo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
