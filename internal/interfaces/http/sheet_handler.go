package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pasteleria-api/internal/application/dto"
	"github.com/jhoicas/Pasteleria-api/internal/application/usecase"
	"github.com/jhoicas/Pasteleria-api/internal/domain"
)

// SheetHandler maneja las peticiones HTTP para fichas técnicas (protegido).
type SheetHandler struct {
	uc *usecase.SheetUseCase
}

// NewSheetHandler construye el handler.
func NewSheetHandler(uc *usecase.SheetUseCase) *SheetHandler {
	return &SheetHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ficha técnica
// @Tags         sheets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSheetRequest  true  "Datos de la ficha"
// @Success      201   {object}  dto.SheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sheets [post]
func (h *SheetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, kind (base|final) y componentes válidos son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener ficha técnica por ID
// @Tags         sheets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la ficha"
// @Success      200  {object}  dto.SheetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sheets/{id} [get]
func (h *SheetHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ficha no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar fichas técnicas
// @Tags         sheets
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre"
// @Param        all     query  bool    false  "Incluir archivadas"
// @Success      200     {object}  dto.SheetListResponse
// @Router       /api/sheets [get]
func (h *SheetHandler) List(c *fiber.Ctx) error {
	onlyActive := !c.QueryBool("all", false)
	out, err := h.uc.List(onlyActive, c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ficha técnica
// @Tags         sheets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la ficha"
// @Param        body  body  dto.UpdateSheetRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sheets/{id} [put]
func (h *SheetHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valores inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ficha no encontrada"})
	}
	return c.JSON(out)
}

// CostPreview godoc
// @Summary      Calcular costo y precio sugerido sin guardar
// @Tags         sheets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SheetCostPreviewRequest  true  "Componentes y margen"
// @Success      200   {object}  dto.SheetCostPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sheets/cost-preview [post]
func (h *SheetHandler) CostPreview(c *fiber.Ctx) error {
	var in dto.SheetCostPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CostPreview(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "componentes inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Archive godoc
// @Summary      Archivar ficha técnica (borrado lógico)
// @Tags         sheets
// @Security     Bearer
// @Param        id  path  string  true  "ID de la ficha"
// @Success      204
// @Router       /api/sheets/{id} [delete]
func (h *SheetHandler) Archive(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Archive(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reactivate godoc
// @Summary      Reactivar ficha archivada
// @Tags         sheets
// @Security     Bearer
// @Param        id  path  string  true  "ID de la ficha"
// @Success      204
// @Router       /api/sheets/{id}/reactivate [post]
func (h *SheetHandler) Reactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Reactivate(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
