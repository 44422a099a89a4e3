package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/application/usecase"
)

// UtilityHandler maneja las peticiones HTTP de facturas de servicios.
type UtilityHandler struct {
	uc *usecase.UtilityUseCase
}

// NewUtilityHandler construye el handler.
func NewUtilityHandler(uc *usecase.UtilityUseCase) *UtilityHandler {
	return &UtilityHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar factura de servicio
// @Tags         utilities
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUtilityRequest  true  "Datos de la factura"
// @Success      201  {object}  dto.UtilityTransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/utilities [post]
func (h *UtilityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUtilityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Corregir factura de servicio
// @Tags         utilities
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la factura"
// @Param        body  body  dto.UpdateUtilityRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.UtilityTransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/utilities/{id} [put]
func (h *UtilityHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUtilityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar factura de servicio
// @Tags         utilities
// @Param        id  path  string  true  "ID de la factura"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/utilities/{id} [delete]
func (h *UtilityHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar facturas de servicios
// @Tags         utilities
// @Produce      json
// @Param        utility_type  query  string  false  "Tipo de servicio"
// @Param        from          query  string  false  "Fecha inicial YYYY-MM-DD (inclusiva)"
// @Param        to            query  string  false  "Fecha final YYYY-MM-DD (inclusiva)"
// @Success      200  {object}  dto.UtilityListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/utilities [get]
func (h *UtilityHandler) List(c *fiber.Ctx) error {
	q := dto.UtilityQuery{
		UtilityType: c.Query("utility_type"),
		From:        c.Query("from"),
		To:          c.Query("to"),
	}
	out, err := h.uc.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
