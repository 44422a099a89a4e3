package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/application/usecase"
)

// CashHandler maneja las peticiones HTTP del libro de caja.
type CashHandler struct {
	uc *usecase.CashUseCase
}

// NewCashHandler construye el handler.
func NewCashHandler(uc *usecase.CashUseCase) *CashHandler {
	return &CashHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento de caja
// @Tags         cash
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashRequest  true  "Datos del movimiento"
// @Success      201  {object}  dto.CashTransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cash [post]
func (h *CashHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashRequest
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
// @Summary      Corregir movimiento de caja
// @Tags         cash
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del movimiento"
// @Param        body  body  dto.UpdateCashRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.CashTransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash/{id} [put]
func (h *CashHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCashRequest
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
// @Summary      Eliminar movimiento de caja
// @Tags         cash
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash/{id} [delete]
func (h *CashHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar movimientos de caja
// @Tags         cash
// @Produce      json
// @Param        type      query  string  false  "INCOME o EXPENSE"
// @Param        category  query  string  false  "Categoría"
// @Param        from      query  string  false  "Fecha inicial YYYY-MM-DD (inclusiva)"
// @Param        to        query  string  false  "Fecha final YYYY-MM-DD (inclusiva)"
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.CashListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cash [get]
func (h *CashHandler) List(c *fiber.Ctx) error {
	q := dto.CashQuery{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		From:     c.Query("from"),
		To:       c.Query("to"),
		Page:     pageFromQuery(c),
	}
	out, err := h.uc.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
