package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP del libro de stock.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos de stock
// @Tags         stock
// @Produce      json
// @Param        type     query  string  false  "IN u OUT"
// @Param        item_id  query  string  false  "Filtrar por insumo"
// @Param        from     query  string  false  "Fecha inicial YYYY-MM-DD (inclusiva)"
// @Param        to       query  string  false  "Fecha final YYYY-MM-DD (inclusiva)"
// @Param        page     query  int     false  "Página"  default(1)
// @Param        limit    query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.StockTransactionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/transactions [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	q := dto.StockQuery{
		Type:   c.Query("type"),
		ItemID: c.Query("item_id"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Page:   pageFromQuery(c),
	}
	out, err := h.uc.ListTransactions(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecordIn godoc
// @Summary      Registrar entrada de stock (compra)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "Datos de la entrada"
// @Success      201  {object}  dto.StockTransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/in [post]
func (h *StockHandler) RecordIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.RecordIn(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordOut godoc
// @Summary      Registrar salida de stock (consumo)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "Datos de la salida"
// @Success      201  {object}  dto.StockTransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Saldo insuficiente"
// @Router       /api/stock/out [post]
func (h *StockHandler) RecordOut(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.RecordOut(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar un movimiento de stock
// @Tags         stock
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/transactions/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Balances godoc
// @Summary      Vista de saldos del almacén
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.ItemBalanceResponse
// @Router       /api/stock/balances [get]
func (h *StockHandler) Balances(c *fiber.Ctx) error {
	out, err := h.uc.ListBalances()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Saldo de un insumo
// @Tags         stock
// @Produce      json
// @Param        item_id  path  string  true  "ID del insumo"
// @Success      200  {object}  dto.ItemBalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/balances/{item_id} [get]
func (h *StockHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.GetBalance(c.Params("item_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
