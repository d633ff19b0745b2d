package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proveedores-api/internal/application/dto"
	"github.com/jhoicas/Proveedores-api/internal/application/usecase"
)

// PurchaseOrderHandler CRUD de órdenes de compra. Cada escritura dispara el recálculo de métricas.
type PurchaseOrderHandler struct {
	uc *usecase.PurchaseOrderUseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *usecase.PurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "Orden de compra"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase_orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        vendor_code  query  string  false  "Filtrar por proveedor"
// @Param        status       query  string  false  "pending | incomplete | complete"
// @Param        limit        query  int     false  "Máx. resultados (default 20, max 100)"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/purchase_orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	var f dto.PurchaseOrderFilter
	if ok, err := parseQuery(c, &f); !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        po  path  string  true  "po_number"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase_orders/{po} [get]
func (h *PurchaseOrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("po"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de compra
// @Description  po_number y vendor_code son inmutables.
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        po    path  string                          true  "po_number"
// @Param        body  body  dto.UpdatePurchaseOrderRequest  true  "Orden de compra"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase_orders/{po} [put]
func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("po"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Acknowledge godoc
// @Summary      Acusar recibo de la orden
// @Description  Fija acknowledgment_date en el instante actual.
// @Tags         purchase-orders
// @Security     Bearer
// @Param        po  path  string  true  "po_number"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase_orders/{po}/acknowledge [post]
func (h *PurchaseOrderHandler) Acknowledge(c *fiber.Ctx) error {
	if err := h.uc.Acknowledge(c.UserContext(), c.Params("po")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Complete godoc
// @Summary      Completar orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        po    path  string                            true   "po_number"
// @Param        body  body  dto.CompletePurchaseOrderRequest  false  "Fecha final y calificación"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase_orders/{po}/complete [post]
func (h *PurchaseOrderHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompletePurchaseOrderRequest
	if len(c.Body()) > 0 {
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
	}
	out, err := h.uc.Complete(c.UserContext(), c.Params("po"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Param        po  path  string  true  "po_number"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase_orders/{po} [delete]
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("po")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
