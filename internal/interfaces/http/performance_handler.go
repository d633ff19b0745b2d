package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proveedores-api/internal/application/dto"
	"github.com/jhoicas/Proveedores-api/internal/application/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PerformanceHandler métricas, historial y scorecard de un proveedor.
type PerformanceHandler struct {
	vendorUC  *usecase.VendorUseCase
	historyUC *usecase.HistoryUseCase
	reportUC  *usecase.ReportUseCase
}

// NewPerformanceHandler construye el handler.
func NewPerformanceHandler(vendorUC *usecase.VendorUseCase, historyUC *usecase.HistoryUseCase, reportUC *usecase.ReportUseCase) *PerformanceHandler {
	return &PerformanceHandler{vendorUC: vendorUC, historyUC: historyUC, reportUC: reportUC}
}

// Get godoc
// @Summary      Métricas de desempeño del proveedor
// @Description  Las cuatro métricas almacenadas, redondeadas a 2 decimales.
// @Tags         performance
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "vendor_code"
// @Success      200  {object}  dto.PerformanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{code}/performance [get]
func (h *PerformanceHandler) Get(c *fiber.Ctx) error {
	out, err := h.vendorUC.Performance(c.UserContext(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Recompute godoc
// @Summary      Recalcular métricas
// @Description  Recalcula las cuatro métricas desde las órdenes; anexa una foto solo si algo cambió.
// @Tags         performance
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "vendor_code"
// @Success      200  {object}  dto.RecomputeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/vendors/{code}/recompute [post]
func (h *PerformanceHandler) Recompute(c *fiber.Ctx) error {
	out, err := h.vendorUC.Recompute(c.UserContext(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Scorecard PDF del proveedor
// @Tags         performance
// @Security     Bearer
// @Produce      application/pdf
// @Param        code  path  string  true  "vendor_code"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{code}/performance/report [get]
func (h *PerformanceHandler) Report(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.reportUC.VendorScorecard(c.UserContext(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// History godoc
// @Summary      Historial de desempeño
// @Description  Fotos de las métricas, más recientes primero. from/to aceptan RFC3339 o YYYY-MM-DD.
// @Tags         performance
// @Security     Bearer
// @Produce      json
// @Param        code    path   string  true   "vendor_code"
// @Param        from    query  string  false  "Desde (inclusive)"
// @Param        to      query  string  false  "Hasta (inclusive)"
// @Param        limit   query  int     false  "Máx. resultados (default 20, max 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.HistoryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{code}/history [get]
func (h *PerformanceHandler) History(c *fiber.Ctx) error {
	var f dto.HistoryFilter
	if ok, err := parseQuery(c, &f.PageRequest); !ok {
		return err
	}
	var err error
	if f.From, err = queryTime(c, "from", false); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	}
	if f.To, err = queryTime(c, "to", true); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	}
	out, err := h.historyUC.List(c.UserContext(), c.Params("code"), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportHistory godoc
// @Summary      Exportar historial a XLSX
// @Description  Mismo rango que el listado del historial; una fila por foto.
// @Tags         performance
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        code  path   string  true   "vendor_code"
// @Param        from  query  string  false  "Desde (inclusive)"
// @Param        to    query  string  false  "Hasta (inclusive)"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{code}/history/export [get]
func (h *PerformanceHandler) ExportHistory(c *fiber.Ctx) error {
	from, err := queryTime(c, "from", false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	}
	to, err := queryTime(c, "to", true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	}
	xlsx, filename, err := h.reportUC.HistoryWorkbook(c.UserContext(), c.Params("code"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(xlsx)
}

// DeleteHistory godoc
// @Summary      Borrar historial (admin)
// @Description  Borrado administrativo de todas las fotos del proveedor. No modifica las métricas.
// @Tags         performance
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "vendor_code"
// @Success      200  {object}  dto.DeleteHistoryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{code}/history [delete]
func (h *PerformanceHandler) DeleteHistory(c *fiber.Ctx) error {
	out, err := h.historyUC.DeleteAll(c.UserContext(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// queryTime lee un parámetro de fecha opcional. Con YYYY-MM-DD y endOfDay, toma el último instante del día.
func queryTime(c *fiber.Ctx, key string, endOfDay bool) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("%s: formato de fecha inválido (use RFC3339 o YYYY-MM-DD)", key)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
