package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proveedores-api/internal/application/auth"
	"github.com/jhoicas/Proveedores-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	VendorUC        *usecase.VendorUseCase
	PurchaseOrderUC *usecase.PurchaseOrderUseCase
	HistoryUC       *usecase.HistoryUseCase
	ReportUC        *usecase.ReportUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token). Lectura: cualquier rol; escritura: admin o comprador.
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))
	writer := RequireRole(WriterRoles...)
	admin := RequireRole(AdminRoles...)

	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Get("/", vendorHandler.List)
	vendors.Post("/", writer, vendorHandler.Create)
	vendors.Get("/:code", vendorHandler.Get)
	vendors.Put("/:code", writer, vendorHandler.Update)
	vendors.Delete("/:code", writer, vendorHandler.Delete)

	perfHandler := NewPerformanceHandler(deps.VendorUC, deps.HistoryUC, deps.ReportUC)
	vendors.Get("/:code/performance", perfHandler.Get)
	vendors.Get("/:code/performance/report", perfHandler.Report)
	vendors.Post("/:code/recompute", writer, perfHandler.Recompute)
	vendors.Get("/:code/history", perfHandler.History)
	vendors.Get("/:code/history/export", perfHandler.ExportHistory)
	vendors.Delete("/:code/history", admin, perfHandler.DeleteHistory)

	orders := protected.Group("/purchase_orders")
	poHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	orders.Get("/", poHandler.List)
	orders.Post("/", writer, poHandler.Create)
	orders.Get("/:po", poHandler.Get)
	orders.Put("/:po", writer, poHandler.Update)
	orders.Delete("/:po", writer, poHandler.Delete)
	orders.Post("/:po/acknowledge", writer, poHandler.Acknowledge)
	orders.Post("/:po/complete", writer, poHandler.Complete)
}
