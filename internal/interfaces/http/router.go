package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pasteleria-api/internal/application/analytics"
	"github.com/jhoicas/Pasteleria-api/internal/application/auth"
	"github.com/jhoicas/Pasteleria-api/internal/application/orders"
	"github.com/jhoicas/Pasteleria-api/internal/application/usecase"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SupplyUC    *usecase.SupplyUseCase
	SheetUC     *usecase.SheetUseCase
	ProductUC   *usecase.ProductUseCase
	PlaceOrder  *orders.PlaceOrderUseCase
	OrderUC     *orders.OrderUseCase
	ReceiptUC   *orders.ReceiptUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Archivar, reactivar e importar en lote son solo para administradores.
	adminOnly := RequireRole(entity.RoleAdmin)

	// Supplies (protegido)
	supplies := protected.Group("/supplies")
	supplyHandler := NewSupplyHandler(deps.SupplyUC)
	supplies.Post("/", supplyHandler.Create)
	supplies.Post("/batch", adminOnly, supplyHandler.CreateBatch)
	supplies.Get("/", supplyHandler.List)
	supplies.Get("/report/low-stock", supplyHandler.LowStockReport)
	supplies.Get("/:id", supplyHandler.GetByID)
	supplies.Put("/:id", supplyHandler.Update)
	supplies.Delete("/:id", adminOnly, supplyHandler.Archive)
	supplies.Post("/:id/reactivate", adminOnly, supplyHandler.Reactivate)

	// Technical sheets (protegido)
	sheets := protected.Group("/sheets")
	sheetHandler := NewSheetHandler(deps.SheetUC)
	sheets.Post("/", sheetHandler.Create)
	sheets.Post("/cost-preview", sheetHandler.CostPreview)
	sheets.Get("/", sheetHandler.List)
	sheets.Get("/:id", sheetHandler.GetByID)
	sheets.Put("/:id", sheetHandler.Update)
	sheets.Delete("/:id", adminOnly, sheetHandler.Archive)
	sheets.Post("/:id/reactivate", adminOnly, sheetHandler.Reactivate)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Archive)
	products.Post("/:id/reactivate", adminOnly, productHandler.Reactivate)

	// Orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.PlaceOrder, deps.OrderUC, deps.ReceiptUC)
	ordersGroup.Post("/", orderHandler.Place)
	ordersGroup.Post("/check", orderHandler.CheckAvailability)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.UpdateItems)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Get("/:id/receipt", orderHandler.Receipt)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
