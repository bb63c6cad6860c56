package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	appledger "github.com/tu-usuario/almacen-pro/internal/application/ledger"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LocationUC *usecase.LocationUseCase
	ProductUC  *usecase.ProductUseCase
	SeriesUC   *usecase.SeriesUseCase
	ClosureUC  *usecase.ClosureUseCase
	LedgerUC   *appledger.LedgerUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
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

	// Ubicaciones y stock derivado (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	stockHandler := NewStockHandler(deps.LedgerUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Get("/:id/stock", stockHandler.Stock)
	locations.Get("/:id/stock/:sku", stockHandler.Balance)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:sku", productHandler.GetBySKU)
	products.Put("/:sku", productHandler.Update)

	// Series documentales (protegido)
	series := protected.Group("/series")
	seriesHandler := NewSeriesHandler(deps.SeriesUC)
	series.Post("/", seriesHandler.Create)
	series.Get("/", seriesHandler.List)

	// Libro de movimientos (protegido)
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup.Post("/purchases", ledgerHandler.CreatePurchase)
	ledgerGroup.Post("/transfers", ledgerHandler.CreateTransfer)
	ledgerGroup.Post("/b2b-sales", ledgerHandler.CreateB2BSale)
	ledgerGroup.Post("/adjustments", ledgerHandler.CreateAdjust)
	ledgerGroup.Get("/moves", ledgerHandler.ListMoves)
	ledgerGroup.Get("/moves/:id", ledgerHandler.GetMove)
	ledgerGroup.Patch("/moves/:id", ledgerHandler.UpdateMove)
	ledgerGroup.Delete("/moves/:id", ledgerHandler.DeleteMove)

	// Mostrador: POS, web y devoluciones (protegido)
	pos := protected.Group("/pos")
	posHandler := NewPOSHandler(deps.LedgerUC)
	pos.Post("/sales", posHandler.Sale)
	pos.Post("/web-sales", posHandler.WebSale)
	pos.Post("/returns", posHandler.Return)
	pos.Get("/sales/:id/returnable", posHandler.Returnable)

	// Cierre de caja (protegido)
	closures := protected.Group("/closures")
	closureHandler := NewClosureHandler(deps.ClosureUC)
	closures.Get("/daily", closureHandler.Daily)
}
