package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Pasteleria-api/internal/application/analytics"
	"github.com/jhoicas/Pasteleria-api/internal/application/auth"
	"github.com/jhoicas/Pasteleria-api/internal/application/orders"
	"github.com/jhoicas/Pasteleria-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Pasteleria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Pasteleria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Pasteleria-api/internal/interfaces/http"
	"github.com/jhoicas/Pasteleria-api/pkg/config"
	"github.com/jhoicas/Pasteleria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	supplyRepo := postgres.NewSupplyRepository(pool)
	sheetRepo := postgres.NewSheetRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	supplyUC := usecase.NewSupplyUseCase(supplyRepo)
	sheetUC := usecase.NewSheetUseCase(sheetRepo, supplyRepo)
	productUC := usecase.NewProductUseCase(productRepo, sheetRepo)
	placeOrderUC := orders.NewPlaceOrderUseCase(txRunner, productRepo, sheetRepo, supplyRepo)
	orderUC := orders.NewOrderUseCase(orderRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	// PDF: comprobante de pedido para entregar al cliente
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := orders.NewReceiptUseCase(orderRepo, receiptGenerator, cfg.App.BusinessName)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pastelería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SupplyUC:    supplyUC,
		SheetUC:     sheetUC,
		ProductUC:   productUC,
		PlaceOrder:  placeOrderUC,
		OrderUC:     orderUC,
		ReceiptUC:   receiptUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
