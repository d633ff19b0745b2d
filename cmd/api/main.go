// @title                       Proveedores API
// @version                     1.0
// @description                 Gestión de proveedores, órdenes de compra y métricas de desempeño.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Token JWT con el prefijo Bearer.
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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/Proveedores-api/docs"
	"github.com/jhoicas/Proveedores-api/internal/application/auth"
	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/application/usecase"
	"github.com/jhoicas/Proveedores-api/internal/infrastructure/excel"
	"github.com/jhoicas/Proveedores-api/internal/infrastructure/lock"
	"github.com/jhoicas/Proveedores-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Proveedores-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Proveedores-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Proveedores-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/Proveedores-api/internal/interfaces/http"
	"github.com/jhoicas/Proveedores-api/pkg/config"
	"github.com/jhoicas/Proveedores-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	historyRepo := postgres.NewHistoricalPerformanceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Candado por proveedor: Redis si hay REDIS_ADDR (varias instancias), si no en memoria.
	var locker performance.VendorLocker
	if cfg.Redis.Enabled() {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		locker = infraredis.NewVendorLocker(client, cfg.Lock.TTL, log.Component("lock"))
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Lock.TTL).Msg("candado distribuido con Redis")
	} else {
		locker = lock.NewKeyedMutex()
		log.Info().Msg("candado en memoria (una sola instancia)")
	}

	collector := metrics.New(cfg.Metrics.Prefix)
	engine := performance.NewEngine(txRunner, locker, performance.NewRecorder(),
		performance.WithObserver(collector),
		performance.WithLogger(log.Component("engine")),
	)
	trigger := performance.NewTrigger(engine, log.Component("trigger"))

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	vendorUC := usecase.NewVendorUseCase(vendorRepo, engine)
	poUC := usecase.NewPurchaseOrderUseCase(orderRepo, vendorRepo, trigger, log.Component("purchase_orders"))
	historyUC := usecase.NewHistoryUseCase(historyRepo, vendorRepo)
	reportUC := usecase.NewReportUseCase(vendorRepo, orderRepo, historyRepo,
		infrapdf.NewMarotoPDFGenerator(), excel.NewHistoryExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(collector.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Proveedores API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", collector.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		VendorUC:        vendorUC,
		PurchaseOrderUC: poUC,
		HistoryUC:       historyUC,
		ReportUC:        reportUC,
		JWTSecret:       cfg.JWT.Secret,
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
