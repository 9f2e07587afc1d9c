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

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/billing"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/catalog"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/repository"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/infrastructure/memory"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/infrastructure/postgres"
	infraredis "github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/infrastructure/redis"
	httpRouter "github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/interfaces/http"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/pkg/config"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Borradores: Redis si está configurado; si no, memoria del proceso.
	var draftRepo repository.DraftRepository
	if cfg.Redis.Addr != "" {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		draftRepo = infraredis.NewDraftStore(rdb, cfg.Drafts.TTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("borradores en Redis")
	} else {
		draftRepo = memory.NewDraftStore(cfg.Drafts.TTL)
		log.Warn().Msg("REDIS_ADDR vacío: borradores en memoria del proceso")
	}

	catalogSvc := catalog.NewService(productRepo, cfg.Catalog.TTL)
	draftUC := billing.NewDraftUseCase(draftRepo, companyRepo, customerRepo, catalogSvc, txRunner, log)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "Vyapar Billing API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger no disponible")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:   catalogSvc,
		DraftUC:   draftUC,
		InvoiceUC: invoiceUC,
		JWTSecret: cfg.JWT.Secret,
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
