package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/auth"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/report"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/usecase"
	"github.com/trungnq-dev/coffee-manager-api/internal/infrastructure/mongodb"
	infrapdf "github.com/trungnq-dev/coffee-manager-api/internal/infrastructure/pdf"
	apphttp "github.com/trungnq-dev/coffee-manager-api/internal/interfaces/http"
	"github.com/trungnq-dev/coffee-manager-api/pkg/config"
	"github.com/trungnq-dev/coffee-manager-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// Missing store location is unrecoverable: fail fast before listening.
	if err := cfg.Mongo.Validate(); err != nil {
		log.Fatal().Err(err).Msg("store configuration")
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := mongodb.Connect(connectCtx, cfg.Mongo)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("MongoDB connection")
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("MongoDB indexes")
	}

	categoryRepo := mongodb.NewCategoryRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	transactionRepo := mongodb.NewTransactionRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	reportGen := infrapdf.NewMarotoReportGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(apphttp.RequestID())
	app.Use(apphttp.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type, Authorization",
	}))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Coffee Manager API",
	}))

	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:    usecase.NewCategoryUseCase(categoryRepo),
		CustomerUC:    usecase.NewCustomerUseCase(customerRepo),
		EmployeeUC:    usecase.NewEmployeeUseCase(employeeRepo),
		ProductUC:     usecase.NewProductUseCase(productRepo),
		TransactionUC: usecase.NewTransactionUseCase(transactionRepo),
		ReportUC:      report.NewReportUseCase(transactionRepo, reportGen),
		AuthUC:        auth.NewAuthUseCase(userRepo),
		StorePing: func(c *fiber.Ctx) error {
			return mongodb.Ping(c.Context(), db)
		},
		Log:       log,
		StaticDir: cfg.Static.Dir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
