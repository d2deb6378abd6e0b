package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/auth"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/report"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/usecase"
	"github.com/trungnq-dev/coffee-manager-api/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	CustomerUC    *usecase.CustomerUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	ProductUC     *usecase.ProductUseCase
	TransactionUC *usecase.TransactionUseCase
	ReportUC      *report.ReportUseCase
	AuthUC        *auth.AuthUseCase
	StorePing     StorePinger
	Log           *logger.Logger
	StaticDir     string
}

// Router registers the API routes. Literal segments (/all, /search, /create,
// /category) are registered before the :id parameter routes so they are not
// shadowed.
func Router(app *fiber.App, deps RouterDeps) {
	ops := NewOpsHandler(deps.StorePing)
	app.Get("/healthz", ops.Healthz)
	app.Get("/test", ops.Test)

	api := app.Group("/api")
	api.Get("/ping", ops.Ping)

	// Auth (single-collection login/registration, no tokens)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	categories.Get("/all", categoryHandler.List)
	categories.Get("/search/:keyword", categoryHandler.Search)
	categories.Post("/add", categoryHandler.Create)
	categories.Put("/update/:id", categoryHandler.Update)
	categories.Delete("/delete/:id", categoryHandler.Delete)
	categories.Get("/:id", categoryHandler.GetByID)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	customers.Get("/all", customerHandler.List)
	customers.Post("/add", customerHandler.Create)
	customers.Put("/update/:id", customerHandler.Update)
	customers.Delete("/delete/:id", customerHandler.Delete)

	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Log)
	employees.Get("/all", employeeHandler.List)
	employees.Post("/add", employeeHandler.Create)
	employees.Put("/update/:id", employeeHandler.Update)
	employees.Delete("/delete/:id", employeeHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/all", productHandler.List)
	products.Get("/category/:category", productHandler.ListByCategory)
	products.Post("/create", productHandler.Create)
	products.Put("/update/:id", productHandler.Update)
	products.Delete("/delete/:id", productHandler.Delete)
	products.Get("/:id", productHandler.GetByID)

	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, deps.ReportUC, deps.Log)
	transactions.Post("/add", transactionHandler.Create)
	transactions.Get("/all", transactionHandler.List)
	transactions.Get("/report", transactionHandler.Report)
	transactions.Delete("/:id", transactionHandler.Delete)

	RegisterPages(app, deps.StaticDir)
}
