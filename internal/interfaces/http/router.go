package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Andryxsh/sabor-real-api/internal/application/auth"
	"github.com/Andryxsh/sabor-real-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MusicianUC  *usecase.MusicianUseCase
	EventUC     *usecase.EventUseCase
	PaymentUC   *usecase.PaymentUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	DebtUC      *usecase.DebtUseCase
	DashboardUC *usecase.DashboardUseCase
	StatementUC *usecase.StatementUseCase
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

	// Musicians (protegido)
	musicians := protected.Group("/musicians")
	musicianHandler := NewMusicianHandler(deps.MusicianUC, deps.DebtUC, deps.StatementUC)
	musicians.Post("/", musicianHandler.Create)
	musicians.Get("/", musicianHandler.List)
	musicians.Get("/debtors", musicianHandler.Ranking)
	musicians.Get("/:id", musicianHandler.GetByID)
	musicians.Put("/:id", musicianHandler.Update)
	musicians.Delete("/:id", musicianHandler.Delete)
	musicians.Get("/:id/debt", musicianHandler.GetDebt)
	musicians.Get("/:id/statement", musicianHandler.Statement)

	// Events (protegido)
	events := protected.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.GetByID)
	events.Put("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)
	events.Post("/:id/crew", eventHandler.AssignCrew)
	events.Patch("/:id/attendance", eventHandler.SetAttendance)
	events.Patch("/:id/crew/paid", eventHandler.MarkCrewPaid)
	events.Post("/:id/advance", eventHandler.ApplyAdvance)
	events.Patch("/:id/lock", eventHandler.SetLocked)
	events.Get("/:id/summary", eventHandler.Summary)

	// Payments (protegido)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	// Expenses (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/snapshot", dashboardHandler.GetSnapshot)
}
