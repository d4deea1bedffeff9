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

	"github.com/Andryxsh/sabor-real-api/internal/application/auth"
	"github.com/Andryxsh/sabor-real-api/internal/application/usecase"
	infrapdf "github.com/Andryxsh/sabor-real-api/internal/infrastructure/pdf"
	"github.com/Andryxsh/sabor-real-api/internal/infrastructure/postgres"
	httpRouter "github.com/Andryxsh/sabor-real-api/internal/interfaces/http"
	"github.com/Andryxsh/sabor-real-api/internal/state"
	"github.com/Andryxsh/sabor-real-api/pkg/config"
	"github.com/Andryxsh/sabor-real-api/pkg/logger"
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparación del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	musicianRepo := postgres.NewMusicianRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)

	// Contenedor de estado: el listener entrega snapshots completos de cada
	// colección y el store los reemplaza enteros. La suscripción se cancela al
	// apagar, desde esta raíz de composición.
	listener := postgres.NewListener(pool, log)
	if err := listener.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("arranque del listener de cambios")
	}
	defer listener.Stop()

	store := state.New()
	unbind, err := store.Bind(listener)
	if err != nil {
		log.Fatal().Err(err).Msg("suscripción del store al listener")
	}
	defer unbind()

	musicianUC := usecase.NewMusicianUseCase(musicianRepo)
	eventUC := usecase.NewEventUseCase(eventRepo, musicianRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, musicianRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	debtUC := usecase.NewDebtUseCase(store)
	dashboardUC := usecase.NewDashboardUseCase(store)

	// PDF: estado de cuenta de músicos
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	statementUC := usecase.NewStatementUseCase(musicianRepo, store, pdfGenerator)

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
		Title:    "Sabor Real API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MusicianUC:  musicianUC,
		EventUC:     eventUC,
		PaymentUC:   paymentUC,
		ExpenseUC:   expenseUC,
		DebtUC:      debtUC,
		DashboardUC: dashboardUC,
		StatementUC: statementUC,
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
