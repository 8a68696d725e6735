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
	"github.com/google/uuid"

	"github.com/jhoicas/community-api/internal/application/auth"
	"github.com/jhoicas/community-api/internal/application/usecase"
	"github.com/jhoicas/community-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/community-api/internal/interfaces/http"
	"github.com/jhoicas/community-api/pkg/config"
	"github.com/jhoicas/community-api/pkg/logger"
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

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

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

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	communityRepo := postgres.NewCommunityRepository(pool)
	memberRepo := postgres.NewMemberRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	roleUC := usecase.NewRoleUseCase(roleRepo)
	communityUC := usecase.NewCommunityUseCase(communityRepo, memberRepo, roleRepo, txRunner)
	memberUC := usecase.NewMemberUseCase(communityRepo, memberRepo, roleRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Sembrar el catálogo de roles antes de aceptar tráfico (idempotente).
	if err := roleUC.SeedDefaults(); err != nil {
		log.Fatal().Err(err).Msg("sembrar roles por defecto")
	}
	log.Info().Msg("catálogo de roles verificado")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New(recover.Config{
		// Stack trace solo fuera de producción
		EnableStackTrace: cfg.App.Env != "production",
	}))
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Community API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  true,
			"message": "Community Management API is running",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"auth":      "/v1/auth",
				"community": "/v1/community",
				"member":    "/v1/member",
				"role":      "/v1/role",
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CommunityUC: communityUC,
		MemberUC:    memberUC,
		RoleUC:      roleUC,
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
