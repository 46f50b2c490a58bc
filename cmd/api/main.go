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
	"github.com/redis/go-redis/v9"
	"github.com/jhoicas/salon-api/internal/application/auth"
	"github.com/jhoicas/salon-api/internal/application/invite"
	"github.com/jhoicas/salon-api/internal/application/usecase"
	"github.com/jhoicas/salon-api/internal/infrastructure/audit"
	infraemail "github.com/jhoicas/salon-api/internal/infrastructure/email"
	infragoogle "github.com/jhoicas/salon-api/internal/infrastructure/google"
	"github.com/jhoicas/salon-api/internal/infrastructure/postgres"
	"github.com/jhoicas/salon-api/internal/infrastructure/redisotp"
	infrasms "github.com/jhoicas/salon-api/internal/infrastructure/sms"
	httpRouter "github.com/jhoicas/salon-api/internal/interfaces/http"
	"github.com/jhoicas/salon-api/pkg/config"
	"github.com/jhoicas/salon-api/pkg/logger"
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

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	stylistRepo := postgres.NewStylistRepository(pool)
	inviteRepo := postgres.NewInviteRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	otpStore := redisotp.NewStore(redisClient)
	emailSender := infraemail.NewSMTPSender(cfg.SMTP)
	smsSender := infrasms.NewHTTPSender(cfg.SMS)
	googleVerifier := infragoogle.NewVerifier(cfg.Google.ClientID)
	auditRecorder := audit.NewRecorder(log)

	authUC := auth.NewAuthUseCase(
		userRepo, stylistRepo, otpStore, emailSender, smsSender,
		googleVerifier, auditRecorder, txRunner,
		auth.TokenConfig{
			AccessSecret:  cfg.Token.AccessSecret,
			RefreshSecret: cfg.Token.RefreshSecret,
			AccessTTL:     cfg.Token.AccessTTL,
			RefreshTTL:    cfg.Token.RefreshTTL,
			Issuer:        cfg.Token.Issuer,
		},
		auth.OtpTTL{
			Signup: cfg.OTP.SignupTTL,
			Reset:  cfg.OTP.ResetTTL,
		},
	)
	inviteUC := invite.NewInviteUseCase(
		inviteRepo, stylistRepo, userRepo, emailSender, auditRecorder, txRunner,
		cfg.App.FrontendOrigin,
	)
	adminUC := usecase.NewAdminUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)

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
		Title:    "Salon API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		InviteUC:     inviteUC,
		AdminUC:      adminUC,
		CategoryUC:   categoryUC,
		AccessSecret: cfg.Token.AccessSecret,
		RefreshTTL:   cfg.Token.RefreshTTL,
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
