package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	coreservices "github.com/SscSPs/slt_feedback_app/internal/core/services"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/handlers"
	"github.com/SscSPs/slt_feedback_app/internal/middleware"
	"github.com/SscSPs/slt_feedback_app/internal/platform/config"
	"github.com/SscSPs/slt_feedback_app/internal/platform/mail"
	"github.com/SscSPs/slt_feedback_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/slt_feedback_app/internal/utils"
	"github.com/SscSPs/slt_feedback_app/pkg/cache"
	"github.com/SscSPs/slt_feedback_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
)

const shutdownTimeout = 10 * time.Second

// @title SLT Feedback API
// @version 1.0
// @description User accounts, sessions, daily feedback and the admin dashboard.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to initialize redis client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		logger.Info("Rate limits backed by redis.")
	}

	mailer, closeMailer, err := newMailer(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize mailer", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeMailer()

	svc := coreservices.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), mailer)
	seedAdmin(ctx, cfg, svc, logger)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	deps := handlers.RouteDeps{
		Posthog:      posthogClient,
		HealthChecks: map[string]handlers.HealthCheck{"postgres": dbPool.Ping},
	}
	if redisClient != nil {
		deps.HealthChecks["redis"] = cache.PingCheck(redisClient)
	}
	if deps.LoginLimiter, err = newLimiter(redisClient, "login", cfg.LoginRateLimit); err != nil {
		logger.Error("Failed to initialize login rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if deps.ResetCodeLimiter, err = newLimiter(redisClient, "send_code", cfg.ResetCodeRateLimit); err != nil {
		logger.Error("Failed to initialize reset code rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.Recovery(),
		cors.New(corsConfig(cfg)),
		middleware.ErrorHandler(),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Route not found", nil))
	})

	handlers.RegisterRoutes(r, cfg, svc, deps)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = []string{cfg.ClientURL}
	c.AllowCredentials = true
	c.AddAllowHeaders("Authorization")
	return c
}

// newMailer picks the outbound mail transport. The returned func releases broker resources.
func newMailer(cfg *config.Config, logger *slog.Logger) (services.Mailer, func(), error) {
	if cfg.Mail.Transport != config.MailTransportAMQP {
		logger.Info("Sending mail over SMTP", slog.String("host", cfg.Mail.SMTPHost))
		return mail.NewSMTPMailer(cfg.Mail, logger), func() {}, nil
	}

	mailer, err := mail.NewQueueMailer(mail.AMQPDialer(cfg.Mail.AMQPURL), cfg.Mail.Queue)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Publishing mail to queue", slog.String("queue", cfg.Mail.Queue))
	return mailer, func() { _ = mailer.Close() }, nil
}

func newLimiter(client *redis.Client, name, rate string) (*limiter.Limiter, error) {
	store, err := middleware.NewLimiterStore(client, "slt_rl_"+name)
	if err != nil {
		return nil, err
	}
	return middleware.NewRateLimiter(rate, store)
}

// seedAdmin ensures the configured admin account exists. Failures are logged, not fatal.
func seedAdmin(ctx context.Context, cfg *config.Config, svc *services.ServiceContainer, logger *slog.Logger) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}
	admin, err := svc.User.EnsureAdmin(ctx, dto.RegisterUserRequest{
		FullName: cfg.AdminFullName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		logger.Error("Failed to seed admin user", slog.String("error", err.Error()))
		return
	}
	logger.Info("Admin user ready", slog.String("user_id", admin.UserID))
}
