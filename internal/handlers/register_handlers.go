package handlers

import (
	"time"

	"github.com/SscSPs/slt_feedback_app/cmd/docs"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/SscSPs/slt_feedback_app/internal/middleware"
	"github.com/SscSPs/slt_feedback_app/internal/platform/config"
	"github.com/SscSPs/slt_feedback_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries the optional infrastructure the routes are wrapped with.
// Nil limiters disable rate limiting; a nil Posthog wrapper disables analytics.
type RouteDeps struct {
	LoginLimiter     *limiter.Limiter
	ResetCodeLimiter *limiter.Limiter
	Posthog          *utils.PosthogClientWrapper
	HealthChecks     map[string]HealthCheck
	// Clock drives the once-per-day feedback gate; nil means time.Now.
	Clock func() time.Time
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	r.GET("/health", health(deps.HealthChecks))

	v1 := r.Group("/api/v1")
	registerUserRoutes(v1, cfg, services, deps)
	registerAdminRoutes(v1, services, deps)

	setupSwaggerRoutes(r, cfg)
}

func rateLimited(l *limiter.Limiter) []gin.HandlerFunc {
	if l == nil {
		return nil
	}
	return []gin.HandlerFunc{middleware.RateLimit(l)}
}

// registerUserRoutes registers the public and logged-in account routes under /users.
func registerUserRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, deps RouteDeps) {
	h := newUserHandler(services, cfg)
	fh := newFeedbackHandler(services.Feedback)

	users := rg.Group("/users")
	{
		users.POST("/register", h.register)
		users.POST("/login", append(rateLimited(deps.LoginLimiter), middleware.RequireGuest(), h.login)...)
		users.POST("/refresh-token", h.refreshToken)
		users.GET("/checkTokens", h.checkTokens)
		users.POST("/send-code", append(rateLimited(deps.ResetCodeLimiter), h.sendCode)...)
		users.POST("/reset", h.resetPassword)
	}

	authed := users.Group("",
		middleware.RequireAuth(services.Token, services.User),
		middleware.PosthogMiddleware(deps.Posthog),
	)
	{
		authed.POST("/logout", h.logout)
		authed.GET("/current-user", h.currentUser)
		authed.PUT("/update-profile", h.updateProfile)
		authed.POST("/feedback", middleware.FeedbackGate(services.Feedback, deps.Clock), fh.submitFeedback)
	}
}

// registerAdminRoutes registers the admin panel routes; every route requires the Admin role.
func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, deps RouteDeps) {
	ah := newAdminHandler(services.User)
	dh := newDashboardHandler(services.Reporting)
	fh := newFeedbackHandler(services.Feedback)

	admin := rg.Group("/admin",
		middleware.RequireAdmin(services.Token, services.User),
		middleware.PosthogMiddleware(deps.Posthog),
	)
	{
		admin.POST("/addUser", ah.addUser)
		admin.GET("/getAllUsers", ah.getAllUsers)
		admin.PATCH("/updateUser/:id", ah.updateUser)
		admin.PATCH("/deleteUser/:id", ah.deleteUser)
		admin.GET("/getUserCounts", dh.getUserCounts)
		admin.GET("/getRecentUsers", dh.getRecentUsers)
		admin.GET("/getLast7DaysUsers", dh.getLast7DaysUsers)
		admin.GET("/getLast4WeeksUsers", dh.getLast4WeeksUsers)
		admin.GET("/getAllFeedbacks", fh.listFeedbacks)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
