package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/spaceatlas/atlas-backend/internal/config"
	"github.com/spaceatlas/atlas-backend/internal/handler"
	"github.com/spaceatlas/atlas-backend/internal/middleware"
	"github.com/spaceatlas/atlas-backend/internal/response"
	"github.com/spaceatlas/atlas-backend/internal/service"
)

// Version is reported by the health route.
const Version = "2.0.0"

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth *handler.AuthHandler
	Body *handler.BodyHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// loginLimiter guards the auth routes; callers pick the Redis-backed or
// in-memory implementation depending on configuration.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
	loginLimiter gin.HandlerFunc,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger())

	// Unexpected failures render as a generic 500 with no internal detail.
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		response.AbortFail(c, http.StatusInternalServerError, "Internal server error")
	}))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID on every response for log correlation.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Space Atlas API is running",
			"version": Version,
		})
	})

	// ─── Auth (public, rate limited) ───────────────────────────────────
	auth := router.Group("/api/auth")
	auth.Use(loginLimiter)
	{
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── Celestial bodies ──────────────────────────────────────────────
	// Mutating routes run the fixed pipeline:
	// validate → authenticate → authorize → handler.
	// Delete skips validation and goes straight to auth.
	bodies := router.Group("/api/bodies")
	{
		bodies.GET("", handlers.Body.List)
		bodies.GET("/:id", handlers.Body.Get)

		bodies.POST("",
			middleware.ValidateCreateBody(),
			middleware.RequireJWT(authService),
			middleware.RequireRole(service.RoleAdmin),
			handlers.Body.Create,
		)
		bodies.PUT("/:id",
			middleware.ValidateUpdateBody(),
			middleware.RequireJWT(authService),
			middleware.RequireRole(service.RoleAdmin),
			handlers.Body.Update,
		)
		bodies.DELETE("/:id",
			middleware.RequireJWT(authService),
			middleware.RequireRole(service.RoleAdmin),
			handlers.Body.Delete,
		)
	}

	// 404 catch-all in the uniform envelope.
	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "Route not found")
	})

	return router
}
