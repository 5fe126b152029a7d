package handlers

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/videotube_backend/cmd/docs"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// routeDeps is what every register*Routes function needs.
type routeDeps struct {
	cfg          *config.Config
	services     *portssvc.ServiceContainer
	auth         gin.HandlerFunc
	optionalAuth gin.HandlerFunc
	upload       gin.HandlerFunc
	limit        gin.HandlerFunc
}

// NewRouter builds the gin engine with global middleware and all application routes,
// injecting dependencies using interfaces.
func NewRouter(
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	users middleware.UserFinder,
	health HealthChecker,
	logger *slog.Logger,
) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.MultipartMemoryBytes
	r.Use(
		middleware.SentryRecovery(),
		middleware.StructuredLoggingMiddleware(logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.BodyLimit(cfg.JSONBodyLimitBytes),
	)

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: %w", cfg.LoginRateLimit, err)
	}

	deps := routeDeps{
		cfg:          cfg,
		services:     services,
		auth:         middleware.AuthMiddleware(services.Token, users),
		optionalAuth: middleware.OptionalAuthMiddleware(services.Token, users),
		upload:       middleware.UploadBodyLimit(cfg.MaxUploadBytes),
		limit:        middleware.RateLimit(loginLimiter),
	}

	registerHealthRoutes(r, health)
	setupAPIV1Routes(r, deps)
	setupSwaggerRoutes(r, cfg)

	return r, nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
// Authentication is applied per route since some endpoints are public.
func setupAPIV1Routes(r *gin.Engine, deps routeDeps) {
	v1 := r.Group("/api/v1")

	registerUserRoutes(v1, deps)
	registerVideoRoutes(v1, deps)
	registerCommentRoutes(v1, deps)
	registerLikeRoutes(v1, deps)
	registerPlaylistRoutes(v1, deps)
	registerSubscriptionRoutes(v1, deps)
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
