package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

// HealthChecker reports whether the backing store is reachable. *pgxpool.Pool satisfies it.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

func registerHealthRoutes(r *gin.Engine, health HealthChecker) {
	r.GET("/health", getHealth(health))
}

// getHealth godoc
// @Summary Show the status of server.
// @Description Pings the database and reports whether the server can serve requests.
// @Tags root
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 503 {object} dto.APIResponse
// @Router /health [get]
func getHealth(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
			defer cancel()
			if err := health.Ping(ctx); err != nil {
				middleware.GetLoggerFromContext(c).Error("Health check failed", slog.String("error", err.Error()))
				c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "Database unreachable"))
				return
			}
		}
		respondOK(c, http.StatusOK, gin.H{"status": "ok"}, "Server is healthy")
	}
}
