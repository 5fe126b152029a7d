package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// SentryRecovery recovers from panics, reports them to Sentry with request details and
// answers with the 500 envelope.
func SentryRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				sentry.WithScope(func(scope *sentry.Scope) {
					scope.SetRequest(c.Request)
					scope.SetTag("path", c.FullPath())
					scope.SetExtra("stack", string(debug.Stack()))
					if userID, ok := GetUserIDFromContext(c); ok {
						scope.SetUser(sentry.User{ID: userID})
					}
					sentry.CurrentHub().Recover(r)
				})
				GetLoggerFromCtx(c.Request.Context()).Error("Recovered from panic", slog.String("panic", fmt.Sprint(r)))
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
			}
		}()
		c.Next()
	}
}
