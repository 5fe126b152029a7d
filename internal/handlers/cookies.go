package handlers

import (
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// setSessionCookies writes both tokens as http-only cookies. No Max-Age is sent: the
// embedded token expiry is the real bound.
func setSessionCookies(c *gin.Context, pair domain.TokenPair, secure bool) {
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken, 0, "/", "", secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, pair.RefreshToken, 0, "/", "", secure, true)
}

func clearSessionCookies(c *gin.Context, secure bool) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", secure, true)
}
