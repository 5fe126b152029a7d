package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const rawBodyKey = "middleware.rawBody"

// BodyLimit caps every request body at maxBytes whatever Content-Type the client declares.
// Upload routes raise their own ceiling with UploadBodyLimit.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil && c.Request.Body != http.NoBody {
			c.Set(rawBodyKey, c.Request.Body)
			if maxBytes > 0 {
				c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
			}
		}
		c.Next()
	}
}

// UploadBodyLimit replaces the default cap set by BodyLimit with maxBytes for the whole
// multipart request, file parts included.
func UploadBodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := c.Request.Body
		if raw, ok := c.Get(rawBodyKey); ok {
			if rc, ok := raw.(io.ReadCloser); ok {
				body = rc
			}
		}
		if body != nil && body != http.NoBody {
			if maxBytes > 0 {
				body = http.MaxBytesReader(c.Writer, body, maxBytes)
			}
			c.Request.Body = body
		}
		c.Next()
	}
}
