package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SizeLimit caps the request body at maxBodyBytes. Oversized submissions get
// an http.MaxBytesError, which surfaces as 413 request entity too large.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
