package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header is read from the client when present and always set on the response.
const Header = "X-Request-ID"

// ctxKey is the Gin context key used to store the request ID.
const ctxKey = "request_id"

// maxLen bounds client supplied IDs so they cannot bloat log lines.
const maxLen = 128

// Middleware assigns every request an ID, reusing the client's X-Request-ID
// when it is present and reasonably sized, otherwise generating a UUID.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" || len(id) > maxLen {
			id = uuid.New().String()
		}
		c.Set(ctxKey, id)
		c.Header(Header, id)
		c.Next()
	}
}

// Get returns the request ID from the request context, or "" when the
// middleware did not run.
func Get(c *gin.Context) string {
	v, _ := c.Get(ctxKey)
	s, _ := v.(string)
	return s
}
