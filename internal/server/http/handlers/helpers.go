package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bikestores/bikestore/internal/server/http/middleware"
)

// CurrentUserEmail extracts the authenticated email from context.
func CurrentUserEmail(c *gin.Context) string {
	return c.GetString(middleware.UserEmailContextKey)
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
