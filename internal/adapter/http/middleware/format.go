package middleware

import (
	"mime"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	FormatHTML = "html"
	FormatJSON = "json"

	formatKey = "format"
)

// FormatMiddleware decides once per request whether responses are HTML pages
// or JSON. An explicit ?format= wins, then an Accept header asking for JSON
// over HTML, then a JSON request body.
func FormatMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(formatKey, negotiateFormat(c))
		c.Next()
	}
}

func negotiateFormat(c *gin.Context) string {
	switch strings.ToLower(c.Query("format")) {
	case FormatJSON:
		return FormatJSON
	case FormatHTML:
		return FormatHTML
	}

	accept := strings.ToLower(c.GetHeader("Accept"))
	if strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html") {
		return FormatJSON
	}

	if mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type")); err == nil && mediaType == "application/json" {
		return FormatJSON
	}
	return FormatHTML
}

func GetFormat(c *gin.Context) string {
	if format, exists := c.Get(formatKey); exists {
		if s, ok := format.(string); ok {
			return s
		}
	}
	return negotiateFormat(c)
}

func WantsJSON(c *gin.Context) bool {
	return GetFormat(c) == FormatJSON
}
