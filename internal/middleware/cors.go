package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which origins may call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
	// Permissive allows localhost and private-subnet origins regardless of
	// the allow list. Never enabled in production.
	Permissive bool
}

// DefaultCORSConfig returns the CORS policy for the given environment.
func DefaultCORSConfig(environment string) CORSConfig {
	if environment == "production" {
		return CORSConfig{
			AllowedOrigins: []string{},
			Permissive:     false,
		}
	}
	return CORSConfig{Permissive: true}
}

// CORS handles cross-origin requests, including preflight.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowed[origin] || (cfg.Permissive && isLocalOrigin(origin))) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func isLocalOrigin(origin string) bool {
	host := origin
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.Index(host, ":"); i >= 0 {
		host = host[:i]
	}
	switch {
	case host == "localhost" || host == "127.0.0.1":
		return true
	case strings.HasPrefix(host, "192.168.") || strings.HasPrefix(host, "10."):
		return true
	}
	return false
}
