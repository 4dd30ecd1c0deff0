package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/config"
	"github.com/vnkhanh/e-campus-bff/utils"
)

// Paths that never require a credential: login/register, probes, assets.
var publicPaths = []string{
	"/api/auth/login",
	"/api/auth/register",
	"/health",
	"/metrics",
	"/login",
}

var publicPrefixes = []string{
	"/assets/",
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthGate extracts the bearer token from the jwt cookie before any upstream
// call. It is a pure guard: no signature or expiry check happens here (the
// upstream rejects bad tokens), and a missing cookie short-circuits without
// touching the upstream at all.
//
// API paths answer 401 JSON; page paths redirect to the login entry point
// with the original path as the return target.
func AuthGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		token, err := c.Cookie(config.CookieName)
		if err != nil || token == "" {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				c.Abort()
				return
			}
			c.Redirect(http.StatusFound, "/login?from="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}

		c.Set("token", token)

		// Display claims are best-effort: a token the proxy cannot decode is
		// still forwarded and left for the upstream to judge.
		if claims, err := utils.DecodeSession(token); err == nil {
			c.Set("user_id", claims.UserID)
			c.Set("user_name", claims.Name)
			c.Set("role", claims.Role)
		}

		c.Next()
	}
}

// Token returns the bearer token the gate stored for this request.
func Token(c *gin.Context) string {
	return c.GetString("token")
}
