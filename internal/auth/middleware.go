package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeyUsername holds the authenticated user name.
const ContextKeyUsername = "auth_username"

// BasicAuth returns a Gin middleware that checks HTTP Basic credentials
// against the stored login row. Paths in publicPaths skip the check.
func BasicAuth(a *Authenticator, publicPaths ...string) gin.HandlerFunc {
	public := make(map[string]bool, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = true
	}

	return func(c *gin.Context) {
		if public[c.Request.URL.Path] {
			c.Next()
			return
		}

		username, password, ok := c.Request.BasicAuth()
		if !ok {
			unauthorized(c)
			return
		}

		if err := a.LoginAs(c.Request.Context(), username, password); err != nil {
			if IsInvalidPassword(err) {
				unauthorized(c)
				return
			}
			a.log.Error().Err(err).Msg("Credential lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(ContextKeyUsername, username)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="library"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
}
