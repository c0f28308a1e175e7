package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/session"
)

// RequireSession gates the protected console routes. Presence of a stored
// token is the sole gate; a token already past its exp claim is dropped
// here instead of bouncing off the upstream.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Token() == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session", "redirect": "/signin"})
			return
		}

		if store.Expired() {
			log.Println("[AUTH] stored token expired, signing out")
			if err := store.Clear(); err != nil {
				log.Println("[AUTH] failed to clear session:", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired", "redirect": "/signin"})
			return
		}

		c.Next()
	}
}
