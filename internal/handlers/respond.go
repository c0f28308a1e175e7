package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/upstream"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondUpstream maps a transport-layer failure onto the console
// response. An invalidated session always wins: the store is already
// cleared, so the client gets a 401 with the sign-in redirect hint.
func respondUpstream(c *gin.Context, route string, err error) {
	var uerr *upstream.Error
	if errors.As(err, &uerr) {
		switch uerr.Kind {
		case upstream.KindSessionInvalid:
			log.Printf("[%s] session invalidated: %s", route, uerr.Message)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": uerr.Message, "redirect": "/signin"})
		case upstream.KindMalformed:
			respondWithError(c, http.StatusBadGateway, route, uerr.Message)
		case upstream.KindTransport:
			respondWithError(c, http.StatusBadGateway, route, uerr.Message)
		default:
			status := uerr.StatusCode
			if status < 400 || status > 599 {
				status = http.StatusBadGateway
			}
			respondWithError(c, status, route, uerr.Message)
		}
		return
	}
	respondWithError(c, http.StatusInternalServerError, route, err.Error())
}
