package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/upstream"
)

type SignInRequest struct {
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// SignIn forwards credentials to the upstream login route. On success the
// session is already persisted by the client; the profile comes back so
// the caller can route to the dashboard.
func SignIn(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "signin")

		var req SignInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		identifier := strings.TrimSpace(req.Email)
		if identifier == "" {
			identifier = strings.TrimSpace(req.Mobile)
		}
		if identifier == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email or mobile and password are required"})
			return
		}

		user, err := client.Login(c.Request.Context(), identifier, req.Password)
		if err != nil {
			var otpErr *upstream.OTPError
			if errors.As(err, &otpErr) {
				c.JSON(http.StatusForbidden, gin.H{
					"status":  false,
					"message": fmt.Sprintf("OTP not verified. Please verify using OTP: %s", otpErr.OTP),
				})
				return
			}
			respondWithError(c, http.StatusUnauthorized, "signin", err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": true, "user": user})
	}
}

func SignOut(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "signout")

		if err := client.Logout(); err != nil {
			respondWithError(c, http.StatusInternalServerError, "signout", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true})
	}
}
