package upstream

import (
	"context"
	"net/http"
	"regexp"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/session"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// Login exchanges credentials for a session. The identifier is sent as an
// email or as a bare-digit mobile number depending on its shape. On
// success the token and profile are persisted before returning.
func (c *Client) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	payload := map[string]string{"password": password}
	if emailPattern.MatchString(identifier) {
		payload["email"] = identifier
	} else {
		payload["mobile"] = nonDigits.ReplaceAllString(identifier, "")
	}

	var out models.LoginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "api/user/login", payload, &out); err != nil {
		return nil, fallback(err, "Failed to sign in. Please try again.")
	}

	if !out.Status {
		if out.Message == "OTP not verified." {
			return nil, &OTPError{OTP: out.OTP}
		}
		msg := out.Message
		if msg == "" {
			msg = "Authentication failed"
		}
		return nil, &Error{Kind: KindUpstream, Message: msg}
	}

	if out.User.Token == "" {
		return nil, malformed("login response carried no token")
	}

	if err := c.store.Save(session.Session{Token: out.User.Token, User: out.User}); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Logout drops the stored session. The upstream keeps no server-side
// console session, so this is purely local.
func (c *Client) Logout() error {
	return c.store.Clear()
}
