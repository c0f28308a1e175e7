package upstream

import "errors"

type Kind int

const (
	// KindTransport covers failures before any response arrived.
	KindTransport Kind = iota
	// KindUpstream is a non-2xx answer that is not a session signal.
	KindUpstream
	// KindSessionInvalid means the stored token was rejected; the session
	// store has already been cleared when this is returned.
	KindSessionInvalid
	// KindMalformed is a 2xx payload that does not match its contract.
	KindMalformed
)

type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// The upstream signals an invalidated session through a fixed set of
// message strings rather than a status code; any of these, on any route,
// means the token must be dropped.
var sessionInvalidMessages = map[string]bool{
	"Not authorized, token failed":                                true,
	"Session expired or logged in on another device":              true,
	"Un-Authorized, You are not authorized to access this route.": true,
	"Admin has disabled your account. Please contact admin.":      true,
}

func IsSessionInvalid(err error) bool {
	var uerr *Error
	return errors.As(err, &uerr) && uerr.Kind == KindSessionInvalid
}

func IsMalformed(err error) bool {
	var uerr *Error
	return errors.As(err, &uerr) && uerr.Kind == KindMalformed
}

func malformed(msg string) *Error {
	return &Error{Kind: KindMalformed, Message: msg}
}

// fallback fills in a route-specific message when the upstream gave none.
// Session and contract errors keep their own wording.
func fallback(err error, msg string) error {
	var uerr *Error
	if errors.As(err, &uerr) && uerr.Kind == KindUpstream && uerr.Message == "" {
		uerr.Message = msg
	}
	return err
}

// OTPError is the sign-in response for an account that has not completed
// OTP verification; the upstream hands back the pending code.
type OTPError struct {
	OTP string
}

func (e *OTPError) Error() string { return "OTP not verified." }
