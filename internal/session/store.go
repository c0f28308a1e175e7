package session

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
)

// Session is the authenticated client context. A non-empty token is the
// sole gate for protected console routes.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store keeps the session in memory and mirrors it to a JSON file so a
// restarted console picks up the signed-in state.
type Store struct {
	mu   sync.Mutex
	path string
	cur  Session
}

func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &s.cur); err != nil {
		// A corrupt session file is treated as signed out.
		log.Printf("[SESSION] discarding unreadable session file %s: %v", path, err)
		s.cur = Session{}
	}
	return s, nil
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Token
}

func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *Store) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return err
	}
	s.cur = sess
	return nil
}

// Clear signs the console out. Removing an already-absent file is fine.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = Session{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Expired reports whether the stored token carries an exp claim in the
// past. The token is opaque to the console, so a non-JWT token or one
// without exp is assumed live and left for the upstream to reject.
func (s *Store) Expired() bool {
	token := s.Token()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
