package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestSaveAndReopen(t *testing.T) {
	path := tempPath(t)

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if store.Token() != "" {
		t.Fatalf("expected fresh store to be signed out, got token %q", store.Token())
	}

	sess := Session{Token: "abc", User: models.User{ID: "u1", FullName: "Asha Verma"}}
	if err := store.Save(sess); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Token() != "abc" {
		t.Fatalf("expected token to survive a restart, got %q", reopened.Token())
	}
	if got := reopened.Current().User.FullName; got != "Asha Verma" {
		t.Fatalf("expected user to survive a restart, got %q", got)
	}
}

func TestClearRemovesFile(t *testing.T) {
	path := tempPath(t)

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(Session{Token: "abc"}); err != nil {
		t.Fatal(err)
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if store.Token() != "" {
		t.Fatalf("expected cleared store to be signed out, got %q", store.Token())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected session file to be removed, stat err = %v", err)
	}

	// Clearing twice must not fail on the missing file.
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
}

func TestCorruptFileIsSignedOut(t *testing.T) {
	path := tempPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if store.Token() != "" {
		t.Fatalf("expected corrupt file to read as signed out, got %q", store.Token())
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"_id": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestExpired(t *testing.T) {
	path := tempPath(t)
	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if store.Expired() {
		t.Fatal("signed-out store must not report expired")
	}

	if err := store.Save(Session{Token: signedToken(t, time.Now().Add(time.Hour))}); err != nil {
		t.Fatal(err)
	}
	if store.Expired() {
		t.Fatal("token with a future exp must not report expired")
	}

	if err := store.Save(Session{Token: signedToken(t, time.Now().Add(-time.Hour))}); err != nil {
		t.Fatal(err)
	}
	if !store.Expired() {
		t.Fatal("token with a past exp must report expired")
	}

	// Opaque tokens are left for the upstream to reject.
	if err := store.Save(Session{Token: "not-a-jwt"}); err != nil {
		t.Fatal(err)
	}
	if store.Expired() {
		t.Fatal("opaque token must not report expired")
	}
}
