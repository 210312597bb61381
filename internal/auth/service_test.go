package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

func adminService(t *testing.T, password string) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &Service{adminHash: string(hash)}
}

func TestLogin(t *testing.T) {
	s := adminService(t, "correct horse")

	resp, err := s.Login(LoginRequest{Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" || resp.ExpiresAt == "" {
		t.Errorf("incomplete response: %+v", resp)
	}

	if _, err := s.Login(LoginRequest{Password: "wrong"}); !errors.Is(err, ErrInvalidCreds) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCreds", err)
	}
}

func TestLogin_Unconfigured(t *testing.T) {
	os.Unsetenv("ADMIN_PASSWORD_HASH")
	s := NewService()
	if _, err := s.Login(LoginRequest{Password: "anything"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestMiddleware(t *testing.T) {
	s := adminService(t, "pw")
	resp, err := s.Login(LoginRequest{Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	e := echo.New()
	handler := Middleware(func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(subjectKey).(string))
	})

	call := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec
	}

	if rec := call("Bearer " + resp.Token); rec.Code != http.StatusOK || rec.Body.String() != "admin" {
		t.Errorf("valid token: status %d body %q", rec.Code, rec.Body.String())
	}
	if rec := call(""); rec.Code != http.StatusUnauthorized {
		t.Errorf("missing header: status %d", rec.Code)
	}
	if rec := call("Bearer not-a-token"); rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status %d", rec.Code)
	}
	if rec := call("Basic abc"); rec.Code != http.StatusUnauthorized {
		t.Errorf("non-bearer scheme: status %d", rec.Code)
	}
}
