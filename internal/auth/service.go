package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCreds  = errors.New("invalid credentials")
	ErrNotConfigured = errors.New("admin authentication is not configured")

	jwtSecretOnce    sync.Once
	jwtSecretRuntime []byte
	jwtSecretErr     error
)

func jwtSecretFromEnv() ([]byte, error) {
	jwtSecretOnce.Do(func() {
		secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
		if secret != "" {
			jwtSecretRuntime = []byte(secret)
			return
		}

		buf := make([]byte, 48)
		if _, err := rand.Read(buf); err != nil {
			jwtSecretErr = fmt.Errorf("failed to generate JWT fallback secret: %w", err)
			return
		}

		jwtSecretRuntime = []byte(base64.RawURLEncoding.EncodeToString(buf))
		log.Print("JWT_SECRET is not set; using ephemeral in-memory fallback secret")
	})

	if jwtSecretErr != nil {
		return nil, jwtSecretErr
	}
	if len(jwtSecretRuntime) == 0 {
		return nil, errors.New("JWT secret unavailable")
	}

	return jwtSecretRuntime, nil
}

// Service issues admin tokens. Authentication is stateless: the single admin
// credential is a bcrypt hash taken from the environment, so no user store
// is involved.
type Service struct {
	adminHash string
}

// NewService reads ADMIN_PASSWORD_HASH from the environment. An empty hash
// leaves the service in an unconfigured state where every login fails.
func NewService() *Service {
	return &Service{adminHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))}
}

// LoginRequest is the payload of POST /api/v1/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// AuthResponse carries the signed token back to the caller.
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// Login checks the password against the configured admin hash and issues a
// 24 hour token.
func (s *Service) Login(req LoginRequest) (*AuthResponse, error) {
	if s.adminHash == "" {
		return nil, ErrNotConfigured
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCreds
	}

	expires := time.Now().Add(24 * time.Hour)
	token, err := generateToken(expires)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, ExpiresAt: expires.Format(time.RFC3339)}, nil
}

func generateToken(expires time.Time) (string, error) {
	secretKey, err := jwtSecretFromEnv()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": time.Now().Unix(),
		"exp": expires.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}
