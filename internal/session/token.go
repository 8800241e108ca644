package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName  = "session_token"
	HeaderToken = "X-Session-Token"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrEmptySecret  = errors.New("session secret is empty")
)

// Claims names the storage namespace a token grants access to.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue starts a new session and returns its id and signed token.
func (m *Manager) Issue() (string, string, error) {
	sid := uuid.NewString()
	now := m.now()

	claims := Claims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign session token: %w", err)
	}
	return sid, token, nil
}

// Parse verifies the token and returns the session id it carries.
func (m *Manager) Parse(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return m.secret, nil
		},
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return "", fmt.Errorf("%w: bad sid", ErrInvalidToken)
	}

	return claims.SessionID, nil
}

// ExtractToken reads the session token from the cookie, falling back to an
// Authorization bearer header.
func ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
