package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nutricart-tech/go-backend/internal/cfg"
	"github.com/nutricart-tech/go-backend/pkg/e"
)

// Manager выпускает и проверяет HS256-токены с ID пользователя в subject.
type Manager struct {
	cfg *cfg.AuthCfg
}

func NewManager(cfg *cfg.AuthCfg) *Manager {
	return &Manager{cfg: cfg}
}

// IssueToken выпускает токен для пользователя со сроком жизни из конфигурации.
func (m *Manager) IssueToken(userID int64) (string, error) {
	const op = "Manager.IssueToken"

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.JWTSecret))
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return signed, nil
}

// ParseToken проверяет подпись и срок жизни токена и возвращает ID пользователя.
func (m *Manager) ParseToken(token string) (int64, error) {
	const op = "Manager.ParseToken"

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(m.cfg.JWTSecret), nil
	})
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return 0, e.Wrap(op, e.ErrUnauthorized)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return userID, nil
}
