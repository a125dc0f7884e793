package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/nutricart-tech/go-backend/internal/domain"
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
)

type ctxKey int

const userCtxKey ctxKey = iota

// AuthMiddleware проверяет Bearer-токен и кладёт пользователя в контекст запроса.
// Никакого глобального состояния аутентификации: каждый запрос несёт
// собственный объект пользователя.
type AuthMiddleware struct {
	authUC usecase.AuthUC
	logger logger.Logger
}

func NewAuthMiddleware(authUC usecase.AuthUC, logger logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, logger: logger}
}

func (m *AuthMiddleware) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			WriteError(w, e.ErrUnauthorized)
			return
		}

		user, err := m.authUC.UserByToken(r.Context(), token)
		if err != nil {
			m.logger.Warnf("Auth failed: %v", err)
			WriteError(w, e.ErrUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	return strings.TrimPrefix(header, prefix), true
}

// userFromCtx извлекает аутентифицированного пользователя из контекста запроса.
func userFromCtx(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*domain.User)
	return user, ok
}
