package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/holidaze/booking-gateway/internal/api/handlers"
	"github.com/holidaze/booking-gateway/internal/session"
)

type contextKey string

const userContextKey contextKey = "user"

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "некорректный токен авторизации"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth извлекает пользователя из заголовка Authorization и кладет его в контекст
// Подпись токена не проверяется: её знает только внешний API, который
// отклонит запрос с поддельным токеном при первом же обращении
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				logger.Warn("Auth: missing bearer token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			user, err := session.FromToken(token)
			if err != nil {
				logger.Warn("Auth: invalid token: %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser кладет пользователя в контекст
func WithUser(ctx context.Context, user *session.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUser возвращает пользователя из контекста запроса
func GetUser(ctx context.Context) (*session.User, bool) {
	user, ok := ctx.Value(userContextKey).(*session.User)
	return user, ok
}

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
