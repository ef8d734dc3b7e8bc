package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/wedding-reservation-service/internal/api/handlers"
	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

const (
	msgUnauthorized = "Unauthorized"
	msgInvalidToken = "Invalid token"
	msgForbidden    = "Forbidden"
)

// SessionVerifier проверяет сессионный токен (auth.Service)
type SessionVerifier interface {
	Verify(token string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type sessionKey struct{}

// WithSession кладёт проверенную сессию в контекст
func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// GetSession достаёт сессию, положенную AdminAuth
func GetSession(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return s, ok && s != nil
}

// AdminAuth пропускает запрос только с действующим токеном администратора
// Нет токена: 401 Unauthorized; токен не прошёл проверку: 401 Invalid token; не админ: 403 Forbidden
func AdminAuth(verifier SessionVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			session, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if !session.IsAdmin() {
				logger.Warn("%s %s - Forbidden for subject=%s role=%s", r.Method, r.URL.Path, session.SubjectID, session.Role)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// bearerToken извлекает токен из заголовка "Authorization: Bearer <token>"
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
