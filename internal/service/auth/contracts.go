package auth

import (
	"context"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
	"github.com/m04kA/wedding-reservation-service/pkg/authtoken"
)

// AccountRepository интерфейс репозитория аккаунтов
type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	CountByRole(ctx context.Context, role domain.Role) (int, error)
	Create(ctx context.Context, acc *domain.Account) (int64, error)
}

// TokenIssuer выпуск и проверка сессионных токенов
type TokenIssuer interface {
	Issue(subject, email, role string) (string, *authtoken.Claims, error)
	Parse(token string) (*authtoken.Claims, error)
}

// LoginRecorder счётчик попыток входа (*metrics.Metrics)
type LoginRecorder interface {
	IncLogin(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
