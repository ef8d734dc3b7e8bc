package reservations

import (
	"context"
	"time"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotCache кэш занятых слотов, который нужно сбросить после смены статуса
type SlotCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// EventPublisher издатель событий бронирований
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// StatusRecorder счётчик смен статуса (*metrics.Metrics)
type StatusRecorder interface {
	IncStatusChange(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
