package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	Insert(ctx context.Context, res *domain.Reservation) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotCache кэш занятых слотов, сбрасывается после создания бронирования
type SlotCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// EventPublisher издатель событий бронирований
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// ReservationRecorder счётчики бронирований (*metrics.Metrics)
type ReservationRecorder interface {
	IncReservationCreated(reservationType string)
	IncReservationConflict()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
