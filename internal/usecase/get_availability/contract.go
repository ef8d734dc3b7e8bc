package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// SlotCache кэш занятых слотов по дате
// SetReserved записывает снимок, только если версия даты не менялась с момента Version
type SlotCache interface {
	GetReserved(ctx context.Context, date time.Time) ([]string, bool, error)
	Version(ctx context.Context, date time.Time) (int64, error)
	SetReserved(ctx context.Context, date time.Time, version int64, reserved []string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
