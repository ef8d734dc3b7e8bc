package get_available_slots

import (
	"context"
	"time"

	getAvailability "github.com/m04kA/wedding-reservation-service/internal/usecase/get_availability"
)

type AvailableSlotsUseCase interface {
	AvailableSlots(ctx context.Context, date time.Time) (*getAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
