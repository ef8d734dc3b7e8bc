package get_availability

import (
	"context"
	"time"
)

type ReservedSlotsUseCase interface {
	ReservedSlots(ctx context.Context, date time.Time) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
