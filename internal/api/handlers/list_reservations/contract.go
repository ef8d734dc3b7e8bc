package list_reservations

import (
	"context"

	"github.com/m04kA/wedding-reservation-service/internal/service/reservations/models"
)

type ReservationService interface {
	ListAll(ctx context.Context) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
