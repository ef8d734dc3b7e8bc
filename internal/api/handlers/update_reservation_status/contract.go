package update_reservation_status

import (
	"context"

	"github.com/m04kA/wedding-reservation-service/internal/service/reservations/models"
)

type ReservationService interface {
	SetStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
