package list_reservations

import (
	"net/http"

	"github.com/m04kA/wedding-reservation-service/internal/api/handlers"
	"github.com/m04kA/wedding-reservation-service/internal/api/middleware"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/reservations (только администратор)
// Отвечает массивом бронирований, новые первыми
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin := "unknown"
	if session, ok := middleware.GetSession(r.Context()); ok {
		admin = session.Email
	}

	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: admin=%s, error=%v", admin, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Listed %d reservations: admin=%s", result.Total, admin)
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
