package update_reservation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/wedding-reservation-service/internal/api/handlers"
	"github.com/m04kA/wedding-reservation-service/internal/api/middleware"
	"github.com/m04kA/wedding-reservation-service/internal/service/reservations"
)

const (
	msgUpdated              = "Status updated"
	msgInvalidRequestBody   = "Invalid request body"
	msgInvalidStatus        = "Invalid status"
	msgReservationNotFound  = "Reservation not found"
	msgInvalidTransition    = "Status transition not allowed"
	msgMissingReservationID = "Reservation ID is required"
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

// Handle PUT /api/reservations/{id}/status (только администратор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	admin := "unknown"
	if session, ok := middleware.GetSession(r.Context()); ok {
		admin = session.Email
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.SetStatus(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id}/status - Missing reservation ID")
			handlers.RespondBadRequest(w, msgMissingReservationID)

		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("PUT /reservations/{id}/status - Invalid status: id=%s, status=%q", id, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id}/status - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PUT /reservations/{id}/status - Transition not allowed: id=%s, %v", id, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PUT /reservations/{id}/status - Failed to update status: id=%s, admin=%s, error=%v",
				id, admin, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id}/status - Status updated: id=%s, status=%s, admin=%s", id, req.Status, admin)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgUpdated})
}
