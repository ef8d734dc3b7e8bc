package get_availability

import (
	"net/http"

	"github.com/m04kA/wedding-reservation-service/internal/api/handlers"
	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

const (
	msgMissingDate = "Date is required"
	msgInvalidDate = "Invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase ReservedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ReservedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/reservations/availability?date=YYYY-MM-DD
// Отвечает массивом занятых слотов, например ["14:00"]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /reservations/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /reservations/availability - Invalid date=%q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	reserved, err := h.useCase.ReservedSlots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /reservations/availability - Failed to get reserved slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	if reserved == nil {
		reserved = []string{}
	}
	handlers.RespondJSON(w, http.StatusOK, reserved)
}
