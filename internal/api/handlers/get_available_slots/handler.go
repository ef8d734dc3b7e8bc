package get_available_slots

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
	useCase AvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase AvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/reservations/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /reservations/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /reservations/available-slots - Invalid date=%q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.AvailableSlots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /reservations/available-slots - Failed to get available slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
