package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/wedding-reservation-service/internal/api/handlers"
	"github.com/m04kA/wedding-reservation-service/internal/service/auth"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidCredentials = "Invalid credentials"
	msgAccessDenied       = "Access denied"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /admin/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrAccessDenied):
			h.logger.Warn("POST /admin/login - Access denied")
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /admin/login - Failed to log in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in: subject=%s", result.Session.SubjectID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
