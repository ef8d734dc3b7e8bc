package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/admin_login"
	createReservationHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/get_available_slots"
	healthHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/health"
	listReservationsHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/list_reservations"
	updateStatusHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/wedding-reservation-service/internal/api/middleware"
	"github.com/m04kA/wedding-reservation-service/pkg/metrics"
)

// Handlers набор обработчиков, из которых собирается роутер
type Handlers struct {
	CreateReservation       *createReservationHandler.Handler
	ReservedSlots           *getAvailabilityHandler.Handler
	AvailableSlots          *getAvailableSlotsHandler.Handler
	ListReservations        *listReservationsHandler.Handler
	UpdateReservationStatus *updateStatusHandler.Handler
	AdminLogin              *adminLoginHandler.Handler
	Health                  *healthHandler.Handler // nil - маршрут /health не регистрируется
}

// Options инфраструктура роутера
type Options struct {
	Verifier    middleware.SessionVerifier
	Metrics     *metrics.Metrics // nil - метрики выключены
	MetricsPath string
	Logger      middleware.Logger
}

// New собирает маршруты сервиса
func New(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging(opts.Logger))

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	if h.Health != nil {
		r.HandleFunc("/health", h.Health.Handle).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/reservations", h.CreateReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/availability", h.ReservedSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/available-slots", h.AvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/admin/login", h.AdminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Bearer токен администратора)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(opts.Verifier, opts.Logger))

	admin.HandleFunc("/reservations", h.ListReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/status", h.UpdateReservationStatus.Handle).Methods(http.MethodPut)

	return r
}
