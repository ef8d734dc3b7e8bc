package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	getAvailability "github.com/m04kA/wedding-reservation-service/internal/usecase/get_availability"
	"github.com/m04kA/wedding-reservation-service/pkg/logger"
)

type stubUseCase struct {
	resp *getAvailability.Response
	err  error
}

func (s *stubUseCase) AvailableSlots(context.Context, time.Time) (*getAvailability.Response, error) {
	return s.resp, s.err
}

func serve(uc AvailableSlotsUseCase, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_ReturnsFreeSlots(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailability.Response{
		Date:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Slots: []string{"10:00", "11:00"},
	}}

	rec := serve(uc, "/api/reservations/available-slots?date=2025-03-01")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2025-03-01","slots":["10:00","11:00"]}`, rec.Body.String())
}

func TestHandle_FullyBookedDay(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailability.Response{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}}

	rec := serve(uc, "/api/reservations/available-slots?date=2025-03-01")

	assert.JSONEq(t, `{"date":"2025-03-01","slots":[]}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubUseCase{}, "/api/reservations/available-slots").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubUseCase{}, "/api/reservations/available-slots?date=2025-13-01").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&stubUseCase{err: errors.New("boom")}, "/api/reservations/available-slots?date=2025-03-01").Code)
}
