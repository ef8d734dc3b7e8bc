package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

// normalizeRequest обрезает пробелы и приводит дату к календарной
func normalizeRequest(req *Request) *Request {
	return &Request{
		Name:           strings.TrimSpace(req.Name),
		Phone:          strings.TrimSpace(req.Phone),
		Date:           domain.DateOnly(req.Date),
		TimeSlot:       strings.TrimSpace(req.TimeSlot),
		Type:           strings.TrimSpace(req.Type),
		Deck:           strings.TrimSpace(req.Deck),
		RequestContent: strings.TrimSpace(req.RequestContent),
	}
}

// validateRequest валидирует входные данные запроса (после normalizeRequest)
func validateRequest(req *Request, policy domain.SlotPolicy) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if req.TimeSlot == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := validateLength("name", req.Name, domain.MaxNameLength); err != nil {
		return err
	}
	if err := validateLength("phone", req.Phone, domain.MaxPhoneLength); err != nil {
		return err
	}
	if err := validateLength("time", req.TimeSlot, domain.MaxTimeSlotLength); err != nil {
		return err
	}
	if err := validateLength("type", req.Type, domain.MaxTypeLength); err != nil {
		return err
	}
	if err := validateLength("deck", req.Deck, domain.MaxDeckLength); err != nil {
		return err
	}
	if err := validateLength("requestContent", req.RequestContent, domain.MaxRequestContentLength); err != nil {
		return err
	}

	if !policy.Accepts(req.TimeSlot) {
		return fmt.Errorf("%w: %q is not in the slot list", ErrInvalidTimeSlot, req.TimeSlot)
	}

	return nil
}

func validateLength(field, value string, max int) error {
	if len([]rune(value)) > max {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, max)
	}
	return nil
}

// slotHeld проверяет, занят ли слот активным (не отменённым) бронированием
func slotHeld(reservations []*domain.Reservation, slot string) bool {
	for _, r := range reservations {
		if r.TimeSlot == slot && r.IsActive() {
			return true
		}
	}
	return false
}
