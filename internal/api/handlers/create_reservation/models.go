package create_reservation

import (
	"github.com/m04kA/wedding-reservation-service/internal/domain"
	createReservation "github.com/m04kA/wedding-reservation-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Date           string `json:"date"` // "2025-03-01"
	Time           string `json:"time"` // "14:00"
	Type           string `json:"type"`
	Deck           string `json:"deck,omitempty"`
	RequestContent string `json:"requestContent,omitempty"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Name:           r.Name,
		Phone:          r.Phone,
		Date:           date,
		TimeSlot:       r.Time,
		Type:           r.Type,
		Deck:           r.Deck,
		RequestContent: r.RequestContent,
	}, nil
}
