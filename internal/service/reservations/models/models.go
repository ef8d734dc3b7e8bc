package models

import (
	"time"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ReservationResponse бронирование в ответе API
type ReservationResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Date           string    `json:"date"` // YYYY-MM-DD
	Time           string    `json:"time"`
	Type           string    `json:"type"`
	Deck           string    `json:"deck"`
	RequestContent string    `json:"requestContent"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain.Reservation в ReservationResponse
func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             r.ID,
		Name:           r.RequesterName,
		Phone:          r.RequesterPhone,
		Date:           r.Date.Format(domain.DateFormat),
		Time:           r.TimeSlot,
		Type:           r.Type,
		Deck:           r.Deck,
		RequestContent: r.RequestContent,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует слайс бронирований
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(r))
	}
	return resp
}
