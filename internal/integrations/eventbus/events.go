package eventbus

import "time"

// Routing keys событий бронирований
const (
	KeyReservationCreated       = "reservation.created"
	KeyReservationStatusChanged = "reservation.status_changed"
)

// ReservationCreated публикуется после фиксации нового бронирования
type ReservationCreated struct {
	ID       string    `json:"id"`
	Date     string    `json:"date"`
	TimeSlot string    `json:"time"`
	Type     string    `json:"type"`
	Status   string    `json:"status"`
	At       time.Time `json:"at"`
}

// ReservationStatusChanged публикуется после смены статуса администратором
type ReservationStatusChanged struct {
	ID       string    `json:"id"`
	Date     string    `json:"date"`
	TimeSlot string    `json:"time"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	At       time.Time `json:"at"`
}
