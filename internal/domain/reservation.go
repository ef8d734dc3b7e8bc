package domain

import "time"

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation бронирование консультации
type Reservation struct {
	ID             string // UUID, назначается при создании
	RequesterName  string
	RequesterPhone string
	Date           time.Time // Дата без времени (UTC полночь)
	TimeSlot       string    // Токен слота, например "14:00"
	Type           string    // Тип консультации (visit, phone, ...)
	Deck           string
	RequestContent string
	Status         ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation holds its slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// ParseReservationStatus конвертирует строку в статус бронирования
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return ReservationStatus(s), true
	default:
		return "", false
	}
}

// transitions допустимые переходы статусов
// confirmed и cancelled не возвращаются в pending, cancelled терминален
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

// CanTransition проверяет, разрешён ли переход from -> to
// Переход в тот же статус разрешён и ничего не меняет
func CanTransition(from, to ReservationStatus) bool {
	if from == to {
		_, known := transitions[from]
		return known
	}

	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// DateOnly отбрасывает время, оставляя календарную дату в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.UTC)
}
