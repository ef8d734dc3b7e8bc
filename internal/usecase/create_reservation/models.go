package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Name           string
	Phone          string
	Date           time.Time // Дата без времени
	TimeSlot       string    // Например "14:00"
	Type           string
	Deck           string
	RequestContent string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string
	Date      time.Time
	TimeSlot  string
	Status    string
	CreatedAt time.Time
}
