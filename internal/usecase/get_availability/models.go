package get_availability

import "time"

// Response свободные слоты на дату
type Response struct {
	Date  time.Time
	Slots []string // В порядке мастер-списка
}
