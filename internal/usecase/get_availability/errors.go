package get_availability

import "errors"

var (
	// ErrInvalidDate возвращается, если дата не указана
	ErrInvalidDate = errors.New("get_availability: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
