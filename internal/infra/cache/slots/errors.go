package slots

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения из Redis
	ErrCacheRead = errors.New("slots.cache: failed to read")

	// ErrCacheWrite возвращается при ошибке записи или удаления в Redis
	ErrCacheWrite = errors.New("slots.cache: failed to write")

	// ErrDecode возвращается, если значение в кэше повреждено
	ErrDecode = errors.New("slots.cache: failed to decode value")

	errVersionMoved = errors.New("slots.cache: version moved")
)
