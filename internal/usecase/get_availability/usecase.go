package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

// UseCase Availability Engine: свободные и занятые слоты на дату
type UseCase struct {
	repo   ReservationRepository
	cache  SlotCache
	policy domain.SlotPolicy
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo ReservationRepository,
	cache SlotCache,
	policy domain.SlotPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:   repo,
		cache:  cache,
		policy: policy,
		logger: logger,
	}
}

// ReservedSlots возвращает слоты, занятые не отменёнными бронированиями на дату
func (uc *UseCase) ReservedSlots(ctx context.Context, date time.Time) ([]string, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	date = domain.DateOnly(date)
	day := date.Format(domain.DateFormat)

	// 1. Пробуем кэш; ошибка кэша не мешает ответить из БД
	cached, found, err := uc.cache.GetReserved(ctx, date)
	if err != nil {
		uc.logger.Warn("ReservedSlots: cache read failed for date=%s: %v", day, err)
	}
	if found {
		return cached, nil
	}

	// 2. Версия даты до чтения из БД: если бронь закоммитят после нашего снимка,
	// инвалидация сдвинет версию и устаревший снимок в кэш не попадёт
	version, err := uc.cache.Version(ctx, date)
	cacheable := err == nil
	if err != nil {
		uc.logger.Warn("ReservedSlots: cache version read failed for date=%s: %v", day, err)
	}

	// 3. Читаем бронирования на дату
	reservations, err := uc.repo.ListByDate(ctx, date)
	if err != nil {
		uc.logger.Error("ReservedSlots: repository error for date=%s: %v", day, err)
		return nil, fmt.Errorf("%w: ReservedSlots - repository error: %v", ErrInternal, err)
	}

	reserved := reservedSlots(reservations)

	// 4. Кладём результат в кэш, если дату не инвалидировали
	if cacheable {
		stored, err := uc.cache.SetReserved(ctx, date, version, reserved)
		switch {
		case err != nil:
			uc.logger.Warn("ReservedSlots: cache write failed for date=%s: %v", day, err)
		case !stored:
			uc.logger.Info("ReservedSlots: date=%s changed during read, cache write skipped", day)
		}
	}

	return reserved, nil
}

// AvailableSlots возвращает слоты мастер-списка, не занятые на дату
// Пустой список, если всё занято
func (uc *UseCase) AvailableSlots(ctx context.Context, date time.Time) (*Response, error) {
	reserved, err := uc.ReservedSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	free := availableSlots(uc.policy.Times, reserved)

	uc.logger.Info("AvailableSlots: date=%s, %d/%d slots free",
		domain.DateOnly(date).Format(domain.DateFormat), len(free), len(uc.policy.Times))

	return &Response{
		Date:  domain.DateOnly(date),
		Slots: free,
	}, nil
}
