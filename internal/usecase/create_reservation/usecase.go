package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
	reservationRepo "github.com/m04kA/wedding-reservation-service/internal/infra/storage/reservation"
	"github.com/m04kA/wedding-reservation-service/internal/integrations/eventbus"
)

// UseCase use case для создания бронирования
type UseCase struct {
	repo         ReservationRepository
	txManager    TransactionManager
	cache        SlotCache
	events       EventPublisher
	metrics      ReservationRecorder
	policy       domain.SlotPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo ReservationRepository,
	txManager TransactionManager,
	cache SlotCache,
	events EventPublisher,
	metrics ReservationRecorder,
	policy domain.SlotPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		txManager:    txManager,
		cache:        cache,
		events:       events,
		metrics:      metrics,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка слота и вставка идут в одной транзакции; гонку двух вставок
// в пустой слот разрешает уникальный индекс по (date, time_slot)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализация и валидация входных данных
	req = normalizeRequest(req)

	uc.logger.Info("CreateReservation: date=%s, time=%s, type=%s",
		req.Date.Format(domain.DateFormat), req.TimeSlot, req.Type)

	if err := validateRequest(req, uc.policy); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Reservation

	// 2. Проверяем слот и сохраняем бронирование в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирования на дату с блокировкой (FOR UPDATE)
		existing, err := uc.repo.ListByDate(txCtx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 2.2. Слот занят активным бронированием
		if slotHeld(existing, req.TimeSlot) {
			return ErrSlotTaken
		}

		// 2.3. Сохраняем со статусом pending
		res := &domain.Reservation{
			RequesterName:  req.Name,
			RequesterPhone: req.Phone,
			Date:           req.Date,
			TimeSlot:       req.TimeSlot,
			Type:           req.Type,
			Deck:           req.Deck,
			RequestContent: req.RequestContent,
			Status:         domain.StatusPending,
		}

		if _, err := uc.repo.Insert(txCtx, res); err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to insert reservation: %v", ErrInternal, err)
		}

		created = res
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken):
			uc.logger.Warn("CreateReservation: slot %s %s already taken",
				req.Date.Format(domain.DateFormat), req.TimeSlot)
			uc.metrics.IncReservationConflict()
			return nil, ErrSlotTaken
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateReservation: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateReservation: transaction error: %v", err)
			return nil, fmt.Errorf("%w: transaction: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", created.ID)
	uc.metrics.IncReservationCreated(created.Type)

	// 3. Побочные эффекты после коммита, на результат не влияют
	uc.afterCreate(ctx, created)

	return &Response{
		ID:        created.ID,
		Date:      created.Date,
		TimeSlot:  created.TimeSlot,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}, nil
}

func (uc *UseCase) afterCreate(ctx context.Context, res *domain.Reservation) {
	if err := uc.cache.Invalidate(ctx, res.Date); err != nil {
		uc.logger.Warn("CreateReservation: failed to invalidate slot cache for date=%s: %v",
			res.Date.Format(domain.DateFormat), err)
	}

	event := eventbus.ReservationCreated{
		ID:       res.ID,
		Date:     res.Date.Format(domain.DateFormat),
		TimeSlot: res.TimeSlot,
		Type:     res.Type,
		Status:   string(res.Status),
		At:       uc.timeProvider.Now().UTC(),
	}
	if err := uc.events.PublishJSON(ctx, eventbus.KeyReservationCreated, event); err != nil {
		uc.logger.Warn("CreateReservation: failed to publish %s for reservation id=%s: %v",
			eventbus.KeyReservationCreated, res.ID, err)
	}
}
