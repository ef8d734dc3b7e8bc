package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
	reservationRepo "github.com/m04kA/wedding-reservation-service/internal/infra/storage/reservation"
	"github.com/m04kA/wedding-reservation-service/internal/integrations/eventbus"
	"github.com/m04kA/wedding-reservation-service/internal/service/reservations/models"
)

// Service административные операции над бронированиями
// Авторизация выполняется выше, в Access Gate
type Service struct {
	repo      ReservationRepository
	txManager TransactionManager
	cache     SlotCache
	events    EventPublisher
	metrics   StatusRecorder
	logger    Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	repo ReservationRepository,
	txManager TransactionManager,
	cache SlotCache,
	events EventPublisher,
	metrics StatusRecorder,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		cache:     cache,
		events:    events,
		metrics:   metrics,
		logger:    logger,
	}
}

// ListAll возвращает все бронирования, новые первыми
func (s *Service) ListAll(ctx context.Context) (*models.ReservationListResponse, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// SetStatus переводит бронирование в новый статус по таблице переходов
// Повторная установка текущего статуса успешна и ничего не записывает
func (s *Service) SetStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	status, ok := domain.ParseReservationStatus(req.Status)
	if !ok {
		s.logger.Warn("SetStatus: unknown status=%q for reservation id=%s", req.Status, id)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	var (
		current *domain.Reservation
		changed bool
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Загружаем бронирование с блокировкой строки
		res, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: SetStatus - get reservation: %v", ErrInternal, err)
		}
		current = res

		// 2. Тот же статус - ничего не делаем
		if res.Status == status {
			return nil
		}

		// 3. Проверяем таблицу переходов
		if !domain.CanTransition(res.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, status)
		}

		// 4. Записываем новый статус
		if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: SetStatus - update status: %v", ErrInternal, err)
		}
		changed = true
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			s.logger.Warn("SetStatus: reservation id=%s not found", id)
		case errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("SetStatus: reservation id=%s: %v", id, err)
		case errors.Is(err, ErrInternal):
			s.logger.Error("SetStatus: reservation id=%s: %v", id, err)
		default:
			s.logger.Error("SetStatus: transaction error for reservation id=%s: %v", id, err)
			return fmt.Errorf("%w: SetStatus - transaction: %v", ErrInternal, err)
		}
		return err
	}

	if !changed {
		s.logger.Info("SetStatus: reservation id=%s already %s", id, status)
		return nil
	}

	s.logger.Info("SetStatus: reservation id=%s %s -> %s", id, current.Status, status)
	s.metrics.IncStatusChange(string(status))
	s.afterStatusChange(ctx, current, status)

	return nil
}

// afterStatusChange побочные эффекты после коммита, ошибки только логируются
func (s *Service) afterStatusChange(ctx context.Context, res *domain.Reservation, to domain.ReservationStatus) {
	if err := s.cache.Invalidate(ctx, res.Date); err != nil {
		s.logger.Warn("SetStatus: failed to invalidate slot cache for date=%s: %v",
			res.Date.Format(domain.DateFormat), err)
	}

	event := eventbus.ReservationStatusChanged{
		ID:       res.ID,
		Date:     res.Date.Format(domain.DateFormat),
		TimeSlot: res.TimeSlot,
		From:     string(res.Status),
		To:       string(to),
		At:       time.Now().UTC(),
	}
	if err := s.events.PublishJSON(ctx, eventbus.KeyReservationStatusChanged, event); err != nil {
		s.logger.Warn("SetStatus: failed to publish %s for reservation id=%s: %v",
			eventbus.KeyReservationStatusChanged, res.ID, err)
	}
}
