package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/infra/queue"
	reservationRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// Service сервис для работы с существующими бронированиями:
// чтение и отмена. Создание живёт в usecase create_reservation.
type Service struct {
	reservationRepo ReservationRepository
	publisher       EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		publisher:       publisher,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только своё бронирование, привилегированные роли - любое.
func (s *Service) GetByID(ctx context.Context, id int64, requester models.Requester) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%s", id, requester.ID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := checkAccess(res, requester); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to reservation id=%d", requester.ID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(res), nil
}

// GetUserReservations получает историю бронирований пользователя.
// Свою историю видит каждый, чужую - только привилегированные роли.
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations of user=%s for requester=%s", req.UserID, req.Requester.ID)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.UserID != req.Requester.ID && !req.Requester.Role.IsPrivileged() {
		s.logger.Warn("GetUserReservations: access denied for user=%s to history of user=%s",
			req.Requester.ID, req.UserID)
		return nil, ErrAccessDenied
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%s", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetRoomReservations получает бронирования помещения за период.
// Доступно только привилегированным ролям.
func (s *Service) GetRoomReservations(ctx context.Context, req *models.GetRoomReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetRoomReservations: room=%s, period=%s to %s, requester=%s",
		req.RoomID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.Requester.ID)

	if !req.Requester.Role.IsPrivileged() {
		s.logger.Warn("GetRoomReservations: access denied for user=%s", req.Requester.ID)
		return nil, ErrAccessDenied
	}

	if req.RoomID == "" {
		return nil, fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	filter := domain.ReservationsFilter{
		RoomID:          req.RoomID,
		StartDate:       &req.StartDate,
		EndDate:         &req.EndDate,
		IncludeInactive: false,
	}

	reservations, err := s.reservationRepo.GetByDateRange(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomReservations: repository error for room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomReservations: successfully fetched %d reservations for room=%s", len(reservations), req.RoomID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование. Пользователь может отменить только своё,
// привилегированные роли - любое. Обычная роль укладывается в дедлайн:
// строго до 08:00 дня самого бронирования (раньше этого дня - в любое время);
// привилегированные роли обходят дедлайн. Запись удаляется, занятость слота
// уменьшается при следующем чтении.
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%s", reservationID, req.Requester.ID)

	// Получаем бронирование
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := checkAccess(res, req.Requester); err != nil {
		s.logger.Warn("Cancel: access denied for user=%s to reservation id=%d", req.Requester.ID, reservationID)
		return err
	}

	// Дедлайн отмены для обычных ролей
	now := s.timeProvider.Now()
	if !req.Requester.Role.IsPrivileged() && !cancellableAt(res.Date, now) {
		s.logger.Warn("Cancel: cutoff passed for reservation id=%d, date=%s",
			reservationID, res.Date.Format(domain.DateFormat))
		return ErrTooLateToCancel
	}

	// Удаляем бронирование; участники удаляются каскадно
	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during delete", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)

	// Событие для сервиса уведомлений; ошибка публикации не отменяет отмену
	_ = s.publisher.PublishReservationCancelled(ctx, queue.ReservationCancelledEvent{
		ReservationID: res.ID,
		UserID:        res.UserID,
		RoomID:        res.RoomID,
		Date:          res.Date.Format(domain.DateFormat),
		SlotID:        string(res.Slot),
		PartySize:     res.PartySize,
		CancelledBy:   req.Requester.ID,
		CancelledAt:   now.Format(time.RFC3339),
	})

	return nil
}

// Вспомогательные методы

// checkAccess проверяет, что инициатор имеет доступ к бронированию:
// владелец или привилегированная роль
func checkAccess(res *domain.Reservation, requester models.Requester) error {
	if res.UserID == requester.ID {
		return nil
	}
	if requester.Role.IsPrivileged() {
		return nil
	}
	return ErrAccessDenied
}

// cancellableAt возвращает true, если в момент now бронирование на дату date
// ещё можно отменить обычной роли: любой момент до дня бронирования, а в сам
// день - строго до дневного дедлайна
func cancellableAt(date time.Time, now time.Time) bool {
	if domain.IsDateInPast(date, now) {
		return false
	}

	if !domain.IsSameDay(date, now) {
		return true
	}

	cutoff := types.TimeString(domain.CancelCutoffTime)
	return types.NewTimeString(now).IsBefore(cutoff)
}
