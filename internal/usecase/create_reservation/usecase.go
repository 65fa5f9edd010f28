package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/infra/queue"
	roomClient "github.com/m04kA/SMC-RoomReservationService/internal/integrations/roomdirectory"
)

// UseCase use case для создания бронирования помещения
type UseCase struct {
	reservationRepo ReservationRepository
	roomClient      RoomDirectoryClient
	publisher       EventPublisher
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomClient RoomDirectoryClient,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomClient:      roomClient,
		publisher:       publisher,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Авторитетное чтение занятости и запись выполняются в одной сериализуемой
// транзакции, поэтому переполнение вместимости при конкурентных запросах
// невозможно: один из конфликтующих запросов получит отказ.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, role=%s, room=%s, date=%s, slot=%s, headcount=%d",
		req.Requester.ID, req.Requester.Role, req.RoomID, req.Date.Format(domain.DateFormat), req.Slot, req.Headcount)

	// 1. Валидация формы запроса (обязательные поля, известные роль и слот)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем помещение из справочника
	dirRoom, err := uc.roomClient.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomClient.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	room := dirRoom.ToDomain()

	// 4. Ранний отказ для помещений с ограниченным доступом.
	// Дублирует правило проверки допуска: даже если дальнейшие шаги
	// когда-нибудь будут сокращены, обычная роль сюда не пройдёт.
	if room.RestrictedAccess && !req.Requester.Role.IsPrivileged() {
		uc.logger.Warn("CreateReservation: room id=%s is restricted, role=%s rejected", req.RoomID, req.Requester.Role)
		return nil, ErrRoomRestricted
	}

	// 5. Проверки календаря слотов
	if domain.IsDateInPast(req.Date, now) {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	if !domain.SlotOffered(req.Date.Weekday(), req.Slot) {
		uc.logger.Warn("CreateReservation: slot %s is not offered on %s", req.Slot, req.Date.Weekday())
		return nil, ErrSlotNotOffered
	}

	// Предикат "слот начался" нейтрален к ролям; привилегированные роли
	// обходят сам запрет
	if !req.Requester.Role.IsPrivileged() && domain.SlotStarted(req.Date, req.Slot, now) {
		uc.logger.Warn("CreateReservation: slot %s already started today", req.Slot)
		return nil, ErrSlotAlreadyStarted
	}

	// 6. Вычисляем размер группы и состав по роли заявителя
	partySize, participants, duplicates, err := resolveParty(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: party validation failed: %v", err)
		return nil, err
	}

	for _, dup := range duplicates {
		uc.logger.Warn("CreateReservation: duplicate companion id=%s name=%q admitted for user=%s",
			dup.UserID, dup.Name, req.Requester.ID)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 7. Авторитетное чтение занятости + проверка допуска + запись
	// в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Свежее точечное чтение активных бронирований слота (FOR UPDATE).
		// Никакие недельные выборки для отображения здесь не используются.
		existing, err := uc.reservationRepo.GetBySlot(txCtx, req.RoomID, req.Date, req.Slot)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get slot reservations: %v", err)
			return fmt.Errorf("%w: failed to get slot reservations: %v", ErrInternal, err)
		}

		// 7.2. Подсчёт занятости и остатка
		used := domain.UsedCapacity(existing, req.RoomID, req.Date, req.Slot)
		remaining := domain.RemainingCapacity(room, used)

		// 7.3. Проверка допуска
		if err := checkEligibility(room, req.Requester.Role, partySize, remaining); err != nil {
			uc.logger.Warn("CreateReservation: eligibility rejected for room=%s, used=%d: %v",
				req.RoomID, used, err)
			return err
		}

		uc.logger.Info("CreateReservation: slot available, used=%d, remaining=%d, party=%d",
			used, remaining, partySize)

		// 7.4. Создаем бронирование с денормализацией данных помещения
		res := &domain.Reservation{
			UserID:         req.Requester.ID,
			UserName:       req.Requester.Name,
			RoomID:         req.RoomID,
			Date:           req.Date,
			Slot:           req.Slot,
			PartySize:      partySize,
			Purpose:        req.Purpose,
			SupervisorName: req.SupervisorName,
			Status:         domain.StatusActive,
			Participants:   participants,
			// Денормализация данных помещения
			RoomName: room.Name,
			Zone:     string(room.Zone),
			Floor:    room.Floor,
		}

		created, err := uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 8. Публикуем событие для сервиса уведомлений. Ошибка публикации
	// не отменяет уже закоммиченное бронирование.
	_ = uc.publisher.PublishReservationCreated(ctx, queue.ReservationCreatedEvent{
		ReservationID: result.ID,
		UserID:        result.UserID,
		UserName:      result.UserName,
		RoomID:        result.RoomID,
		RoomName:      result.RoomName,
		Date:          result.Date.Format(domain.DateFormat),
		SlotID:        string(result.Slot),
		PartySize:     result.PartySize,
		CreatedAt:     result.CreatedAt.Format(time.RFC3339),
	})

	// Конвертируем в response
	return &Response{
		ID:             result.ID,
		UserID:         result.UserID,
		UserName:       result.UserName,
		RoomID:         result.RoomID,
		Date:           result.Date,
		Slot:           result.Slot,
		PartySize:      result.PartySize,
		Purpose:        result.Purpose,
		SupervisorName: result.SupervisorName,
		Status:         string(result.Status),
		Participants:   result.Participants,
		RoomName:       result.RoomName,
		Zone:           result.Zone,
		Floor:          result.Floor,
		CreatedAt:      result.CreatedAt,
	}, nil
}
