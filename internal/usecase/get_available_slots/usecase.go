package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	roomClient "github.com/m04kA/SMC-RoomReservationService/internal/integrations/roomdirectory"
)

// UseCase use case для получения слотов помещения на день с занятостью.
// Обслуживает отображение: решение о допуске всегда перечитывает занятость
// отдельно, в транзакции создания бронирования.
type UseCase struct {
	reservationRepo ReservationRepository
	roomClient      RoomDirectoryClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomClient RoomDirectoryClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomClient:      roomClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: room=%s, date=%s",
		req.RoomID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем помещение из справочника
	dirRoom, err := uc.roomClient.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomClient.ErrRoomNotFound) {
			uc.logger.Warn("GetAvailableSlots: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	room := dirRoom.ToDomain()

	// 4. Получаем активные бронирования помещения на эту дату
	filter := domain.ReservationsFilter{
		RoomID:          req.RoomID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные бронирования
	}

	reservations, err := uc.reservationRepo.GetByDateRange(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Собираем слоты дня с занятостью
	slots := buildDaySlots(room, req.Date, reservations, now)

	uc.logger.Info("GetAvailableSlots: built %d slots for room=%s, date=%s",
		len(slots), req.RoomID, req.Date.Format(domain.DateFormat))

	return &Response{
		RoomID: req.RoomID,
		Date:   req.Date,
		Slots:  slots,
	}, nil
}
