package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/infra/queue"
	"github.com/m04kA/SMC-RoomReservationService/internal/integrations/roomdirectory"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetBySlot(ctx context.Context, roomID string, date time.Time, slot domain.SlotID) ([]*domain.Reservation, error)
}

// RoomDirectoryClient интерфейс клиента справочника помещений
type RoomDirectoryClient interface {
	GetRoom(ctx context.Context, roomID string) (*roomdirectory.Room, error)
}

// EventPublisher интерфейс публикации событий бронирования
type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, event queue.ReservationCreatedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
