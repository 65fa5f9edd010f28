package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/integrations/roomdirectory"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByDateRange получает бронирования за период (ветка отображения)
	GetByDateRange(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// RoomDirectoryClient интерфейс клиента справочника помещений
type RoomDirectoryClient interface {
	GetRoom(ctx context.Context, roomID string) (*roomdirectory.Room, error)
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
