package list_rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomReservationService/internal/integrations/roomdirectory"
)

type RoomDirectoryClient interface {
	ListRooms(ctx context.Context) ([]*roomdirectory.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
