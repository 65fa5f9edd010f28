package list_rooms

import (
	"github.com/m04kA/SMC-RoomReservationService/internal/integrations/roomdirectory"
)

// RoomResponse помещение в каталоге
type RoomResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Zone             string `json:"zone"`
	Floor            string `json:"floor"`
	Capacity         *int   `json:"capacity"` // null = без ограничения
	MinTeamSize      int    `json:"minTeamSize"`
	MaxTeamSize      *int   `json:"maxTeamSize,omitempty"`
	Enabled          bool   `json:"enabled"`
	RestrictedAccess bool   `json:"restrictedAccess"`
	Note             string `json:"note,omitempty"`
	DisplayOrder     int    `json:"displayOrder"`
}

// RoomListResponse HTTP response model
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDirectoryRooms конвертирует модели справочника в HTTP response
func FromDirectoryRooms(rooms []*roomdirectory.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, r := range rooms {
		resp.Rooms = append(resp.Rooms, RoomResponse{
			ID:               r.ID,
			Name:             r.Name,
			Zone:             r.Zone,
			Floor:            r.Floor,
			Capacity:         r.Capacity,
			MinTeamSize:      r.MinTeamSize,
			MaxTeamSize:      r.MaxTeamSize,
			Enabled:          r.Enabled,
			RestrictedAccess: r.RestrictedAccess,
			Note:             r.Note,
			DisplayOrder:     r.DisplayOrder,
		})
	}

	return resp
}
