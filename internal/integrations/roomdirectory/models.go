package roomdirectory

import "github.com/m04kA/SMC-RoomReservationService/internal/domain"

// Room модель помещения из Room Directory
type Room struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Zone             string `json:"zone"`
	Floor            string `json:"floor"`
	Capacity         *int   `json:"capacity"` // null = без ограничения
	MinTeamSize      int    `json:"min_team_size"`
	MaxTeamSize      *int   `json:"max_team_size,omitempty"`
	Enabled          bool   `json:"enabled"`
	RestrictedAccess bool   `json:"restricted_access"`
	Note             string `json:"note,omitempty"`
	DisplayOrder     int    `json:"display_order"`
}

// ToDomain конвертирует модель справочника в domain.Room
func (r *Room) ToDomain() *domain.Room {
	capacity := domain.UnlimitedCapacity
	if r.Capacity != nil {
		capacity = *r.Capacity
	}

	return &domain.Room{
		ID:               r.ID,
		Name:             r.Name,
		Zone:             domain.Zone(r.Zone),
		Floor:            r.Floor,
		Capacity:         capacity,
		MinTeamSize:      r.MinTeamSize,
		MaxTeamSize:      r.MaxTeamSize,
		Enabled:          r.Enabled,
		RestrictedAccess: r.RestrictedAccess,
		Note:             r.Note,
		DisplayOrder:     r.DisplayOrder,
	}
}

// ErrorResponse модель ошибки от Room Directory
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
