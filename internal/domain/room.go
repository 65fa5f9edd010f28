package domain

// Zone именованная зона здания, в которой находится помещение
type Zone string

const (
	ZoneNorth   Zone = "north"
	ZoneSouth   Zone = "south"
	ZoneEast    Zone = "east"
	ZoneWest    Zone = "west"
	ZoneWorkshop Zone = "workshop"
)

// Room помещение из Room Directory. Движок бронирования читает эти данные,
// административное редактирование выполняется внешним сервисом.
type Room struct {
	ID               string
	Name             string
	Zone             Zone
	Floor            string
	Capacity         int // UnlimitedCapacity = без ограничения
	MinTeamSize      int // минимальный размер команды, по умолчанию 1
	MaxTeamSize      *int // nil = без верхней границы
	Enabled          bool
	RestrictedAccess bool   // доступно только привилегированным ролям
	Note             string // причина недоступности, показывается пользователю
	DisplayOrder     int
}

// HasCapacityLimit возвращает true, если у помещения есть ограничение вместимости
func (r *Room) HasCapacityLimit() bool {
	return r.Capacity != UnlimitedCapacity
}

// EffectiveMinTeamSize возвращает минимальный размер команды с учётом дефолта
func (r *Room) EffectiveMinTeamSize() int {
	if r.MinTeamSize < 1 {
		return DefaultMinTeamSize
	}
	return r.MinTeamSize
}

// BookableBy возвращает true, если помещение в принципе доступно роли.
// Помещение с ограниченным доступом недоступно обычным ролям независимо
// от флага Enabled.
func (r *Room) BookableBy(role Role) bool {
	if r.RestrictedAccess && !role.IsPrivileged() {
		return false
	}
	return r.Enabled
}
