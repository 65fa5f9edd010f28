package create_reservation

import "github.com/m04kA/SMC-RoomReservationService/internal/domain"

// checkEligibility решает, может ли группа размера partySize занять слот
// помещения при остатке remaining. Чистая функция без побочных эффектов:
// одинаковые входы всегда дают одинаковый результат.
//
// Правила проверяются по порядку, первое нарушенное определяет причину отказа:
//  1. Помещение с ограниченным доступом отклоняет обычные роли. Эта причина
//     имеет приоритет: для отключенного И ограниченного помещения обычная
//     роль получает отказ "ограниченный доступ", а не причину отключения.
//  2. Помещение должно быть включено; в отказе - настроенная причина.
//  3. Размер группы не меньше минимального размера команды.
//  4. Размер группы не больше максимального размера команды, если он задан.
//     Это политика помещения, независимая от остатка вместимости и, возможно,
//     более строгая.
//  5. Размер группы не больше остатка вместимости; в отказе - точный остаток.
func checkEligibility(room *domain.Room, role domain.Role, partySize int, remaining int) error {
	if room.RestrictedAccess && !role.IsPrivileged() {
		return ErrRoomRestricted
	}

	if !room.Enabled {
		return &RoomDisabledError{Reason: room.Note}
	}

	if minSize := room.EffectiveMinTeamSize(); partySize < minSize {
		return &MinTeamSizeError{Min: minSize}
	}

	if room.MaxTeamSize != nil && partySize > *room.MaxTeamSize {
		return &MaxTeamSizeError{Max: *room.MaxTeamSize}
	}

	if remaining != domain.UnlimitedCapacity && partySize > remaining {
		return &CapacityError{Remaining: remaining}
	}

	return nil
}
