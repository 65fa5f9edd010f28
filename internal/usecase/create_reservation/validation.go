package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Проверки формы запроса: обязательные текстовые поля, известные роль и слот.
// Бизнес-правила (доступность слота, вместимость) проверяются в Execute.
func validateRequest(req *Request) error {
	if req.Requester.ID == "" {
		return fmt.Errorf("%w: requester id is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Requester.Name) == "" {
		return fmt.Errorf("%w: requester name is required", ErrInvalidInput)
	}

	if !req.Requester.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Requester.Role)
	}

	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, ok := domain.SlotByID(req.Slot); !ok {
		return fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, req.Slot)
	}

	if strings.TrimSpace(req.Purpose) == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}

	if len(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose exceeds %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	if strings.TrimSpace(req.SupervisorName) == "" {
		return fmt.Errorf("%w: supervisor name is required", ErrInvalidInput)
	}

	if len(req.SupervisorName) > domain.MaxSupervisorNameLength {
		return fmt.Errorf("%w: supervisor name exceeds %d characters", ErrInvalidInput, domain.MaxSupervisorNameLength)
	}

	if req.Headcount < 0 {
		return fmt.Errorf("%w: headcount must be non-negative", ErrInvalidInput)
	}

	if req.Headcount > domain.MaxPartySize {
		return fmt.Errorf("%w: headcount exceeds %d", ErrInvalidInput, domain.MaxPartySize)
	}

	return nil
}

// resolveParty вычисляет полный размер группы и сохраняемый состав по роли
// заявителя.
//
// Обычная роль: Headcount - число именованных спутников, состав обязан
// содержать ровно Headcount записей с непустыми id и именем; сам заявитель -
// неявный "+1". Привилегированная роль: Headcount - число покрытых студентов
// (минимум 1), состав не требуется и не сохраняется.
//
// Дубликаты среди спутников - рекомендательная проверка: они возвращаются
// для логирования, но жёсткого отказа нет.
func resolveParty(req *Request) (partySize int, participants []domain.Participant, duplicates []domain.Participant, err error) {
	if req.Requester.Role.IsPrivileged() {
		if req.Headcount < 1 {
			return 0, nil, nil, fmt.Errorf("%w: headcount must be at least 1", ErrInvalidInput)
		}
		return req.Headcount, []domain.Participant{}, nil, nil
	}

	if len(req.Companions) != req.Headcount {
		return 0, nil, nil, fmt.Errorf("%w: expected %d companions, got %d",
			ErrInvalidInput, req.Headcount, len(req.Companions))
	}

	seen := make(map[domain.Participant]bool, len(req.Companions))
	for i, p := range req.Companions {
		if p.UserID == "" || strings.TrimSpace(p.Name) == "" {
			return 0, nil, nil, fmt.Errorf("%w: companion %d has empty id or name", ErrInvalidInput, i+1)
		}
		if seen[p] {
			duplicates = append(duplicates, p)
		}
		seen[p] = true
	}

	return 1 + req.Headcount, req.Companions, duplicates, nil
}
