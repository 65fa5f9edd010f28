package create_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomNotFound возвращается, когда помещение не найдено в справочнике
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустые обязательные поля, неизвестная роль или слот, некорректный состав)
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается при попытке забронировать прошедший день
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrSlotNotOffered возвращается, когда слот не предлагается в этот день недели
	ErrSlotNotOffered = errors.New("create_reservation: slot is not offered on this day")

	// ErrSlotAlreadyStarted возвращается, когда слот сегодняшнего дня уже начался
	// (привилегированные роли обходят эту проверку)
	ErrSlotAlreadyStarted = errors.New("create_reservation: slot has already started")

	// ErrRoomRestricted возвращается, когда помещение доступно только
	// привилегированным ролям. Имеет приоритет над ErrRoomDisabled.
	ErrRoomRestricted = errors.New("create_reservation: room is restricted")

	// ErrRoomDisabled возвращается, когда помещение отключено
	ErrRoomDisabled = errors.New("create_reservation: room is disabled")

	// ErrPartyTooSmall возвращается, когда размер группы меньше минимального
	ErrPartyTooSmall = errors.New("create_reservation: party is below minimum team size")

	// ErrPartyTooLarge возвращается, когда размер группы больше максимального
	ErrPartyTooLarge = errors.New("create_reservation: party is above maximum team size")

	// ErrNotEnoughCapacity возвращается, когда в слоте не хватает мест
	ErrNotEnoughCapacity = errors.New("create_reservation: not enough remaining capacity")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// RoomDisabledError отказ с настроенной в справочнике причиной отключения
type RoomDisabledError struct {
	Reason string
}

func (e *RoomDisabledError) Error() string {
	if e.Reason == "" {
		return ErrRoomDisabled.Error()
	}
	return fmt.Sprintf("%v: %s", ErrRoomDisabled, e.Reason)
}

func (e *RoomDisabledError) Unwrap() error {
	return ErrRoomDisabled
}

// MinTeamSizeError отказ с указанием минимального размера команды
type MinTeamSizeError struct {
	Min int
}

func (e *MinTeamSizeError) Error() string {
	return fmt.Sprintf("%v: minimum team size is %d", ErrPartyTooSmall, e.Min)
}

func (e *MinTeamSizeError) Unwrap() error {
	return ErrPartyTooSmall
}

// MaxTeamSizeError отказ с указанием максимального размера команды
type MaxTeamSizeError struct {
	Max int
}

func (e *MaxTeamSizeError) Error() string {
	return fmt.Sprintf("%v: maximum team size is %d", ErrPartyTooLarge, e.Max)
}

func (e *MaxTeamSizeError) Unwrap() error {
	return ErrPartyTooLarge
}

// CapacityError отказ с указанием точного остатка мест в слоте
type CapacityError struct {
	Remaining int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: only %d spots remaining", ErrNotEnoughCapacity, e.Remaining)
}

func (e *CapacityError) Unwrap() error {
	return ErrNotEnoughCapacity
}
