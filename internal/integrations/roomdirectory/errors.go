package roomdirectory

import "errors"

var (
	// ErrRoomNotFound возвращается, когда помещение не найдено в справочнике
	ErrRoomNotFound = errors.New("room not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("roomdirectory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("roomdirectory client: invalid response")
)
