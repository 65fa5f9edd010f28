package create_reservation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-RoomReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "помещение не найдено"
	msgRoomRestricted     = "бронирование этого помещения доступно только преподавателям"
	msgRoomDisabled       = "помещение недоступно для бронирования"
	msgInvalidInput       = "некорректные данные бронирования"
	msgPastDate           = "нельзя забронировать прошедшую дату"
	msgSlotNotOffered     = "в выбранный день этот слот не предлагается"
	msgSlotStarted        = "выбранный слот уже начался"
	msgPartyTooSmall      = "размер группы меньше минимального для этого помещения"
	msgPartyTooLarge      = "размер группы больше максимального для этого помещения"
	msgNotEnoughCapacity  = "в выбранном слоте недостаточно свободных мест"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(session)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var disabledErr *createReservation.RoomDisabledError
		var minErr *createReservation.MinTeamSizeError
		var maxErr *createReservation.MaxTeamSizeError
		var capErr *createReservation.CapacityError

		switch {
		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: user_id=%s, room_id=%s", session.UserID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrRoomRestricted):
			h.logger.Warn("POST /reservations - Room restricted: user_id=%s, room_id=%s", session.UserID, req.RoomID)
			handlers.RespondForbidden(w, msgRoomRestricted)

		case errors.As(err, &disabledErr):
			h.logger.Warn("POST /reservations - Room disabled: user_id=%s, room_id=%s", session.UserID, req.RoomID)
			message := msgRoomDisabled
			if disabledErr.Reason != "" {
				message = disabledErr.Reason
			}
			handlers.RespondBadRequest(w, message)

		case errors.Is(err, createReservation.ErrRoomDisabled):
			h.logger.Warn("POST /reservations - Room disabled: user_id=%s, room_id=%s", session.UserID, req.RoomID)
			handlers.RespondBadRequest(w, msgRoomDisabled)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Past date: user_id=%s, date=%s", session.UserID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrSlotNotOffered):
			h.logger.Warn("POST /reservations - Slot not offered: user_id=%s, date=%s, slot=%s", session.UserID, req.Date, req.Slot)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, createReservation.ErrSlotAlreadyStarted):
			h.logger.Warn("POST /reservations - Slot already started: user_id=%s, date=%s, slot=%s", session.UserID, req.Date, req.Slot)
			handlers.RespondBadRequest(w, msgSlotStarted)

		case errors.As(err, &minErr):
			h.logger.Warn("POST /reservations - Party too small: user_id=%s, room_id=%s, min=%d", session.UserID, req.RoomID, minErr.Min)
			handlers.RespondBadRequest(w, fmt.Sprintf("%s (минимум %d)", msgPartyTooSmall, minErr.Min))

		case errors.As(err, &maxErr):
			h.logger.Warn("POST /reservations - Party too large: user_id=%s, room_id=%s, max=%d", session.UserID, req.RoomID, maxErr.Max)
			handlers.RespondBadRequest(w, fmt.Sprintf("%s (максимум %d)", msgPartyTooLarge, maxErr.Max))

		case errors.As(err, &capErr):
			h.logger.Warn("POST /reservations - Not enough capacity: user_id=%s, room_id=%s, remaining=%d", session.UserID, req.RoomID, capErr.Remaining)
			handlers.RespondError(w, http.StatusConflict, fmt.Sprintf("%s (осталось %d)", msgNotEnoughCapacity, capErr.Remaining))

		case errors.Is(err, createReservation.ErrNotEnoughCapacity):
			h.logger.Warn("POST /reservations - Not enough capacity: user_id=%s, room_id=%s", session.UserID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgNotEnoughCapacity)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, error=%v", session.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, room_id=%s, error=%v",
				session.UserID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%s, room_id=%s",
		result.ID, session.UserID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
