package get_room_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/reservations/models"
)

const (
	msgInvalidRoomID    = "некорректный идентификатор помещения"
	msgInvalidDateRange = "некорректный период, ожидаются startDate и endDate в формате YYYY-MM-DD"
	msgAccessDenied     = "просмотр бронирований помещения доступен только преподавателям"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/reservations?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	vars := mux.Vars(r)
	roomID := vars["roomId"]
	if roomID == "" {
		h.logger.Warn("GET /rooms/{roomId}/reservations - Empty room ID")
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/reservations - Invalid start date: %s", query.Get("startDate"))
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}
	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/reservations - Invalid end date: %s", query.Get("endDate"))
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	req := &models.GetRoomReservationsRequest{
		RoomID:    roomID,
		StartDate: startDate,
		EndDate:   endDate,
		Requester: models.Requester{
			ID:   session.UserID,
			Name: session.UserName,
			Role: session.Role,
		},
	}

	result, err := h.service.GetRoomReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /rooms/{roomId}/reservations - Access denied: room_id=%s, user_id=%s", roomID, session.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomId}/reservations - Invalid input: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /rooms/{roomId}/reservations - Failed to get reservations: room_id=%s, user_id=%s, error=%v",
				roomID, session.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
