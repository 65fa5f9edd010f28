package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-RoomReservationService/internal/usecase/create_reservation"
)

// ParticipantPayload участник группы в HTTP моделях
type ParticipantPayload struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID         string               `json:"roomId"`
	Date           string               `json:"date"` // "2026-09-14"
	Slot           string               `json:"slot"` // "slot_1" .. "slot_4"
	Headcount      int                  `json:"headcount"`
	Companions     []ParticipantPayload `json:"companions,omitempty"`
	Purpose        string               `json:"purpose"`
	SupervisorName string               `json:"supervisorName"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             int64                `json:"id"`
	UserID         string               `json:"userId"`
	UserName       string               `json:"userName"`
	RoomID         string               `json:"roomId"`
	RoomName       string               `json:"roomName"`
	Zone           string               `json:"zone"`
	Floor          string               `json:"floor"`
	Date           string               `json:"date"`
	Slot           string               `json:"slot"`
	PartySize      int                  `json:"partySize"`
	Purpose        string               `json:"purpose"`
	SupervisorName string               `json:"supervisorName"`
	Status         string               `json:"status"`
	Participants   []ParticipantPayload `json:"participants"`
	CreatedAt      string               `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(session middleware.Session) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	companions := make([]domain.Participant, 0, len(r.Companions))
	for _, c := range r.Companions {
		companions = append(companions, domain.Participant{
			UserID: c.UserID,
			Name:   c.Name,
		})
	}

	return &createReservation.Request{
		Requester: createReservation.Requester{
			ID:   session.UserID,
			Name: session.UserName,
			Role: session.Role,
		},
		RoomID:         r.RoomID,
		Date:           date,
		Slot:           domain.SlotID(r.Slot),
		Headcount:      r.Headcount,
		Companions:     companions,
		Purpose:        r.Purpose,
		SupervisorName: r.SupervisorName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	participants := make([]ParticipantPayload, 0, len(resp.Participants))
	for _, p := range resp.Participants {
		participants = append(participants, ParticipantPayload{
			UserID: p.UserID,
			Name:   p.Name,
		})
	}

	return &ReservationResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		UserName:       resp.UserName,
		RoomID:         resp.RoomID,
		RoomName:       resp.RoomName,
		Zone:           resp.Zone,
		Floor:          resp.Floor,
		Date:           resp.Date.Format(domain.DateFormat),
		Slot:           string(resp.Slot),
		PartySize:      resp.PartySize,
		Purpose:        resp.Purpose,
		SupervisorName: resp.SupervisorName,
		Status:         resp.Status,
		Participants:   participants,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
