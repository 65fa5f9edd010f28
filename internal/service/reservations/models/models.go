package models

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// Requester инициатор запроса к сервису
type Requester struct {
	ID   string
	Name string
	Role domain.Role
}

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	Requester Requester
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID    string // Чьи бронирования запрашиваются
	Requester Requester
}

// GetRoomReservationsRequest запрос на получение бронирований помещения за период
type GetRoomReservationsRequest struct {
	RoomID    string
	StartDate time.Time
	EndDate   time.Time
	Requester Requester
}

// Response модели

// ParticipantResponse участник бронирования
type ParticipantResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        int64  `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	RoomID    string `json:"roomId"`
	Date      string `json:"date"` // "2026-09-15"
	SlotID    string `json:"slotId"`
	PartySize int    `json:"partySize"`
	Status    string `json:"status"`

	Purpose        string                `json:"purpose"`
	SupervisorName string                `json:"supervisorName"`
	Participants   []ParticipantResponse `json:"participants"`

	// Денормализованные данные помещения
	RoomName string `json:"roomName"`
	Zone     string `json:"zone"`
	Floor    string `json:"floor"`

	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	participants := make([]ParticipantResponse, len(r.Participants))
	for i, p := range r.Participants {
		participants[i] = ParticipantResponse{UserID: p.UserID, Name: p.Name}
	}

	return &ReservationResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		UserName:       r.UserName,
		RoomID:         r.RoomID,
		Date:           r.Date.Format(domain.DateFormat),
		SlotID:         string(r.Slot),
		PartySize:      r.PartySize,
		Status:         string(r.Status),
		Purpose:        r.Purpose,
		SupervisorName: r.SupervisorName,
		Participants:   participants,
		RoomName:       r.RoomName,
		Zone:           r.Zone,
		Floor:          r.Floor,
		CreatedAt:      r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, r := range reservations {
		if dto := FromDomainReservation(r); dto != nil {
			resp.Reservations[i] = *dto
		}
	}

	return resp
}
