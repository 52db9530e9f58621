package dto

import (
	"time"

	"github.com/DiogoFabricioAG/connect2/internal/models"
)

type EventResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Code        string             `json:"code"`
	Status      models.EventStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

type GuestResponse struct {
	ID          uint      `json:"id"`
	EventID     uint      `json:"event_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email,omitempty"`
	Company     string    `json:"company,omitempty"`
	Role        string    `json:"role,omitempty"`
	BadgeNumber *int      `json:"badge_number,omitempty"`
	PartnerID   *uint     `json:"partner_id,omitempty"`
	Found       bool      `json:"found"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoomResponse struct {
	ID      uint   `json:"id"`
	EventID uint   `json:"event_id"`
	Name    string `json:"name"`
	Topics  string `json:"topics,omitempty"`
}

type SearchGuestResponse struct {
	Found bool           `json:"found"`
	Guest *GuestResponse `json:"guest,omitempty"`
}

type AssignBadgesResponse struct {
	Assigned int `json:"assigned"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Code:        e.Code,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
	}
}

func ToGuestResponse(g *models.Guest) GuestResponse {
	return GuestResponse{
		ID:          g.ID,
		EventID:     g.EventID,
		FullName:    g.FullName,
		Email:       g.Email,
		Company:     g.Company,
		Role:        g.Role,
		BadgeNumber: g.BadgeNumber,
		PartnerID:   g.PartnerID,
		Found:       g.Found,
		CreatedAt:   g.CreatedAt,
	}
}

func ToRoomResponse(r *models.Room) RoomResponse {
	return RoomResponse{
		ID:      r.ID,
		EventID: r.EventID,
		Name:    r.Name,
		Topics:  r.Topics,
	}
}
