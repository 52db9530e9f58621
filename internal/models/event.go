package models

import "time"

type EventStatus string

const (
	StatusDraft EventStatus = "draft"
	StatusLive  EventStatus = "live"
	StatusEnded EventStatus = "ended"
)

type Event struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Title       string      `gorm:"not null" json:"title"`
	Description string      `json:"description"`
	Code        string      `gorm:"size:12;uniqueIndex" json:"code"`
	Status      EventStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
