package models

import "time"

type Guest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EventID     uint      `gorm:"not null;uniqueIndex:idx_guests_event_badge" json:"event_id"`
	FullName    string    `gorm:"not null" json:"full_name"`
	Email       string    `json:"email"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	BadgeNumber *int      `gorm:"uniqueIndex:idx_guests_event_badge" json:"badge_number,omitempty"`
	PartnerID   *uint     `json:"partner_id,omitempty"`
	Found       bool      `gorm:"not null;default:false" json:"found"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
