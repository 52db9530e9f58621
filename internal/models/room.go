package models

import "time"

type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	Name      string    `gorm:"not null" json:"name"`
	Topics    string    `json:"topics"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoomParticipant links one guest to one room. The (room_id, guest_id) pair
// is unique so re-writing the same membership is a no-op.
type RoomParticipant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"not null;uniqueIndex:idx_room_participants_room_guest" json:"room_id"`
	GuestID   uint      `gorm:"not null;uniqueIndex:idx_room_participants_room_guest" json:"guest_id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}
