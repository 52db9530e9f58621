package dto

type GuestInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type CreateEventRequest struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description"`
	Guests      []GuestInput `json:"guests"`
}

type RegisterGuestRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Role     string `json:"role"`
}

// UpdateGuestRequest carries a partial profile update; nil fields are left
// untouched.
type UpdateGuestRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Company  *string `json:"company"`
	Role     *string `json:"role"`
}

type SearchGuestRequest struct {
	EventID     uint   `json:"event_id"`
	EventCode   string `json:"event_code"`
	BadgeNumber int    `json:"badge_number"`
	MarkFound   bool   `json:"mark_found"`
}

type CreateRoomsRequest struct {
	Count  int    `json:"count"`
	Prefix string `json:"prefix"`
}

type StartEventRequest struct {
	EventID     uint   `json:"event_id"`
	EventCode   string `json:"event_code"`
	MinRoomSize int    `json:"min_room_size"`
	MaxRoomSize int    `json:"max_room_size"`
}
