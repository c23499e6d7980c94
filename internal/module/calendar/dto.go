package calendar

// EventInput is the payload for creating or updating a calendar event.
// Times are RFC 3339; all-day events conventionally span midnight to
// midnight.
type EventInput struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	StartsAt    string `json:"starts_at" binding:"required"`
	EndsAt      string `json:"ends_at" binding:"required"`
	AllDay      bool   `json:"all_day"`
}
