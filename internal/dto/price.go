package dto

type PriceResponseDTO struct {
	DurationMinutes   int     `json:"duration_minutes" example:"60"`
	ParticipantsCount int     `json:"participants_count" example:"1"`
	Price             float64 `json:"price" example:"1500"`
	Description       string  `json:"description,omitempty" example:"Individual 60 min"`
}
