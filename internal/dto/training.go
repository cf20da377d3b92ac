package dto

type RecordTrainingRequestDTO struct {
	DurationMinutes   int    `json:"duration_minutes" example:"60"`
	ParticipantsCount int    `json:"participants_count" example:"1"`
	CourtType         string `json:"court_type,omitempty" example:"hard"`
	CoachName         string `json:"coach_name,omitempty" example:"Anna"`
}

type RecordTrainingResponseDTO struct {
	SessionID         int     `json:"session_id" example:"42"`
	SubscriptionID    int     `json:"subscription_id" example:"1"`
	Price             float64 `json:"price" example:"1500"`
	Balance           float64 `json:"balance" example:"500"`
	DurationMinutes   int     `json:"duration_minutes" example:"60"`
	ParticipantsCount int     `json:"participants_count" example:"1"`
	StartedAt         string  `json:"started_at" example:"2024-05-20T18:30:00+03:00"`
	CourtType         string  `json:"court_type,omitempty" example:"hard"`
	CoachName         string  `json:"coach_name,omitempty" example:"Anna"`
}

type TrainingHistoryResponseDTO struct {
	SessionID         int     `json:"session_id" example:"42"`
	StartedAt         string  `json:"started_at" example:"2024-05-20T18:30:00+03:00"`
	DurationMinutes   int     `json:"duration_minutes" example:"60"`
	ParticipantsCount int     `json:"participants_count" example:"1"`
	AmountPaid        float64 `json:"amount_paid" example:"1500"`
	CourtType         string  `json:"court_type,omitempty" example:"hard"`
	CoachName         string  `json:"coach_name,omitempty" example:"Anna"`
}
