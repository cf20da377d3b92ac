package dto

type StatsResponseDTO struct {
	Period         string         `json:"period" example:"month"`
	Since          string         `json:"since" example:"2024-05-01T00:00:00+03:00"`
	Spent          float64        `json:"spent" example:"3900"`
	TrainingsTotal int            `json:"trainings_total" example:"4"`
	ByParticipants map[string]int `json:"by_participants"`
}
