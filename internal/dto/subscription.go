package dto

type CreateSubscriptionRequestDTO struct {
	Number string  `json:"number" example:"A-100"`
	Amount float64 `json:"amount" example:"2000"`
}

type SubscriptionResponseDTO struct {
	ID             int     `json:"id" example:"1"`
	Number         string  `json:"number" example:"A-100"`
	InitialAmount  float64 `json:"initial_amount" example:"2000"`
	CurrentBalance float64 `json:"current_balance" example:"500"`
	StartDate      string  `json:"start_date" example:"2024-05-20"`
	EndDate        string  `json:"end_date,omitempty" example:"2024-08-20"`
	Status         string  `json:"status" example:"active"`
}

type BalanceResponseDTO struct {
	SubscriptionID int     `json:"subscription_id" example:"1"`
	Number         string  `json:"number" example:"A-100"`
	Current        float64 `json:"current" example:"500"`
	Initial        float64 `json:"initial" example:"2000"`
}
