package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExhausted SubscriptionStatus = "exhausted"
	SubscriptionClosed    SubscriptionStatus = "closed"
)

type TransactionType string

const TransactionTraining TransactionType = "training"

type Member struct {
	ID         int       `db:"id"`
	ExternalID int64     `db:"external_id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Phone      string    `db:"phone"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
}

type Subscription struct {
	ID             int                `db:"id"`
	MemberID       int                `db:"member_id"`
	Number         string             `db:"number"`
	InitialAmount  float64            `db:"initial_amount"`
	CurrentBalance float64            `db:"current_balance"`
	StartDate      time.Time          `db:"start_date"`
	EndDate        *time.Time         `db:"end_date"`
	Status         SubscriptionStatus `db:"status"`
	CreatedAt      time.Time          `db:"created_at"`
}

type PricePoint struct {
	ID                int     `db:"id"`
	DurationMinutes   int     `db:"duration_minutes"`
	ParticipantsCount int     `db:"participants_count"`
	Price             float64 `db:"price"`
	Description       string  `db:"description"`
	IsActive          bool    `db:"is_active"`
}

type TrainingSession struct {
	ID              int       `db:"id"`
	StartedAt       time.Time `db:"started_at"`
	DurationMinutes int       `db:"duration_minutes"`
	CourtType       string    `db:"court_type"`
	CoachName       string    `db:"coach_name"`
	Notes           string    `db:"notes"`
	CreatedAt       time.Time `db:"created_at"`
}

// Participation captures the price paid and the group size at booking time,
// so later price table changes never rewrite history.
type Participation struct {
	ID                int       `db:"id"`
	SessionID         int       `db:"training_session_id"`
	MemberID          int       `db:"member_id"`
	SubscriptionID    int       `db:"subscription_id"`
	AmountPaid        float64   `db:"amount_paid"`
	ParticipantsCount int       `db:"participants_count"`
	CreatedAt         time.Time `db:"created_at"`
}

type Transaction struct {
	ID             int             `db:"id"`
	MemberID       int             `db:"member_id"`
	SubscriptionID int             `db:"subscription_id"`
	SessionID      *int            `db:"training_session_id"`
	Type           TransactionType `db:"transaction_type"`
	Amount         float64         `db:"amount"`
	Description    string          `db:"description"`
	CreatedAt      time.Time       `db:"created_at"`
}
