package domain

import "time"

type TrainingRequest struct {
	MemberID          int
	DurationMinutes   int
	ParticipantsCount int
	CourtType         string
	CoachName         string
}

// SessionRecord is the outcome of a recorded training session.
type SessionRecord struct {
	SessionID         int
	SubscriptionID    int
	Price             float64
	Balance           float64
	DurationMinutes   int
	ParticipantsCount int
	CourtType         string
	CoachName         string
	StartedAt         time.Time
}

type TrainingHistoryItem struct {
	SessionID         int       `db:"training_session_id"`
	StartedAt         time.Time `db:"started_at"`
	DurationMinutes   int       `db:"duration_minutes"`
	ParticipantsCount int       `db:"participants_count"`
	AmountPaid        float64   `db:"amount_paid"`
	CourtType         string    `db:"court_type"`
	CoachName         string    `db:"coach_name"`
}

type Stats struct {
	Period         Period
	Since          time.Time
	Spent          float64
	TrainingsTotal int
	// ByParticipants maps group size to the number of trainings of that size.
	ByParticipants map[int]int
}
