package dto

import "time"

type RegisterMemberRequestDTO struct {
	ExternalID int64  `json:"external_id" example:"123456789"`
	FirstName  string `json:"first_name" example:"Ivan"`
	LastName   string `json:"last_name,omitempty" example:"Petrov"`
	Phone      string `json:"phone,omitempty" example:"+79991234567"`
}

type MemberResponseDTO struct {
	ID         int       `json:"id" example:"1"`
	ExternalID int64     `json:"external_id" example:"123456789"`
	FirstName  string    `json:"first_name" example:"Ivan"`
	LastName   string    `json:"last_name,omitempty" example:"Petrov"`
	Phone      string    `json:"phone,omitempty" example:"+79991234567"`
	IsActive   bool      `json:"is_active" example:"true"`
	CreatedAt  time.Time `json:"created_at" example:"2024-05-20T16:09:57+03:00"`
}
