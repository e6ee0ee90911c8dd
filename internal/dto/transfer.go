package dto

import "time"

type TransferRequestDTO struct {
	To          string `json:"to" example:"annav"`
	Amount      int64  `json:"amount" example:"1000"`
	Description string `json:"description,omitempty" example:"lunch"`
}

type TransferResponseDTO struct {
	ID        int       `json:"id" example:"17"`
	Amount    int64     `json:"amount" example:"1000"`
	CreatedAt time.Time `json:"created_at" example:"2025-02-09T16:09:57+03:00"`
}
