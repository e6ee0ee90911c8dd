package dto

import "time"

type CreateMoneyRequestDTO struct {
	From        string `json:"from" example:"annav"`
	Amount      int64  `json:"amount" example:"200"`
	Description string `json:"description,omitempty" example:"split the bill"`
}

type RespondMoneyRequestDTO struct {
	Action string `json:"action" example:"accept" enums:"accept,reject"`
}

type MoneyRequestResponseDTO struct {
	ID          int       `json:"id" example:"5"`
	RequesterID int       `json:"requester_id" example:"2"`
	PayerID     int       `json:"payer_id" example:"7"`
	Amount      int64     `json:"amount" example:"200"`
	Description string    `json:"description,omitempty" example:"split the bill"`
	Status      string    `json:"status" example:"pending"`
	CreatedAt   time.Time `json:"created_at" example:"2025-02-09T16:09:57+03:00"`
}
