package dto

import "time"

type WalletResponseDTO struct {
	Balance int64 `json:"balance" example:"15000"`
}

type RechargeRequestDTO struct {
	Voucher string `json:"voucher" example:"2377225624"`
	Amount  int64  `json:"amount" example:"5000"`
}

type WithdrawRequestDTO struct {
	Amount      int64  `json:"amount" example:"2500"`
	Description string `json:"description,omitempty" example:"ATM cash out"`
}

type TransactionResponseDTO struct {
	ID               int       `json:"id" example:"17"`
	Kind             string    `json:"kind" example:"transfer"`
	Amount           int64     `json:"amount" example:"1000"`
	SenderWalletID   *int      `json:"sender_wallet_id,omitempty" example:"3"`
	ReceiverWalletID *int      `json:"receiver_wallet_id,omitempty" example:"8"`
	Description      string    `json:"description,omitempty" example:"lunch"`
	CreatedAt        time.Time `json:"created_at" example:"2025-02-09T16:09:57+03:00"`
}

type RewardResponseDTO struct {
	Experience int64 `json:"experience" example:"125"`
	Level      int   `json:"level" example:"1"`
}
