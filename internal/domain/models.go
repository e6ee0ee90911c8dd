package domain

import "time"

const (
	TransactionKindTransfer   = "transfer"
	TransactionKindRecharge   = "recharge"
	TransactionKindWithdrawal = "withdrawal"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Wallet keeps the balance in the smallest currency unit. One per user.
type Wallet struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}

// Transaction is an append-only ledger entry. Direction is encoded by which
// wallet reference is set, the amount is always positive.
type Transaction struct {
	ID               int       `db:"id"`
	Kind             string    `db:"kind"`
	Amount           int64     `db:"amount"`
	SenderWalletID   *int      `db:"sender_wallet_id"`
	ReceiverWalletID *int      `db:"receiver_wallet_id"`
	Description      string    `db:"description"`
	SettlementID     string    `db:"settlement_id"`
	CreatedAt        time.Time `db:"created_at"`
}

type MoneyRequest struct {
	ID          int       `db:"id"`
	RequesterID int       `db:"requester_id"`
	PayerID     int       `db:"payer_id"`
	Amount      int64     `db:"amount"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type RewardProfile struct {
	ID         int   `db:"id"`
	UserID     int   `db:"user_id"`
	Experience int64 `db:"experience"`
	Level      int   `db:"level"`
}
