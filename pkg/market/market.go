// Package market holds the prediction market domain types.
package market

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a market.
type Status string

const (
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusResolved  Status = "resolved"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known market status.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusResolved, StatusCancelled:
		return true
	}
	return false
}

// Outcome is a side of a binary market.
type Outcome string

const (
	OutcomeYes Outcome = "yes"
	OutcomeNo  Outcome = "no"
)

// Pagination bounds for every list endpoint.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page selects a window of a list.
type Page struct {
	Limit  int
	Offset int
}

// Clamp applies the default and maximum limit and drops negative offsets.
func (p Page) Clamp() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	p.Limit = min(p.Limit, MaxLimit)
	p.Offset = max(p.Offset, 0)
	return p
}

// ListFilter narrows ListMarkets. Empty fields match everything.
type ListFilter struct {
	Status   Status
	Category string
	Page
}

// Market is a binary prediction market.
type Market struct {
	ID               uuid.UUID       `json:"id"`
	CreatorID        uuid.UUID       `json:"creatorId"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	ImageURL         string          `json:"imageUrl,omitzero"`
	Status           Status          `json:"status"`
	Outcome          *Outcome        `json:"outcome"`
	EndDate          time.Time       `json:"endDate"`
	TotalPool        decimal.Decimal `json:"totalPool"`
	YesPool          decimal.Decimal `json:"yesPool"`
	NoPool           decimal.Decimal `json:"noPool"`
	ParticipantCount int             `json:"participantCount"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// PredictionStatus is the settlement state of a prediction.
type PredictionStatus string

const (
	PredictionPending  PredictionStatus = "pending"
	PredictionWon      PredictionStatus = "won"
	PredictionLost     PredictionStatus = "lost"
	PredictionRefunded PredictionStatus = "refunded"
)

// Prediction is a user's position on one side of a market.
type Prediction struct {
	ID              uuid.UUID        `json:"id"`
	MarketID        uuid.UUID        `json:"marketId"`
	UserID          uuid.UUID        `json:"userId"`
	Outcome         Outcome          `json:"outcome"`
	Amount          decimal.Decimal  `json:"amount"`
	Odds            decimal.Decimal  `json:"odds"`
	PotentialPayout decimal.Decimal  `json:"potentialPayout"`
	Status          PredictionStatus `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// TransactionType classifies a balance movement.
type TransactionType string

const (
	TxDeposit    TransactionType = "deposit"
	TxWithdrawal TransactionType = "withdrawal"
	TxWager      TransactionType = "wager"
	TxPayout     TransactionType = "payout"
	TxRefund     TransactionType = "refund"
)

// Transaction is a balance movement for a user.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"userId"`
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	TxHash       string          `json:"txHash,omitzero"`
	MarketID     *uuid.UUID      `json:"marketId,omitempty"`
	PredictionID *uuid.UUID      `json:"predictionId,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Comment is a user's remark on a market.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	MarketID  uuid.UUID `json:"marketId"`
	UserID    uuid.UUID `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateMarketRequest is the body of POST /markets.
type CreateMarketRequest struct {
	Title       string    `json:"title" validate:"required,min=5,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	Category    string    `json:"category" validate:"required,max=64"`
	ImageURL    string    `json:"imageUrl" validate:"omitempty,url,max=512"`
	EndDate     time.Time `json:"endDate" validate:"required"`
}

// CreateCommentRequest is the body of POST /markets/{id}/comments.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
