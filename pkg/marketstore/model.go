package marketstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/prediction-miniapp/pkg/market"
)

// MarketDao is a data access object that maps directly to the 'markets' table in PostgreSQL.
type MarketDao struct {
	bun.BaseModel `bun:"table:markets,alias:m"`

	ID               uuid.UUID       `bun:"id,pk,type:uuid"`
	CreatorID        uuid.UUID       `bun:"creator_id,notnull,type:uuid"`
	Title            string          `bun:"title,notnull,type:varchar(200)"`
	Description      string          `bun:"description,notnull,type:varchar(2000),default:''"`
	Category         string          `bun:"category,notnull,type:varchar(64)"`
	ImageURL         *string         `bun:"image_url,type:varchar(512)"`
	Status           string          `bun:"status,notnull,type:varchar(16),default:'open'"`
	Outcome          *string         `bun:"outcome,type:varchar(8)"`
	EndDate          time.Time       `bun:"end_date,notnull"`
	TotalPool        decimal.Decimal `bun:"total_pool,notnull,type:numeric(38,18),default:0"`
	YesPool          decimal.Decimal `bun:"yes_pool,notnull,type:numeric(38,18),default:0"`
	NoPool           decimal.Decimal `bun:"no_pool,notnull,type:numeric(38,18),default:0"`
	ParticipantCount int             `bun:"participant_count,notnull,default:0"`
	CreatedAt        time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt        time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// PredictionDao is a data access object that maps directly to the 'predictions' table in PostgreSQL.
type PredictionDao struct {
	bun.BaseModel `bun:"table:predictions,alias:p"`

	ID              uuid.UUID       `bun:"id,pk,type:uuid"`
	MarketID        uuid.UUID       `bun:"market_id,notnull,type:uuid"`
	UserID          uuid.UUID       `bun:"user_id,notnull,type:uuid"`
	Outcome         string          `bun:"outcome,notnull,type:varchar(8)"`
	Amount          decimal.Decimal `bun:"amount,notnull,type:numeric(38,18)"`
	Odds            decimal.Decimal `bun:"odds,notnull,type:numeric(38,18)"`
	PotentialPayout decimal.Decimal `bun:"potential_payout,notnull,type:numeric(38,18)"`
	Status          string          `bun:"status,notnull,type:varchar(16),default:'pending'"`
	CreatedAt       time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// TransactionDao is a data access object that maps directly to the 'transactions' table in PostgreSQL.
type TransactionDao struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`

	ID           uuid.UUID       `bun:"id,pk,type:uuid"`
	UserID       uuid.UUID       `bun:"user_id,notnull,type:uuid"`
	Type         string          `bun:"type,notnull,type:varchar(16)"`
	Amount       decimal.Decimal `bun:"amount,notnull,type:numeric(38,18)"`
	Status       string          `bun:"status,notnull,type:varchar(16)"`
	TxHash       *string         `bun:"tx_hash,type:varchar(66)"`
	MarketID     *uuid.UUID      `bun:"market_id,type:uuid"`
	PredictionID *uuid.UUID      `bun:"prediction_id,type:uuid"`
	CreatedAt    time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// CommentDao is a data access object that maps directly to the 'comments' table in PostgreSQL.
type CommentDao struct {
	bun.BaseModel `bun:"table:comments,alias:c"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	MarketID  uuid.UUID `bun:"market_id,notnull,type:uuid"`
	UserID    uuid.UUID `bun:"user_id,notnull,type:uuid"`
	Content   string    `bun:"content,notnull,type:varchar(1000)"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toMarketDao(m *market.Market) *MarketDao {
	dao := &MarketDao{
		ID:               m.ID,
		CreatorID:        m.CreatorID,
		Title:            m.Title,
		Description:      m.Description,
		Category:         m.Category,
		Status:           string(m.Status),
		EndDate:          m.EndDate,
		TotalPool:        m.TotalPool,
		YesPool:          m.YesPool,
		NoPool:           m.NoPool,
		ParticipantCount: m.ParticipantCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.ImageURL != "" {
		dao.ImageURL = &m.ImageURL
	}
	if m.Outcome != nil {
		o := string(*m.Outcome)
		dao.Outcome = &o
	}
	return dao
}

func toMarket(dao *MarketDao) *market.Market {
	m := &market.Market{
		ID:               dao.ID,
		CreatorID:        dao.CreatorID,
		Title:            dao.Title,
		Description:      dao.Description,
		Category:         dao.Category,
		Status:           market.Status(dao.Status),
		EndDate:          dao.EndDate,
		TotalPool:        dao.TotalPool,
		YesPool:          dao.YesPool,
		NoPool:           dao.NoPool,
		ParticipantCount: dao.ParticipantCount,
		CreatedAt:        dao.CreatedAt,
		UpdatedAt:        dao.UpdatedAt,
	}
	if dao.ImageURL != nil {
		m.ImageURL = *dao.ImageURL
	}
	if dao.Outcome != nil {
		o := market.Outcome(*dao.Outcome)
		m.Outcome = &o
	}
	return m
}

func toPrediction(dao *PredictionDao) *market.Prediction {
	return &market.Prediction{
		ID:              dao.ID,
		MarketID:        dao.MarketID,
		UserID:          dao.UserID,
		Outcome:         market.Outcome(dao.Outcome),
		Amount:          dao.Amount,
		Odds:            dao.Odds,
		PotentialPayout: dao.PotentialPayout,
		Status:          market.PredictionStatus(dao.Status),
		CreatedAt:       dao.CreatedAt,
		UpdatedAt:       dao.UpdatedAt,
	}
}

func toTransaction(dao *TransactionDao) *market.Transaction {
	tx := &market.Transaction{
		ID:           dao.ID,
		UserID:       dao.UserID,
		Type:         market.TransactionType(dao.Type),
		Amount:       dao.Amount,
		Status:       dao.Status,
		MarketID:     dao.MarketID,
		PredictionID: dao.PredictionID,
		CreatedAt:    dao.CreatedAt,
	}
	if dao.TxHash != nil {
		tx.TxHash = *dao.TxHash
	}
	return tx
}

func toComment(dao *CommentDao) *market.Comment {
	return &market.Comment{
		ID:        dao.ID,
		MarketID:  dao.MarketID,
		UserID:    dao.UserID,
		Content:   dao.Content,
		CreatedAt: dao.CreatedAt,
	}
}
