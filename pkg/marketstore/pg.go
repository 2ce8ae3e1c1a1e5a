package marketstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/prediction-miniapp/pkg/market"
)

const sqlStateForeignKeyViolation = "23503"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the market store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) ListMarkets(ctx context.Context, filter market.ListFilter) ([]*market.Market, error) {
	page := filter.Page.Clamp()
	var daos []MarketDao

	query := s.db.NewSelect().Model(&daos)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	err := query.
		Order("created_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list markets: %w", err)
	}

	out := make([]*market.Market, 0, len(daos))
	for i := range daos {
		out = append(out, toMarket(&daos[i]))
	}
	return out, nil
}

func (s *pgStore) GetMarket(ctx context.Context, id uuid.UUID) (*market.Market, error) {
	dao := new(MarketDao)
	err := s.db.NewSelect().Model(dao).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMarketNotFound
		}
		return nil, fmt.Errorf("failed to get market: %w", err)
	}
	return toMarket(dao), nil
}

func (s *pgStore) CreateMarket(ctx context.Context, m *market.Market) error {
	dao := toMarketDao(m)
	_, err := s.db.NewInsert().
		Model(dao).
		Returning("created_at, updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create market: %w", err)
	}
	m.CreatedAt = dao.CreatedAt
	m.UpdatedAt = dao.UpdatedAt
	return nil
}

func (s *pgStore) ListComments(ctx context.Context, marketID uuid.UUID, page market.Page) ([]*market.Comment, error) {
	page = page.Clamp()
	var daos []CommentDao

	err := s.db.NewSelect().
		Model(&daos).
		Where("market_id = ?", marketID).
		Order("created_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	out := make([]*market.Comment, 0, len(daos))
	for i := range daos {
		out = append(out, toComment(&daos[i]))
	}
	return out, nil
}

// CreateComment inserts c. A market deleted in between surfaces as ErrMarketNotFound.
func (s *pgStore) CreateComment(ctx context.Context, c *market.Comment) error {
	dao := &CommentDao{
		ID:       c.ID,
		MarketID: c.MarketID,
		UserID:   c.UserID,
		Content:  c.Content,
	}
	_, err := s.db.NewInsert().
		Model(dao).
		Returning("created_at").
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == sqlStateForeignKeyViolation {
			return ErrMarketNotFound
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}
	c.CreatedAt = dao.CreatedAt
	return nil
}

func (s *pgStore) ListMarketPredictions(ctx context.Context, marketID uuid.UUID, page market.Page) ([]*market.Prediction, error) {
	return s.listPredictions(ctx, "market_id = ?", marketID, page)
}

func (s *pgStore) ListUserPredictions(ctx context.Context, userID uuid.UUID, page market.Page) ([]*market.Prediction, error) {
	return s.listPredictions(ctx, "user_id = ?", userID, page)
}

func (s *pgStore) listPredictions(ctx context.Context, where string, id uuid.UUID, page market.Page) ([]*market.Prediction, error) {
	page = page.Clamp()
	var daos []PredictionDao

	err := s.db.NewSelect().
		Model(&daos).
		Where(where, id).
		Order("created_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}

	out := make([]*market.Prediction, 0, len(daos))
	for i := range daos {
		out = append(out, toPrediction(&daos[i]))
	}
	return out, nil
}

func (s *pgStore) ListUserTransactions(ctx context.Context, userID uuid.UUID, page market.Page) ([]*market.Transaction, error) {
	page = page.Clamp()
	var daos []TransactionDao

	err := s.db.NewSelect().
		Model(&daos).
		Where("user_id = ?", userID).
		Order("created_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	out := make([]*market.Transaction, 0, len(daos))
	for i := range daos {
		out = append(out, toTransaction(&daos[i]))
	}
	return out, nil
}

// CloseExpiredMarkets moves open markets whose end date has passed to closed.
func (s *pgStore) CloseExpiredMarkets(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.NewUpdate().
		Model((*MarketDao)(nil)).
		Set("status = ?", string(market.StatusClosed)).
		Set("updated_at = ?", now).
		Where("status = ?", string(market.StatusOpen)).
		Where("end_date <= ?", now).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to close expired markets: %w", err)
	}
	return res.RowsAffected()
}
