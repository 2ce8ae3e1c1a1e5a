package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/pkg/activity"
	apperrors "github.com/chainsafe/prediction-miniapp/pkg/app/errors"
	"github.com/chainsafe/prediction-miniapp/pkg/market"
	"github.com/chainsafe/prediction-miniapp/pkg/marketstore"
	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

// Client-facing messages.
const (
	MsgMarketNotFound    = "market not found"
	MsgProfileIncomplete = "complete your profile first"
	MsgNotEligible       = "your account is not eligible to create markets"
	MsgEndDateInPast     = "end date must be in the future"
	MsgEmptyComment      = "comment must not be empty"
)

// Store is the narrow data-access interface for markets.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	ListMarkets(ctx context.Context, filter market.ListFilter) ([]*market.Market, error)
	GetMarket(ctx context.Context, id uuid.UUID) (*market.Market, error)
	CreateMarket(ctx context.Context, m *market.Market) error
	ListComments(ctx context.Context, marketID uuid.UUID, page market.Page) ([]*market.Comment, error)
	CreateComment(ctx context.Context, c *market.Comment) error
	ListMarketPredictions(ctx context.Context, marketID uuid.UUID, page market.Page) ([]*market.Prediction, error)
	ListUserPredictions(ctx context.Context, userID uuid.UUID, page market.Page) ([]*market.Prediction, error)
	ListUserTransactions(ctx context.Context, userID uuid.UUID, page market.Page) ([]*market.Transaction, error)
}

// Service defines the interface for market operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	ListMarkets(ctx context.Context, filter market.ListFilter) ([]*market.Market, error)
	GetMarket(ctx context.Context, id uuid.UUID) (*market.Market, error)
	CreateMarket(ctx context.Context, u *user.User, req *market.CreateMarketRequest) (*market.Market, error)
	ListComments(ctx context.Context, marketID uuid.UUID, page market.Page) ([]*market.Comment, error)
	CreateComment(ctx context.Context, u *user.User, marketID uuid.UUID, req *market.CreateCommentRequest) (*market.Comment, error)
	ListMarketPredictions(ctx context.Context, marketID uuid.UUID, page market.Page) ([]*market.Prediction, error)
	ListUserPredictions(ctx context.Context, userID uuid.UUID, page market.Page) ([]*market.Prediction, error)
	ListUserTransactions(ctx context.Context, userID uuid.UUID, page market.Page) ([]*market.Transaction, error)
}

type marketService struct {
	store    Store
	recorder activity.Recorder
	now      func() time.Time
	logger   *zap.Logger
}

// NewService creates a new market service. A nil now uses time.Now.
func NewService(store Store, recorder activity.Recorder, now func() time.Time, logger *zap.Logger) Service {
	if now == nil {
		now = time.Now
	}
	return &marketService{
		store:    store,
		recorder: recorder,
		now:      now,
		logger:   logger,
	}
}

func (s *marketService) ListMarkets(ctx context.Context, filter market.ListFilter) ([]*market.Market, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperrors.BadRequestError(nil, "invalid status")
	}
	filter.Page = filter.Page.Clamp()

	markets, err := s.store.ListMarkets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list markets: %w", err)
	}
	return markets, nil
}

func (s *marketService) GetMarket(ctx context.Context, id uuid.UUID) (*market.Market, error) {
	m, err := s.store.GetMarket(ctx, id)
	if err != nil {
		if errors.Is(err, marketstore.ErrMarketNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, MsgMarketNotFound)
		}
		return nil, fmt.Errorf("failed to get market: %w", err)
	}
	return m, nil
}

// CreateMarket opens a new market. Only users with a completed, eligible profile may create one.
func (s *marketService) CreateMarket(ctx context.Context, u *user.User, req *market.CreateMarketRequest) (*market.Market, error) {
	if !u.IsProfileComplete {
		return nil, apperrors.ForbiddenError(nil, MsgProfileIncomplete)
	}
	if !u.IsEligible {
		return nil, apperrors.ForbiddenError(nil, MsgNotEligible)
	}

	now := s.now().UTC()
	if !req.EndDate.After(now) {
		return nil, apperrors.BadRequestError(nil, MsgEndDateInPast)
	}

	m := &market.Market{
		ID:          uuid.New(),
		CreatorID:   u.ID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.ToLower(strings.TrimSpace(req.Category)),
		ImageURL:    req.ImageURL,
		Status:      market.StatusOpen,
		EndDate:     req.EndDate.UTC(),
		TotalPool:   decimal.Zero,
		YesPool:     decimal.Zero,
		NoPool:      decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateMarket(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create market: %w", err)
	}

	s.recorder.Audit(ctx, &activity.AuditEntry{
		UserID: &u.ID,
		Action: activity.ActionMarketCreated,
		Details: map[string]any{
			"marketId": m.ID.String(),
			"category": m.Category,
			"endDate":  m.EndDate,
		},
	})
	s.recorder.Record(ctx, &activity.Activity{
		UserID:      u.ID,
		Type:        activity.TypeMarket,
		Title:       "Created a market",
		Description: m.Title,
		Metadata:    map[string]any{"marketId": m.ID.String()},
	})

	return m, nil
}

func (s *marketService) ListComments(ctx context.Context, marketID uuid.UUID, page market.Page) ([]*market.Comment, error) {
	if _, err := s.GetMarket(ctx, marketID); err != nil {
		return nil, err
	}

	comments, err := s.store.ListComments(ctx, marketID, page.Clamp())
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *marketService) CreateComment(ctx context.Context, u *user.User, marketID uuid.UUID, req *market.CreateCommentRequest) (*market.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.BadRequestError(nil, MsgEmptyComment)
	}

	c := &market.Comment{
		ID:       uuid.New(),
		MarketID: marketID,
		UserID:   u.ID,
		Content:  content,
	}
	if err := s.store.CreateComment(ctx, c); err != nil {
		if errors.Is(err, marketstore.ErrMarketNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, MsgMarketNotFound)
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.recorder.Record(ctx, &activity.Activity{
		UserID:   u.ID,
		Type:     activity.TypeComment,
		Title:    "Commented on a market",
		Metadata: map[string]any{"marketId": marketID.String(), "commentId": c.ID.String()},
	})

	return c, nil
}

func (s *marketService) ListMarketPredictions(ctx context.Context, marketID uuid.UUID, page market.Page) ([]*market.Prediction, error) {
	if _, err := s.GetMarket(ctx, marketID); err != nil {
		return nil, err
	}

	preds, err := s.store.ListMarketPredictions(ctx, marketID, page.Clamp())
	if err != nil {
		return nil, fmt.Errorf("failed to list market predictions: %w", err)
	}
	return preds, nil
}

func (s *marketService) ListUserPredictions(ctx context.Context, userID uuid.UUID, page market.Page) ([]*market.Prediction, error) {
	preds, err := s.store.ListUserPredictions(ctx, userID, page.Clamp())
	if err != nil {
		return nil, fmt.Errorf("failed to list user predictions: %w", err)
	}
	return preds, nil
}

func (s *marketService) ListUserTransactions(ctx context.Context, userID uuid.UUID, page market.Page) ([]*market.Transaction, error) {
	txs, err := s.store.ListUserTransactions(ctx, userID, page.Clamp())
	if err != nil {
		return nil, fmt.Errorf("failed to list user transactions: %w", err)
	}
	return txs, nil
}
