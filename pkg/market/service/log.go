package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/pkg/market"
	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

const serviceName = "MarketService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the market Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// done logs failures at Error and successful calls at Debug.
func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Debug(method+" completed", fields...)
}

func (ls *logService) ListMarkets(ctx context.Context, filter market.ListFilter) (resp []*market.Market, err error) {
	defer func(start time.Time) {
		ls.done("ListMarkets", start, err,
			zap.String("status", string(filter.Status)),
			zap.String("category", filter.Category),
			zap.Int("limit", filter.Limit),
			zap.Int("offset", filter.Offset),
			zap.Int("count", len(resp)),
		)
	}(time.Now())
	return ls.svc.ListMarkets(ctx, filter)
}

func (ls *logService) GetMarket(ctx context.Context, id uuid.UUID) (resp *market.Market, err error) {
	defer func(start time.Time) {
		ls.done("GetMarket", start, err, zap.String("market_id", id.String()))
	}(time.Now())
	return ls.svc.GetMarket(ctx, id)
}

// CreateMarket wraps the service method with logging
func (ls *logService) CreateMarket(ctx context.Context, u *user.User, req *market.CreateMarketRequest) (resp *market.Market, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.done("CreateMarket", start, err,
				zap.String("user_id", u.ID.String()),
				zap.String("category", req.Category),
			)
			return
		}
		ls.logger.Info("CreateMarket completed",
			zap.String("service", serviceName),
			zap.String("method", "CreateMarket"),
			zap.String("user_id", u.ID.String()),
			zap.String("market_id", resp.ID.String()),
			zap.String("category", resp.Category),
			zap.Time("end_date", resp.EndDate),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.CreateMarket(ctx, u, req)
}

func (ls *logService) ListComments(ctx context.Context, marketID uuid.UUID, page market.Page) (resp []*market.Comment, err error) {
	defer func(start time.Time) {
		ls.done("ListComments", start, err, zap.String("market_id", marketID.String()), zap.Int("count", len(resp)))
	}(time.Now())
	return ls.svc.ListComments(ctx, marketID, page)
}

// CreateComment wraps the service method with logging
func (ls *logService) CreateComment(ctx context.Context, u *user.User, marketID uuid.UUID, req *market.CreateCommentRequest) (resp *market.Comment, err error) {
	defer func(start time.Time) {
		ls.done("CreateComment", start, err,
			zap.String("user_id", u.ID.String()),
			zap.String("market_id", marketID.String()),
			zap.Int("content_length", len(req.Content)),
		)
	}(time.Now())
	return ls.svc.CreateComment(ctx, u, marketID, req)
}

func (ls *logService) ListMarketPredictions(ctx context.Context, marketID uuid.UUID, page market.Page) (resp []*market.Prediction, err error) {
	defer func(start time.Time) {
		ls.done("ListMarketPredictions", start, err, zap.String("market_id", marketID.String()), zap.Int("count", len(resp)))
	}(time.Now())
	return ls.svc.ListMarketPredictions(ctx, marketID, page)
}

func (ls *logService) ListUserPredictions(ctx context.Context, userID uuid.UUID, page market.Page) (resp []*market.Prediction, err error) {
	defer func(start time.Time) {
		ls.done("ListUserPredictions", start, err, zap.String("user_id", userID.String()), zap.Int("count", len(resp)))
	}(time.Now())
	return ls.svc.ListUserPredictions(ctx, userID, page)
}

func (ls *logService) ListUserTransactions(ctx context.Context, userID uuid.UUID, page market.Page) (resp []*market.Transaction, err error) {
	defer func(start time.Time) {
		ls.done("ListUserTransactions", start, err, zap.String("user_id", userID.String()), zap.Int("count", len(resp)))
	}(time.Now())
	return ls.svc.ListUserTransactions(ctx, userID, page)
}
