package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/pkg/activity"
	activitymocks "github.com/chainsafe/prediction-miniapp/pkg/activity/mocks"
	apperrors "github.com/chainsafe/prediction-miniapp/pkg/app/errors"
	"github.com/chainsafe/prediction-miniapp/pkg/market"
	"github.com/chainsafe/prediction-miniapp/pkg/market/service/mocks"
	"github.com/chainsafe/prediction-miniapp/pkg/marketstore"
	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

var fixedNow = time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store    *mocks.Store
	recorder *activitymocks.Recorder
	svc      Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    mocks.NewStore(t),
		recorder: activitymocks.NewRecorder(t),
	}
	f.svc = NewService(f.store, f.recorder, func() time.Time { return fixedNow }, zap.NewNop())
	return f
}

func eligibleUser() *user.User {
	u := user.New("0x1111111111111111111111111111111111111111")
	u.IsProfileComplete = true
	u.IsEligible = true
	return u
}

func validMarketRequest() *market.CreateMarketRequest {
	return &market.CreateMarketRequest{
		Title:       "  Will BTC close above 100k?  ",
		Description: "Resolves on the daily close.",
		Category:    "Crypto",
		EndDate:     fixedNow.Add(72 * time.Hour),
	}
}

func TestMarketService_CreateMarket(t *testing.T) {
	f := newFixture(t)
	u := eligibleUser()

	f.store.EXPECT().
		CreateMarket(mock.Anything, mock.MatchedBy(func(m *market.Market) bool {
			return m.CreatorID == u.ID && m.Title == "Will BTC close above 100k?" &&
				m.Category == "crypto" && m.Status == market.StatusOpen && m.TotalPool.IsZero()
		})).
		Return(nil).Once()
	f.recorder.EXPECT().
		Audit(mock.Anything, mock.MatchedBy(func(e *activity.AuditEntry) bool {
			return e.Action == activity.ActionMarketCreated && e.UserID != nil && *e.UserID == u.ID
		})).
		Return().Once()
	f.recorder.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
			return a.Type == activity.TypeMarket && a.UserID == u.ID
		})).
		Return().Once()

	m, err := f.svc.CreateMarket(context.Background(), u, validMarketRequest())
	if err != nil {
		t.Fatalf("CreateMarket() failed: %v", err)
	}
	if m.ID == uuid.Nil || !m.EndDate.Equal(fixedNow.Add(72*time.Hour)) {
		t.Fatalf("unexpected market %+v", m)
	}
}

func TestMarketService_CreateMarket_Rejections(t *testing.T) {
	incomplete := eligibleUser()
	incomplete.IsProfileComplete = false
	ineligible := eligibleUser()
	ineligible.IsEligible = false

	past := validMarketRequest()
	past.EndDate = fixedNow.Add(-time.Minute)

	cases := []struct {
		name string
		u    *user.User
		req  *market.CreateMarketRequest
		cat  apperrors.Category
		msg  string
	}{
		{"incomplete profile", incomplete, validMarketRequest(), apperrors.CategoryForbidden, MsgProfileIncomplete},
		{"ineligible", ineligible, validMarketRequest(), apperrors.CategoryForbidden, MsgNotEligible},
		{"end date in past", eligibleUser(), past, apperrors.CategoryDataError, MsgEndDateInPast},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.CreateMarket(context.Background(), tc.u, tc.req)
			if !apperrors.Is(err, tc.cat) {
				t.Fatalf("expected category %s, got %v", tc.cat, err)
			}
			var svcErr *apperrors.ServiceError
			if !errors.As(err, &svcErr) || svcErr.Message != tc.msg {
				t.Fatalf("expected message %q, got %v", tc.msg, err)
			}
		})
	}
}

func TestMarketService_ListMarkets(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().
		ListMarkets(mock.Anything, market.ListFilter{Status: market.StatusOpen, Page: market.Page{Limit: market.MaxLimit}}).
		Return([]*market.Market{{ID: uuid.New()}}, nil).Once()

	got, err := f.svc.ListMarkets(context.Background(), market.ListFilter{Status: market.StatusOpen, Page: market.Page{Limit: 1000}})
	if err != nil {
		t.Fatalf("ListMarkets() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one market, got %d", len(got))
	}

	_, err = f.svc.ListMarkets(context.Background(), market.ListFilter{Status: "bogus"})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected bad request for unknown status, got %v", err)
	}
}

func TestMarketService_GetMarket_NotFound(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.store.EXPECT().GetMarket(mock.Anything, id).Return(nil, marketstore.ErrMarketNotFound).Once()

	_, err := f.svc.GetMarket(context.Background(), id)
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMarketService_CreateComment(t *testing.T) {
	f := newFixture(t)
	u := eligibleUser()
	marketID := uuid.New()

	f.store.EXPECT().
		CreateComment(mock.Anything, mock.MatchedBy(func(c *market.Comment) bool {
			return c.MarketID == marketID && c.UserID == u.ID && c.Content == "Looks likely"
		})).
		Return(nil).Once()
	f.recorder.EXPECT().Record(mock.Anything, mock.Anything).Return().Once()

	c, err := f.svc.CreateComment(context.Background(), u, marketID, &market.CreateCommentRequest{Content: " Looks likely \n"})
	if err != nil {
		t.Fatalf("CreateComment() failed: %v", err)
	}
	if c.Content != "Looks likely" {
		t.Fatalf("expected trimmed content, got %q", c.Content)
	}
}

func TestMarketService_CreateComment_Errors(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateComment(context.Background(), eligibleUser(), uuid.New(), &market.CreateCommentRequest{Content: "   "})
		if !apperrors.Is(err, apperrors.CategoryDataError) {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("unknown market", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().CreateComment(mock.Anything, mock.Anything).Return(marketstore.ErrMarketNotFound).Once()

		_, err := f.svc.CreateComment(context.Background(), eligibleUser(), uuid.New(), &market.CreateCommentRequest{Content: "hi"})
		if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestMarketService_ListComments_RequiresMarket(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.store.EXPECT().GetMarket(mock.Anything, id).Return(nil, marketstore.ErrMarketNotFound).Once()

	_, err := f.svc.ListComments(context.Background(), id, market.Page{})
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMarketService_ListUserTransactions_WrapsStoreError(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	boom := errors.New("connection refused")
	f.store.EXPECT().ListUserTransactions(mock.Anything, id, market.Page{Limit: market.DefaultLimit}).Return(nil, boom).Once()

	_, err := f.svc.ListUserTransactions(context.Background(), id, market.Page{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if !apperrors.IsInternalError(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
