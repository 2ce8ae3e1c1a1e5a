package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/pkg/activity"
	"github.com/chainsafe/prediction-miniapp/pkg/auth"
	"github.com/chainsafe/prediction-miniapp/pkg/streak"
	"github.com/chainsafe/prediction-miniapp/pkg/streak/service/mocks"
	"github.com/chainsafe/prediction-miniapp/pkg/user"
	"github.com/chainsafe/prediction-miniapp/pkg/userstore"
)

type testServer struct {
	handler  http.Handler
	svc      *mocks.Service
	users    *mocks.Store
	sessions *auth.Sessions
}

func newStreakTestServer(t *testing.T) *testServer {
	t.Helper()

	tokens, err := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() failed: %v", err)
	}
	ts := &testServer{svc: mocks.NewService(t), users: mocks.NewStore(t)}
	ts.sessions = auth.NewSessions(tokens, ts.users, "session", false)

	r := chi.NewRouter()
	RegisterRoutes(r, ts.svc, ts.sessions, zap.NewNop())
	ts.handler = r
	return ts
}

func (ts *testServer) do(t *testing.T, method, target string, u *user.User) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if u != nil {
		token, _, err := ts.sessions.Issue(u, time.Now())
		if err != nil {
			t.Fatalf("Issue() failed: %v", err)
		}
		ts.users.EXPECT().GetUserByID(mock.Anything, u.ID).Return(u, nil).Maybe()
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestStreakHTTP_CheckIn(t *testing.T) {
	ts := newStreakTestServer(t)
	u := user.New("0x1111111111111111111111111111111111111111")

	ts.svc.EXPECT().UpdateStreak(mock.Anything, u.ID).Return(&streak.Update{
		CurrentStreak:  4,
		LongestStreak:  6,
		TotalVisitDays: 12,
		IsNewDay:       true,
		Event:          streak.EventContinued,
	}, nil).Once()

	rec := ts.do(t, http.MethodPost, "/activity/daily", u)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			CurrentStreak  int    `json:"currentStreak"`
			LongestStreak  int    `json:"longestStreak"`
			TotalVisitDays int    `json:"totalVisitDays"`
			IsNewDay       bool   `json:"isNewDay"`
			StreakBroken   bool   `json:"streakBroken"`
			Message        string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !body.Success || body.Data.CurrentStreak != 4 || body.Data.TotalVisitDays != 12 || !body.Data.IsNewDay {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.Data.Message != "Streak continued! You're on a 4-day streak!" {
		t.Fatalf("unexpected message %q", body.Data.Message)
	}
}

func TestStreakHTTP_RequiresSession(t *testing.T) {
	ts := newStreakTestServer(t)

	for _, tc := range []struct {
		method, target string
	}{
		{http.MethodPost, "/activity/daily"},
		{http.MethodGet, "/activity/daily"},
		{http.MethodGet, "/activity/feed"},
	} {
		rec := ts.do(t, tc.method, tc.target, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected status %d, got %d", tc.method, tc.target, http.StatusUnauthorized, rec.Code)
		}
	}
}

func TestStreakHTTP_DeletedUser(t *testing.T) {
	ts := newStreakTestServer(t)
	ghost := user.New("0x2222222222222222222222222222222222222222")

	token, _, err := ts.sessions.Issue(ghost, time.Now())
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	ts.users.EXPECT().GetUserByID(mock.Anything, ghost.ID).Return(nil, userstore.ErrUserNotFound).Times(2)

	for _, tc := range []struct {
		method     string
		wantStatus int
	}{
		{http.MethodPost, http.StatusUnauthorized},
		{http.MethodGet, http.StatusNotFound},
	} {
		req := httptest.NewRequest(tc.method, "/activity/daily", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
		rec := httptest.NewRecorder()
		ts.handler.ServeHTTP(rec, req)

		if rec.Code != tc.wantStatus {
			t.Fatalf("%s /activity/daily: expected status %d, got %d", tc.method, tc.wantStatus, rec.Code)
		}
	}
}

func TestStreakHTTP_Stats(t *testing.T) {
	ts := newStreakTestServer(t)
	u := user.New("0x1111111111111111111111111111111111111111")

	ts.svc.EXPECT().GetStreakStats(mock.Anything, u.ID).Return(&streak.Stats{
		CurrentStreak: 2, LongestStreak: 3, TotalVisitDays: 5, IsActiveToday: true,
	}, nil).Once()

	rec := ts.do(t, http.MethodGet, "/activity/daily", u)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var body struct {
		Success bool         `json:"success"`
		Data    streak.Stats `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !body.Success || !body.Data.IsActiveToday || body.Data.CurrentStreak != 2 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestStreakHTTP_Feed(t *testing.T) {
	ts := newStreakTestServer(t)
	u := user.New("0x1111111111111111111111111111111111111111")

	ts.svc.EXPECT().ListFeed(mock.Anything, u.ID, 5).Return([]*activity.Activity{
		{UserID: u.ID, Type: activity.TypeStreak, Title: "First streak day"},
	}, nil).Once()

	rec := ts.do(t, http.MethodGet, "/activity/feed?limit=5", u)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	rec = ts.do(t, http.MethodGet, "/activity/feed?limit=abc", u)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for bad limit, got %d", http.StatusBadRequest, rec.Code)
	}
}
