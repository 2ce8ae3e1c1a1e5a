package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/prediction-miniapp/pkg/app/errors"
	"github.com/chainsafe/prediction-miniapp/pkg/auth"
	"github.com/chainsafe/prediction-miniapp/pkg/user"
	"github.com/chainsafe/prediction-miniapp/pkg/user/service/mocks"
	"github.com/chainsafe/prediction-miniapp/pkg/userstore"
)

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type testServer struct {
	handler  http.Handler
	svc      *mocks.Service
	store    *mocks.Store
	sessions *auth.Sessions
}

func newUserTestServer(t *testing.T) *testServer {
	t.Helper()

	tokens, err := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() failed: %v", err)
	}
	ts := &testServer{svc: mocks.NewService(t), store: mocks.NewStore(t)}
	ts.sessions = auth.NewSessions(tokens, ts.store, "session", false)

	r := chi.NewRouter()
	RegisterRoutes(r, ts.svc, ts.sessions, zap.NewNop())
	ts.handler = r
	return ts
}

func (ts *testServer) login(t *testing.T, u *user.User) *http.Cookie {
	t.Helper()
	token, _, err := ts.sessions.Issue(u, time.Now())
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	ts.store.EXPECT().GetUserByID(mock.Anything, u.ID).Return(u, nil).Maybe()
	return &http.Cookie{Name: "session", Value: token}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestUserHTTP_SignIn_SetsSessionCookie(t *testing.T) {
	ts := newUserTestServer(t)
	u := user.New("0x1111111111111111111111111111111111111111")
	exp := time.Now().Add(time.Hour)

	ts.svc.EXPECT().
		SignIn(mock.Anything, &user.SignInRequest{Message: "msg", Signature: "0xsig"}).
		Return(&user.SignInResult{User: u, IsNewUser: true, Token: "signed-token", ExpiresAt: exp}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/siwe", bytes.NewBufferString(`{"message":"msg","signature":"0xsig"}`))
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "session" || cookies[0].Value != "signed-token" || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookies %+v", cookies)
	}

	var got struct {
		Success   bool         `json:"success"`
		User      user.Profile `json:"user"`
		IsNewUser bool         `json:"isNewUser"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Success || !got.IsNewUser || got.User.WalletAddress != u.WalletAddress {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestUserHTTP_SignIn_MissingFields(t *testing.T) {
	ts := newUserTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/siwe", bytes.NewBufferString(`{"message":"msg"}`))
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeError(t, rec); got.Message != "invalid field: Signature" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestUserHTTP_Logout_ClearsCookie(t *testing.T) {
	ts := newUserTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired session cookie, got %+v", cookies)
	}
}

func TestUserHTTP_Nonce(t *testing.T) {
	ts := newUserTestServer(t)
	ts.svc.EXPECT().IssueNonce(mock.Anything).
		Return(&user.NonceResponse{Nonce: "abcDEF123456", ExpiresAt: time.Now().Add(time.Minute)}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/auth/nonce", nil)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var got struct {
		Success bool   `json:"success"`
		Nonce   string `json:"nonce"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if rec.Code != http.StatusOK || !got.Success || got.Nonce != "abcDEF123456" {
		t.Fatalf("unexpected response %d %+v", rec.Code, got)
	}
}

func TestUserHTTP_CompleteProfile_RequiresSession(t *testing.T) {
	ts := newUserTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/profile/complete", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if got := decodeError(t, rec); got.Success || got.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected envelope %+v", got)
	}
}

func TestUserHTTP_CompleteProfile_ValidationError(t *testing.T) {
	ts := newUserTestServer(t)
	u := user.New("0x1111111111111111111111111111111111111111")
	cookie := ts.login(t, u)

	ts.svc.EXPECT().
		CompleteProfile(mock.Anything, u, &user.CompleteProfileRequest{Age: 16, CountryCode: "GB", Region: "London"}).
		Return(nil, apperrors.BadRequestError(ErrUnderage, "You must be at least 18 years old to use this app")).Once()

	req := httptest.NewRequest(http.MethodPost, "/profile/complete",
		bytes.NewBufferString(`{"age":16,"countryCode":"GB","region":"London"}`))
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeError(t, rec); got.Message != "You must be at least 18 years old to use this app" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestUserHTTP_CompleteProfile_Success(t *testing.T) {
	ts := newUserTestServer(t)
	u := user.New("0x1111111111111111111111111111111111111111")
	cookie := ts.login(t, u)

	done := *u
	done.IsProfileComplete = true
	ts.svc.EXPECT().
		CompleteProfile(mock.Anything, u, mock.Anything).
		Return(&user.CompleteProfileResponse{Success: true, Message: MsgProfileEligible, User: done.ToProfile()}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/profile/complete",
		bytes.NewBufferString(`{"age":30,"countryCode":"GB","region":"London","termsAccepted":true,"privacyAccepted":true}`))
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got user.CompleteProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Success || got.Message != MsgProfileEligible || !got.User.IsProfileComplete {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestUserHTTP_Me_DeletedUser(t *testing.T) {
	ts := newUserTestServer(t)
	u := user.New("0x1111111111111111111111111111111111111111")
	token, _, _ := ts.sessions.Issue(u, time.Now())
	ts.store.EXPECT().GetUserByID(mock.Anything, u.ID).Return(nil, userstore.ErrUserNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if got := decodeError(t, rec); got.Message != "user not found" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestUserHTTP_VerifyWorldID_InvalidLevel(t *testing.T) {
	ts := newUserTestServer(t)
	u := user.New("0x1111111111111111111111111111111111111111")
	cookie := ts.login(t, u)

	req := httptest.NewRequest(http.MethodPost, "/auth/verify-world-id",
		bytes.NewBufferString(`{"proof":"p","merkle_root":"r","nullifier_hash":"n","verification_level":"phone"}`))
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeError(t, rec); got.Message != "invalid field: VerificationLevel" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}
