package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/prediction-miniapp/pkg/app/http"
	"github.com/chainsafe/prediction-miniapp/pkg/auth"
	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service  Service
	sessions *auth.Sessions
	logger   *zap.Logger
}

type nonceResponse struct {
	Success bool `json:"success"`
	*user.NonceResponse
}

type userResponse struct {
	Success   bool          `json:"success"`
	User      *user.Profile `json:"user"`
	IsNewUser *bool         `json:"isNewUser,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// RegisterRoutes registers the auth and profile endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, sessions *auth.Sessions, logger *zap.Logger) {
	h := &HTTP{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}

	r.Get("/auth/nonce", apphttp.HandleError(h.nonce))
	r.Post("/auth/siwe", apphttp.HandleError(h.signIn))
	r.Post("/auth/logout", apphttp.HandleError(h.logout))
	r.With(auth.RequireSessionUser(sessions, logger)).Get("/auth/me", apphttp.HandleError(h.me))

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(sessions, logger))
		r.Post("/auth/verify-world-id", apphttp.HandleError(h.verifyWorldID))
		r.Post("/profile/complete", apphttp.HandleError(h.completeProfile))
	})
}

func (h *HTTP) nonce(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.IssueNonce(r.Context())
	if err != nil {
		return err
	}
	w.Header().Set("Cache-Control", "no-store")
	apphttp.WriteJSON(w, http.StatusOK, &nonceResponse{Success: true, NonceResponse: resp})
	return nil
}

func (h *HTTP) signIn(w http.ResponseWriter, r *http.Request) error {
	var req user.SignInRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	res, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		return err
	}

	h.sessions.SetCookie(w, res.Token, res.ExpiresAt)
	apphttp.WriteJSON(w, http.StatusOK, &userResponse{
		Success:   true,
		User:      res.User.ToProfile(),
		IsNewUser: &res.IsNewUser,
	})
	return nil
}

func (h *HTTP) logout(w http.ResponseWriter, _ *http.Request) error {
	h.sessions.ClearCookie(w)
	apphttp.WriteJSON(w, http.StatusOK, &successResponse{Success: true})
	return nil
}

func (h *HTTP) me(w http.ResponseWriter, r *http.Request) error {
	u, err := auth.CurrentUser(r)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &userResponse{Success: true, User: u.ToProfile()})
	return nil
}

func (h *HTTP) verifyWorldID(w http.ResponseWriter, r *http.Request) error {
	u, err := auth.CurrentUser(r)
	if err != nil {
		return err
	}

	var req user.VerifyWorldIDRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	updated, err := h.service.VerifyWorldID(r.Context(), u, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &userResponse{Success: true, User: updated.ToProfile()})
	return nil
}

func (h *HTTP) completeProfile(w http.ResponseWriter, r *http.Request) error {
	u, err := auth.CurrentUser(r)
	if err != nil {
		return err
	}

	var req user.CompleteProfileRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.CompleteProfile(r.Context(), u, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
