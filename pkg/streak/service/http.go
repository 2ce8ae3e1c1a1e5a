package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/pkg/activity"
	apperrors "github.com/chainsafe/prediction-miniapp/pkg/app/errors"
	apphttp "github.com/chainsafe/prediction-miniapp/pkg/app/http"
	"github.com/chainsafe/prediction-miniapp/pkg/auth"
	"github.com/chainsafe/prediction-miniapp/pkg/streak"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type checkIn struct {
	*streak.Update
	Message string `json:"message"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// RegisterRoutes registers the daily activity endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, sessions *auth.Sessions, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(sessions, logger))
		r.Post("/activity/daily", apphttp.HandleError(h.checkIn))
		r.Get("/activity/feed", apphttp.HandleError(h.feed))
	})
	r.With(auth.RequireSessionUser(sessions, logger)).Get("/activity/daily", apphttp.HandleError(h.stats))
}

func (h *HTTP) checkIn(w http.ResponseWriter, r *http.Request) error {
	u, err := auth.CurrentUser(r)
	if err != nil {
		return err
	}

	update, err := h.service.UpdateStreak(r.Context(), u.ID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &dataResponse{
		Success: true,
		Data:    &checkIn{Update: update, Message: streak.Message(*update)},
	})
	return nil
}

func (h *HTTP) stats(w http.ResponseWriter, r *http.Request) error {
	u, err := auth.CurrentUser(r)
	if err != nil {
		return err
	}

	stats, err := h.service.GetStreakStats(r.Context(), u.ID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &dataResponse{Success: true, Data: stats})
	return nil
}

func (h *HTTP) feed(w http.ResponseWriter, r *http.Request) error {
	u, err := auth.CurrentUser(r)
	if err != nil {
		return err
	}

	limit := activity.DefaultFeedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return apperrors.BadRequestError(err, "invalid limit")
		}
	}

	acts, err := h.service.ListFeed(r.Context(), u.ID, limit)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &dataResponse{Success: true, Data: acts})
	return nil
}
