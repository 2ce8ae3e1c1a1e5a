package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/prediction-miniapp/pkg/app/errors"
	apphttp "github.com/chainsafe/prediction-miniapp/pkg/app/http"
	"github.com/chainsafe/prediction-miniapp/pkg/auth"
	"github.com/chainsafe/prediction-miniapp/pkg/market"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// RegisterRoutes registers the market endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, sessions *auth.Sessions, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/markets", apphttp.HandleError(h.listMarkets))
	r.Get("/markets/{id}", apphttp.HandleError(h.getMarket))
	r.Get("/markets/{id}/comments", apphttp.HandleError(h.listComments))
	r.Get("/markets/{id}/predictions", apphttp.HandleError(h.listMarketPredictions))

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(sessions, logger))
		r.Post("/markets", apphttp.HandleError(h.createMarket))
		r.Post("/markets/{id}/comments", apphttp.HandleError(h.createComment))
		r.Get("/me/predictions", apphttp.HandleError(h.myPredictions))
		r.Get("/me/transactions", apphttp.HandleError(h.myTransactions))
	})
}

func (h *HTTP) listMarkets(w http.ResponseWriter, r *http.Request) error {
	page, err := parsePage(r)
	if err != nil {
		return err
	}
	q := r.URL.Query()
	filter := market.ListFilter{
		Status:   market.Status(q.Get("status")),
		Category: q.Get("category"),
		Page:     page,
	}

	markets, err := h.service.ListMarkets(r.Context(), filter)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &dataResponse{Success: true, Data: markets})
	return nil
}

func (h *HTTP) getMarket(w http.ResponseWriter, r *http.Request) error {
	id, err := marketID(r)
	if err != nil {
		return err
	}

	m, err := h.service.GetMarket(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &dataResponse{Success: true, Data: m})
	return nil
}

func (h *HTTP) createMarket(w http.ResponseWriter, r *http.Request) error {
	u, err := auth.CurrentUser(r)
	if err != nil {
		return err
	}

	var req market.CreateMarketRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	m, err := h.service.CreateMarket(r.Context(), u, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, &dataResponse{Success: true, Data: m})
	return nil
}

func (h *HTTP) listComments(w http.ResponseWriter, r *http.Request) error {
	id, err := marketID(r)
	if err != nil {
		return err
	}
	page, err := parsePage(r)
	if err != nil {
		return err
	}

	comments, err := h.service.ListComments(r.Context(), id, page)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &dataResponse{Success: true, Data: comments})
	return nil
}

func (h *HTTP) createComment(w http.ResponseWriter, r *http.Request) error {
	u, err := auth.CurrentUser(r)
	if err != nil {
		return err
	}
	id, err := marketID(r)
	if err != nil {
		return err
	}

	var req market.CreateCommentRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	c, err := h.service.CreateComment(r.Context(), u, id, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, &dataResponse{Success: true, Data: c})
	return nil
}

func (h *HTTP) listMarketPredictions(w http.ResponseWriter, r *http.Request) error {
	id, err := marketID(r)
	if err != nil {
		return err
	}
	page, err := parsePage(r)
	if err != nil {
		return err
	}

	preds, err := h.service.ListMarketPredictions(r.Context(), id, page)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &dataResponse{Success: true, Data: preds})
	return nil
}

func (h *HTTP) myPredictions(w http.ResponseWriter, r *http.Request) error {
	u, err := auth.CurrentUser(r)
	if err != nil {
		return err
	}
	page, err := parsePage(r)
	if err != nil {
		return err
	}

	preds, err := h.service.ListUserPredictions(r.Context(), u.ID, page)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &dataResponse{Success: true, Data: preds})
	return nil
}

func (h *HTTP) myTransactions(w http.ResponseWriter, r *http.Request) error {
	u, err := auth.CurrentUser(r)
	if err != nil {
		return err
	}
	page, err := parsePage(r)
	if err != nil {
		return err
	}

	txs, err := h.service.ListUserTransactions(r.Context(), u.ID, page)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &dataResponse{Success: true, Data: txs})
	return nil
}

func marketID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperrors.BadRequestError(err, "invalid market id")
	}
	return id, nil
}

// parsePage reads limit and offset. Out-of-range limits are clamped by the service.
func parsePage(r *http.Request) (market.Page, error) {
	var page market.Page
	q := r.URL.Query()

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return page, apperrors.BadRequestError(err, "invalid limit")
		}
		page.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, apperrors.BadRequestError(err, "invalid offset")
		}
		page.Offset = n
	}
	return page, nil
}
