package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/middleware"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type CardService interface {
	GetCard(ctx context.Context, sessionID string) (commons.Response[models.CardResponse], error)
	SetCardActive(ctx context.Context, sessionID string, active bool) (commons.Response[models.CardResponse], error)
	SetCardBlocked(ctx context.Context, sessionID string, blocked bool) (commons.Response[models.CardResponse], error)
	SetCardDailyLimit(ctx context.Context, sessionID string, limit decimal.Decimal) (commons.Response[models.CardResponse], error)
}

type CardController struct {
	service CardService
}

func NewCardController(service CardService) *CardController {
	return &CardController{service: service}
}

func (c *CardController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	getCard := http.Handler(http.HandlerFunc(c.getCard))
	setStatus := http.Handler(http.HandlerFunc(c.setStatus))
	setLimit := http.Handler(http.HandlerFunc(c.setLimit))
	if authMiddleware != nil {
		getCard = authMiddleware(getCard)
		setStatus = authMiddleware(setStatus)
		setLimit = authMiddleware(setLimit)
	}
	mux.Handle("GET /card", getCard)
	mux.Handle("PUT /card/status", setStatus)
	mux.Handle("PUT /card/limit", setLimit)
}

func (c *CardController) getCard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.service.GetCard(r.Context(), sessionID)
	if err != nil {
		logError(r, err, nil)
		status := statusForMessage(response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *CardController) setStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CardStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.CardResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.CardResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	sessionID := middleware.SessionIDFromContext(r.Context())
	var (
		response commons.Response[models.CardResponse]
		err      error
	)
	if req.Active != nil {
		response, err = c.service.SetCardActive(r.Context(), sessionID, *req.Active)
		if err != nil {
			logError(r, err, nil)
			status := statusForMessage(response.Message)
			writeJSON(w, status, response)
			logResponse(r, status, response, start)
			return
		}
	}
	if req.Blocked != nil {
		response, err = c.service.SetCardBlocked(r.Context(), sessionID, *req.Blocked)
		if err != nil {
			logError(r, err, nil)
			status := statusForMessage(response.Message)
			writeJSON(w, status, response)
			logResponse(r, status, response, start)
			return
		}
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *CardController) setLimit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CardLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.CardResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.service.SetCardDailyLimit(r.Context(), sessionID, req.DailyLimit)
	if err != nil {
		logError(r, err, nil)
		status := statusForMessage(response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
