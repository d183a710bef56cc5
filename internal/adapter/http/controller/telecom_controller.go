package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/middleware"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type RechargeService interface {
	RechargeTelecom(ctx context.Context, sessionID string, req models.RechargeRequest) (commons.Response[models.RechargeResponse], error)
}

type FavoriteService interface {
	ListFavorites(ctx context.Context, sessionID string) (commons.Response[[]models.FavoriteResponse], error)
	AddFavorite(ctx context.Context, sessionID string, req models.AddFavoriteRequest) (commons.Response[models.FavoriteResponse], error)
	RemoveFavorite(ctx context.Context, sessionID string, favoriteID string) (commons.Response[models.FavoriteResponse], error)
}

type TelecomController struct {
	recharges RechargeService
	favorites FavoriteService
}

func NewTelecomController(recharges RechargeService, favorites FavoriteService) *TelecomController {
	return &TelecomController{recharges: recharges, favorites: favorites}
}

func (c *TelecomController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	recharge := http.Handler(http.HandlerFunc(c.recharge))
	listFavorites := http.Handler(http.HandlerFunc(c.listFavorites))
	addFavorite := http.Handler(http.HandlerFunc(c.addFavorite))
	removeFavorite := http.Handler(http.HandlerFunc(c.removeFavorite))
	if authMiddleware != nil {
		recharge = authMiddleware(recharge)
		listFavorites = authMiddleware(listFavorites)
		addFavorite = authMiddleware(addFavorite)
		removeFavorite = authMiddleware(removeFavorite)
	}
	mux.Handle("POST /telecom/recharges", recharge)
	mux.Handle("GET /telecom/favorites", listFavorites)
	mux.Handle("POST /telecom/favorites", addFavorite)
	mux.Handle("DELETE /telecom/favorites/{id}", removeFavorite)
}

func (c *TelecomController) recharge(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RechargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.RechargeResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.RechargeResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.recharges.RechargeTelecom(r.Context(), sessionID, req)
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

func (c *TelecomController) listFavorites(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.favorites.ListFavorites(r.Context(), sessionID)
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

func (c *TelecomController) addFavorite(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.FavoriteResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.FavoriteResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.favorites.AddFavorite(r.Context(), sessionID, req)
	if err != nil {
		logError(r, err, nil)
		status := statusForMessage(response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *TelecomController) removeFavorite(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.favorites.RemoveFavorite(r.Context(), sessionID, r.PathValue("id"))
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
