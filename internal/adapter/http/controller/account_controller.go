package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/middleware"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type AccountService interface {
	GetAccount(ctx context.Context, sessionID string) (commons.Response[models.AccountResponse], error)
	ListTransactions(ctx context.Context, sessionID string) (commons.Response[[]models.TransactionResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	account := http.Handler(http.HandlerFunc(c.getAccount))
	transactions := http.Handler(http.HandlerFunc(c.listTransactions))
	if authMiddleware != nil {
		account = authMiddleware(account)
		transactions = authMiddleware(transactions)
	}
	mux.Handle("GET /account", account)
	mux.Handle("GET /account/transactions", transactions)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.service.GetAccount(r.Context(), sessionID)
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

func (c *AccountController) listTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.service.ListTransactions(r.Context(), sessionID)
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
