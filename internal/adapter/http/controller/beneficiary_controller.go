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

type BeneficiaryService interface {
	ListBeneficiaries(ctx context.Context, sessionID string) (commons.Response[[]models.BeneficiaryResponse], error)
	AddBeneficiary(ctx context.Context, sessionID string, req models.AddBeneficiaryRequest) (commons.Response[models.BeneficiaryResponse], error)
	SetBeneficiaryBlocked(ctx context.Context, sessionID string, beneficiaryID string, blocked bool) (commons.Response[models.BeneficiaryResponse], error)
	RemoveBeneficiary(ctx context.Context, sessionID string, beneficiaryID string) (commons.Response[models.BeneficiaryResponse], error)
}

type BeneficiaryController struct {
	service BeneficiaryService
}

func NewBeneficiaryController(service BeneficiaryService) *BeneficiaryController {
	return &BeneficiaryController{service: service}
}

func (c *BeneficiaryController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	list := http.Handler(http.HandlerFunc(c.list))
	add := http.Handler(http.HandlerFunc(c.add))
	setBlocked := http.Handler(http.HandlerFunc(c.setBlocked))
	remove := http.Handler(http.HandlerFunc(c.remove))
	if authMiddleware != nil {
		list = authMiddleware(list)
		add = authMiddleware(add)
		setBlocked = authMiddleware(setBlocked)
		remove = authMiddleware(remove)
	}
	mux.Handle("GET /beneficiaries", list)
	mux.Handle("POST /beneficiaries", add)
	mux.Handle("PUT /beneficiaries/{id}/block", setBlocked)
	mux.Handle("DELETE /beneficiaries/{id}", remove)
}

func (c *BeneficiaryController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.service.ListBeneficiaries(r.Context(), sessionID)
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

func (c *BeneficiaryController) add(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.AddBeneficiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.BeneficiaryResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.BeneficiaryResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.service.AddBeneficiary(r.Context(), sessionID, req)
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

func (c *BeneficiaryController) setBlocked(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.SetBeneficiaryBlockedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.BeneficiaryResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.service.SetBeneficiaryBlocked(r.Context(), sessionID, r.PathValue("id"), req.Blocked)
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

func (c *BeneficiaryController) remove(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.service.RemoveBeneficiary(r.Context(), sessionID, r.PathValue("id"))
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
