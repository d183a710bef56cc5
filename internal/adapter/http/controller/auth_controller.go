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

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.AuthResponse], error)
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.AuthResponse], error)
	Logout(ctx context.Context, sessionID string) (commons.Response[models.LogoutResponse], error)
}

type AuthController struct {
	service AuthService
}

func NewAuthController(service AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register and login are the only public routes; logout requires a session.
func (c *AuthController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("POST /auth/register", http.HandlerFunc(c.register))
	mux.Handle("POST /auth/login", http.HandlerFunc(c.login))

	logout := http.Handler(http.HandlerFunc(c.logout))
	if authMiddleware != nil {
		logout = authMiddleware(logout)
	}
	mux.Handle("POST /auth/logout", logout)
}

func (c *AuthController) register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.AuthResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.AuthResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.Register(r.Context(), req)
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

func (c *AuthController) login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.AuthResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.AuthResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.Login(r.Context(), req)
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

func (c *AuthController) logout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.service.Logout(r.Context(), sessionID)
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
