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

type QuoteService interface {
	GetRates(ctx context.Context) (commons.Response[[]models.RateResponse], error)
	Quote(ctx context.Context, req models.ConversionQuoteRequest) (commons.Response[models.ConversionQuoteResponse], error)
}

type ConversionService interface {
	ConfirmConversion(ctx context.Context, sessionID string, req models.ConfirmConversionRequest) (commons.Response[models.ConversionResponse], error)
}

type RateController struct {
	quotes      QuoteService
	conversions ConversionService
}

func NewRateController(quotes QuoteService, conversions ConversionService) *RateController {
	return &RateController{quotes: quotes, conversions: conversions}
}

func (c *RateController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	rates := http.Handler(http.HandlerFunc(c.getRates))
	quote := http.Handler(http.HandlerFunc(c.quote))
	convert := http.Handler(http.HandlerFunc(c.convert))
	if authMiddleware != nil {
		rates = authMiddleware(rates)
		quote = authMiddleware(quote)
		convert = authMiddleware(convert)
	}
	mux.Handle("GET /rates", rates)
	mux.Handle("POST /conversions/quote", quote)
	mux.Handle("POST /conversions", convert)
}

func (c *RateController) getRates(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.quotes.GetRates(r.Context())
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

func (c *RateController) quote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ConversionQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.ConversionQuoteResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.ConversionQuoteResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.quotes.Quote(r.Context(), req)
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

func (c *RateController) convert(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ConfirmConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.ConversionResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.ConversionResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.conversions.ConfirmConversion(r.Context(), sessionID, req)
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
