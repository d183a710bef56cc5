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

type PaymentService interface {
	PayBill(ctx context.Context, sessionID string, req models.BillPaymentRequest) (commons.Response[models.BillPaymentResponse], error)
}

type PaymentController struct {
	service PaymentService
}

func NewPaymentController(service PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

func (c *PaymentController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	payBill := http.Handler(http.HandlerFunc(c.payBill))
	if authMiddleware != nil {
		payBill = authMiddleware(payBill)
	}
	mux.Handle("POST /payments/bill", payBill)
}

func (c *PaymentController) payBill(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.BillPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.BillPaymentResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.BillPaymentResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	sessionID := middleware.SessionIDFromContext(r.Context())
	response, err := c.service.PayBill(r.Context(), sessionID, req)
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
