package services

import (
	"context"
	"errors"
	"time"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/repo_interfaces"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
	"github.com/atlasbank/retail-banking-demo/internal/logger"
	"github.com/atlasbank/retail-banking-demo/internal/usecase/service_interfaces"
)

// Verify that AccountService implements the service_interfaces.AccountService interface
var _ service_interfaces.AccountService = (*AccountService)(nil)

type AccountService struct {
	store        repo_interfaces.SessionStore
	homeCurrency domain.Currency
}

func NewAccountService(store repo_interfaces.SessionStore, homeCurrency domain.Currency) *AccountService {
	return &AccountService{store: store, homeCurrency: homeCurrency}
}

func (s *AccountService) GetAccount(ctx context.Context, sessionID string) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service get account request", logger.Fields{
		"sessionId": sessionID,
	})

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		logger.Error("account service get account failed", err, logger.Fields{
			"sessionId": sessionID,
		})
		if errors.Is(err, domain.ErrSessionNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Session not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to get account", "Unable to fetch the account right now"), err
	}

	account := session.Account
	currency := string(s.homeCurrency)
	response := models.AccountResponse{
		AccountNumber:        account.AccountNumber,
		SavingsAccountNumber: account.SavingsAccountNumber,
		RIB:                  account.RIB,
		SavingsRIB:           account.SavingsRIB,
		FormattedRIB:         commons.FormatRIB(account.RIB),
		FormattedSavingsRIB:  commons.FormatRIB(account.SavingsRIB),
		CheckingBalance:      account.CheckingBalance,
		SavingsBalance:       account.SavingsBalance,
		FormattedChecking:    commons.FormatAmount(account.CheckingBalance, currency),
		FormattedSavings:     commons.FormatAmount(account.SavingsBalance, currency),
	}

	return commons.SuccessResponse("account fetched successfully", response), nil
}

// ListTransactions returns the log newest first. The stored log itself stays
// in insertion order; only this view is reversed.
func (s *AccountService) ListTransactions(ctx context.Context, sessionID string) (commons.Response[[]models.TransactionResponse], error) {
	logger.Info("account service list transactions request", logger.Fields{
		"sessionId": sessionID,
	})

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		logger.Error("account service list transactions failed", err, logger.Fields{
			"sessionId": sessionID,
		})
		if errors.Is(err, domain.ErrSessionNotFound) {
			return commons.ErrorResponse[[]models.TransactionResponse]("Session not found"), err
		}
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to list transactions", "Unable to fetch transactions right now"), err
	}

	resp := make([]models.TransactionResponse, 0, len(session.Transactions))
	for i := len(session.Transactions) - 1; i >= 0; i-- {
		resp = append(resp, mapTransactionToResponse(session.Transactions[i]))
	}

	logger.Info("account service list transactions success", logger.Fields{
		"sessionId": sessionID,
		"count":     len(resp),
	})

	return commons.SuccessResponse("transactions fetched successfully", resp), nil
}

func mapTransactionToResponse(txn domain.Transaction) models.TransactionResponse {
	recipient := ""
	if txn.Recipient != nil {
		recipient = *txn.Recipient
	}
	return models.TransactionResponse{
		ID:          txn.ID,
		Kind:        string(txn.Kind),
		Amount:      txn.Amount,
		Description: txn.Description,
		Recipient:   recipient,
		Status:      string(txn.Status),
		CreatedAt:   txn.CreatedAt.Format(time.RFC3339),
	}
}
