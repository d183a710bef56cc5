package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/repo_interfaces"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
	"github.com/atlasbank/retail-banking-demo/internal/logger"
	"github.com/atlasbank/retail-banking-demo/internal/usecase/service_interfaces"
)

// Verify that LedgerService implements the service_interfaces.LedgerService interface
var _ service_interfaces.LedgerService = (*LedgerService)(nil)

// LedgerService is the only component allowed to mutate balances and append to
// the transaction log. Each operation runs as a single critical section
// against the session store.
//
// Rejection logging is deliberately asymmetric, matching the behavior this
// demo replicates: daily-limit and blocked-card refusals append a REJECTED
// transaction before failing, while insufficient balance, unknown beneficiary
// and blocked beneficiary fail with no record.
type LedgerService struct {
	store        repo_interfaces.SessionStore
	rateService  service_interfaces.RateService
	homeCurrency domain.Currency
}

func NewLedgerService(
	store repo_interfaces.SessionStore,
	rateService service_interfaces.RateService,
	homeCurrency domain.Currency,
) *LedgerService {
	return &LedgerService{
		store:        store,
		rateService:  rateService,
		homeCurrency: homeCurrency,
	}
}

func (s *LedgerService) TransferToBeneficiary(ctx context.Context, sessionID string, req models.BeneficiaryTransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("ledger service beneficiary transfer request", logger.Fields{
		"sessionId": sessionID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	amount := req.Amount
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Transfer"
	}

	var txn domain.Transaction
	var account domain.Account
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		if amount.GreaterThan(session.Account.CheckingBalance) {
			return domain.ErrInsufficientBalance
		}

		if err := checkCardGate(session, amount, func() {
			txn = appendTransaction(session, domain.Transaction{
				Kind:        domain.TransactionKindTransfer,
				Amount:      amount.Neg(),
				Description: description,
				Status:      domain.TransactionStatusRejected,
			})
		}); err != nil {
			return err
		}

		beneficiary := findBeneficiary(session, req.BeneficiaryID)
		if beneficiary == nil {
			return domain.ErrRecordNotFound
		}
		if beneficiary.Blocked {
			return domain.ErrBeneficiaryBlocked
		}

		session.Account.CheckingBalance = session.Account.CheckingBalance.Sub(amount)
		accumulateDailySpend(session, amount)

		name := beneficiary.Name
		txn = appendTransaction(session, domain.Transaction{
			Kind:        domain.TransactionKindTransfer,
			Amount:      amount.Neg(),
			Description: "Transfer to " + name,
			Recipient:   &name,
			Status:      domain.TransactionStatusCompleted,
		})
		account = session.Account
		return nil
	})
	if err != nil {
		logger.Error("ledger service beneficiary transfer refused", err, logger.Fields{
			"sessionId": sessionID,
		})
		return debitErrorResponse[models.TransferResponse](err), err
	}

	logger.Info("ledger service beneficiary transfer success", logger.Fields{
		"sessionId":     sessionID,
		"transactionId": txn.ID,
		"amount":        txn.Amount,
	})

	return commons.SuccessResponse("transfer completed successfully", mapTransferToResponse(txn, account)), nil
}

func (s *LedgerService) TransferToSavings(ctx context.Context, sessionID string, req models.SavingsTransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("ledger service savings transfer request", logger.Fields{
		"sessionId": sessionID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	amount := req.Amount

	var txn domain.Transaction
	var account domain.Account
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		if amount.GreaterThan(session.Account.CheckingBalance) {
			return domain.ErrInsufficientBalance
		}

		if err := checkCardGate(session, amount, func() {
			txn = appendTransaction(session, domain.Transaction{
				Kind:        domain.TransactionKindTransfer,
				Amount:      amount.Neg(),
				Description: "Transfer to savings account",
				Status:      domain.TransactionStatusRejected,
			})
		}); err != nil {
			return err
		}

		session.Account.CheckingBalance = session.Account.CheckingBalance.Sub(amount)
		session.Account.SavingsBalance = session.Account.SavingsBalance.Add(amount)
		accumulateDailySpend(session, amount)

		// Only the debit leg is logged; the savings credit has no record of
		// its own.
		txn = appendTransaction(session, domain.Transaction{
			Kind:        domain.TransactionKindTransfer,
			Amount:      amount.Neg(),
			Description: "Transfer to savings account",
			Status:      domain.TransactionStatusCompleted,
		})
		account = session.Account
		return nil
	})
	if err != nil {
		logger.Error("ledger service savings transfer refused", err, logger.Fields{
			"sessionId": sessionID,
		})
		return debitErrorResponse[models.TransferResponse](err), err
	}

	logger.Info("ledger service savings transfer success", logger.Fields{
		"sessionId":     sessionID,
		"transactionId": txn.ID,
		"amount":        txn.Amount,
	})

	return commons.SuccessResponse("transfer completed successfully", mapTransferToResponse(txn, account)), nil
}

// PayBill debits checking without any card gating; bill payments are not
// card-backed operations in this demo.
func (s *LedgerService) PayBill(ctx context.Context, sessionID string, req models.BillPaymentRequest) (commons.Response[models.BillPaymentResponse], error) {
	logger.Info("ledger service bill payment request", logger.Fields{
		"sessionId": sessionID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.BillPaymentResponse]("validation failed", err.Error()), err
	}

	reference := strings.TrimSpace(req.Reference)
	amount := req.Amount

	var txn domain.Transaction
	var account domain.Account
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		if amount.GreaterThan(session.Account.CheckingBalance) {
			return domain.ErrInsufficientBalance
		}

		session.Account.CheckingBalance = session.Account.CheckingBalance.Sub(amount)
		txn = appendTransaction(session, domain.Transaction{
			Kind:        domain.TransactionKindPayment,
			Amount:      amount.Neg(),
			Description: "Bill payment " + reference,
			Status:      domain.TransactionStatusCompleted,
		})
		account = session.Account
		return nil
	})
	if err != nil {
		logger.Error("ledger service bill payment refused", err, logger.Fields{
			"sessionId": sessionID,
			"reference": reference,
		})
		return debitErrorResponse[models.BillPaymentResponse](err), err
	}

	logger.Info("ledger service bill payment success", logger.Fields{
		"sessionId":     sessionID,
		"transactionId": txn.ID,
		"reference":     reference,
	})

	return commons.SuccessResponse("bill paid successfully", models.BillPaymentResponse{
		TransactionID:   txn.ID,
		Reference:       reference,
		Amount:          txn.Amount,
		CheckingBalance: account.CheckingBalance,
	}), nil
}

func (s *LedgerService) RechargeTelecom(ctx context.Context, sessionID string, req models.RechargeRequest) (commons.Response[models.RechargeResponse], error) {
	logger.Info("ledger service telecom recharge request", logger.Fields{
		"sessionId": sessionID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.RechargeResponse]("validation failed", err.Error()), err
	}

	operator, _ := domain.ParseTelecomOperator(req.Operator)
	phoneNumber := commons.NormalizePhoneNumber(req.PhoneNumber)
	amount := req.Amount

	var txn domain.Transaction
	var account domain.Account
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		if amount.GreaterThan(session.Account.CheckingBalance) {
			return domain.ErrInsufficientBalance
		}

		session.Account.CheckingBalance = session.Account.CheckingBalance.Sub(amount)
		txn = appendTransaction(session, domain.Transaction{
			Kind:        domain.TransactionKindRecharge,
			Amount:      amount.Neg(),
			Description: fmt.Sprintf("Recharge %s - %s", operator, phoneNumber),
			Status:      domain.TransactionStatusCompleted,
		})
		account = session.Account
		return nil
	})
	if err != nil {
		logger.Error("ledger service telecom recharge refused", err, logger.Fields{
			"sessionId": sessionID,
			"operator":  operator,
		})
		return debitErrorResponse[models.RechargeResponse](err), err
	}

	logger.Info("ledger service telecom recharge success", logger.Fields{
		"sessionId":     sessionID,
		"transactionId": txn.ID,
		"operator":      operator,
	})

	return commons.SuccessResponse("recharge completed successfully", models.RechargeResponse{
		TransactionID:   txn.ID,
		Operator:        string(operator),
		PhoneNumber:     phoneNumber,
		Amount:          txn.Amount,
		CheckingBalance: account.CheckingBalance,
	}), nil
}

// ConfirmConversion is the mutating half of the two-phase conversion. It
// re-quotes through the rate service, then debits checking (conversion from
// the home currency) or credits it (conversion to the home currency).
func (s *LedgerService) ConfirmConversion(ctx context.Context, sessionID string, req models.ConfirmConversionRequest) (commons.Response[models.ConversionResponse], error) {
	logger.Info("ledger service conversion confirm request", logger.Fields{
		"sessionId": sessionID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.ConversionResponse]("validation failed", err.Error()), err
	}

	fromCurrency, _ := domain.ParseCurrency(req.FromCurrency)
	toCurrency, _ := domain.ParseCurrency(req.ToCurrency)
	amount := req.Amount

	converted, rateUsed, err := s.rateService.ConvertRate(ctx, amount, fromCurrency, toCurrency)
	if err != nil {
		logger.Error("ledger service conversion quote failed", err, logger.Fields{
			"sessionId":    sessionID,
			"fromCurrency": fromCurrency,
			"toCurrency":   toCurrency,
		})
		return commons.ErrorResponse[models.ConversionResponse]("failed to process conversion", "Unable to process the conversion right now"), err
	}

	var txn domain.Transaction
	var account domain.Account
	err = s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		if fromCurrency == s.homeCurrency {
			if amount.GreaterThan(session.Account.CheckingBalance) {
				return domain.ErrInsufficientBalance
			}
			session.Account.CheckingBalance = session.Account.CheckingBalance.Sub(amount)
			txn = appendTransaction(session, domain.Transaction{
				Kind:        domain.TransactionKindConversion,
				Amount:      amount.Neg(),
				Description: conversionDescription(amount, fromCurrency, converted, toCurrency),
				Status:      domain.TransactionStatusCompleted,
			})
		} else {
			session.Account.CheckingBalance = session.Account.CheckingBalance.Add(converted)
			txn = appendTransaction(session, domain.Transaction{
				Kind:        domain.TransactionKindConversion,
				Amount:      converted,
				Description: conversionDescription(amount, fromCurrency, converted, toCurrency),
				Status:      domain.TransactionStatusCompleted,
			})
		}
		account = session.Account
		return nil
	})
	if err != nil {
		logger.Error("ledger service conversion refused", err, logger.Fields{
			"sessionId": sessionID,
		})
		return debitErrorResponse[models.ConversionResponse](err), err
	}

	logger.Info("ledger service conversion success", logger.Fields{
		"sessionId":     sessionID,
		"transactionId": txn.ID,
		"amount":        txn.Amount,
	})

	return commons.SuccessResponse("conversion completed successfully", models.ConversionResponse{
		TransactionID:   txn.ID,
		FromCurrency:    string(fromCurrency),
		ToCurrency:      string(toCurrency),
		Amount:          amount,
		ConvertedAmount: converted,
		Rate:            rateUsed,
		CheckingBalance: account.CheckingBalance,
	}), nil
}

// checkCardGate enforces the card rules for transfers: the daily limit applies
// only while the card is active and not blocked, and a blocked card refuses
// the debit outright. Both refusals record a rejected transaction via
// onReject before the error is returned.
func checkCardGate(session *domain.Session, amount decimal.Decimal, onReject func()) error {
	card := session.Card
	if card == nil {
		return nil
	}

	if card.Active && !card.Blocked && amount.Add(card.DailySpent).GreaterThan(card.DailyLimit) {
		onReject()
		return domain.ErrDailyLimitExceeded
	}
	if card.Blocked {
		onReject()
		return domain.ErrCardBlocked
	}
	return nil
}

// accumulateDailySpend counts a successful transfer against the card's daily
// limit. Spend never resets; the demo has no day-boundary mechanism.
func accumulateDailySpend(session *domain.Session, amount decimal.Decimal) {
	if card := session.Card; card != nil && card.Active && !card.Blocked {
		card.DailySpent = card.DailySpent.Add(amount)
	}
}

func findBeneficiary(session *domain.Session, beneficiaryID string) *domain.Beneficiary {
	for i := range session.Beneficiaries {
		if session.Beneficiaries[i].ID == beneficiaryID {
			return &session.Beneficiaries[i]
		}
	}
	return nil
}

func appendTransaction(session *domain.Session, txn domain.Transaction) domain.Transaction {
	txn.ID = uuid.NewString()
	txn.CreatedAt = time.Now().UTC()
	session.Transactions = append(session.Transactions, txn)
	return txn
}

func conversionDescription(amount decimal.Decimal, fromCurrency domain.Currency, converted decimal.Decimal, toCurrency domain.Currency) string {
	return fmt.Sprintf("Conversion %s %s -> %s %s", amount.StringFixed(2), fromCurrency, converted.StringFixed(2), toCurrency)
}

func mapTransferToResponse(txn domain.Transaction, account domain.Account) models.TransferResponse {
	recipient := ""
	if txn.Recipient != nil {
		recipient = *txn.Recipient
	}
	return models.TransferResponse{
		TransactionID:   txn.ID,
		Status:          string(txn.Status),
		Amount:          txn.Amount,
		Description:     txn.Description,
		Recipient:       recipient,
		CheckingBalance: account.CheckingBalance,
		SavingsBalance:  account.SavingsBalance,
	}
}

func debitErrorResponse[T any](err error) commons.Response[T] {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		return commons.ErrorResponse[T]("Insufficient balance", err.Error())
	case errors.Is(err, domain.ErrDailyLimitExceeded):
		return commons.ErrorResponse[T]("Daily limit exceeded", "The amount exceeds the card's remaining daily limit")
	case errors.Is(err, domain.ErrCardBlocked):
		return commons.ErrorResponse[T]("Card blocked", "Debit operations are refused while the card is blocked")
	case errors.Is(err, domain.ErrBeneficiaryBlocked):
		return commons.ErrorResponse[T]("Beneficiary blocked", "This beneficiary no longer accepts transfers")
	case errors.Is(err, domain.ErrRecordNotFound):
		return commons.ErrorResponse[T]("Beneficiary not found")
	case errors.Is(err, domain.ErrSessionNotFound):
		return commons.ErrorResponse[T]("Session not found")
	default:
		return commons.ErrorResponse[T]("failed to process operation", "Unable to process the operation right now")
	}
}
