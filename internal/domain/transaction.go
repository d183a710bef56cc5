package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindTransfer   TransactionKind = "TRANSFER"
	TransactionKindPayment    TransactionKind = "PAYMENT"
	TransactionKindRecharge   TransactionKind = "RECHARGE"
	TransactionKindConversion TransactionKind = "CONVERSION"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusRejected  TransactionStatus = "REJECTED"
)

// Transaction is immutable once appended. Amount is signed: negative for
// debits, positive for credits. The session log keeps insertion order; callers
// that want newest-first reverse a copy.
type Transaction struct {
	ID          string
	Kind        TransactionKind
	Amount      decimal.Decimal
	Description string
	Recipient   *string
	Status      TransactionStatus
	CreatedAt   time.Time
}
