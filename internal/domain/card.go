package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CardType string

const CardTypeVirtual CardType = "VIRTUAL"

// Card gates debit transfers. Blocked always wins over Active: a blocked card
// refuses every gated debit regardless of limit headroom.
type Card struct {
	ID         string
	Number     string
	Type       CardType
	Active     bool
	Blocked    bool
	DailyLimit decimal.Decimal
	DailySpent decimal.Decimal
	CreatedAt  time.Time
}
