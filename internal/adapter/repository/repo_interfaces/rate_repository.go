package repo_interfaces

import (
	"context"

	"github.com/atlasbank/retail-banking-demo/internal/domain"
)

type RateRepository interface {
	GetRates(ctx context.Context) ([]domain.Rate, error)
	GetRate(ctx context.Context, fromCurrency domain.Currency, toCurrency domain.Currency) (domain.Rate, error)
}
