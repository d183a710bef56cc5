package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/repo_interfaces"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
)

var _ repo_interfaces.RateRepository = (*RateRepository)(nil)

// RateRepository serves the fixed demo exchange-rate table. Only the four
// MAD<->EUR and MAD<->USD directions are defined; any other pair falls back to
// rate 1.0 like the original table lookup did.
type RateRepository struct {
	rates []domain.Rate
}

func NewRateRepository() *RateRepository {
	return &RateRepository{
		rates: []domain.Rate{
			{FromCurrency: domain.CurrencyMAD, ToCurrency: domain.CurrencyEUR, Rate: decimal.RequireFromString("0.092")},
			{FromCurrency: domain.CurrencyEUR, ToCurrency: domain.CurrencyMAD, Rate: decimal.RequireFromString("10.87")},
			{FromCurrency: domain.CurrencyMAD, ToCurrency: domain.CurrencyUSD, Rate: decimal.RequireFromString("0.10")},
			{FromCurrency: domain.CurrencyUSD, ToCurrency: domain.CurrencyMAD, Rate: decimal.RequireFromString("10.0")},
		},
	}
}

func (r *RateRepository) GetRates(_ context.Context) ([]domain.Rate, error) {
	return append([]domain.Rate(nil), r.rates...), nil
}

func (r *RateRepository) GetRate(_ context.Context, fromCurrency domain.Currency, toCurrency domain.Currency) (domain.Rate, error) {
	for _, rate := range r.rates {
		if rate.FromCurrency == fromCurrency && rate.ToCurrency == toCurrency {
			return rate, nil
		}
	}

	return domain.Rate{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Rate:         decimal.NewFromInt(1),
	}, nil
}
