package service_interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
)

// RateService is the pure half of the two-phase conversion: quoting never
// mutates session state.
type RateService interface {
	GetRates(ctx context.Context) (commons.Response[[]models.RateResponse], error)
	Quote(ctx context.Context, req models.ConversionQuoteRequest) (commons.Response[models.ConversionQuoteResponse], error)
	ConvertRate(ctx context.Context, amount decimal.Decimal, fromCurrency domain.Currency, toCurrency domain.Currency) (decimal.Decimal, decimal.Decimal, error)
}
