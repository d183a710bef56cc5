package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/repo_interfaces"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
	"github.com/atlasbank/retail-banking-demo/internal/logger"
	"github.com/atlasbank/retail-banking-demo/internal/usecase/service_interfaces"
)

// Verify that RateService implements the service_interfaces.RateService interface
var _ service_interfaces.RateService = (*RateService)(nil)

type RateService struct {
	rateRepo repo_interfaces.RateRepository
}

func NewRateService(rateRepo repo_interfaces.RateRepository) *RateService {
	return &RateService{rateRepo: rateRepo}
}

func (s *RateService) GetRates(ctx context.Context) (commons.Response[[]models.RateResponse], error) {
	logger.Info("rate service get rates request", nil)

	rates, err := s.rateRepo.GetRates(ctx)
	if err != nil {
		logger.Error("rate service get rates failed", err, nil)
		return commons.ErrorResponse[[]models.RateResponse]("failed to get rates", "Unable to fetch rates right now"), err
	}

	resp := make([]models.RateResponse, 0, len(rates))
	for _, rate := range rates {
		resp = append(resp, models.RateResponse{
			FromCurrency: string(rate.FromCurrency),
			ToCurrency:   string(rate.ToCurrency),
			Rate:         rate.Rate,
		})
	}

	return commons.SuccessResponse("rates fetched successfully", resp), nil
}

// Quote computes the converted amount without touching any session state; it
// is the display step of the two-phase conversion and may be called any number
// of times before a confirm.
func (s *RateService) Quote(ctx context.Context, req models.ConversionQuoteRequest) (commons.Response[models.ConversionQuoteResponse], error) {
	logger.Info("rate service quote request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("rate service quote validation failed", err, nil)
		return commons.ErrorResponse[models.ConversionQuoteResponse]("validation failed", err.Error()), err
	}

	fromCurrency, _ := domain.ParseCurrency(req.FromCurrency)
	toCurrency, _ := domain.ParseCurrency(req.ToCurrency)

	converted, rateUsed, err := s.ConvertRate(ctx, req.Amount, fromCurrency, toCurrency)
	if err != nil {
		logger.Error("rate service quote failed", err, logger.Fields{
			"fromCurrency": fromCurrency,
			"toCurrency":   toCurrency,
		})
		return commons.ErrorResponse[models.ConversionQuoteResponse]("failed to get quote", "Unable to compute the conversion right now"), err
	}

	response := models.ConversionQuoteResponse{
		FromCurrency:    string(fromCurrency),
		ToCurrency:      string(toCurrency),
		Amount:          req.Amount,
		ConvertedAmount: converted,
		Rate:            rateUsed,
	}

	logger.Info("rate service quote success", logger.Fields{
		"fromCurrency":    response.FromCurrency,
		"toCurrency":      response.ToCurrency,
		"convertedAmount": response.ConvertedAmount,
	})

	return commons.SuccessResponse("quote computed successfully", response), nil
}

// ConvertRate is pure: it returns the converted amount (2 decimal places) and
// the rate used, performing no mutation.
func (s *RateService) ConvertRate(ctx context.Context, amount decimal.Decimal, fromCurrency domain.Currency, toCurrency domain.Currency) (decimal.Decimal, decimal.Decimal, error) {
	if !commons.IsValidAmount(amount) {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("amount must be positive with at most 2 decimal places")
	}
	if fromCurrency == toCurrency {
		return amount, decimal.NewFromInt(1), nil
	}

	rate, err := s.rateRepo.GetRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	if rate.Rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("rate must be greater than zero")
	}

	converted := amount.Mul(rate.Rate).Round(2)
	return converted, rate.Rate, nil
}
