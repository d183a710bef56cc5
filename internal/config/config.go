package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/domain"
)

const defaultListenAddr = ":8080"
const defaultSessionSecret = "atlasbank-demo-session-secret"
const defaultSessionTTLMinutes = 60
const defaultBankCode = "230"
const defaultBranchCode = "80010"
const defaultCardDailyLimit = "5000"
const defaultDemoOpeningBalance = "15420.50"
const defaultDemoOpeningSavings = "8500.00"

type Config struct {
	ListenAddr         string
	SessionSecret      string
	SessionTTL         time.Duration
	HomeCurrency       domain.Currency
	BankCode           string
	BranchCode         string
	CardDailyLimit     decimal.Decimal
	DemoOpeningBalance decimal.Decimal
	DemoOpeningSavings decimal.Decimal
}

func Load() (Config, error) {
	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = defaultSessionSecret
	}

	ttlMinutes := defaultSessionTTLMinutes
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL_MINUTES")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL_MINUTES must be a positive integer")
		}
		ttlMinutes = parsed
	}

	homeCurrency := domain.CurrencyMAD
	if raw := strings.TrimSpace(os.Getenv("HOME_CURRENCY")); raw != "" {
		parsed, err := domain.ParseCurrency(raw)
		if err != nil {
			return Config{}, fmt.Errorf("HOME_CURRENCY: %w", err)
		}
		homeCurrency = parsed
	}

	bankCode := strings.TrimSpace(os.Getenv("BANK_CODE"))
	if bankCode == "" {
		bankCode = defaultBankCode
	}

	branchCode := strings.TrimSpace(os.Getenv("BRANCH_CODE"))
	if branchCode == "" {
		branchCode = defaultBranchCode
	}

	dailyLimit, err := decimalEnv("CARD_DAILY_LIMIT", defaultCardDailyLimit)
	if err != nil {
		return Config{}, err
	}

	openingBalance, err := decimalEnv("DEMO_OPENING_BALANCE", defaultDemoOpeningBalance)
	if err != nil {
		return Config{}, err
	}

	openingSavings, err := decimalEnv("DEMO_OPENING_SAVINGS", defaultDemoOpeningSavings)
	if err != nil {
		return Config{}, err
	}

	return Config{
		ListenAddr:         listenAddr,
		SessionSecret:      sessionSecret,
		SessionTTL:         time.Duration(ttlMinutes) * time.Minute,
		HomeCurrency:       homeCurrency,
		BankCode:           bankCode,
		BranchCode:         branchCode,
		CardDailyLimit:     dailyLimit,
		DemoOpeningBalance: openingBalance,
		DemoOpeningSavings: openingSavings,
	}, nil
}

func decimalEnv(name string, fallback string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		raw = fallback
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s must be a decimal amount: %w", name, err)
	}
	if value.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%s must not be negative", name)
	}

	return value, nil
}
