package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/repo_interfaces"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
	"github.com/atlasbank/retail-banking-demo/internal/logger"
	"github.com/atlasbank/retail-banking-demo/internal/usecase/service_interfaces"
)

// Verify that AuthService implements the service_interfaces.AuthService interface
var _ service_interfaces.AuthService = (*AuthService)(nil)

// Demo profile used by the mocked login path.
const demoFirstName = "Ahmed"
const demoLastName = "Benali"

// AuthService is the mocked session boundary: any well-formed credential pair
// authenticates. Registration opens empty accounts; login opens the demo
// profile with seeded balances. Logout destroys the whole session, card
// included.
type AuthService struct {
	store          repo_interfaces.SessionStore
	sessionSecret  []byte
	sessionTTL     time.Duration
	bankCode       string
	branchCode     string
	cardDailyLimit decimal.Decimal
	openingBalance decimal.Decimal
	openingSavings decimal.Decimal
}

func NewAuthService(
	store repo_interfaces.SessionStore,
	sessionSecret string,
	sessionTTL time.Duration,
	bankCode string,
	branchCode string,
	cardDailyLimit decimal.Decimal,
	openingBalance decimal.Decimal,
	openingSavings decimal.Decimal,
) *AuthService {
	return &AuthService{
		store:          store,
		sessionSecret:  []byte(sessionSecret),
		sessionTTL:     sessionTTL,
		bankCode:       strings.TrimSpace(bankCode),
		branchCode:     strings.TrimSpace(branchCode),
		cardDailyLimit: cardDailyLimit,
		openingBalance: openingBalance,
		openingSavings: openingSavings,
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.AuthResponse], error) {
	logger.Info("auth service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("auth service register validation failed", err, nil)
		return commons.ErrorResponse[models.AuthResponse]("validation failed", err.Error()), err
	}

	session, err := s.openSession(
		ctx,
		strings.TrimSpace(req.Email),
		req.Password,
		strings.TrimSpace(req.FirstName),
		strings.TrimSpace(req.LastName),
		decimal.Zero,
		decimal.Zero,
	)
	if err != nil {
		logger.Error("auth service register failed", err, nil)
		return commons.ErrorResponse[models.AuthResponse]("failed to register", "Unable to register right now"), err
	}

	return s.authResponse(session, "registration successful")
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.AuthResponse], error) {
	logger.Info("auth service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("auth service login validation failed", err, nil)
		return commons.ErrorResponse[models.AuthResponse]("validation failed", err.Error()), err
	}

	session, err := s.openSession(
		ctx,
		strings.TrimSpace(req.Email),
		req.Password,
		demoFirstName,
		demoLastName,
		s.openingBalance,
		s.openingSavings,
	)
	if err != nil {
		logger.Error("auth service login failed", err, nil)
		return commons.ErrorResponse[models.AuthResponse]("failed to login", "Unable to login right now"), err
	}

	return s.authResponse(session, "login successful")
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) (commons.Response[models.LogoutResponse], error) {
	logger.Info("auth service logout request", logger.Fields{
		"sessionId": sessionID,
	})

	if err := s.store.Delete(ctx, sessionID); err != nil {
		logger.Error("auth service logout failed", err, logger.Fields{
			"sessionId": sessionID,
		})
		if errors.Is(err, domain.ErrSessionNotFound) {
			return commons.ErrorResponse[models.LogoutResponse]("Session not found"), err
		}
		return commons.ErrorResponse[models.LogoutResponse]("failed to logout", "Unable to logout right now"), err
	}

	return commons.SuccessResponse("logout successful", models.LogoutResponse{SessionID: sessionID}), nil
}

// openSession builds a fresh session: user record, generated account
// identifiers, default virtual card, empty registries.
func (s *AuthService) openSession(
	ctx context.Context,
	email string,
	password string,
	firstName string,
	lastName string,
	checkingBalance decimal.Decimal,
	savingsBalance decimal.Decimal,
) (domain.Session, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Session{}, err
	}

	now := time.Now().UTC()
	accountNumber := GenerateAccountNumber()
	savingsNumber := GenerateAccountNumber()

	session := domain.Session{
		ID: uuid.NewString(),
		User: domain.User{
			ID:           uuid.NewString(),
			Email:        email,
			FirstName:    firstName,
			LastName:     lastName,
			PasswordHash: string(passwordHash),
			CreatedAt:    now,
		},
		Account: domain.Account{
			AccountNumber:        accountNumber,
			SavingsAccountNumber: savingsNumber,
			RIB:                  GenerateRIB(s.bankCode, s.branchCode, accountNumber),
			SavingsRIB:           GenerateRIB(s.bankCode, s.branchCode, savingsNumber),
			CheckingBalance:      checkingBalance,
			SavingsBalance:       savingsBalance,
		},
		Card: &domain.Card{
			ID:         uuid.NewString(),
			Number:     maskCardNumber(generateCardNumber()),
			Type:       domain.CardTypeVirtual,
			Active:     true,
			Blocked:    false,
			DailyLimit: s.cardDailyLimit,
			DailySpent: decimal.Zero,
			CreatedAt:  now,
		},
		CreatedAt: now,
	}

	return s.store.Create(ctx, session)
}

func (s *AuthService) authResponse(session domain.Session, message string) (commons.Response[models.AuthResponse], error) {
	token, err := s.issueToken(session)
	if err != nil {
		logger.Error("auth service issue token failed", err, logger.Fields{
			"sessionId": session.ID,
		})
		return commons.ErrorResponse[models.AuthResponse]("failed to authenticate", "Unable to issue a session token right now"), err
	}

	logger.Info("auth service session opened", logger.Fields{
		"sessionId": session.ID,
		"userId":    session.User.ID,
	})

	return commons.SuccessResponse(message, models.AuthResponse{
		Token: token,
		User: models.UserResponse{
			ID:                   session.User.ID,
			Email:                session.User.Email,
			FirstName:            session.User.FirstName,
			LastName:             session.User.LastName,
			AccountNumber:        session.Account.AccountNumber,
			SavingsAccountNumber: session.Account.SavingsAccountNumber,
			RIB:                  session.Account.RIB,
			SavingsRIB:           session.Account.SavingsRIB,
		},
	}), nil
}

func (s *AuthService) issueToken(session domain.Session) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sid": session.ID,
		"sub": session.User.Email,
		"iat": now.Unix(),
		"exp": now.Add(s.sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.sessionSecret)
}
