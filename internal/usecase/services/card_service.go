package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/repo_interfaces"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
	"github.com/atlasbank/retail-banking-demo/internal/logger"
	"github.com/atlasbank/retail-banking-demo/internal/usecase/service_interfaces"
)

// Verify that CardService implements the service_interfaces.CardService interface
var _ service_interfaces.CardService = (*CardService)(nil)

var minDailyLimit = decimal.NewFromInt(100)
var maxDailyLimit = decimal.NewFromInt(50000)

type CardService struct {
	store repo_interfaces.SessionStore
}

func NewCardService(store repo_interfaces.SessionStore) *CardService {
	return &CardService{store: store}
}

func (s *CardService) GetCard(ctx context.Context, sessionID string) (commons.Response[models.CardResponse], error) {
	logger.Info("card service get card request", logger.Fields{
		"sessionId": sessionID,
	})

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return cardErrorResponse(err), err
	}
	if session.Card == nil {
		err := domain.ErrRecordNotFound
		return cardErrorResponse(err), err
	}

	return commons.SuccessResponse("card fetched successfully", mapCardToResponse(*session.Card)), nil
}

func (s *CardService) SetCardActive(ctx context.Context, sessionID string, active bool) (commons.Response[models.CardResponse], error) {
	logger.Info("card service set active request", logger.Fields{
		"sessionId": sessionID,
		"active":    active,
	})

	return s.updateCard(ctx, sessionID, func(card *domain.Card) error {
		card.Active = active
		return nil
	}, "card status updated successfully")
}

func (s *CardService) SetCardBlocked(ctx context.Context, sessionID string, blocked bool) (commons.Response[models.CardResponse], error) {
	logger.Info("card service set blocked request", logger.Fields{
		"sessionId": sessionID,
		"blocked":   blocked,
	})

	return s.updateCard(ctx, sessionID, func(card *domain.Card) error {
		card.Blocked = blocked
		return nil
	}, "card status updated successfully")
}

// SetCardDailyLimit accepts limits between 100 and 50000 inclusive; anything
// else fails validation and leaves the limit untouched.
func (s *CardService) SetCardDailyLimit(ctx context.Context, sessionID string, limit decimal.Decimal) (commons.Response[models.CardResponse], error) {
	logger.Info("card service set daily limit request", logger.Fields{
		"sessionId":  sessionID,
		"dailyLimit": limit,
	})

	if !commons.IsValidAmount(limit) || limit.LessThan(minDailyLimit) || limit.GreaterThan(maxDailyLimit) {
		err := domain.ErrLimitOutOfRange
		logger.Error("card service set daily limit rejected", err, logger.Fields{
			"sessionId":  sessionID,
			"dailyLimit": limit,
		})
		return commons.ErrorResponse[models.CardResponse]("validation failed", "dailyLimit must be between 100 and 50000"), err
	}

	return s.updateCard(ctx, sessionID, func(card *domain.Card) error {
		card.DailyLimit = limit
		return nil
	}, "card limit updated successfully")
}

func (s *CardService) updateCard(ctx context.Context, sessionID string, fn func(card *domain.Card) error, message string) (commons.Response[models.CardResponse], error) {
	var updated domain.Card
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		if session.Card == nil {
			return domain.ErrRecordNotFound
		}
		if err := fn(session.Card); err != nil {
			return err
		}
		updated = *session.Card
		return nil
	})
	if err != nil {
		logger.Error("card service update failed", err, logger.Fields{
			"sessionId": sessionID,
		})
		return cardErrorResponse(err), err
	}

	return commons.SuccessResponse(message, mapCardToResponse(updated)), nil
}

func mapCardToResponse(card domain.Card) models.CardResponse {
	remaining := card.DailyLimit.Sub(card.DailySpent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return models.CardResponse{
		ID:             card.ID,
		Number:         card.Number,
		Type:           string(card.Type),
		Active:         card.Active,
		Blocked:        card.Blocked,
		DailyLimit:     card.DailyLimit,
		DailySpent:     card.DailySpent,
		RemainingToday: remaining,
	}
}

func cardErrorResponse(err error) commons.Response[models.CardResponse] {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return commons.ErrorResponse[models.CardResponse]("Card not found")
	case errors.Is(err, domain.ErrSessionNotFound):
		return commons.ErrorResponse[models.CardResponse]("Session not found")
	default:
		return commons.ErrorResponse[models.CardResponse]("failed to process card request", "Unable to process the request right now")
	}
}
