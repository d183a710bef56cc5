package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/repo_interfaces"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
	"github.com/atlasbank/retail-banking-demo/internal/logger"
	"github.com/atlasbank/retail-banking-demo/internal/usecase/service_interfaces"
)

// Verify that TelecomService implements the service_interfaces.TelecomService interface
var _ service_interfaces.TelecomService = (*TelecomService)(nil)

// TelecomService manages recharge favorites. Phone numbers are unique within
// a session; duplicates are refused with no side effect.
type TelecomService struct {
	store repo_interfaces.SessionStore
}

func NewTelecomService(store repo_interfaces.SessionStore) *TelecomService {
	return &TelecomService{store: store}
}

func (s *TelecomService) ListFavorites(ctx context.Context, sessionID string) (commons.Response[[]models.FavoriteResponse], error) {
	logger.Info("telecom service list favorites request", logger.Fields{
		"sessionId": sessionID,
	})

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return favoriteErrorResponse[[]models.FavoriteResponse](err), err
	}

	resp := make([]models.FavoriteResponse, 0, len(session.TelecomFavorites))
	for _, favorite := range session.TelecomFavorites {
		resp = append(resp, mapFavoriteToResponse(favorite))
	}

	return commons.SuccessResponse("favorites fetched successfully", resp), nil
}

func (s *TelecomService) AddFavorite(ctx context.Context, sessionID string, req models.AddFavoriteRequest) (commons.Response[models.FavoriteResponse], error) {
	logger.Info("telecom service add favorite request", logger.Fields{
		"sessionId": sessionID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("telecom service add favorite validation failed", err, nil)
		return commons.ErrorResponse[models.FavoriteResponse]("validation failed", err.Error()), err
	}

	operator, _ := domain.ParseTelecomOperator(req.Operator)
	phoneNumber := commons.NormalizePhoneNumber(req.PhoneNumber)

	label := strings.TrimSpace(req.Label)
	if label == "" {
		label = phoneNumber
	}

	favorite := domain.TelecomFavorite{
		ID:          uuid.NewString(),
		Operator:    operator,
		PhoneNumber: phoneNumber,
		Label:       label,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		for _, existing := range session.TelecomFavorites {
			if existing.PhoneNumber == phoneNumber {
				return domain.ErrDuplicateFavorite
			}
		}
		session.TelecomFavorites = append(session.TelecomFavorites, favorite)
		return nil
	})
	if err != nil {
		logger.Error("telecom service add favorite failed", err, logger.Fields{
			"sessionId": sessionID,
		})
		return favoriteErrorResponse[models.FavoriteResponse](err), err
	}

	logger.Info("telecom service add favorite success", logger.Fields{
		"sessionId":  sessionID,
		"favoriteId": favorite.ID,
	})

	return commons.SuccessResponse("favorite added successfully", mapFavoriteToResponse(favorite)), nil
}

func (s *TelecomService) RemoveFavorite(ctx context.Context, sessionID string, favoriteID string) (commons.Response[models.FavoriteResponse], error) {
	logger.Info("telecom service remove favorite request", logger.Fields{
		"sessionId":  sessionID,
		"favoriteId": favoriteID,
	})

	var removed domain.TelecomFavorite
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		for i, favorite := range session.TelecomFavorites {
			if favorite.ID == favoriteID {
				removed = favorite
				session.TelecomFavorites = append(session.TelecomFavorites[:i], session.TelecomFavorites[i+1:]...)
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	if err != nil {
		logger.Error("telecom service remove favorite failed", err, logger.Fields{
			"sessionId":  sessionID,
			"favoriteId": favoriteID,
		})
		return favoriteErrorResponse[models.FavoriteResponse](err), err
	}

	return commons.SuccessResponse("favorite removed successfully", mapFavoriteToResponse(removed)), nil
}

func mapFavoriteToResponse(favorite domain.TelecomFavorite) models.FavoriteResponse {
	return models.FavoriteResponse{
		ID:          favorite.ID,
		Operator:    string(favorite.Operator),
		PhoneNumber: favorite.PhoneNumber,
		Label:       favorite.Label,
		CreatedAt:   favorite.CreatedAt.Format(time.RFC3339),
	}
}

func favoriteErrorResponse[T any](err error) commons.Response[T] {
	switch {
	case errors.Is(err, domain.ErrDuplicateFavorite):
		return commons.ErrorResponse[T]("Favorite already exists", "A favorite with this phone number already exists")
	case errors.Is(err, domain.ErrRecordNotFound):
		return commons.ErrorResponse[T]("Favorite not found")
	case errors.Is(err, domain.ErrSessionNotFound):
		return commons.ErrorResponse[T]("Session not found")
	default:
		return commons.ErrorResponse[T]("failed to process favorite request", "Unable to process the request right now")
	}
}
