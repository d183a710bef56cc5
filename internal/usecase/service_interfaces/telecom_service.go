package service_interfaces

import (
	"context"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type TelecomService interface {
	ListFavorites(ctx context.Context, sessionID string) (commons.Response[[]models.FavoriteResponse], error)
	AddFavorite(ctx context.Context, sessionID string, req models.AddFavoriteRequest) (commons.Response[models.FavoriteResponse], error)
	RemoveFavorite(ctx context.Context, sessionID string, favoriteID string) (commons.Response[models.FavoriteResponse], error)
}
