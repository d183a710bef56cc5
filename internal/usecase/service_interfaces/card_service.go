package service_interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type CardService interface {
	GetCard(ctx context.Context, sessionID string) (commons.Response[models.CardResponse], error)
	SetCardActive(ctx context.Context, sessionID string, active bool) (commons.Response[models.CardResponse], error)
	SetCardBlocked(ctx context.Context, sessionID string, blocked bool) (commons.Response[models.CardResponse], error)
	SetCardDailyLimit(ctx context.Context, sessionID string, limit decimal.Decimal) (commons.Response[models.CardResponse], error)
}
