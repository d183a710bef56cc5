package service_interfaces

import (
	"context"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type AccountService interface {
	GetAccount(ctx context.Context, sessionID string) (commons.Response[models.AccountResponse], error)
	ListTransactions(ctx context.Context, sessionID string) (commons.Response[[]models.TransactionResponse], error)
}
