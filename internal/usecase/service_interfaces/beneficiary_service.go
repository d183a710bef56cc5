package service_interfaces

import (
	"context"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type BeneficiaryService interface {
	ListBeneficiaries(ctx context.Context, sessionID string) (commons.Response[[]models.BeneficiaryResponse], error)
	AddBeneficiary(ctx context.Context, sessionID string, req models.AddBeneficiaryRequest) (commons.Response[models.BeneficiaryResponse], error)
	SetBeneficiaryBlocked(ctx context.Context, sessionID string, beneficiaryID string, blocked bool) (commons.Response[models.BeneficiaryResponse], error)
	RemoveBeneficiary(ctx context.Context, sessionID string, beneficiaryID string) (commons.Response[models.BeneficiaryResponse], error)
}
