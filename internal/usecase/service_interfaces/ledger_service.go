package service_interfaces

import (
	"context"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

// LedgerService is the single authority over balance mutation and transaction
// recording. Every money-moving operation goes through it.
type LedgerService interface {
	TransferToBeneficiary(ctx context.Context, sessionID string, req models.BeneficiaryTransferRequest) (commons.Response[models.TransferResponse], error)
	TransferToSavings(ctx context.Context, sessionID string, req models.SavingsTransferRequest) (commons.Response[models.TransferResponse], error)
	PayBill(ctx context.Context, sessionID string, req models.BillPaymentRequest) (commons.Response[models.BillPaymentResponse], error)
	RechargeTelecom(ctx context.Context, sessionID string, req models.RechargeRequest) (commons.Response[models.RechargeResponse], error)
	ConfirmConversion(ctx context.Context, sessionID string, req models.ConfirmConversionRequest) (commons.Response[models.ConversionResponse], error)
}
