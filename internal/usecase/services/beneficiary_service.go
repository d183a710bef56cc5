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

// Verify that BeneficiaryService implements the service_interfaces.BeneficiaryService interface
var _ service_interfaces.BeneficiaryService = (*BeneficiaryService)(nil)

// BeneficiaryService manages the beneficiary registry. None of its operations
// touch balances or the transaction log.
type BeneficiaryService struct {
	store repo_interfaces.SessionStore
}

func NewBeneficiaryService(store repo_interfaces.SessionStore) *BeneficiaryService {
	return &BeneficiaryService{store: store}
}

func (s *BeneficiaryService) ListBeneficiaries(ctx context.Context, sessionID string) (commons.Response[[]models.BeneficiaryResponse], error) {
	logger.Info("beneficiary service list request", logger.Fields{
		"sessionId": sessionID,
	})

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return beneficiaryErrorResponse[[]models.BeneficiaryResponse](err), err
	}

	resp := make([]models.BeneficiaryResponse, 0, len(session.Beneficiaries))
	for _, beneficiary := range session.Beneficiaries {
		resp = append(resp, mapBeneficiaryToResponse(beneficiary))
	}

	return commons.SuccessResponse("beneficiaries fetched successfully", resp), nil
}

func (s *BeneficiaryService) AddBeneficiary(ctx context.Context, sessionID string, req models.AddBeneficiaryRequest) (commons.Response[models.BeneficiaryResponse], error) {
	logger.Info("beneficiary service add request", logger.Fields{
		"sessionId": sessionID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("beneficiary service add validation failed", err, nil)
		return commons.ErrorResponse[models.BeneficiaryResponse]("validation failed", err.Error()), err
	}

	beneficiary := domain.Beneficiary{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		BankName: strings.TrimSpace(req.BankName),
		IBAN:     commons.NormalizeIBAN(req.IBAN),
		Blocked:  false,
		AddedAt:  time.Now().UTC(),
	}

	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		session.Beneficiaries = append(session.Beneficiaries, beneficiary)
		return nil
	})
	if err != nil {
		logger.Error("beneficiary service add failed", err, logger.Fields{
			"sessionId": sessionID,
		})
		return beneficiaryErrorResponse[models.BeneficiaryResponse](err), err
	}

	logger.Info("beneficiary service add success", logger.Fields{
		"sessionId":     sessionID,
		"beneficiaryId": beneficiary.ID,
	})

	return commons.SuccessResponse("beneficiary added successfully", mapBeneficiaryToResponse(beneficiary)), nil
}

func (s *BeneficiaryService) SetBeneficiaryBlocked(ctx context.Context, sessionID string, beneficiaryID string, blocked bool) (commons.Response[models.BeneficiaryResponse], error) {
	logger.Info("beneficiary service set blocked request", logger.Fields{
		"sessionId":     sessionID,
		"beneficiaryId": beneficiaryID,
		"blocked":       blocked,
	})

	var updated domain.Beneficiary
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		beneficiary := findBeneficiary(session, beneficiaryID)
		if beneficiary == nil {
			return domain.ErrRecordNotFound
		}
		beneficiary.Blocked = blocked
		updated = *beneficiary
		return nil
	})
	if err != nil {
		logger.Error("beneficiary service set blocked failed", err, logger.Fields{
			"sessionId":     sessionID,
			"beneficiaryId": beneficiaryID,
		})
		return beneficiaryErrorResponse[models.BeneficiaryResponse](err), err
	}

	return commons.SuccessResponse("beneficiary updated successfully", mapBeneficiaryToResponse(updated)), nil
}

func (s *BeneficiaryService) RemoveBeneficiary(ctx context.Context, sessionID string, beneficiaryID string) (commons.Response[models.BeneficiaryResponse], error) {
	logger.Info("beneficiary service remove request", logger.Fields{
		"sessionId":     sessionID,
		"beneficiaryId": beneficiaryID,
	})

	var removed domain.Beneficiary
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		for i, beneficiary := range session.Beneficiaries {
			if beneficiary.ID == beneficiaryID {
				removed = beneficiary
				session.Beneficiaries = append(session.Beneficiaries[:i], session.Beneficiaries[i+1:]...)
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	if err != nil {
		logger.Error("beneficiary service remove failed", err, logger.Fields{
			"sessionId":     sessionID,
			"beneficiaryId": beneficiaryID,
		})
		return beneficiaryErrorResponse[models.BeneficiaryResponse](err), err
	}

	return commons.SuccessResponse("beneficiary removed successfully", mapBeneficiaryToResponse(removed)), nil
}

func mapBeneficiaryToResponse(beneficiary domain.Beneficiary) models.BeneficiaryResponse {
	return models.BeneficiaryResponse{
		ID:       beneficiary.ID,
		Name:     beneficiary.Name,
		BankName: beneficiary.BankName,
		IBAN:     beneficiary.IBAN,
		Blocked:  beneficiary.Blocked,
		AddedAt:  beneficiary.AddedAt.Format(time.RFC3339),
	}
}

func beneficiaryErrorResponse[T any](err error) commons.Response[T] {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return commons.ErrorResponse[T]("Beneficiary not found")
	case errors.Is(err, domain.ErrSessionNotFound):
		return commons.ErrorResponse[T]("Session not found")
	default:
		return commons.ErrorResponse[T]("failed to process beneficiary request", "Unable to process the request right now")
	}
}
