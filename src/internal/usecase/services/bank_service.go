package services

import (
	"context"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/models"
	"github.com/api-sage/swift-payment-portal/src/internal/commons"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/logger"
)

type BankService struct {
	directory domain.BankDirectory
}

func NewBankService(directory domain.BankDirectory) *BankService {
	return &BankService{directory: directory}
}

// ListBanks is open to any authenticated principal.
func (s *BankService) ListBanks(ctx context.Context, principal domain.Principal) (commons.Response[[]models.BankResponse], error) {
	logger.Info("bank service list banks request", logger.Fields{"principalId": principal.ID})

	if !principal.IsCustomer() && !principal.IsEmployee() {
		err := &domain.AuthError{Reason: "authentication required"}
		return errorResponse[[]models.BankResponse](err), err
	}

	banks, err := s.directory.All(ctx)
	if err != nil {
		err = storeError("list banks", err)
		logger.Error("bank service list banks failed", err, nil)
		return errorResponse[[]models.BankResponse](err), err
	}

	resp := make([]models.BankResponse, 0, len(banks))
	for _, bank := range banks {
		resp = append(resp, models.BankResponse{
			Name:      bank.Name,
			SwiftCode: bank.SwiftCode,
			Country:   bank.Country,
		})
	}

	logger.Info("bank service list banks success", logger.Fields{"count": len(resp)})
	return commons.SuccessResponse("banks fetched successfully", resp), nil
}
