package services

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/apperrors"
	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates the account service.
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now()
	account := domain.Account{
		Name:           req.Name,
		AccountType:    req.AccountType,
		Currency:       req.Currency,
		InitialBalance: req.InitialBalance,
		CurrentBalance: req.InitialBalance,
		Description:    req.Description,
		Color:          req.Color,
		Icon:           req.Icon,
		IsActive:       true,
		CreatedAt:      now,
	}

	id, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account", "name", req.Name)
		return nil, err
	}
	account.AccountID = id

	s.LogInfo(ctx, "Account created", "account_id", id, "name", account.Name)
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, activeOnly)
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewAppError(400, "account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.Color != nil {
		account.Color = *req.Color
	}
	if req.Icon != nil {
		account.Icon = *req.Icon
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", "account_id", accountID)
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", "account_id", accountID)
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID int64) error {
	if err := s.accountRepo.DeactivateAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", "account_id", accountID)
		return err
	}
	s.LogInfo(ctx, "Account deactivated", "account_id", accountID)
	return nil
}
