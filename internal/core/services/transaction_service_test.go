package services_test

import (
	"context"
	"testing"

	"github.com/finanzas-app/finanzas_backend/internal/apperrors"
	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/core/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockAccountRepo  *MockAccountRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.TransactionSvcFacade
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockCategoryRepo = new(MockCategoryRepository)
	s.service = services.NewTransactionService(s.mockTxnRepo, s.mockAccountRepo, s.mockCategoryRepo)
}

func (s *TransactionServiceTestSuite) account(id int64, balance string) *domain.Account {
	return &domain.Account{
		AccountID:      id,
		Name:           "Account",
		AccountType:    domain.Checking,
		Currency:       "USD",
		CurrentBalance: decimal.RequireFromString(balance),
		IsActive:       true,
	}
}

func (s *TransactionServiceTestSuite) TestCreateIncome_CreditsAccount() {
	ctx := context.Background()
	s.mockAccountRepo.On("FindAccountByID", ctx, int64(1)).Return(s.account(1, "1000"), nil).Once()

	expectedDeltas := map[int64]decimal.Decimal{1: decimal.RequireFromString("200")}
	s.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), expectedDeltas).
		Return(int64(10), nil).Once()

	txn, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       1,
		Amount:          decimal.RequireFromString("200"),
		TransactionType: domain.Income,
		Description:     "salary",
		Date:            "2024-03-05",
	})

	s.Require().NoError(err)
	s.Equal(int64(10), txn.TransactionID)
	s.mockTxnRepo.AssertExpectations(s.T())
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateExpense_DebitsAccount() {
	ctx := context.Background()
	s.mockAccountRepo.On("FindAccountByID", ctx, int64(1)).Return(s.account(1, "1200"), nil).Once()

	catID := int64(3)
	s.mockCategoryRepo.On("FindCategoryByID", ctx, catID).
		Return(&domain.Category{CategoryID: catID, Name: "Alimentación", CategoryType: domain.CategoryExpense}, nil).Once()

	expectedDeltas := map[int64]decimal.Decimal{1: decimal.RequireFromString("-300")}
	s.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), expectedDeltas).
		Return(int64(11), nil).Once()

	_, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       1,
		CategoryID:      &catID,
		Amount:          decimal.RequireFromString("300"),
		TransactionType: domain.Expense,
		Date:            "2024-03-06",
	})

	s.Require().NoError(err)
	s.mockTxnRepo.AssertExpectations(s.T())
	s.mockCategoryRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransfer_MovesBetweenAccounts() {
	ctx := context.Background()
	destID := int64(2)
	s.mockAccountRepo.On("FindAccountByID", ctx, int64(1)).Return(s.account(1, "900"), nil).Once()
	s.mockAccountRepo.On("FindAccountByID", ctx, destID).Return(s.account(2, "500"), nil).Once()

	// Source loses the amount, destination gains the full amount.
	expectedDeltas := map[int64]decimal.Decimal{
		1: decimal.RequireFromString("-100"),
		2: decimal.RequireFromString("100"),
	}
	s.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), expectedDeltas).
		Return(int64(12), nil).Once()

	_, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:            1,
		Amount:               decimal.RequireFromString("100"),
		TransactionType:      domain.Transfer,
		DestinationAccountID: &destID,
		Date:                 "2024-03-07",
	})

	s.Require().NoError(err)
	s.mockTxnRepo.AssertExpectations(s.T())
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransfer_LegacyDescriptionSuffix() {
	ctx := context.Background()
	s.mockAccountRepo.On("FindAccountByID", ctx, int64(1)).Return(s.account(1, "800"), nil).Once()
	s.mockAccountRepo.On("FindAccountByID", ctx, int64(42)).Return(s.account(42, "0"), nil).Once()

	expectedDeltas := map[int64]decimal.Decimal{
		1:  decimal.RequireFromString("-50"),
		42: decimal.RequireFromString("50"),
	}
	// The parsed destination must land in the explicit column so the stored
	// row never depends on the description suffix again.
	s.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.DestinationAccountID != nil && *t.DestinationAccountID == 42
	}), expectedDeltas).Return(int64(13), nil).Once()

	created, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       1,
		Amount:          decimal.RequireFromString("50"),
		TransactionType: domain.Transfer,
		Description:     "to savings:42",
		Date:            "2024-03-08",
	})

	s.Require().NoError(err)
	s.Require().NotNil(created.DestinationAccountID)
	s.Equal(int64(42), *created.DestinationAccountID)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransfer_SelfTransferRejected() {
	ctx := context.Background()
	srcID := int64(1)
	s.mockAccountRepo.On("FindAccountByID", ctx, srcID).Return(s.account(1, "800"), nil).Once()

	_, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:            1,
		Amount:               decimal.RequireFromString("50"),
		TransactionType:      domain.Transfer,
		DestinationAccountID: &srcID,
		Date:                 "2024-03-08",
	})

	s.Require().Error(err)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmountRejected() {
	ctx := context.Background()

	_, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       1,
		Amount:          decimal.RequireFromString("-5"),
		TransactionType: domain.Expense,
		Date:            "2024-03-08",
	})

	s.Require().Error(err)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_UnknownAccount() {
	ctx := context.Background()
	s.mockAccountRepo.On("FindAccountByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       99,
		Amount:          decimal.RequireFromString("10"),
		TransactionType: domain.Income,
		Date:            "2024-03-08",
	})

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_BadDate() {
	ctx := context.Background()

	_, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       1,
		Amount:          decimal.RequireFromString("10"),
		TransactionType: domain.Income,
		Date:            "03/08/2024",
	})

	s.Require().Error(err)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
