package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/core/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecurringServiceTestSuite struct {
	suite.Suite
	mockRecurringRepo *MockRecurringRepository
	mockTxnRepo       *MockTransactionRepository
	mockAccountRepo   *MockAccountRepository
	service           portssvc.RecurringSvcFacade
}

func (s *RecurringServiceTestSuite) SetupTest() {
	s.mockRecurringRepo = new(MockRecurringRepository)
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.service = services.NewRecurringService(s.mockRecurringRepo, s.mockTxnRepo, s.mockAccountRepo)
}

func (s *RecurringServiceTestSuite) TestProcessDue_SingleOccurrence() {
	ctx := context.Background()
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	template := domain.RecurringTransaction{
		RecurringID:     5,
		AccountID:       1,
		Amount:          decimal.RequireFromString("50"),
		TransactionType: domain.Expense,
		Description:     "gym",
		Frequency:       domain.MonthlyF,
		NextOccurrence:  due,
		IsActive:        true,
	}
	s.mockRecurringRepo.On("FindDue", ctx, now).Return([]domain.RecurringTransaction{template}, nil).Once()

	expectedDeltas := map[int64]decimal.Decimal{1: decimal.RequireFromString("-50")}
	s.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.AccountID == 1 && t.Date.Equal(due) && t.TransactionType == domain.Expense
	}), expectedDeltas).Return(int64(100), nil).Once()

	nextDue := due.AddDate(0, 1, 0)
	s.mockRecurringRepo.On("UpdateOccurrences", ctx, int64(5), due, nextDue).Return(nil).Once()

	created, err := s.service.ProcessDue(ctx, now)

	s.Require().NoError(err)
	s.Equal(1, created)
	s.mockRecurringRepo.AssertExpectations(s.T())
	s.mockTxnRepo.AssertExpectations(s.T())
}

// A daily template three days behind catches up with one transaction per
// missed day.
func (s *RecurringServiceTestSuite) TestProcessDue_CatchesUp() {
	ctx := context.Background()
	now := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	first := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	template := domain.RecurringTransaction{
		RecurringID:     6,
		AccountID:       2,
		Amount:          decimal.RequireFromString("10"),
		TransactionType: domain.Income,
		Frequency:       domain.Daily,
		NextOccurrence:  first,
		IsActive:        true,
	}
	s.mockRecurringRepo.On("FindDue", ctx, now).Return([]domain.RecurringTransaction{template}, nil).Once()
	s.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Return(int64(1), nil).Times(3)
	s.mockRecurringRepo.On("UpdateOccurrences", ctx, int64(6), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil).Times(3)

	created, err := s.service.ProcessDue(ctx, now)

	s.Require().NoError(err)
	s.Equal(3, created)
	s.mockTxnRepo.AssertExpectations(s.T())
	s.mockRecurringRepo.AssertExpectations(s.T())
}

func (s *RecurringServiceTestSuite) TestProcessDue_ExpiredTemplateDeactivated() {
	ctx := context.Background()
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

	template := domain.RecurringTransaction{
		RecurringID:     7,
		AccountID:       1,
		Amount:          decimal.RequireFromString("25"),
		TransactionType: domain.Expense,
		Frequency:       domain.MonthlyF,
		NextOccurrence:  due,
		EndDate:         &end,
		IsActive:        true,
	}
	s.mockRecurringRepo.On("FindDue", ctx, now).Return([]domain.RecurringTransaction{template}, nil).Once()
	s.mockRecurringRepo.On("DeactivateRecurring", ctx, int64(7)).Return(nil).Once()

	created, err := s.service.ProcessDue(ctx, now)

	s.Require().NoError(err)
	s.Equal(0, created)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
	s.mockRecurringRepo.AssertExpectations(s.T())
}

func (s *RecurringServiceTestSuite) TestUpdateRecurring_MergesFields() {
	ctx := context.Background()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	stored := &domain.RecurringTransaction{
		RecurringID:     8,
		AccountID:       1,
		Amount:          decimal.RequireFromString("100"),
		TransactionType: domain.Expense,
		Description:     "rent",
		Frequency:       domain.MonthlyF,
		StartDate:       start,
		NextOccurrence:  start,
		IsActive:        true,
	}
	s.mockRecurringRepo.On("FindRecurringByID", ctx, int64(8)).Return(stored, nil).Once()

	newAmount := decimal.RequireFromString("120")
	s.mockRecurringRepo.On("UpdateRecurring", ctx, mock.MatchedBy(func(rec domain.RecurringTransaction) bool {
		return rec.RecurringID == 8 && rec.Amount.Equal(newAmount) && rec.Description == "rent" && rec.Frequency == domain.Weekly
	})).Return(nil).Once()

	weekly := domain.Weekly
	updated, err := s.service.UpdateRecurring(ctx, 8, dto.UpdateRecurringRequest{
		Amount:    &newAmount,
		Frequency: &weekly,
	})

	s.Require().NoError(err)
	s.True(updated.Amount.Equal(newAmount))
	s.Equal(domain.Weekly, updated.Frequency)
	s.Equal("rent", updated.Description)
	s.mockRecurringRepo.AssertExpectations(s.T())
}

func (s *RecurringServiceTestSuite) TestUpdateRecurring_RejectsNonPositiveAmount() {
	ctx := context.Background()
	stored := &domain.RecurringTransaction{RecurringID: 9, Amount: decimal.RequireFromString("10"), IsActive: true}
	s.mockRecurringRepo.On("FindRecurringByID", ctx, int64(9)).Return(stored, nil).Once()

	zero := decimal.Zero
	_, err := s.service.UpdateRecurring(ctx, 9, dto.UpdateRecurringRequest{Amount: &zero})

	s.Error(err)
	s.mockRecurringRepo.AssertNotCalled(s.T(), "UpdateRecurring", mock.Anything, mock.Anything)
}

func (s *RecurringServiceTestSuite) TestProcessDue_NothingDue() {
	ctx := context.Background()
	now := time.Now()
	s.mockRecurringRepo.On("FindDue", ctx, now).Return([]domain.RecurringTransaction{}, nil).Once()

	created, err := s.service.ProcessDue(ctx, now)

	s.Require().NoError(err)
	s.Equal(0, created)
}

func TestRecurringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringServiceTestSuite))
}
