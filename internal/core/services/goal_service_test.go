package services_test

import (
	"context"
	"testing"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/core/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockGoalRepository
	service  portssvc.GoalSvcFacade
}

func (s *GoalServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockGoalRepository)
	s.service = services.NewGoalService(s.mockRepo)
}

func (s *GoalServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()
	s.mockRepo.On("SaveGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(int64(7), nil).Once()

	goal, err := s.service.CreateGoal(ctx, dto.CreateGoalRequest{
		Name:         "Vacaciones",
		TargetAmount: decimal.RequireFromString("1500"),
		Deadline:     "2024-12-31",
	})

	s.Require().NoError(err)
	s.Equal(int64(7), goal.GoalID)
	s.True(goal.CurrentAmount.IsZero())
	s.False(goal.IsCompleted)
	s.Require().NotNil(goal.Deadline)
	s.Equal(2024, goal.Deadline.Year())
	s.mockRepo.AssertExpectations(s.T())
}

func (s *GoalServiceTestSuite) TestCreateGoal_NonPositiveTarget() {
	ctx := context.Background()

	_, err := s.service.CreateGoal(ctx, dto.CreateGoalRequest{
		Name:         "Broken",
		TargetAmount: decimal.Zero,
	})

	s.Require().Error(err)
	s.mockRepo.AssertNotCalled(s.T(), "SaveGoal", mock.Anything, mock.Anything)
}

func (s *GoalServiceTestSuite) TestContribute_AccumulatesBelowTarget() {
	ctx := context.Background()
	stored := &domain.Goal{
		GoalID:        7,
		Name:          "Vacaciones",
		TargetAmount:  decimal.RequireFromString("1500"),
		CurrentAmount: decimal.RequireFromString("200"),
	}
	s.mockRepo.On("FindGoalByID", ctx, int64(7)).Return(stored, nil).Once()
	s.mockRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.CurrentAmount.Equal(decimal.RequireFromString("500")) && !g.IsCompleted
	})).Return(nil).Once()

	goal, err := s.service.Contribute(ctx, 7, decimal.RequireFromString("300"))

	s.Require().NoError(err)
	s.False(goal.IsCompleted)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *GoalServiceTestSuite) TestContribute_ReachingTargetCompletes() {
	ctx := context.Background()
	stored := &domain.Goal{
		GoalID:        7,
		TargetAmount:  decimal.RequireFromString("1500"),
		CurrentAmount: decimal.RequireFromString("1400"),
	}
	s.mockRepo.On("FindGoalByID", ctx, int64(7)).Return(stored, nil).Once()
	s.mockRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.CurrentAmount.Equal(decimal.RequireFromString("1600")) && g.IsCompleted
	})).Return(nil).Once()

	goal, err := s.service.Contribute(ctx, 7, decimal.RequireFromString("200"))

	s.Require().NoError(err)
	s.True(goal.IsCompleted)
	// The saved total may exceed the target; only the progress ratio clamps.
	s.True(goal.CurrentAmount.Equal(decimal.RequireFromString("1600")))
	s.True(goal.Progress().Equal(decimal.NewFromInt(1)))
}

func (s *GoalServiceTestSuite) TestContribute_NonPositiveAmount() {
	ctx := context.Background()

	_, err := s.service.Contribute(ctx, 7, decimal.Zero)

	s.Require().Error(err)
	s.mockRepo.AssertNotCalled(s.T(), "FindGoalByID", mock.Anything, mock.Anything)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
