package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/qfnexora/finance-api/internal/core/domain"
	"github.com/qfnexora/finance-api/internal/core/ports"
)

// BudgetService implements budget CRUD for the owning user.
type BudgetService struct {
	repo ports.BudgetRepository
	log  zerolog.Logger
}

func NewBudgetService(repo ports.BudgetRepository, log zerolog.Logger) *BudgetService {
	return &BudgetService{repo: repo, log: log}
}

func (s *BudgetService) Create(ctx context.Context, userID string, in ports.BudgetInput) (*domain.Budget, error) {
	budget, err := budgetFromInput(in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	budget.UserID = userID
	budget.Status = domain.BudgetActive
	budget.CreatedAt = now
	budget.UpdatedAt = now

	created, err := s.repo.Insert(ctx, budget)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("period", string(created.Period)).Msg("budget created")
	return created, nil
}

func (s *BudgetService) List(ctx context.Context, userID string) ([]domain.Budget, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *BudgetService) Get(ctx context.Context, userID, id string) (*domain.Budget, error) {
	return s.repo.FindByID(ctx, userID, id)
}

func (s *BudgetService) Update(ctx context.Context, userID, id string, in ports.BudgetInput) (*domain.Budget, error) {
	existing, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	budget, err := budgetFromInput(in)
	if err != nil {
		return nil, err
	}
	budget.Status = existing.Status
	budget.CreatedAt = existing.CreatedAt
	budget.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, userID, id, budget)
}

func (s *BudgetService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.FindByID(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID, id)
}

func budgetFromInput(in ports.BudgetInput) (*domain.Budget, error) {
	period := domain.BudgetPeriod(in.Period)
	switch period {
	case domain.PeriodWeekly, domain.PeriodMonthly, domain.PeriodYearly:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !end.After(start) {
		return nil, domain.ErrInvalidInput
	}

	category := in.Category
	if category == "" {
		category = "Global"
	}
	currency := in.Currency
	if currency == "" {
		currency = "XOF"
	}

	return &domain.Budget{
		Period:        period,
		Amount:        in.Amount,
		Category:      category,
		StartDate:     start,
		EndDate:       end,
		Currency:      currency,
		Notifications: in.Notifications,
	}, nil
}
