package ports

import (
	"context"

	"github.com/qfnexora/finance-api/internal/core/domain"
)

// SavingPlanInput carries the caller-editable fields of a saving plan.
type SavingPlanInput struct {
	Title        string
	Description  string
	TargetAmount float64
	StartDate    string
	EndDate      string
	AutoSave     bool
	Frequency    string
	Currency     string
}

// DepositInput is a single manual deposit into a saving plan.
type DepositInput struct {
	Amount float64
	Note   string
}

// SavingPlanRepository defines persistence for saving plans, scoped to the owner.
type SavingPlanRepository interface {
	Insert(ctx context.Context, p *domain.SavingPlan) (*domain.SavingPlan, error)
	FindByUser(ctx context.Context, userID string) ([]domain.SavingPlan, error)
	FindByID(ctx context.Context, userID, id string) (*domain.SavingPlan, error)
	Update(ctx context.Context, userID, id string, p *domain.SavingPlan) (*domain.SavingPlan, error)
	Delete(ctx context.Context, userID, id string) error
}

// SavingPlanService exposes saving-plan CRUD and deposits for the
// authenticated user.
type SavingPlanService interface {
	Create(ctx context.Context, userID string, in SavingPlanInput) (*domain.SavingPlan, error)
	List(ctx context.Context, userID string) ([]domain.SavingPlan, error)
	Get(ctx context.Context, userID, id string) (*domain.SavingPlan, error)
	Update(ctx context.Context, userID, id string, in SavingPlanInput) (*domain.SavingPlan, error)
	Delete(ctx context.Context, userID, id string) error
	AddDeposit(ctx context.Context, userID, id string, in DepositInput) (*domain.SavingPlan, error)
}
