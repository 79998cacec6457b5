package ports

import (
	"context"

	"github.com/qfnexora/finance-api/internal/core/domain"
)

// BudgetInput carries the caller-editable fields of a budget.
type BudgetInput struct {
	Period        string
	Amount        float64
	Category      string
	StartDate     string
	EndDate       string
	Currency      string
	Notifications bool
}

// BudgetRepository defines persistence for budgets, scoped to the owner.
type BudgetRepository interface {
	Insert(ctx context.Context, b *domain.Budget) (*domain.Budget, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Budget, error)
	FindByID(ctx context.Context, userID, id string) (*domain.Budget, error)
	Update(ctx context.Context, userID, id string, b *domain.Budget) (*domain.Budget, error)
	Delete(ctx context.Context, userID, id string) error
}

// BudgetService exposes budget CRUD for the authenticated user.
type BudgetService interface {
	Create(ctx context.Context, userID string, in BudgetInput) (*domain.Budget, error)
	List(ctx context.Context, userID string) ([]domain.Budget, error)
	Get(ctx context.Context, userID, id string) (*domain.Budget, error)
	Update(ctx context.Context, userID, id string, in BudgetInput) (*domain.Budget, error)
	Delete(ctx context.Context, userID, id string) error
}
