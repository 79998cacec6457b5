package ports

import (
	"context"

	"github.com/qfnexora/finance-api/internal/core/domain"
)

// TransactionInput carries the caller-editable fields of a transaction.
type TransactionInput struct {
	Type              string
	Nature            string
	Amount            float64
	Category          string
	Description       string
	Currency          string
	Date              string
	RelatedSavingPlan string
	ReceiptURL        string
}

// TransactionFilter narrows a transaction listing. Empty fields match all.
type TransactionFilter struct {
	Nature   string
	Type     string
	Category string
}

// TransactionRepository defines persistence for transactions. Every query is
// scoped to the owning user.
type TransactionRepository interface {
	Insert(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindByUser(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, error)
	FindByID(ctx context.Context, userID, id string) (*domain.Transaction, error)
	Update(ctx context.Context, userID, id string, tx *domain.Transaction) (*domain.Transaction, error)
	Delete(ctx context.Context, userID, id string) error
}

// TransactionService exposes transaction CRUD for the authenticated user.
type TransactionService interface {
	Create(ctx context.Context, userID string, in TransactionInput) (*domain.Transaction, error)
	List(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, error)
	Get(ctx context.Context, userID, id string) (*domain.Transaction, error)
	Update(ctx context.Context, userID, id string, in TransactionInput) (*domain.Transaction, error)
	Delete(ctx context.Context, userID, id string) error
}
