package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/qfnexora/finance-api/internal/core/domain"
	"github.com/qfnexora/finance-api/internal/core/ports"
)

// TransactionService implements transaction CRUD for the owning user.
type TransactionService struct {
	repo ports.TransactionRepository
	log  zerolog.Logger
}

func NewTransactionService(repo ports.TransactionRepository, log zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, log: log}
}

// Create records a new manual transaction for the user.
func (s *TransactionService) Create(ctx context.Context, userID string, in ports.TransactionInput) (*domain.Transaction, error) {
	tx, err := transactionFromInput(in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tx.UserID = userID
	tx.Status = domain.TxSuccess
	tx.Source = domain.SourceManual
	tx.CreatedAt = now
	tx.UpdatedAt = now

	created, err := s.repo.Insert(ctx, tx)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("type", string(created.Type)).Msg("transaction created")
	return created, nil
}

// List returns the user's transactions, newest first.
func (s *TransactionService) List(ctx context.Context, userID string, filter ports.TransactionFilter) ([]domain.Transaction, error) {
	return s.repo.FindByUser(ctx, userID, filter)
}

func (s *TransactionService) Get(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	return s.repo.FindByID(ctx, userID, id)
}

// Update replaces the editable fields of a transaction. Only manually
// entered transactions may change.
func (s *TransactionService) Update(ctx context.Context, userID, id string, in ports.TransactionInput) (*domain.Transaction, error) {
	existing, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if existing.Source != domain.SourceManual {
		return nil, domain.ErrImmutableSource
	}

	tx, err := transactionFromInput(in)
	if err != nil {
		return nil, err
	}
	tx.Status = existing.Status
	tx.Source = existing.Source
	tx.CreatedAt = existing.CreatedAt
	tx.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, userID, id, tx)
}

// Delete removes a manual transaction.
func (s *TransactionService) Delete(ctx context.Context, userID, id string) error {
	existing, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if existing.Source != domain.SourceManual {
		return domain.ErrImmutableSource
	}
	return s.repo.Delete(ctx, userID, id)
}

func transactionFromInput(in ports.TransactionInput) (*domain.Transaction, error) {
	txType := domain.TransactionType(in.Type)
	switch txType {
	case domain.TypeDeposit, domain.TypeWithdrawal, domain.TypeTransfer:
	default:
		return nil, domain.ErrInvalidInput
	}
	nature := domain.TransactionNature(in.Nature)
	if nature != domain.NatureIncome && nature != domain.NatureExpense {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	date := time.Now().UTC()
	if in.Date != "" {
		parsed, err := time.Parse(time.RFC3339, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed.UTC()
	}

	category := in.Category
	if category == "" {
		category = "Other"
	}
	currency := in.Currency
	if currency == "" {
		currency = "XOF"
	}

	return &domain.Transaction{
		Type:              txType,
		Nature:            nature,
		Amount:            in.Amount,
		Category:          category,
		Description:       in.Description,
		Currency:          currency,
		Date:              date,
		RelatedSavingPlan: in.RelatedSavingPlan,
		ReceiptURL:        in.ReceiptURL,
	}, nil
}
