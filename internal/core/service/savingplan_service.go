package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/qfnexora/finance-api/internal/core/domain"
	"github.com/qfnexora/finance-api/internal/core/ports"
)

// SavingPlanService implements saving-plan CRUD and manual deposits.
type SavingPlanService struct {
	repo ports.SavingPlanRepository
	log  zerolog.Logger
}

func NewSavingPlanService(repo ports.SavingPlanRepository, log zerolog.Logger) *SavingPlanService {
	return &SavingPlanService{repo: repo, log: log}
}

func (s *SavingPlanService) Create(ctx context.Context, userID string, in ports.SavingPlanInput) (*domain.SavingPlan, error) {
	plan, err := planFromInput(in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan.UserID = userID
	plan.Status = domain.PlanInProgress
	plan.Deposits = []domain.Deposit{}
	plan.CreatedAt = now
	plan.UpdatedAt = now

	created, err := s.repo.Insert(ctx, plan)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("title", created.Title).Msg("saving plan created")
	return created, nil
}

func (s *SavingPlanService) List(ctx context.Context, userID string) ([]domain.SavingPlan, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *SavingPlanService) Get(ctx context.Context, userID, id string) (*domain.SavingPlan, error) {
	return s.repo.FindByID(ctx, userID, id)
}

// Update replaces the editable fields of a plan still in progress.
func (s *SavingPlanService) Update(ctx context.Context, userID, id string, in ports.SavingPlanInput) (*domain.SavingPlan, error) {
	existing, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if existing.Status != domain.PlanInProgress {
		return nil, domain.ErrPlanNotEditable
	}

	plan, err := planFromInput(in)
	if err != nil {
		return nil, err
	}
	plan.Status = existing.Status
	plan.CurrentAmount = existing.CurrentAmount
	plan.Deposits = existing.Deposits
	plan.CreatedAt = existing.CreatedAt
	plan.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, userID, id, plan)
}

// Delete removes a plan still in progress.
func (s *SavingPlanService) Delete(ctx context.Context, userID, id string) error {
	existing, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if existing.Status != domain.PlanInProgress {
		return domain.ErrPlanNotEditable
	}
	return s.repo.Delete(ctx, userID, id)
}

// AddDeposit applies a manual deposit, completing the plan when the target
// is reached. Deposits past the target are refused.
func (s *SavingPlanService) AddDeposit(ctx context.Context, userID, id string, in ports.DepositInput) (*domain.SavingPlan, error) {
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	plan, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := plan.ApplyDeposit(domain.Deposit{
		Amount: in.Amount,
		Date:   time.Now().UTC(),
		Note:   in.Note,
	}); err != nil {
		return nil, err
	}
	plan.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, userID, id, plan)
	if err != nil {
		return nil, err
	}
	if updated.Status == domain.PlanCompleted {
		s.log.Info().Str("user_id", userID).Str("plan_id", id).Msg("saving plan completed")
	}
	return updated, nil
}

func planFromInput(in ports.SavingPlanInput) (*domain.SavingPlan, error) {
	if in.Title == "" || in.TargetAmount <= 0 {
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

	var freq domain.SaveFrequency
	if in.AutoSave {
		freq = domain.SaveFrequency(in.Frequency)
		switch freq {
		case domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyMonthly:
		default:
			return nil, domain.ErrInvalidInput
		}
	}

	currency := in.Currency
	if currency == "" {
		currency = "XOF"
	}

	return &domain.SavingPlan{
		Title:        in.Title,
		Description:  in.Description,
		TargetAmount: in.TargetAmount,
		StartDate:    start,
		EndDate:      end,
		AutoSave:     in.AutoSave,
		Frequency:    freq,
		Currency:     currency,
	}, nil
}
