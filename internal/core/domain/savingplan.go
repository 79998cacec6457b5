package domain

import "time"

// SavingPlanStatus is the lifecycle state of a saving plan.
type SavingPlanStatus string

const (
	PlanInProgress SavingPlanStatus = "in_progress"
	PlanCompleted  SavingPlanStatus = "completed"
	PlanCancelled  SavingPlanStatus = "cancelled"
)

// SaveFrequency is how often an automatic saving deposit recurs.
type SaveFrequency string

const (
	FrequencyDaily   SaveFrequency = "daily"
	FrequencyWeekly  SaveFrequency = "weekly"
	FrequencyMonthly SaveFrequency = "monthly"
)

// Deposit is one entry in a plan's embedded deposit history.
type Deposit struct {
	Amount float64   `json:"amount" bson:"amount"`
	Date   time.Time `json:"date" bson:"date"`
	Note   string    `json:"note,omitempty" bson:"note,omitempty"`
}

// SavingPlan is a savings goal with an embedded deposit history. Plans are
// editable only while in progress; reaching the target completes the plan.
type SavingPlan struct {
	ID            string           `json:"id" bson:"_id,omitempty"`
	UserID        string           `json:"user_id" bson:"user_id"`
	Title         string           `json:"title" bson:"title"`
	Description   string           `json:"description,omitempty" bson:"description,omitempty"`
	TargetAmount  float64          `json:"target_amount" bson:"target_amount"`
	CurrentAmount float64          `json:"current_amount" bson:"current_amount"`
	StartDate     time.Time        `json:"start_date" bson:"start_date"`
	EndDate       time.Time        `json:"end_date" bson:"end_date"`
	Status        SavingPlanStatus `json:"status" bson:"status"`
	AutoSave      bool             `json:"auto_save" bson:"auto_save"`
	Frequency     SaveFrequency    `json:"frequency,omitempty" bson:"frequency,omitempty"`
	Currency      string           `json:"currency" bson:"currency"`
	Deposits      []Deposit        `json:"deposits" bson:"deposits"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" bson:"updated_at"`
}

// ApplyDeposit appends a deposit and advances the saved amount, completing
// the plan when the target is reached. Overshooting the target is refused.
func (p *SavingPlan) ApplyDeposit(d Deposit) error {
	if p.Status != PlanInProgress {
		return ErrPlanNotEditable
	}
	if p.CurrentAmount+d.Amount > p.TargetAmount {
		return ErrDepositExceedsGoal
	}
	p.Deposits = append(p.Deposits, d)
	p.CurrentAmount += d.Amount
	if p.CurrentAmount >= p.TargetAmount {
		p.Status = PlanCompleted
	}
	return nil
}
