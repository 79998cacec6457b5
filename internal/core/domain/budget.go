package domain

import "time"

// BudgetPeriod is the recurrence window a budget covers.
type BudgetPeriod string

const (
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// BudgetStatus is the lifecycle state of a budget.
type BudgetStatus string

const (
	BudgetActive    BudgetStatus = "active"
	BudgetExpired   BudgetStatus = "expired"
	BudgetCancelled BudgetStatus = "cancelled"
)

// Budget is a spending limit over a period, optionally scoped to a category.
type Budget struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	UserID        string       `json:"user_id" bson:"user_id"`
	Period        BudgetPeriod `json:"period" bson:"period"`
	Amount        float64      `json:"amount" bson:"amount"`
	Category      string       `json:"category" bson:"category"`
	StartDate     time.Time    `json:"start_date" bson:"start_date"`
	EndDate       time.Time    `json:"end_date" bson:"end_date"`
	Currency      string       `json:"currency" bson:"currency"`
	Status        BudgetStatus `json:"status" bson:"status"`
	Notifications bool         `json:"notifications" bson:"notifications"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" bson:"updated_at"`
}
