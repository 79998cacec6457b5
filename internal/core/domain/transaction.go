package domain

import "time"

// TransactionType is the movement type of a transaction.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeTransfer   TransactionType = "transfer"
)

// TransactionNature classifies a transaction as money in or money out.
type TransactionNature string

const (
	NatureIncome  TransactionNature = "income"
	NatureExpense TransactionNature = "expense"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	TxPending TransactionStatus = "pending"
	TxSuccess TransactionStatus = "success"
	TxFailed  TransactionStatus = "failed"
)

// TransactionSource records how a transaction entered the system. Only
// manually entered transactions may be edited or deleted afterwards.
type TransactionSource string

const (
	SourceManual      TransactionSource = "manual"
	SourceIntegration TransactionSource = "future_integration"
)

// Transaction is a single income or expense movement owned by one user.
type Transaction struct {
	ID                string            `json:"id" bson:"_id,omitempty"`
	UserID            string            `json:"user_id" bson:"user_id"`
	Type              TransactionType   `json:"type" bson:"type"`
	Nature            TransactionNature `json:"nature" bson:"nature"`
	Amount            float64           `json:"amount" bson:"amount"`
	Category          string            `json:"category" bson:"category"`
	Description       string            `json:"description,omitempty" bson:"description,omitempty"`
	Status            TransactionStatus `json:"status" bson:"status"`
	Currency          string            `json:"currency" bson:"currency"`
	Date              time.Time         `json:"date" bson:"date"`
	Source            TransactionSource `json:"source" bson:"source"`
	RelatedSavingPlan string            `json:"related_saving_plan,omitempty" bson:"related_saving_plan,omitempty"`
	ReceiptURL        string            `json:"receipt_url,omitempty" bson:"receipt_url,omitempty"`
	CreatedAt         time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" bson:"updated_at"`
}
