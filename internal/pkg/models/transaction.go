package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of a purchase attempt
type TransactionStatus string

const (
	TransactionStatusInitiated TransactionStatus = "initiated"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// IsTerminal reports whether the status is absorbing. Completed and failed
// transactions must never transition again.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusFailed
}

// Transaction represents a single photo purchase attempt via STK push
type Transaction struct {
	ID                string            `json:"id" db:"id"`
	UserID            string            `json:"user_id" db:"user_id"`
	PhoneNumber       string            `json:"phone_number" db:"phone_number"`
	Amount            decimal.Decimal   `json:"amount" db:"amount"`
	PhotoIDs          pq.StringArray    `json:"photo_ids" db:"photo_ids"`
	AccountReference  string            `json:"account_reference" db:"account_reference"`
	TransactionDesc   string            `json:"transaction_desc" db:"transaction_desc"`
	Status            TransactionStatus `json:"status" db:"status"`
	MerchantRequestID string            `json:"merchant_request_id,omitempty" db:"merchant_request_id"`
	CheckoutRequestID string            `json:"checkout_request_id,omitempty" db:"checkout_request_id"`
	MpesaReceipt      string            `json:"mpesa_receipt,omitempty" db:"mpesa_receipt"`
	PaidAmount        *decimal.Decimal  `json:"paid_amount,omitempty" db:"paid_amount"`
	ErrorMessage      string            `json:"error_message,omitempty" db:"error_message"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
	CompletedAt       *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
}

// STKPushRequest is the client request to initiate a paid photo send
type STKPushRequest struct {
	PhoneNumber      string          `json:"phone_number"`
	Amount           decimal.Decimal `json:"amount"`
	UserID           string          `json:"user_id"`
	PhotoIDs         []string        `json:"photo_ids"`
	TransactionDesc  string          `json:"transaction_desc,omitempty"`
	AccountReference string          `json:"account_reference,omitempty"`
}

// STKPushResult is returned to the client after the gateway accepts the push
type STKPushResult struct {
	TransactionID     string `json:"transaction_id"`
	CheckoutRequestID string `json:"checkout_request_id"`
	CustomerMessage   string `json:"customer_message"`
}

// TransactionFilter narrows transaction history queries
type TransactionFilter struct {
	UserID string
	Status TransactionStatus
	Limit  int
	Offset int
}

// PaymentSummary is an in-memory aggregate over a user's transactions
type PaymentSummary struct {
	TotalTransactions int                       `json:"total_transactions"`
	CountsByStatus    map[TransactionStatus]int `json:"counts_by_status"`
	TotalPaid         decimal.Decimal           `json:"total_paid"`
	SuccessRate       float64                   `json:"success_rate"`
	Recent            []*Transaction            `json:"recent"`
}

// TransactionEvent is published to NSQ on transaction lifecycle changes
type TransactionEvent struct {
	TransactionID string          `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Receipt       string          `json:"receipt,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}
