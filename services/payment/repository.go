package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sployal/fine-back-sub000/services/payment PaymentRepo

// PaymentRepo defines the persistence operations for transactions and
// image entitlements
type PaymentRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	GetTransactionByCheckoutID(ctx context.Context, checkoutRequestID string) (*models.Transaction, error)

	// state transitions
	MarkTransactionPending(ctx context.Context, id, merchantRequestID, checkoutRequestID string) error
	MarkTransactionCompleted(ctx context.Context, id, receipt string, paidAmount decimal.Decimal, completedAt time.Time) error
	MarkTransactionFailed(ctx context.Context, id, reason string) error
	SetTransactionError(ctx context.Context, id, message string) error

	// queries
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
	ListUserTransactions(ctx context.Context, userID string) ([]*models.Transaction, error)

	// entitlement: flips the matched unpaid images owned by the buyer to
	// paid and returns how many rows matched
	MarkImagesPaid(ctx context.Context, photoIDs []string, buyerID string) (int64, error)
}
