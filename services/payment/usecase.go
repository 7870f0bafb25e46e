package payment

import (
	"context"

	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sployal/fine-back-sub000/services/payment PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// STK push lifecycle
	InitiatePayment(ctx context.Context, req *models.STKPushRequest) (*models.STKPushResult, error)
	ProcessCallback(ctx context.Context, cb *models.STKCallback) error

	// read-only views
	GetTransaction(ctx context.Context, requesterID, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
	GetPaymentSummary(ctx context.Context, userID string) (*models.PaymentSummary, error)
}
