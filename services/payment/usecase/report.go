package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	recentCount     = 10
)

// GetTransaction fetches a single transaction. Only the buyer who initiated
// it may read it; a transaction carries the buyer's phone number and receipt.
func (uc *PaymentUC) GetTransaction(ctx context.Context, requesterID, id string) (*models.Transaction, error) {
	tx, err := uc.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.UserID != requesterID {
		return nil, apperr.New(apperr.KindAuthorization, "not allowed to view this transaction")
	}
	return tx, nil
}

// ListTransactions returns a user's transaction history with pagination and
// an optional status filter
func (uc *PaymentUC) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.repo.ListTransactions(ctx, filter)
}

// GetPaymentSummary loads all of a user's transactions and reduces them in
// memory. Acceptable at current scale; revisit if transaction volume grows.
func (uc *PaymentUC) GetPaymentSummary(ctx context.Context, userID string) (*models.PaymentSummary, error) {
	txs, err := uc.repo.ListUserTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &models.PaymentSummary{
		TotalTransactions: len(txs),
		CountsByStatus:    make(map[models.TransactionStatus]int),
		TotalPaid:         decimal.Zero,
	}

	completed := 0
	for _, tx := range txs {
		summary.CountsByStatus[tx.Status]++
		if tx.Status == models.TransactionStatusCompleted {
			completed++
			if tx.PaidAmount != nil {
				summary.TotalPaid = summary.TotalPaid.Add(*tx.PaidAmount)
			} else {
				summary.TotalPaid = summary.TotalPaid.Add(tx.Amount)
			}
		}
	}

	if len(txs) > 0 {
		summary.SuccessRate = float64(completed) / float64(len(txs))
	}

	recent := txs
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}
	summary.Recent = recent

	return summary, nil
}
