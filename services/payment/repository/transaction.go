package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

const transactionColumns = `
	id, user_id, phone_number, amount, photo_ids,
	account_reference, transaction_desc, status,
	merchant_request_id, checkout_request_id,
	mpesa_receipt, paid_amount, error_message,
	created_at, updated_at, completed_at`

// PaymentRepo implements the payment.PaymentRepo interface over the
// Supabase Postgres instance
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTransaction inserts a new transaction row in state initiated
func (r *PaymentRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, user_id, phone_number, amount, photo_ids,
			account_reference, transaction_desc, status,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :phone_number, :amount, :photo_ids,
			:account_reference, :transaction_desc, :status,
			:created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, tx); err != nil {
		return apperr.Wrap(apperr.KindDependency, "failed to create transaction", err)
	}
	return nil
}

// GetTransactionByID fetches a transaction by its identifier
func (r *PaymentRepo) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE id = $1`, transactionColumns)

	var tx models.Transaction
	if err := r.db.GetContext(ctx, &tx, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Newf(apperr.KindNotFound, "transaction %s not found", id)
		}
		return nil, apperr.Wrap(apperr.KindDependency, "failed to fetch transaction", err)
	}
	return &tx, nil
}

// GetTransactionByCheckoutID maps a gateway correlation id back to its transaction
func (r *PaymentRepo) GetTransactionByCheckoutID(ctx context.Context, checkoutRequestID string) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE checkout_request_id = $1`, transactionColumns)

	var tx models.Transaction
	if err := r.db.GetContext(ctx, &tx, query, checkoutRequestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Newf(apperr.KindNotFound, "no transaction for checkout request %s", checkoutRequestID)
		}
		return nil, apperr.Wrap(apperr.KindDependency, "failed to fetch transaction by checkout id", err)
	}
	return &tx, nil
}

// MarkTransactionPending stores the gateway correlation ids once the push is accepted
func (r *PaymentRepo) MarkTransactionPending(ctx context.Context, id, merchantRequestID, checkoutRequestID string) error {
	query := `
		UPDATE transactions
		SET status = $2, merchant_request_id = $3, checkout_request_id = $4, updated_at = now()
		WHERE id = $1 AND status = $5
	`
	if _, err := r.db.ExecContext(ctx, query, id,
		models.TransactionStatusPending, merchantRequestID, checkoutRequestID,
		models.TransactionStatusInitiated); err != nil {
		return apperr.Wrap(apperr.KindDependency, "failed to mark transaction pending", err)
	}
	return nil
}

// MarkTransactionCompleted applies the successful terminal transition. The
// status guard keeps terminal states absorbing even under duplicate callbacks.
func (r *PaymentRepo) MarkTransactionCompleted(ctx context.Context, id, receipt string, paidAmount decimal.Decimal, completedAt time.Time) error {
	query := `
		UPDATE transactions
		SET status = $2, mpesa_receipt = $3, paid_amount = $4, completed_at = $5, updated_at = now()
		WHERE id = $1 AND status NOT IN ($6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query, id,
		models.TransactionStatusCompleted, receipt, paidAmount, completedAt,
		models.TransactionStatusCompleted, models.TransactionStatusFailed); err != nil {
		return apperr.Wrap(apperr.KindDependency, "failed to mark transaction completed", err)
	}
	return nil
}

// MarkTransactionFailed applies the failed terminal transition with a reason
func (r *PaymentRepo) MarkTransactionFailed(ctx context.Context, id, reason string) error {
	query := `
		UPDATE transactions
		SET status = $2, error_message = $3, completed_at = now(), updated_at = now()
		WHERE id = $1 AND status NOT IN ($4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query, id,
		models.TransactionStatusFailed, reason,
		models.TransactionStatusCompleted, models.TransactionStatusFailed); err != nil {
		return apperr.Wrap(apperr.KindDependency, "failed to mark transaction failed", err)
	}
	return nil
}

// SetTransactionError records a note on the transaction without touching its
// status. Used for reconciliation notes on completed transactions.
func (r *PaymentRepo) SetTransactionError(ctx context.Context, id, message string) error {
	query := `UPDATE transactions SET error_message = $2, updated_at = now() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, message); err != nil {
		return apperr.Wrap(apperr.KindDependency, "failed to record transaction error", err)
	}
	return nil
}

// ListTransactions returns a user's transactions, newest first, with an
// optional status filter and pagination
func (r *PaymentRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE user_id = $1`, transactionColumns)
	args := []interface{}{filter.UserID}

	if filter.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, len(args)+1)
		args = append(args, filter.Status)
	}

	query += ` ORDER BY created_at DESC`

	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, len(args)+1)
		args = append(args, filter.Offset)
	}

	txs := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &txs, query, args...); err != nil {
		return nil, apperr.Wrap(apperr.KindDependency, "failed to list transactions", err)
	}
	return txs, nil
}

// ListUserTransactions loads all of a user's transactions for the in-memory
// summary reduction
func (r *PaymentRepo) ListUserTransactions(ctx context.Context, userID string) ([]*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`, transactionColumns)

	txs := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &txs, query, userID); err != nil {
		return nil, apperr.Wrap(apperr.KindDependency, "failed to load user transactions", err)
	}
	return txs, nil
}
