package usecase

import (
	"context"
	"time"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

// ProcessCallback applies the gateway's asynchronous result to the matching
// transaction exactly once. The handler acknowledges the gateway regardless
// of the returned error; errors here are for logging only.
func (uc *PaymentUC) ProcessCallback(ctx context.Context, cb *models.STKCallback) error {
	stk := cb.Body.StkCallback

	tx, err := uc.repo.GetTransactionByCheckoutID(ctx, stk.CheckoutRequestID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			uc.logger.Warn("callback for unknown checkout request",
				logger.String("checkout_request_id", stk.CheckoutRequestID),
				logger.Int("result_code", stk.ResultCode),
			)
			return nil
		}
		return err
	}

	// Terminal states are absorbing: a duplicate callback must not mutate
	// state or re-run the entitlement update.
	if tx.Status.IsTerminal() {
		uc.logger.Info("ignoring callback for settled transaction",
			logger.String("transaction_id", tx.ID),
			logger.String("status", string(tx.Status)),
		)
		return nil
	}

	if stk.ResultCode != 0 {
		reason := models.ResultReason(stk.ResultCode, stk.ResultDesc)
		if err := uc.repo.MarkTransactionFailed(ctx, tx.ID, reason); err != nil {
			return err
		}
		uc.logger.Info("transaction failed",
			logger.String("transaction_id", tx.ID),
			logger.Int("result_code", stk.ResultCode),
			logger.String("reason", reason),
		)
		uc.publishEvent(tx, models.TransactionStatusFailed, "")
		return nil
	}

	receipt, receiptErr := cb.Receipt()
	receiptNumber := ""
	paidAmount := tx.Amount
	if receiptErr == nil {
		receiptNumber = receipt.ReceiptNumber
		if !receipt.Amount.IsZero() {
			paidAmount = receipt.Amount
		}
	}

	completedAt := time.Now()
	if err := uc.repo.MarkTransactionCompleted(ctx, tx.ID, receiptNumber, paidAmount, completedAt); err != nil {
		return err
	}

	if receiptErr != nil {
		// Payment is real even when the metadata is unusable; keep the
		// transaction completed and record the gap for reconciliation.
		uc.logger.Error("callback metadata unusable",
			logger.String("transaction_id", tx.ID),
			logger.Err(receiptErr),
		)
		if err := uc.repo.SetTransactionError(ctx, tx.ID, "callback metadata: "+receiptErr.Error()); err != nil {
			uc.logger.Error("failed to record metadata error", logger.String("transaction_id", tx.ID), logger.Err(err))
		}
	}

	uc.logger.Info("transaction completed",
		logger.String("transaction_id", tx.ID),
		logger.String("receipt", receiptNumber),
		logger.String("paid_amount", paidAmount.String()),
	)
	uc.publishEvent(tx, models.TransactionStatusCompleted, receiptNumber)

	// Entitlement follows the financial state but is not transactional with
	// it. A failure here leaves the payment completed and the gap recorded
	// on the transaction for out-of-band repair.
	if err := uc.unlockImages(ctx, tx); err != nil {
		uc.logger.Error("entitlement update failed",
			logger.String("transaction_id", tx.ID),
			logger.Err(err),
		)
		if recErr := uc.repo.SetTransactionError(ctx, tx.ID, "entitlement update failed: "+err.Error()); recErr != nil {
			uc.logger.Error("failed to record entitlement error",
				logger.String("transaction_id", tx.ID),
				logger.Err(recErr),
			)
		}
	}

	return nil
}
