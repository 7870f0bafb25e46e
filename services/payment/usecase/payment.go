package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
	"github.com/sployal/fine-back-sub000/internal/utils"
)

// Amount bounds enforced by the platform for a single STK push
var (
	minAmount = decimal.NewFromInt(1)
	maxAmount = decimal.NewFromInt(70000)
)

// InitiatePayment validates a purchase request, persists the transaction in
// state initiated and submits the push-payment request to the gateway.
func (uc *PaymentUC) InitiatePayment(ctx context.Context, req *models.STKPushRequest) (*models.STKPushResult, error) {
	phone, err := utils.NormalizeMSISDN(req.PhoneNumber)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid phone number", err)
	}

	if req.Amount.LessThan(minAmount) || req.Amount.GreaterThan(maxAmount) {
		return nil, apperr.Newf(apperr.KindValidation,
			"amount must be between %s and %s", minAmount.String(), maxAmount.String())
	}

	if len(req.PhotoIDs) == 0 {
		return nil, apperr.New(apperr.KindValidation, "photo_ids must not be empty")
	}
	if req.UserID == "" {
		return nil, apperr.New(apperr.KindValidation, "user_id is required")
	}

	accountRef := req.AccountReference
	if accountRef == "" {
		accountRef = "FINEBACK"
	}
	desc := req.TransactionDesc
	if desc == "" {
		desc = "Paid photo send"
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:               uuid.New().String(),
		UserID:           req.UserID,
		PhoneNumber:      phone,
		Amount:           req.Amount,
		PhotoIDs:         req.PhotoIDs,
		AccountReference: accountRef,
		TransactionDesc:  desc,
		Status:           models.TransactionStatusInitiated,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	resp, err := uc.gw.InitiateSTKPush(ctx, tx)
	if err != nil {
		// The initiated row stays behind for later reconciliation; there is
		// no automatic retry.
		uc.logger.Error("STK push submission failed",
			logger.String("transaction_id", tx.ID),
			logger.Err(err),
		)
		if apperr.IsKind(err, apperr.KindGatewayAuth) {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.KindDependency, "payment gateway unavailable", err)
	}

	if !resp.Accepted() {
		reason := resp.ResponseDescription
		if reason == "" {
			reason = resp.ErrorMessage
		}
		if err := uc.repo.MarkTransactionFailed(ctx, tx.ID, reason); err != nil {
			uc.logger.Error("failed to record gateway rejection",
				logger.String("transaction_id", tx.ID),
				logger.Err(err),
			)
		}
		uc.publishEvent(tx, models.TransactionStatusFailed, "")
		return nil, apperr.Newf(apperr.KindValidation, "payment request rejected: %s", reason)
	}

	if err := uc.repo.MarkTransactionPending(ctx, tx.ID, resp.MerchantRequestID, resp.CheckoutRequestID); err != nil {
		return nil, err
	}

	uc.publishEvent(tx, models.TransactionStatusPending, "")

	message := resp.CustomerMessage
	if message == "" {
		message = "Payment prompt sent. Enter your PIN on your phone to complete the purchase."
	}

	return &models.STKPushResult{
		TransactionID:     tx.ID,
		CheckoutRequestID: resp.CheckoutRequestID,
		CustomerMessage:   message,
	}, nil
}

// publishEvent emits a lifecycle event to the payment stream. Publishing is
// best-effort and never fails the request.
func (uc *PaymentUC) publishEvent(tx *models.Transaction, status models.TransactionStatus, receipt string) {
	event := models.TransactionEvent{
		TransactionID: tx.ID,
		UserID:        tx.UserID,
		Status:        string(status),
		Amount:        tx.Amount,
		Receipt:       receipt,
		Timestamp:     time.Now().UTC(),
	}
	if err := uc.gw.PublishTransactionEvent(event); err != nil {
		uc.logger.Warn("failed to publish transaction event",
			logger.String("transaction_id", tx.ID),
			logger.String("status", string(status)),
			logger.Err(err),
		)
	}
}
