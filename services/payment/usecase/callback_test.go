package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

func successCallback(checkoutID, receipt string, amount float64) *models.STKCallback {
	cb := &models.STKCallback{}
	cb.Body.StkCallback.MerchantRequestID = "merchant-1"
	cb.Body.StkCallback.CheckoutRequestID = checkoutID
	cb.Body.StkCallback.ResultCode = 0
	cb.Body.StkCallback.ResultDesc = "The service request is processed successfully."
	cb.Body.StkCallback.CallbackMetadata.Item = []models.CallbackItem{
		{Name: "Amount", Value: amount},
		{Name: "MpesaReceiptNumber", Value: receipt},
		{Name: "TransactionDate", Value: 20240115093000.0},
		{Name: "PhoneNumber", Value: 254712345678.0},
	}
	return cb
}

func failureCallback(checkoutID string, resultCode int, desc string) *models.STKCallback {
	cb := &models.STKCallback{}
	cb.Body.StkCallback.MerchantRequestID = "merchant-1"
	cb.Body.StkCallback.CheckoutRequestID = checkoutID
	cb.Body.StkCallback.ResultCode = resultCode
	cb.Body.StkCallback.ResultDesc = desc
	return cb
}

func pendingTransaction(checkoutID string) *models.Transaction {
	return &models.Transaction{
		ID:                "tx-1",
		UserID:            "user-1",
		PhoneNumber:       "254712345678",
		Amount:            decimal.NewFromInt(100),
		PhotoIDs:          []string{"p1"},
		Status:            models.TransactionStatusPending,
		CheckoutRequestID: checkoutID,
	}
}

func TestProcessCallback_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW := newTestUC(t, ctrl)

	tx := pendingTransaction("checkout-1")

	mockRepo.EXPECT().GetTransactionByCheckoutID(gomock.Any(), "checkout-1").Return(tx, nil)
	mockRepo.EXPECT().
		MarkTransactionCompleted(gomock.Any(), "tx-1", "ABC123", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, paidAmount decimal.Decimal, _ interface{}) error {
			assert.True(t, paidAmount.Equal(decimal.NewFromInt(100)))
			return nil
		})
	mockGW.EXPECT().PublishTransactionEvent(gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkImagesPaid(gomock.Any(), []string{"p1"}, "user-1").Return(int64(1), nil)

	err := uc.ProcessCallback(context.Background(), successCallback("checkout-1", "ABC123", 100))

	assert.NoError(t, err)
}

func TestProcessCallback_UserCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW := newTestUC(t, ctrl)

	tx := pendingTransaction("checkout-1")

	mockRepo.EXPECT().GetTransactionByCheckoutID(gomock.Any(), "checkout-1").Return(tx, nil)
	mockRepo.EXPECT().
		MarkTransactionFailed(gomock.Any(), "tx-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, reason string) error {
			assert.Contains(t, reason, "cancelled by user")
			return nil
		})
	mockGW.EXPECT().PublishTransactionEvent(gomock.Any()).Return(nil)

	err := uc.ProcessCallback(context.Background(),
		failureCallback("checkout-1", 1032, "Request cancelled by user"))

	assert.NoError(t, err)
}

func TestProcessCallback_IdempotentOnTerminalState(t *testing.T) {
	for _, status := range []models.TransactionStatus{
		models.TransactionStatusCompleted,
		models.TransactionStatusFailed,
	} {
		t.Run(string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc, mockRepo, _ := newTestUC(t, ctrl)

			tx := pendingTransaction("checkout-1")
			tx.Status = status

			// Only the lookup happens: no state transition and no second
			// entitlement run for a settled transaction.
			mockRepo.EXPECT().GetTransactionByCheckoutID(gomock.Any(), "checkout-1").Return(tx, nil)

			err := uc.ProcessCallback(context.Background(), successCallback("checkout-1", "ABC123", 100))

			assert.NoError(t, err)
		})
	}
}

func TestProcessCallback_UnknownCheckoutID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _ := newTestUC(t, ctrl)

	mockRepo.EXPECT().
		GetTransactionByCheckoutID(gomock.Any(), "checkout-unknown").
		Return(nil, apperr.New(apperr.KindNotFound, "no transaction"))

	// Unknown correlation ids are logged and acknowledged, never retried
	err := uc.ProcessCallback(context.Background(), successCallback("checkout-unknown", "ABC123", 100))

	assert.NoError(t, err)
}

func TestProcessCallback_EntitlementZeroRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW := newTestUC(t, ctrl)

	tx := pendingTransaction("checkout-1")

	mockRepo.EXPECT().GetTransactionByCheckoutID(gomock.Any(), "checkout-1").Return(tx, nil)
	mockRepo.EXPECT().
		MarkTransactionCompleted(gomock.Any(), "tx-1", "ABC123", gomock.Any(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().PublishTransactionEvent(gomock.Any()).Return(nil)

	// Image already paid elsewhere: zero rows match, the inconsistency is
	// recorded on the transaction and the callback still succeeds.
	mockRepo.EXPECT().MarkImagesPaid(gomock.Any(), []string{"p1"}, "user-1").Return(int64(0), nil)
	mockRepo.EXPECT().
		SetTransactionError(gomock.Any(), "tx-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, message string) error {
			assert.Contains(t, message, "entitlement update failed")
			return nil
		})

	err := uc.ProcessCallback(context.Background(), successCallback("checkout-1", "ABC123", 100))

	assert.NoError(t, err)
}

func TestProcessCallback_EntitlementFailureKeepsCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW := newTestUC(t, ctrl)

	tx := pendingTransaction("checkout-1")

	mockRepo.EXPECT().GetTransactionByCheckoutID(gomock.Any(), "checkout-1").Return(tx, nil)
	mockRepo.EXPECT().
		MarkTransactionCompleted(gomock.Any(), "tx-1", "ABC123", gomock.Any(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().PublishTransactionEvent(gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		MarkImagesPaid(gomock.Any(), []string{"p1"}, "user-1").
		Return(int64(0), apperr.New(apperr.KindDependency, "database unavailable"))
	mockRepo.EXPECT().SetTransactionError(gomock.Any(), "tx-1", gomock.Any()).Return(nil)

	// The payment is real: the transaction stays completed and the callback
	// is still acknowledged.
	err := uc.ProcessCallback(context.Background(), successCallback("checkout-1", "ABC123", 100))

	assert.NoError(t, err)
}

func TestProcessCallback_MissingReceiptStillCompletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW := newTestUC(t, ctrl)

	tx := pendingTransaction("checkout-1")

	cb := &models.STKCallback{}
	cb.Body.StkCallback.CheckoutRequestID = "checkout-1"
	cb.Body.StkCallback.ResultCode = 0
	cb.Body.StkCallback.ResultDesc = "The service request is processed successfully."

	mockRepo.EXPECT().GetTransactionByCheckoutID(gomock.Any(), "checkout-1").Return(tx, nil)
	mockRepo.EXPECT().
		MarkTransactionCompleted(gomock.Any(), "tx-1", "", gomock.Any(), gomock.Any()).
		Return(nil)
	mockRepo.EXPECT().
		SetTransactionError(gomock.Any(), "tx-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, message string) error {
			assert.Contains(t, message, "callback metadata")
			return nil
		})
	mockGW.EXPECT().PublishTransactionEvent(gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkImagesPaid(gomock.Any(), []string{"p1"}, "user-1").Return(int64(1), nil)

	err := uc.ProcessCallback(context.Background(), cb)

	assert.NoError(t, err)
}
