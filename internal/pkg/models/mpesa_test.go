package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const successCallbackJSON = `{
	"Body": {
		"stkCallback": {
			"MerchantRequestID": "29115-34620561-1",
			"CheckoutRequestID": "ws_CO_191220191020363925",
			"ResultCode": 0,
			"ResultDesc": "The service request is processed successfully.",
			"CallbackMetadata": {
				"Item": [
					{"Name": "Amount", "Value": 1.00},
					{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
					{"Name": "TransactionDate", "Value": 20191219102115},
					{"Name": "PhoneNumber", "Value": 254708374149}
				]
			}
		}
	}
}`

const failureCallbackJSON = `{
	"Body": {
		"stkCallback": {
			"MerchantRequestID": "29115-34620561-1",
			"CheckoutRequestID": "ws_CO_191220191020363925",
			"ResultCode": 1032,
			"ResultDesc": "Request cancelled by user."
		}
	}
}`

func TestReceipt_Success(t *testing.T) {
	var cb STKCallback
	assert.NoError(t, json.Unmarshal([]byte(successCallbackJSON), &cb))

	receipt, err := cb.Receipt()

	assert.NoError(t, err)
	assert.Equal(t, "NLJ7RT61SV", receipt.ReceiptNumber)
	assert.True(t, receipt.Amount.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "254708374149", receipt.PhoneNumber)
	assert.NotEmpty(t, receipt.TransactionDate)
}

func TestReceipt_MissingNumber(t *testing.T) {
	var cb STKCallback
	assert.NoError(t, json.Unmarshal([]byte(failureCallbackJSON), &cb))

	_, err := cb.Receipt()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MpesaReceiptNumber")
}

func TestResultReason(t *testing.T) {
	assert.Contains(t, ResultReason(1032, "Request cancelled by user."), "cancelled by user")
	assert.Contains(t, ResultReason(2001, "The initiator information is invalid."), "wrong PIN")

	// Unknown codes fall back to the gateway's own description
	assert.Equal(t, "Some new failure", ResultReason(9999, "Some new failure"))
}

func TestAccepted(t *testing.T) {
	assert.True(t, (&STKPushGatewayResponse{ResponseCode: "0"}).Accepted())
	assert.False(t, (&STKPushGatewayResponse{ResponseCode: "1"}).Accepted())
	assert.False(t, (&STKPushGatewayResponse{}).Accepted())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, TransactionStatusInitiated.IsTerminal())
	assert.False(t, TransactionStatusPending.IsTerminal())
	assert.True(t, TransactionStatusCompleted.IsTerminal())
	assert.True(t, TransactionStatusFailed.IsTerminal())
}
