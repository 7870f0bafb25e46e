package models

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// STKPushGatewayRequest is the Daraja ProcessRequest payload
type STKPushGatewayRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// STKPushGatewayResponse is the synchronous Daraja acknowledgment
type STKPushGatewayResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	RequestID           string `json:"requestId,omitempty"`
	ErrorCode           string `json:"errorCode,omitempty"`
	ErrorMessage        string `json:"errorMessage,omitempty"`
}

// Accepted reports whether the gateway accepted the push request
func (r *STKPushGatewayResponse) Accepted() bool {
	return r.ResponseCode == "0"
}

// MpesaAuthResponse is the OAuth token response
type MpesaAuthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// CallbackItem is one entry of the gateway's name/value metadata list
type CallbackItem struct {
	Name  string      `json:"Name"`
	Value interface{} `json:"Value,omitempty"`
}

// STKCallback is the asynchronous result envelope posted by the gateway
type STKCallback struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []CallbackItem `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

// CallbackReceipt is the typed form of a successful callback's metadata
type CallbackReceipt struct {
	ReceiptNumber   string
	Amount          decimal.Decimal
	TransactionDate string
	PhoneNumber     string
}

// Receipt converts the metadata item list into a typed record via a
// name-indexed lookup. The gateway only includes metadata on success.
func (cb *STKCallback) Receipt() (*CallbackReceipt, error) {
	items := make(map[string]interface{}, len(cb.Body.StkCallback.CallbackMetadata.Item))
	for _, item := range cb.Body.StkCallback.CallbackMetadata.Item {
		items[item.Name] = item.Value
	}

	receipt := &CallbackReceipt{}

	number, ok := items["MpesaReceiptNumber"]
	if !ok {
		return nil, fmt.Errorf("callback metadata missing MpesaReceiptNumber")
	}
	receipt.ReceiptNumber = itemString(number)

	if amount, ok := items["Amount"]; ok {
		parsed, err := decimal.NewFromString(itemString(amount))
		if err != nil {
			return nil, fmt.Errorf("invalid callback amount %q: %w", amount, err)
		}
		receipt.Amount = parsed
	}
	if date, ok := items["TransactionDate"]; ok {
		receipt.TransactionDate = itemString(date)
	}
	if phone, ok := items["PhoneNumber"]; ok {
		receipt.PhoneNumber = itemString(phone)
	}

	return receipt, nil
}

// itemString renders a metadata value as a string. Numeric values arrive as
// float64 and must not pick up exponent notation (phone numbers and dates are
// twelve to fourteen digits).
func itemString(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

// CallbackAck is the fixed acknowledgment returned to the gateway.
// Anything other than ResultCode 0 makes the gateway retry the callback,
// so internal failures are never surfaced here.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// AckSuccess returns the success acknowledgment envelope
func AckSuccess() CallbackAck {
	return CallbackAck{ResultCode: 0, ResultDesc: "Accepted"}
}

// mpesaResultReasons maps known Daraja result codes to readable failure reasons
var mpesaResultReasons = map[int]string{
	1:    "insufficient balance for the transaction",
	17:   "unable to process the request",
	26:   "system busy, request rejected",
	1001: "another transaction is already in progress",
	1019: "transaction expired, no response from user",
	1025: "unable to send the push request",
	1032: "request cancelled by user",
	1037: "timeout, user cannot be reached",
	2001: "wrong PIN entered",
}

// ResultReason returns a human-readable failure reason for a nonzero result
// code, falling back to the gateway's own description.
func ResultReason(code int, desc string) string {
	if reason, ok := mpesaResultReasons[code]; ok {
		return fmt.Sprintf("%s (%s)", reason, desc)
	}
	return desc
}
