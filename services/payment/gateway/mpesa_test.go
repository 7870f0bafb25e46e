package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zapLogger, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	assert.NoError(t, err)
	return zapLogger
}

func testGateway(t *testing.T, baseURL string) *PaymentGW {
	t.Helper()
	cfg := &models.Config{
		Mpesa: models.MpesaConfig{
			BaseURL:        baseURL,
			ConsumerKey:    "consumer-key",
			ConsumerSecret: "consumer-secret",
			ShortCode:      "174379",
			Passkey:        "passkey",
			CallbackURL:    "https://example.com/mpesa/callback",
			TimeoutSeconds: 5,
		},
	}
	return NewPaymentGW(cfg, nil, testLogger(t))
}

func testTransaction() *models.Transaction {
	return &models.Transaction{
		ID:               "tx-1",
		UserID:           "user-1",
		PhoneNumber:      "254712345678",
		Amount:           decimal.NewFromInt(100),
		AccountReference: "FINEBACK",
		TransactionDesc:  "Paid photo send",
		Status:           models.TransactionStatusInitiated,
	}
}

func TestInitiateSTKPush_Success(t *testing.T) {
	var pushPayload models.STKPushGatewayRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/oauth/v1/generate"):
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "consumer-key", user)
			assert.Equal(t, "consumer-secret", pass)
			json.NewEncoder(w).Encode(models.MpesaAuthResponse{
				AccessToken: "token-1",
				ExpiresIn:   "3599",
			})
		case r.URL.Path == "/mpesa/stkpush/v1/processrequest":
			assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&pushPayload))
			json.NewEncoder(w).Encode(models.STKPushGatewayResponse{
				MerchantRequestID:   "merchant-1",
				CheckoutRequestID:   "checkout-1",
				ResponseCode:        "0",
				ResponseDescription: "Success. Request accepted for processing",
				CustomerMessage:     "Success. Request accepted for processing",
			})
		default:
			t.Errorf("unexpected request path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	gw := testGateway(t, srv.URL)

	resp, err := gw.InitiateSTKPush(context.Background(), testTransaction())

	assert.NoError(t, err)
	assert.True(t, resp.Accepted())
	assert.Equal(t, "checkout-1", resp.CheckoutRequestID)

	assert.Equal(t, "174379", pushPayload.BusinessShortCode)
	assert.Equal(t, "174379", pushPayload.PartyB)
	assert.Equal(t, "254712345678", pushPayload.PhoneNumber)
	assert.Equal(t, "CustomerPayBillOnline", pushPayload.TransactionType)
	assert.Equal(t, "100", pushPayload.Amount)
	assert.Equal(t, "https://example.com/mpesa/callback", pushPayload.CallBackURL)
	assert.Equal(t, "FINEBACK", pushPayload.AccountReference)

	// Password is base64(shortcode + passkey + timestamp)
	decoded, err := base64.StdEncoding.DecodeString(pushPayload.Password)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(decoded), "174379passkey"))
	assert.Equal(t, string(decoded), "174379passkey"+pushPayload.Timestamp)
	assert.Len(t, pushPayload.Timestamp, 14)
}

func TestInitiateSTKPush_AuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	gw := testGateway(t, srv.URL)

	_, err := gw.InitiateSTKPush(context.Background(), testTransaction())

	assert.Error(t, err)
	// Gateway-side credential failures must stay distinct from the caller's
	// own bearer-token failures
	assert.True(t, apperr.IsKind(err, apperr.KindGatewayAuth))
	assert.False(t, apperr.IsKind(err, apperr.KindAuthentication))
}

func TestInitiateSTKPush_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.MpesaAuthResponse{})
	}))
	defer srv.Close()

	gw := testGateway(t, srv.URL)

	_, err := gw.InitiateSTKPush(context.Background(), testTransaction())

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindGatewayAuth))
}

func TestInitiateSTKPush_ErrorCodeMapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/oauth/v1/generate") {
			json.NewEncoder(w).Encode(models.MpesaAuthResponse{AccessToken: "token-1"})
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.STKPushGatewayResponse{
			ErrorCode:    "400.002.02",
			ErrorMessage: "Bad Request - Invalid PhoneNumber",
		})
	}))
	defer srv.Close()

	gw := testGateway(t, srv.URL)

	resp, err := gw.InitiateSTKPush(context.Background(), testTransaction())

	assert.NoError(t, err)
	assert.False(t, resp.Accepted())
	assert.Equal(t, "400.002.02", resp.ResponseCode)
	assert.Equal(t, "Bad Request - Invalid PhoneNumber", resp.ResponseDescription)
}

func TestInitiateSTKPush_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.MpesaAuthResponse{AccessToken: "token-1"})
	}))
	srv.Close()

	gw := testGateway(t, srv.URL)

	_, err := gw.InitiateSTKPush(context.Background(), testTransaction())

	assert.Error(t, err)
	// The very first call is the credential fetch, so a dead gateway
	// surfaces as a gateway credential failure.
	assert.True(t, apperr.IsKind(err, apperr.KindGatewayAuth))
}

func TestPublishTransactionEvent_NilProducer(t *testing.T) {
	gw := testGateway(t, "http://127.0.0.1:0")

	err := gw.PublishTransactionEvent(models.TransactionEvent{TransactionID: "tx-1"})

	assert.NoError(t, err)
}
