package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	httpclient "github.com/sployal/fine-back-sub000/internal/pkg/http"
	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
	nsqpkg "github.com/sployal/fine-back-sub000/internal/pkg/nsq"
)

const (
	oauthPath       = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath     = "/mpesa/stkpush/v1/processrequest"
	timestampLayout = "20060102150405"
)

// PaymentGW implements the payment.PaymentGW interface against the Daraja
// API and the NSQ event stream
type PaymentGW struct {
	cfg      *models.Config
	client   *httpclient.Client
	producer *nsqpkg.Producer
	logger   *logger.ZapLogger
}

// NewPaymentGW creates a new payment gateway. The producer may be nil when
// event publishing is disabled.
func NewPaymentGW(cfg *models.Config, producer *nsqpkg.Producer, zapLogger *logger.ZapLogger) *PaymentGW {
	timeout := time.Duration(cfg.Mpesa.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &PaymentGW{
		cfg:      cfg,
		client:   httpclient.NewClient(cfg.Mpesa.BaseURL, timeout),
		producer: producer,
		logger:   zapLogger,
	}
}

// getAccessToken obtains a short-lived bearer credential from the gateway.
// The token is used for the single call that follows and never cached.
// Failures here are the gateway's credentials, not the caller's, and are
// classified accordingly.
func (g *PaymentGW) getAccessToken(ctx context.Context) (string, error) {
	req, err := g.client.NewRequest(ctx, http.MethodGet, oauthPath, nil)
	if err != nil {
		return "", apperr.Wrap(apperr.KindGatewayAuth, "failed to build auth request", err)
	}
	req.SetBasicAuth(g.cfg.Mpesa.ConsumerKey, g.cfg.Mpesa.ConsumerSecret)

	var auth models.MpesaAuthResponse
	status, err := g.client.DoJSON(req, &auth)
	if err != nil && status == 0 {
		return "", apperr.Wrap(apperr.KindGatewayAuth, "gateway authentication failed", err)
	}
	if status != http.StatusOK {
		return "", apperr.Newf(apperr.KindGatewayAuth, "gateway authentication failed: status %d", status)
	}
	if err != nil {
		return "", apperr.Wrap(apperr.KindGatewayAuth, "failed to decode auth response", err)
	}
	if auth.AccessToken == "" {
		return "", apperr.New(apperr.KindGatewayAuth, "gateway returned an empty access token")
	}

	return auth.AccessToken, nil
}

// password derives the time-bound request signature required by the STK API
func (g *PaymentGW) password(timestamp string) string {
	raw := g.cfg.Mpesa.ShortCode + g.cfg.Mpesa.Passkey + timestamp
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// InitiateSTKPush submits a push-payment request for the given transaction
func (g *PaymentGW) InitiateSTKPush(ctx context.Context, tx *models.Transaction) (*models.STKPushGatewayResponse, error) {
	token, err := g.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format(timestampLayout)
	payload := models.STKPushGatewayRequest{
		BusinessShortCode: g.cfg.Mpesa.ShortCode,
		Password:          g.password(timestamp),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            tx.Amount.String(),
		PartyA:            tx.PhoneNumber,
		PartyB:            g.cfg.Mpesa.ShortCode,
		PhoneNumber:       tx.PhoneNumber,
		CallBackURL:       g.cfg.Mpesa.CallbackURL,
		AccountReference:  tx.AccountReference,
		TransactionDesc:   tx.TransactionDesc,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal STK push request: %w", err)
	}

	req, err := g.client.NewRequest(ctx, http.MethodPost, stkPushPath, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	var pushResp models.STKPushGatewayResponse
	status, err := g.client.DoJSON(req, &pushResp)
	if err != nil {
		if status == 0 {
			return nil, apperr.Wrap(apperr.KindDependency, "STK push request failed", err)
		}
		return nil, apperr.Wrap(apperr.KindDependency, "failed to decode STK push response", err)
	}

	// Daraja reports request-level rejections via errorCode on non-200
	if pushResp.ResponseCode == "" && pushResp.ErrorCode != "" {
		pushResp.ResponseCode = pushResp.ErrorCode
		pushResp.ResponseDescription = pushResp.ErrorMessage
	}

	g.logger.Info("STK push submitted",
		logger.String("transaction_id", tx.ID),
		logger.String("checkout_request_id", pushResp.CheckoutRequestID),
		logger.String("response_code", pushResp.ResponseCode),
	)

	return &pushResp, nil
}

// PublishTransactionEvent publishes a lifecycle event to the payment event
// stream. Publishing is best-effort; the caller decides whether to ignore
// the error.
func (g *PaymentGW) PublishTransactionEvent(event models.TransactionEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(g.cfg.NSQ.Topic, event)
}
