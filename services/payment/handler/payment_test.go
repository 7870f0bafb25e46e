package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
	"github.com/sployal/fine-back-sub000/internal/utils"
	"github.com/sployal/fine-back-sub000/services/payment/mocks"
)

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestInitiatePayment_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC, testLogger(t))

	e := echo.New()
	body := `{"phone_number":"0712345678","amount":"100","photo_ids":["p1","p2"],"user_id":"spoofed"}`
	c, rec := newContext(e, http.MethodPost, "/mpesa/stk-push", body)
	c.Set("user_id", "user-1")

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.STKPushRequest) (*models.STKPushResult, error) {
			// The token identity wins over whatever the body claims
			assert.Equal(t, "user-1", req.UserID)
			assert.Equal(t, "0712345678", req.PhoneNumber)
			assert.Equal(t, []string{"p1", "p2"}, []string(req.PhotoIDs))
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(100)))
			return &models.STKPushResult{
				TransactionID:     "tx-1",
				CheckoutRequestID: "checkout-1",
				CustomerMessage:   "Success. Request accepted for processing",
			}, nil
		})

	assert.NoError(t, h.InitiatePayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Success. Request accepted for processing", resp.Message)
}

func TestInitiatePayment_Handler_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC, testLogger(t))

	e := echo.New()
	body := `{"phone_number":"12345","amount":"100","photo_ids":["p1"]}`
	c, rec := newContext(e, http.MethodPost, "/mpesa/stk-push", body)
	c.Set("user_id", "user-1")

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, apperr.New(apperr.KindValidation, "invalid phone number"))

	assert.NoError(t, h.InitiatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid phone number", resp.Error)
}

func TestInitiatePayment_Handler_GatewayFailuresAreServerErrors(t *testing.T) {
	// A Daraja outage is never the caller's fault: neither the credential
	// fetch failing nor the push call failing may surface as 401, which is
	// reserved for the caller's own bearer token.
	tests := []struct {
		name string
		err  error
	}{
		{"credential failure", apperr.New(apperr.KindGatewayAuth, "gateway authentication failed: status 503")},
		{"push failure", apperr.Wrap(apperr.KindDependency, "payment gateway unavailable",
			apperr.New(apperr.KindDependency, "dial tcp: timeout"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockPaymentUC(ctrl)
			h := NewPaymentHandler(mockUC, testLogger(t))

			e := echo.New()
			body := `{"phone_number":"0712345678","amount":"100","photo_ids":["p1"]}`
			c, rec := newContext(e, http.MethodPost, "/mpesa/stk-push", body)
			c.Set("user_id", "user-1")

			mockUC.EXPECT().
				InitiatePayment(gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			assert.NoError(t, h.InitiatePayment(c))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var resp utils.ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Internal server error", resp.Error)
		})
	}
}

func TestGetTransaction_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC, testLogger(t))

	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "/mpesa/transaction/tx-1", "")
	c.Set("user_id", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("tx-1")

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), "user-1", "tx-1").
		Return(&models.Transaction{ID: "tx-1", UserID: "user-1", Status: models.TransactionStatusCompleted}, nil)

	assert.NoError(t, h.GetTransaction(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestGetTransaction_Handler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC, testLogger(t))

	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "/mpesa/transaction/missing", "")
	c.Set("user_id", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), "user-1", "missing").
		Return(nil, apperr.New(apperr.KindNotFound, "transaction missing not found"))

	assert.NoError(t, h.GetTransaction(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTransaction_Handler_OtherUsersTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC, testLogger(t))

	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "/mpesa/transaction/tx-1", "")
	c.Set("user_id", "user-2")
	c.SetParamNames("id")
	c.SetParamValues("tx-1")

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), "user-2", "tx-1").
		Return(nil, apperr.New(apperr.KindAuthorization, "not allowed to view this transaction"))

	assert.NoError(t, h.GetTransaction(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListTransactions_Handler_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC, testLogger(t))

	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "/transactions?limit=abc", "")
	c.Set("user_id", "user-1")

	assert.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTransactions_Handler_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC, testLogger(t))

	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "/transactions?status=completed&limit=5&offset=10", "")
	c.Set("user_id", "user-1")

	mockUC.EXPECT().
		ListTransactions(gomock.Any(), models.TransactionFilter{
			UserID: "user-1",
			Status: models.TransactionStatusCompleted,
			Limit:  5,
			Offset: 10,
		}).
		Return([]*models.Transaction{}, nil)

	assert.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
