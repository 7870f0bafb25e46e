package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

// Callback receives the gateway's asynchronous STK result. The gateway
// retries callbacks that are not acknowledged with ResultCode 0, so this
// endpoint always returns the fixed success envelope and keeps processing
// failures internal.
func (h *PaymentHandler) Callback(c echo.Context) error {
	var cb models.STKCallback
	if err := c.Bind(&cb); err != nil {
		h.logger.Error("unparseable STK callback payload", logger.Err(err))
		return c.JSON(http.StatusOK, models.AckSuccess())
	}

	if err := h.paymentUC.ProcessCallback(c.Request().Context(), &cb); err != nil {
		h.logger.Error("callback processing failed",
			logger.String("checkout_request_id", cb.Body.StkCallback.CheckoutRequestID),
			logger.Err(err),
		)
	}

	return c.JSON(http.StatusOK, models.AckSuccess())
}

// Validation acknowledges C2B validation probes from the gateway
func (h *PaymentHandler) Validation(c echo.Context) error {
	h.logger.Info("validation request received", logger.String("client_ip", c.RealIP()))
	return c.JSON(http.StatusOK, models.AckSuccess())
}

// Confirmation acknowledges C2B confirmation notifications from the gateway
func (h *PaymentHandler) Confirmation(c echo.Context) error {
	h.logger.Info("confirmation request received", logger.String("client_ip", c.RealIP()))
	return c.JSON(http.StatusOK, models.AckSuccess())
}
