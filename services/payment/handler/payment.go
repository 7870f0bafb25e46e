package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sployal/fine-back-sub000/internal/pkg/middleware"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
	"github.com/sployal/fine-back-sub000/internal/utils"
)

// InitiatePayment handles STK push initiation requests
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	var req models.STKPushRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	// The bearer token is authoritative for the buyer identity
	if uid := middleware.UserID(c); uid != "" {
		req.UserID = uid
	}

	result, err := h.paymentUC.InitiatePayment(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, result.CustomerMessage, result)
}

// GetTransaction handles transaction status lookups
func (h *PaymentHandler) GetTransaction(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "transaction id is required")
	}

	tx, err := h.paymentUC.GetTransaction(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", tx)
}

// ListTransactions handles authenticated transaction history queries
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	filter := models.TransactionFilter{
		UserID: middleware.UserID(c),
		Status: models.TransactionStatus(c.QueryParam("status")),
	}

	if limit := c.QueryParam("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			return utils.BadRequestResponse(c, "limit must be an integer")
		}
		filter.Limit = parsed
	}
	if offset := c.QueryParam("offset"); offset != "" {
		parsed, err := strconv.Atoi(offset)
		if err != nil {
			return utils.BadRequestResponse(c, "offset must be an integer")
		}
		filter.Offset = parsed
	}

	txs, err := h.paymentUC.ListTransactions(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", txs)
}

// GetSummary handles authenticated aggregate summary queries
func (h *PaymentHandler) GetSummary(c echo.Context) error {
	summary, err := h.paymentUC.GetPaymentSummary(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", summary)
}
