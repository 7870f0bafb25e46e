package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/middleware"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
	"github.com/sployal/fine-back-sub000/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
	logger    *logger.ZapLogger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC, zapLogger *logger.ZapLogger) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		logger:    zapLogger,
	}
}

// RegisterRoutes registers the payment routes. The callback family stays
// unauthenticated: the gateway cannot present a user bearer token.
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config, redisClient *redis.Client) {
	auth := middleware.AuthMiddleware(cfg.Auth)
	limiter := middleware.IPRateLimiter(
		cfg.RateLimit.Limit,
		time.Duration(cfg.RateLimit.PeriodSeconds)*time.Second,
		redisClient,
	)

	mpesa := e.Group("/mpesa")
	mpesa.POST("/stk-push", h.InitiatePayment, auth, limiter)
	mpesa.POST("/callback", h.Callback)
	mpesa.POST("/validation", h.Validation)
	mpesa.POST("/confirmation", h.Confirmation)
	mpesa.GET("/transaction/:id", h.GetTransaction, auth)

	e.GET("/transactions", h.ListTransactions, auth)
	e.GET("/summary", h.GetSummary, auth)
}
