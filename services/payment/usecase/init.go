package usecase

import (
	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
	"github.com/sployal/fine-back-sub000/services/payment"
)

// PaymentUC implements the payment.PaymentUC interface
type PaymentUC struct {
	cfg    *models.Config
	repo   payment.PaymentRepo
	gw     payment.PaymentGW
	logger *logger.ZapLogger
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(cfg *models.Config, repo payment.PaymentRepo, gw payment.PaymentGW, zapLogger *logger.ZapLogger) *PaymentUC {
	return &PaymentUC{
		cfg:    cfg,
		repo:   repo,
		gw:     gw,
		logger: zapLogger,
	}
}
