package payment

import (
	"context"

	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/sployal/fine-back-sub000/services/payment PaymentGW

// PaymentGW defines the outbound operations to the M-Pesa gateway and the
// payment event stream
type PaymentGW interface {
	InitiateSTKPush(ctx context.Context, tx *models.Transaction) (*models.STKPushGatewayResponse, error)
	PublishTransactionEvent(event models.TransactionEvent) error
}
