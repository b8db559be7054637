//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_test
package checkout

import (
	"context"

	"pizzaria/internal/entities"
	"pizzaria/pkg/logger"
)

type Gateway interface {
	CreatePixOrder(ctx context.Context, checkout entities.Checkout) (*entities.PixPayment, error)
	CreateCardOrder(ctx context.Context, checkout entities.Checkout, details entities.CardDetails) (*entities.CardPayment, error)
	GetOrder(ctx context.Context, orderID string) (*entities.PaymentStatus, error)
}

type Orders interface {
	Confirm(ctx context.Context, confirmation entities.OrderConfirmation) (*entities.Order, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
