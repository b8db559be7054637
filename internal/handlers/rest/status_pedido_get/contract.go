//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_pedido_get_test
package status_pedido_get

import (
	"context"

	"pizzaria/internal/entities"
	"pizzaria/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	OrderStatus(ctx context.Context, orderID string) (*entities.PaymentStatus, error)
}
