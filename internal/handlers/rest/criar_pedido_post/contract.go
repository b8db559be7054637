//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=criar_pedido_post_test
package criar_pedido_post

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
	CreatePix(ctx context.Context, request entities.CheckoutRequest) (*entities.PixPayment, error)
}
