//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=criar_pedido_cartao_post_test
package criar_pedido_cartao_post

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
	CreateCard(ctx context.Context, request entities.CheckoutRequest, details entities.CardDetails) (*entities.CardPayment, error)
}
