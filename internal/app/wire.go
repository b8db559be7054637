//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"pizzaria/internal/gateway/http/pagbank"
	"pizzaria/internal/handlers/rest/criar_pedido_cartao_post"
	"pizzaria/internal/handlers/rest/criar_pedido_post"
	"pizzaria/internal/handlers/rest/pedido_status_put"
	"pizzaria/internal/handlers/rest/pedidos_get"
	"pizzaria/internal/handlers/rest/pedidos_stats_get"
	"pizzaria/internal/handlers/rest/status_pedido_get"
	"pizzaria/internal/handlers/rest/webhook_pagbank_post"
	"pizzaria/internal/pkg/config"
	checkoutService "pizzaria/internal/service/checkout"
	ordersService "pizzaria/internal/service/orders"
	"pizzaria/pkg/logger"
)

type Application struct {
	ServiceOrders   ServiceOrders
	ServiceCheckout ServiceCheckout
}

type ServiceOrders interface {
	pedidos_get.Service
	pedido_status_put.Service
	pedidos_stats_get.Service
}

type ServiceCheckout interface {
	criar_pedido_post.Service
	criar_pedido_cartao_post.Service
	status_pedido_get.Service
	webhook_pagbank_post.Service
}

// InitializeApplication builds the service graph. The order repository is
// chosen by main (postgres or in-memory) and injected ready-made.
func InitializeApplication(
	log logger.Logger,
	repository ordersService.Repository,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideGateway,
		ordersService.New,
		provideServiceCheckout,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrders), new(*ordersService.Orders)),
		wire.Bind(new(ServiceCheckout), new(*checkoutService.Checkout)),

		wire.Bind(new(checkoutService.Gateway), new(*pagbank.Gateway)),
		wire.Bind(new(checkoutService.Orders), new(*ordersService.Orders)),
	)
	return &Application{}, nil
}

func provideGateway(cfg *config.Config) *pagbank.Gateway {
	return pagbank.New(pagbank.Config{
		Token:       cfg.PagBank.Token,
		Environment: cfg.PagBank.Environment,
		WebhookURL:  cfg.PagBank.WebhookURL,
	})
}

func provideServiceCheckout(
	log logger.Logger,
	gateway checkoutService.Gateway,
	orders checkoutService.Orders,
) *checkoutService.Checkout {
	return checkoutService.New(log, gateway, orders)
}
