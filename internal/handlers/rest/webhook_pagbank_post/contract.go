//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=webhook_pagbank_post_test
package webhook_pagbank_post

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
	ProcessNotification(ctx context.Context, notification entities.Notification) error
}
