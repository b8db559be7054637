package api_info_get

import "pizzaria/pkg/logger"

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
