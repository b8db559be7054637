package config_get

import (
	"encoding/json"
	"net/http"

	"pizzaria/internal/dto"
	"pizzaria/pkg/logger"
)

const (
	currency            = "BRL"
	pixExpiryMinutes    = 30
	maxCardInstallments = 6

	databaseConnected    = "Conectado"
	databaseDisconnected = "Desconectado"
)

// Handler serves the storefront configuration. Environment and storage are
// fixed at startup.
type Handler struct {
	log               handlerLogger
	environment       string
	storage           string
	databaseConnected bool
}

func New(log handlerLogger, environment, storage string, dbConnected bool) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:               handlerLog,
		environment:       environment,
		storage:           storage,
		databaseConnected: dbConnected,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	databaseStatus := databaseDisconnected
	if h.databaseConnected {
		databaseStatus = databaseConnected
	}

	response := dto.ConfigResponse{
		Ambiente:            h.environment,
		Moeda:               currency,
		PixExpiracaoMinutos: pixExpiryMinutes,
		AceitaCartao:        true,
		AceitaPix:           true,
		MaxParcelas:         maxCardInstallments,
		DatabaseStatus:      databaseStatus,
		StorageType:         h.storage,
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
