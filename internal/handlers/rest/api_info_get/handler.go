package api_info_get

import (
	"encoding/json"
	"net/http"

	"pizzaria/internal/dto"
	"pizzaria/pkg/logger"
)

const (
	databaseConnected    = "Conectado"
	databaseDisconnected = "Desconectado"
)

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

	response := dto.APIInfoResponse{
		Status:         "API PagBank DEL MONTE funcionando!",
		Ambiente:       h.environment,
		DatabaseStatus: databaseStatus,
		StorageType:    h.storage,
		Endpoints: []string{
			"POST /criar-pedido - Criar pedido PIX",
			"POST /criar-pedido-cartao - Criar pedido com cartão",
			"GET /status-pedido/{order_id} - Consultar status",
			"POST /webhook-pagbank - Receber notificações",
			"GET /api/pedidos - Listar pedidos",
			"PUT /api/pedidos/{order_id}/status - Atualizar status",
			"GET /api/pedidos/stats - Estatísticas de pedidos",
			"GET /config - Configuração da loja",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
