package pedidos_stats_get

import (
	"encoding/json"
	"net/http"

	"pizzaria/internal/dto"
	"pizzaria/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order stats")
		h.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Erro: "Erro interno",
		})
		return
	}

	response := dto.StatsResponse{
		Sucesso: true,
		Stats: dto.Stats{
			PedidosHoje: int(stats.OrdersToday),
			Pendentes:   int(stats.Pending),
			Preparando:  int(stats.Preparing),
			ReceitaHoje: stats.RevenueToday,
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
