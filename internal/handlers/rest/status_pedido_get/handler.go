package status_pedido_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"pizzaria/internal/dto"
	"pizzaria/internal/gateway/http/pagbank"
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
	orderID := mux.Vars(r)["order_id"]

	status, err := h.service.OrderStatus(r.Context(), orderID)
	if err != nil {
		var providerErr *pagbank.ProviderError
		if errors.As(err, &providerErr) {
			h.writeJSON(w, providerErr.StatusCode, dto.ErrorResponse{
				Erro:     "Pedido não encontrado",
				Detalhes: providerDetails(providerErr),
			})
			return
		}

		h.log.With(
			logger.NewField("error", err),
			logger.NewField("order_id", orderID),
		).Error("order status lookup")
		h.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Erro: "Erro interno",
		})
		return
	}

	response := dto.PaymentStatusResponse{
		OrderID:       status.OrderID,
		ReferenceID:   status.ReferenceID,
		Status:        status.Status,
		PaymentMethod: status.PaymentMethod,
		CreatedAt:     status.CreatedAt,
		Customer:      status.CustomerName,
		Total:         status.Total,
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

func providerDetails(providerErr *pagbank.ProviderError) any {
	if len(providerErr.Body) == 0 {
		return "Sem detalhes"
	}
	return providerErr.Body
}
