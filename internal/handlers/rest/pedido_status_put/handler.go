package pedido_status_put

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"pizzaria/internal/dto"
	"pizzaria/internal/entities"
	"pizzaria/internal/service/orders"
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

	var updateDTO dto.StatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Erro: "Status inválido",
		})
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, entities.KitchenStatus(updateDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidStatus):
			h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Erro: "Status inválido",
			})
		case errors.Is(err, orders.ErrOrderNotFound):
			h.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
				Erro: "Pedido não encontrado",
			})
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", orderID),
			).Error("update order status")
			h.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
				Erro: "Erro interno",
			})
		}
		return
	}

	response := dto.OrderUpdateResponse{
		Sucesso:  true,
		Pedido:   toOrderDTO(order),
		Mensagem: fmt.Sprintf("Status atualizado para %s", updateDTO.Status),
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

func toOrderDTO(order *entities.Order) dto.Order {
	items := make([]dto.Item, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.Item{
			Name:       item.Name,
			Quantity:   int(item.Quantity),
			UnitAmount: item.UnitAmount,
		})
	}

	deliveryAddress := order.DeliveryAddress
	if len(deliveryAddress) == 0 {
		deliveryAddress = json.RawMessage("{}")
	}

	return dto.Order{
		ID: order.ID,
		Customer: dto.Customer{
			Name:  &order.Customer.Name,
			Email: &order.Customer.Email,
			Phone: &order.Customer.Phone,
			TaxID: &order.Customer.TaxID,
		},
		DeliveryAddress: deliveryAddress,
		Items:           items,
		Subtotal:        order.Subtotal,
		DeliveryFee:     order.DeliveryFee,
		Total:           order.Total,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   order.PaymentStatus,
		Status:          order.Status.String(),
		CreatedAt:       order.CreatedAt.Format(time.RFC3339),
		PaidAt:          order.PaidAt.Format(time.RFC3339),
		UpdatedAt:       order.UpdatedAt.Format(time.RFC3339),
	}
}
