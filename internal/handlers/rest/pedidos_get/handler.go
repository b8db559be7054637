package pedidos_get

import (
	"encoding/json"
	"net/http"
	"time"

	"pizzaria/internal/dto"
	"pizzaria/internal/entities"
	"pizzaria/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	storage string
}

// New takes the storage label shown to the kitchen board ("PostgreSQL" or
// "Memória RAM"), fixed at startup.
func New(log handlerLogger, service Service, storage string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		storage: storage,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ordersList, err := h.service.List(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list orders")
		h.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Erro: "Erro interno",
		})
		return
	}

	pedidos := make([]dto.Order, 0, len(ordersList))
	for i := range ordersList {
		pedidos = append(pedidos, toOrderDTO(&ordersList[i]))
	}

	response := dto.OrderListResponse{
		Sucesso: true,
		Pedidos: pedidos,
		Total:   len(pedidos),
		Storage: h.storage,
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
